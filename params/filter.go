package params

// SegmentConfig holds the tunables for the `segment` operation's
// denoise/split pass (see trackfilter.segmentTrack).
type SegmentConfig struct {
	// TooCloseRadians is the great-circle gap, in radians, below which a
	// point is a denoise candidate (empirically about 32 m, roughly 100
	// feet, at the default value).
	TooCloseRadians float64

	// NewSegmentMinRadians is the minimum great-circle gap, in radians,
	// that a new-segment break may fire on.
	NewSegmentMinRadians float64

	// NewSegmentAvgMultiple is how far above the running average gap a
	// gap must be (in addition to clearing NewSegmentMinRadians) to
	// start a new segment.
	NewSegmentAvgMultiple float64

	// AvgWeight/AvgDivisor implement the exponentially weighted moving
	// average update avg' = (cur + AvgWeight*avg) / AvgDivisor.
	AvgWeight  float64
	AvgDivisor float64

	// PositionToleranceDegrees and AltitudeToleranceMeters bound the
	// "sensor-identical" bookend test used by the denoise path.
	PositionToleranceDegrees float64
	AltitudeToleranceMeters  float64
}

var DefaultSegmentConfig = &SegmentConfig{
	TooCloseRadians:          0.000005,
	NewSegmentMinRadians:     0.001,
	NewSegmentAvgMultiple:    1.2,
	AvgWeight:                4.0,
	AvgDivisor:               5.0,
	PositionToleranceDegrees: 0.00001,
	AltitudeToleranceMeters:  20,
}

// Unit conversion constants, mirroring grtcirc.h's radtometers/radtomiles
// and trackfilter.cc's duration/distance unit suffixes.
const (
	SecondsPerDay  = 86400
	SecondsPerHour = 3600
	SecondsPerMin  = 60

	MetersPerKilometer = 1000.0
	MetersPerMile      = 1609.344
)

// FixSuggestedSatCount gives the satellite count trackfilter_parse_fix
// suggests for each recognized fix kind, used by `synth(fix)` when a
// waypoint reports zero satellites.
var FixSuggestedSatCount = map[string]int{
	"pps":  4,
	"dgps": 4,
	"3d":   4,
	"2d":   3,
	"none": 0,
}
