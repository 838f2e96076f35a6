// Package geo adapts github.com/paulmach/orb/geo's great-circle math to
// the radians-at-the-boundary convention trackfilter's callers expect
// (GPSBabel's grtcirc.h: RAD, gcdist, heading_true_degrees, radtometers).
// GCDist and HeadingTrueDegrees take their coordinates in radians, and
// converting degrees to radians is the caller's responsibility, per
// trackfilter's own call sites; DistanceMeters takes degrees directly.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// GCDist returns the great-circle distance between two points, given
// in radians, as a fraction of the earth's radius (i.e. in radians),
// matching grtcirc.h's gcdist.
func GCDist(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := orb.Point{Degrees(lon1), Degrees(lat1)}
	p2 := orb.Point{Degrees(lon2), Degrees(lat2)}
	return orbgeo.Distance(p1, p2) / earthRadiusMeters
}

// DistanceMeters is a convenience wrapper combining GCDist with
// RadiansToMeters for two points given directly in degrees.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := orb.Point{lon1, lat1}
	p2 := orb.Point{lon2, lat2}
	return orbgeo.Distance(p1, p2)
}

// RadiansToMeters converts a great-circle angle in radians to meters,
// matching grtcirc.h's radtometers.
func RadiansToMeters(rad float64) float64 {
	return rad * earthRadiusMeters
}

// HeadingTrueDegrees returns the true heading, in degrees [0, 360), of
// the great circle from (lat1, lon1) to (lat2, lon2), given in radians,
// matching grtcirc.h's heading_true_degrees.
func HeadingTrueDegrees(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := orb.Point{Degrees(lon1), Degrees(lat1)}
	p2 := orb.Point{Degrees(lon2), Degrees(lat2)}
	bearing := orbgeo.Bearing(p1, p2)
	if bearing < 0 {
		bearing += 360
	}
	return bearing
}

const earthRadiusMeters = 6371000.0
