// Package waypoint defines the immutable-by-convention GPS fix record
// that trackfilter operates on, grounded on the flat-field track point
// shape the teacher pack uses for wire decoding (trackpoint.TrackPoint)
// but extended with the scalar "has value" bits trackfilter.cc keeps on
// every optional field (course, speed, heart rate, cadence, temperature).
package waypoint

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/paulmach/orb"
)

// Fix classifies the quality of a GPS solution.
type Fix int

const (
	FixUnknown Fix = iota
	FixNone
	Fix2D
	Fix3D
	FixDGPS
	FixPPS
)

func (f Fix) String() string {
	switch f {
	case FixNone:
		return "none"
	case Fix2D:
		return "2d"
	case Fix3D:
		return "3d"
	case FixDGPS:
		return "dgps"
	case FixPPS:
		return "pps"
	default:
		return "unknown"
	}
}

// ParseFix parses one of trackfilter's fix-kind strings ("pps",
// "dgps", "3d", "2d", "none") into a Fix. The match is case-sensitive:
// only these lower-case spellings are accepted.
func ParseFix(s string) (Fix, bool) {
	switch s {
	case "pps":
		return FixPPS, true
	case "dgps":
		return FixDGPS, true
	case "3d":
		return Fix3D, true
	case "2d":
		return Fix2D, true
	case "none":
		return FixNone, true
	default:
		return FixUnknown, false
	}
}

// Waypoint is a single timestamped GPS fix.
//
// Course, Speed, HeartRate, Cadence, and Temperature are optional
// scalars; each carries an explicit "has value" bit (HasCourse, etc.)
// rather than using a pointer, matching trackfilter.cc's WAYPT_HAS /
// WAYPT_SET / WAYPT_UNSET bitmask convention.
type Waypoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`

	HasAltitude bool    `json:"hasAltitude,omitempty"`
	Altitude    float64 `json:"altitude,omitempty"` // meters

	HasTime bool      `json:"hasTime,omitempty"`
	Time    time.Time `json:"time,omitempty"` // UTC, millisecond resolution

	Fix  Fix `json:"fix"`
	Sats int `json:"sats"`

	HasCourse bool    `json:"hasCourse,omitempty"`
	Course    float64 `json:"course,omitempty"` // degrees

	HasSpeed bool    `json:"hasSpeed,omitempty"`
	Speed    float64 `json:"speed,omitempty"` // meters/second

	HasHeartRate bool    `json:"hasHeartRate,omitempty"`
	HeartRate    float64 `json:"heartRate,omitempty"`

	HasCadence bool    `json:"hasCadence,omitempty"`
	Cadence    float64 `json:"cadence,omitempty"`

	HasTemperature bool    `json:"hasTemperature,omitempty"`
	Temperature    float64 `json:"temperature,omitempty"`

	// NewSegment marks this waypoint as the start of a new segment
	// within its track. The first waypoint of every track is implicitly
	// true regardless of this field's stored value (§3 invariant 6).
	NewSegment bool `json:"newSegment,omitempty"`
}

// waypointJSON is the wire shape: a flat, mostly-optional-pointer
// record, decoded and then folded into the has-bit fields above.
type waypointJSON struct {
	Lat         float64    `json:"lat"`
	Lon         float64    `json:"lon"`
	Altitude    *float64   `json:"altitude,omitempty"`
	Time        *time.Time `json:"time,omitempty"`
	Fix         string     `json:"fix,omitempty"`
	Sats        int        `json:"sats,omitempty"`
	Course      *float64   `json:"course,omitempty"`
	Speed       *float64   `json:"speed,omitempty"`
	HeartRate   *float64   `json:"heartRate,omitempty"`
	Cadence     *float64   `json:"cadence,omitempty"`
	Temperature *float64   `json:"temperature,omitempty"`
	NewSegment  bool       `json:"newSegment,omitempty"`
}

// UnmarshalJSON accepts the pointer-optional wire shape and folds it
// into has-bit fields, mirroring trackpoint.TrackPoint's custom
// UnmarshalJSON but generalized to every optional scalar the data
// model carries.
func (w *Waypoint) UnmarshalJSON(data []byte) error {
	var aux waypointJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*w = Waypoint{Lat: aux.Lat, Lon: aux.Lon, Sats: aux.Sats, NewSegment: aux.NewSegment}
	if aux.Altitude != nil {
		w.HasAltitude, w.Altitude = true, *aux.Altitude
	}
	if aux.Time != nil {
		w.HasTime, w.Time = true, aux.Time.UTC()
	}
	if aux.Fix != "" {
		fix, ok := ParseFix(aux.Fix)
		if !ok {
			return fmt.Errorf("waypoint: invalid fix kind %q", aux.Fix)
		}
		w.Fix = fix
	}
	if aux.Course != nil {
		w.HasCourse, w.Course = true, *aux.Course
	}
	if aux.Speed != nil {
		w.HasSpeed, w.Speed = true, *aux.Speed
	}
	if aux.HeartRate != nil {
		w.HasHeartRate, w.HeartRate = true, *aux.HeartRate
	}
	if aux.Cadence != nil {
		w.HasCadence, w.Cadence = true, *aux.Cadence
	}
	if aux.Temperature != nil {
		w.HasTemperature, w.Temperature = true, *aux.Temperature
	}
	return nil
}

// MarshalJSON emits the pointer-optional wire shape.
func (w Waypoint) MarshalJSON() ([]byte, error) {
	aux := waypointJSON{
		Lat:        w.Lat,
		Lon:        w.Lon,
		Sats:       w.Sats,
		NewSegment: w.NewSegment,
	}
	if w.HasAltitude {
		aux.Altitude = &w.Altitude
	}
	if w.HasTime {
		t := w.Time.UTC()
		aux.Time = &t
	}
	if w.Fix != FixUnknown {
		aux.Fix = w.Fix.String()
	}
	if w.HasCourse {
		aux.Course = &w.Course
	}
	if w.HasSpeed {
		aux.Speed = &w.Speed
	}
	if w.HasHeartRate {
		aux.HeartRate = &w.HeartRate
	}
	if w.HasCadence {
		aux.Cadence = &w.Cadence
	}
	if w.HasTemperature {
		aux.Temperature = &w.Temperature
	}
	return json.Marshal(aux)
}

// Point returns the waypoint's position as an orb.Point (lon, lat), the
// convention github.com/paulmach/orb uses throughout.
func (w *Waypoint) Point() orb.Point {
	return orb.Point{w.Lon, w.Lat}
}

// Copy returns a shallow copy of the waypoint. Waypoint has no
// reference fields besides Time, which is copied by value, so this is
// also a deep copy.
func (w *Waypoint) Copy() *Waypoint {
	cp := *w
	return &cp
}

// UnsetSpeed clears the Speed has-bit, used by synth when consecutive
// points share a timestamp (§4.3 Synth).
func (w *Waypoint) UnsetSpeed() {
	w.HasSpeed = false
	w.Speed = 0
}
