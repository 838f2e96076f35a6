package trackfilter

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"github.com/rotblauer/trackfilter/geo"
	"github.com/rotblauer/trackfilter/types/waypoint"
)

// applySynth derives fix kind, course, and/or speed for every
// waypoint from its neighbors (§4.3 Synth). Each derived field keeps
// its own "reference point" that only advances when that field
// actually changes, so course and speed can fall out of step with
// each other on degenerate input (§13 Open Question c — preserved
// intentionally, not a bug).
func applySynth(idx *trackIndex, opts Options, status func(string)) error {
	if opts.Fix == nil && opts.Course == nil && opts.Speed == nil {
		return nil
	}

	var fixKind waypoint.Fix
	var fixSats int
	haveFix := opts.Fix != nil
	if haveFix {
		f, n, err := ParseFixKind(*opts.Fix, "fix")
		if err != nil {
			return err
		}
		fixKind, fixSats = f, n
	}

	var speeds []float64

	for _, e := range idx.entries {
		t := e.Track
		if t.Len() == 0 {
			continue
		}
		var courseRefLat, courseRefLon float64
		var speedRefLat, speedRefLon float64
		var speedRefTime = t.First().Time

		for i, w := range t.Waypoints {
			if haveFix {
				w.Fix = fixKind
				if w.Sats == 0 {
					w.Sats = fixSats
				}
			}

			if i == 0 {
				if opts.Course != nil {
					w.HasCourse, w.Course = true, 0
				}
				if opts.Speed != nil {
					w.HasSpeed, w.Speed = true, 0
				}
				courseRefLat, courseRefLon = w.Lat, w.Lon
				speedRefLat, speedRefLon = w.Lat, w.Lon
				speedRefTime = w.Time
				continue
			}

			if opts.Course != nil {
				w.HasCourse = true
				w.Course = geo.HeadingTrueDegrees(geo.Radians(courseRefLat), geo.Radians(courseRefLon), geo.Radians(w.Lat), geo.Radians(w.Lon))
				courseRefLat, courseRefLon = w.Lat, w.Lon
			}

			if opts.Speed != nil {
				elapsed := w.Time.Sub(speedRefTime)
				if elapsed != 0 {
					rad := geo.GCDist(geo.Radians(speedRefLat), geo.Radians(speedRefLon), geo.Radians(w.Lat), geo.Radians(w.Lon))
					meters := geo.RadiansToMeters(rad)
					secs := math.Abs(elapsed.Seconds())
					w.HasSpeed, w.Speed = true, meters/secs
					speeds = append(speeds, w.Speed)
					speedRefLat, speedRefLon, speedRefTime = w.Lat, w.Lon, w.Time
				} else {
					w.UnsetSpeed()
				}
			}
		}
	}

	if opts.Speed != nil && len(speeds) > 0 && status != nil {
		mean, _ := stats.Mean(speeds)
		status(fmt.Sprintf("synth: derived speed for %d waypoints, mean %.2f m/s", len(speeds), mean))
	}
	return nil
}
