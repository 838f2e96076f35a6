package trackfilter

import (
	"math"

	"github.com/rotblauer/trackfilter/geo"
	"github.com/rotblauer/trackfilter/params"
	"github.com/rotblauer/trackfilter/store"
	"github.com/rotblauer/trackfilter/types/track"
	"github.com/rotblauer/trackfilter/types/waypoint"
)

// segmentTrack is the EWMA denoise/new-segment pass trackfilter.cc
// runs inline during index construction whenever `segment` is
// requested. It walks adjacent waypoint pairs, folding the
// three-point "sensor identical" bookend test and the gap-vs-running-
// average test into one left-to-right pass so neither test needs to
// look more than one point ahead or behind at a time.
//
// When a point is denoised away, the loop index does not advance and
// the weighted update of the running average is skipped, so the
// comparison on the next iteration is against the same surviving
// predecessor. The one exception is a zero average (the first pair, or
// right after a new segment): it is seeded with the current gap before
// the denoise test, so a denoised point's gap still seeds it.
func segmentTrack(s store.TrackStore, t *track.Track) {
	cfg := params.DefaultSegmentConfig
	avg := 0.0

	i := 1
	for i < len(t.Waypoints) {
		prev := t.Waypoints[i-1]
		cur := t.Waypoints[i]
		dist := geo.GCDist(geo.Radians(prev.Lat), geo.Radians(prev.Lon), geo.Radians(cur.Lat), geo.Radians(cur.Lon))
		if avg == 0 {
			avg = dist
		}

		if dist < cfg.TooCloseRadians && i+1 < len(t.Waypoints) {
			next := t.Waypoints[i+1]
			if sensorIdentical(prev, cur, cfg) && sensorIdentical(cur, next, cfg) {
				s.DeleteWaypoint(t, cur)
				continue
			}
		}

		if dist > cfg.NewSegmentMinRadians && dist > cfg.NewSegmentAvgMultiple*avg {
			avg = 0
			dist = 0
			cur.NewSegment = true
		}

		avg = (dist + cfg.AvgWeight*avg) / cfg.AvgDivisor
		i++
	}
}

// sensorIdentical reports whether two waypoints are close enough in
// position and identical enough in every other sensor reading that a
// point between them carries no information (§3, "sensor-identical").
func sensorIdentical(a, b *waypoint.Waypoint, cfg *params.SegmentConfig) bool {
	return math.Abs(a.Lat-b.Lat) < cfg.PositionToleranceDegrees &&
		math.Abs(a.Lon-b.Lon) < cfg.PositionToleranceDegrees &&
		math.Abs(a.Altitude-b.Altitude) < cfg.AltitudeToleranceMeters &&
		a.HasCourse == b.HasCourse &&
		a.Course == b.Course &&
		a.Speed == b.Speed &&
		a.HeartRate == b.HeartRate &&
		a.Cadence == b.Cadence &&
		a.Temperature == b.Temperature
}
