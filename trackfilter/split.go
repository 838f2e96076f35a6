package trackfilter

import (
	"fmt"
	"time"

	"github.com/rotblauer/trackfilter/geo"
	"github.com/rotblauer/trackfilter/store"
	"github.com/rotblauer/trackfilter/types/track"
	"github.com/rotblauer/trackfilter/types/waypoint"
)

// splitTrack breaks the single remaining track into several, starting
// a new one wherever consecutive waypoints cross a configured
// boundary (§4.4 Split). With neither `split` nor `sdistance` given a
// value, the boundary is a change of local calendar date, following
// the system time zone exactly as trackfilter.cc's toLocalTime().date()
// comparison does; with either given a value, both thresholds (when
// both are configured) must be exceeded for a cut to fire (§13 Open
// Question b).
func splitTrack(s store.TrackStore, idx *trackIndex, opts Options) error {
	master := idx.entries[0].Track
	if master.Len() <= 1 {
		return nil
	}

	const unset = -1.0
	interval, distance := unset, unset

	hasInterval := opts.Split != nil && *opts.Split != ""
	if hasInterval {
		v, err := ParseDurationFraction(*opts.Split, "split")
		if err != nil {
			return err
		}
		interval = v
	}
	hasDistance := opts.SDistance != nil && *opts.SDistance != ""
	if hasDistance {
		v, err := ParseDistance(*opts.SDistance, "sdistance")
		if err != nil {
			return err
		}
		distance = v
	}
	dateMode := !hasInterval && !hasDistance
	timestampFormat := !dateMode

	var titleBase string
	if opts.Title != nil {
		titleBase = *opts.Title
	}
	setSplitName(master, idx.entries[0].FirstTime, titleBase, timestampFormat)

	waypoints := make([]*waypoint.Waypoint, len(master.Waypoints))
	copy(waypoints, master.Waypoints)

	insertAfter := master
	var cur *track.Track

	for i := 0; i+1 < len(waypoints); i++ {
		a, b := waypoints[i], waypoints[i+1]

		var newTrack bool
		if dateMode {
			newTrack = !sameLocalDate(a.Time, b.Time)
		} else {
			newTrack = true
			if hasDistance {
				meters := geo.DistanceMeters(a.Lat, a.Lon, b.Lat, b.Lon)
				if meters <= distance {
					newTrack = false
				}
			}
			if hasInterval {
				elapsed := b.Time.Sub(a.Time).Seconds()
				if elapsed <= interval {
					newTrack = false
				}
			}
		}

		if newTrack {
			cur = s.InsertHeadAfter(insertAfter, "")
			setSplitName(cur, b.Time, titleBase, timestampFormat)
			insertAfter = cur
		}

		if cur != nil {
			s.DeleteWaypoint(master, b)
			s.AddWaypoint(cur, b)
		}
	}

	return nil
}

// sameLocalDate compares a and b's calendar dates in the local time
// zone, matching the original's dependence on the system time zone
// rather than comparing in UTC.
func sameLocalDate(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// setSplitName names a freshly-created (or the original master) split
// track: titleBase if non-empty (expanded as a strftime format if it
// contains '%'), else the track's own existing name, else nothing —
// concatenated with a UTC timestamp unless titleBase itself was a
// strftime format, in which case the format supplies the whole name.
func setSplitName(t *track.Track, at time.Time, titleBase string, useTimestampFormat bool) {
	layout := "20060102"
	if useTimestampFormat {
		layout = "20060102150405"
	}
	stamp := at.UTC().Format(layout)

	switch {
	case titleBase != "" && containsPercent(titleBase):
		t.Name = strftime(titleBase, at)
	case titleBase != "":
		t.Name = fmt.Sprintf("%s-%s", titleBase, stamp)
	case t.Name != "":
		t.Name = fmt.Sprintf("%s-%s", t.Name, stamp)
	default:
		t.Name = stamp
	}
}
