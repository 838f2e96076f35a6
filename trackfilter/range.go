package trackfilter

import (
	"fmt"
	"time"

	"github.com/rotblauer/trackfilter/store"
	"github.com/rotblauer/trackfilter/types/waypoint"
)

// applyRange drops every waypoint outside [start, stop] (either bound
// optional) and removes any track left empty by the cut (§4.3 Range).
// Waypoints without a time are always dropped, since they can't be
// known to lie inside the range. Dropping every point is a warning,
// not a fatal condition.
func applyRange(s store.TrackStore, idx *trackIndex, opts Options, warn func(string)) error {
	if opts.Start == nil && opts.Stop == nil {
		return nil
	}

	var haveStart, haveStop bool
	var startT, stopT time.Time
	if opts.Start != nil {
		t, err := ParsePartialTimestamp(*opts.Start, "start")
		if err != nil {
			return err
		}
		startT, haveStart = t, true
	}
	if opts.Stop != nil {
		t, err := ParsePartialTimestamp(*opts.Stop, "stop")
		if err != nil {
			return err
		}
		stopT, haveStop = t, true
	}

	dropped := 0
	for _, e := range idx.entries {
		t := e.Track
		snapshot := make([]*waypoint.Waypoint, len(t.Waypoints))
		copy(snapshot, t.Waypoints)

		for _, w := range snapshot {
			inside := w.HasTime &&
				(!haveStart || !w.Time.Before(startT)) &&
				(!haveStop || !w.Time.After(stopT))
			if !inside {
				s.DeleteWaypoint(t, w)
				dropped++
			}
		}
		if t.Len() == 0 {
			s.DeleteHead(t)
		}
	}

	if idx.totalPoints > 0 && dropped == idx.totalPoints && warn != nil {
		warn(fmt.Sprintf("range: all %d track point(s) fall outside the requested range", idx.totalPoints))
	}
	return nil
}
