package trackfilter

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/rotblauer/trackfilter/store"
)

// packTracks concatenates every track into the first, in chronological
// order, provided no two tracks' time spans overlap (§4.4 Pack). This
// is the pipeline's default action when no option at all was given.
func packTracks(s store.TrackStore, idx *trackIndex, status func(string)) error {
	if len(idx.entries) == 0 {
		return nil
	}
	for i := 1; i < len(idx.entries); i++ {
		prev, cur := idx.entries[i-1], idx.entries[i]
		if !prev.LastTime.Before(cur.FirstTime) {
			return &Error{Kind: ErrTemporalOverlap, Message: fmt.Sprintf(
				"track %q (ending %s) overlaps track %q (starting %s)",
				prev.Track.Name, prev.LastTime, cur.Track.Name, cur.FirstTime)}
		}
	}

	master := idx.entries[0].Track
	for i := 1; i < len(idx.entries); i++ {
		cur := idx.entries[i].Track
		for _, w := range cur.Waypoints {
			s.AddWaypoint(master, w)
		}
		cur.Waypoints = nil
		s.DeleteHead(cur)
	}

	if status != nil {
		status(fmt.Sprintf("pack: %s track point(s) packed into one track", humanize.Comma(int64(master.Len()))))
	}
	return nil
}
