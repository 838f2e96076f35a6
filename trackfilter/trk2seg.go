package trackfilter

import (
	"github.com/rotblauer/trackfilter/store"
	"github.com/rotblauer/trackfilter/types/waypoint"
)

// trk2segTracks is the inverse of seg2trk: every track after the
// first is appended to the first as a new internal segment, and then
// deleted (§4.4 Trk2Seg).
func trk2segTracks(s store.TrackStore, idx *trackIndex) {
	if len(idx.entries) == 0 {
		return
	}
	master := idx.entries[0].Track

	for i := 1; i < len(idx.entries); i++ {
		cur := idx.entries[i].Track
		waypoints := make([]*waypoint.Waypoint, len(cur.Waypoints))
		copy(waypoints, cur.Waypoints)

		for j, w := range waypoints {
			moveWaypointPreservingSegmentFlag(s, cur, master, w)
			if j == 0 {
				w.NewSegment = true
			}
		}
		s.DeleteHead(cur)
	}
}
