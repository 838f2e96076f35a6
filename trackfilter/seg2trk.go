package trackfilter

import (
	"fmt"

	"github.com/rotblauer/trackfilter/store"
	"github.com/rotblauer/trackfilter/types/track"
	"github.com/rotblauer/trackfilter/types/waypoint"
)

// seg2trkTracks promotes every internal segment boundary (every
// waypoint with NewSegment set, except the first) to a track boundary,
// splitting each track into one track per segment (§4.4 Seg2Trk).
func seg2trkTracks(s store.TrackStore, idx *trackIndex) {
	for _, e := range idx.entries {
		src := e.Track
		waypoints := make([]*waypoint.Waypoint, len(src.Waypoints))
		copy(waypoints, src.Waypoints)

		insertAfter := src
		var dest *track.Track
		segNum := 1

		for i, w := range waypoints {
			if i > 0 && w.NewSegment {
				segNum++
				name := ""
				if src.Name != "" {
					name = fmt.Sprintf("%s #%d", src.Name, segNum)
				}
				dest = s.InsertHeadAfter(insertAfter, name)
				dest.Number = src.Number
				insertAfter = dest
			}
			if dest != nil {
				moveWaypointPreservingSegmentFlag(s, src, dest, w)
			}
		}
	}
}

// moveWaypointPreservingSegmentFlag relocates w from src to dest
// without letting the store's delete-side NewSegment forwarding
// (store.TrackStore.DeleteWaypoint) clobber w's own flag.
func moveWaypointPreservingSegmentFlag(s store.TrackStore, src, dest *track.Track, w *waypoint.Waypoint) {
	flag := w.NewSegment
	w.NewSegment = false
	s.DeleteWaypoint(src, w)
	w.NewSegment = flag
	s.AddWaypoint(dest, w)
}
