package trackfilter

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/rotblauer/trackfilter/store"
	"github.com/rotblauer/trackfilter/types/waypoint"
)

// mergeTracks drains every track's timestamped waypoints into a
// scratch buffer, sorts it stably by time (ties broken by original
// encounter order), drops exact-timestamp duplicates, and rebuilds the
// first track from what survives (§4.4 Merge). Waypoints without a
// time are dropped unconditionally; `discard` exists only to silence
// the index builder's fatal check on them, not to change this.
func mergeTracks(s store.TrackStore, idx *trackIndex, status func(string)) error {
	if idx.totalPoints-idx.timelessPoints < 1 {
		return nil
	}
	if len(idx.entries) == 0 {
		return nil
	}
	master := idx.entries[0].Track

	type buffered struct {
		w       *waypoint.Waypoint
		origIdx int
	}
	var buf []buffered
	origIdx := 0

	for _, e := range idx.entries {
		t := e.Track
		snapshot := make([]*waypoint.Waypoint, len(t.Waypoints))
		copy(snapshot, t.Waypoints)
		for _, w := range snapshot {
			if w.HasTime {
				cp := w.Copy()
				buf = append(buf, buffered{cp, origIdx})
				origIdx++
			}
			// Clear the source's flag before deleting it so the
			// store's delete-side NewSegment forwarding doesn't hand
			// a segment boundary to an unrelated sibling; the copy
			// above has already captured w's original flag.
			w.NewSegment = false
			s.DeleteWaypoint(t, w)
		}
		if t != master {
			s.DeleteHead(t)
		}
	}

	sort.SliceStable(buf, func(i, j int) bool {
		if !buf[i].w.Time.Equal(buf[j].w.Time) {
			return buf[i].w.Time.Before(buf[j].w.Time)
		}
		return buf[i].origIdx < buf[j].origIdx
	})

	dropped := idx.totalPoints - len(buf)
	kept := 0
	var prevTime = buf[0].w.Time
	havePrev := false
	for _, b := range buf {
		if havePrev && prevTime.Equal(b.w.Time) {
			dropped++
			continue
		}
		s.AddWaypoint(master, b.w)
		prevTime = b.w.Time
		havePrev = true
		kept++
	}

	if status != nil {
		status(fmt.Sprintf("merge: %s track point(s) merged, %s dropped",
			humanize.Comma(int64(kept)), humanize.Comma(int64(dropped))))
	}
	return nil
}
