// Package track defines the ordered GPS track trackfilter operates on.
package track

import (
	"github.com/rotblauer/trackfilter/types/waypoint"
)

// Track is an ordered sequence of waypoints with a mutable name and a
// numeric identifier (trackfilter.cc's route_head, restricted to the
// track variant per spec §1).
type Track struct {
	ID        int
	Name      string
	Number    int // original "route number", carried across seg2trk
	Waypoints []*waypoint.Waypoint
}

// New returns an empty, named track.
func New(id int, name string) *Track {
	return &Track{ID: id, Name: name}
}

// Len returns the number of waypoints in the track.
func (t *Track) Len() int {
	return len(t.Waypoints)
}

// First returns the track's first waypoint, or nil if the track is empty.
func (t *Track) First() *waypoint.Waypoint {
	if len(t.Waypoints) == 0 {
		return nil
	}
	return t.Waypoints[0]
}

// Last returns the track's last waypoint, or nil if the track is empty.
func (t *Track) Last() *waypoint.Waypoint {
	if len(t.Waypoints) == 0 {
		return nil
	}
	return t.Waypoints[len(t.Waypoints)-1]
}

// AddWaypoint appends a waypoint to the track.
func (t *Track) AddWaypoint(w *waypoint.Waypoint) {
	t.Waypoints = append(t.Waypoints, w)
}

// DeleteWaypointAt removes the waypoint at index i, propagating its
// NewSegment flag forward to the following waypoint if it was set
// (§6 Track store interface: deleting a segment head must not silently
// erase the segment boundary it marked).
func (t *Track) DeleteWaypointAt(i int) {
	w := t.Waypoints[i]
	if w.NewSegment && i+1 < len(t.Waypoints) {
		t.Waypoints[i+1].NewSegment = true
	}
	t.Waypoints = append(t.Waypoints[:i], t.Waypoints[i+1:]...)
}

// Clone returns a shallow copy of the track with its own waypoint
// slice (but sharing *waypoint.Waypoint pointers).
func (t *Track) Clone() *Track {
	cp := &Track{ID: t.ID, Name: t.Name, Number: t.Number}
	cp.Waypoints = make([]*waypoint.Waypoint, len(t.Waypoints))
	copy(cp.Waypoints, t.Waypoints)
	return cp
}
