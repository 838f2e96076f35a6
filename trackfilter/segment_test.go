package trackfilter

import (
	"testing"

	"github.com/rotblauer/trackfilter/store"
	"github.com/rotblauer/trackfilter/types/waypoint"
)

func TestSegmentTrackMarksLargeGap(t *testing.T) {
	s := store.NewMemStore()
	tr := s.InsertHead("t")
	pts := []*waypoint.Waypoint{
		{Lat: 0, Lon: 0},
		{Lat: 0.0001, Lon: 0.0001},
		{Lat: 10, Lon: 10}, // far away: should start a new segment
		{Lat: 10.0001, Lon: 10.0001},
	}
	for _, p := range pts {
		s.AddWaypoint(tr, p)
	}
	segmentTrack(s, tr)

	if tr.Waypoints[2].NewSegment != true {
		t.Errorf("expected a new segment at the large gap, waypoints: %+v", tr.Waypoints)
	}
	if tr.Waypoints[1].NewSegment {
		t.Error("did not expect a new segment before the gap")
	}
}

func TestSegmentTrackDenoisesSensorIdenticalBookend(t *testing.T) {
	s := store.NewMemStore()
	tr := s.InsertHead("t")
	// Three points with a near-zero move in the middle and identical
	// sensor readings on either side: the middle point carries no
	// information and should be dropped.
	pts := []*waypoint.Waypoint{
		{Lat: 45.0, Lon: -122.0, HasCourse: true, Course: 10},
		{Lat: 45.0000001, Lon: -122.0000001, HasCourse: true, Course: 10},
		{Lat: 45.0, Lon: -122.0, HasCourse: true, Course: 10},
	}
	for _, p := range pts {
		s.AddWaypoint(tr, p)
	}
	segmentTrack(s, tr)

	if tr.Len() != 2 {
		t.Fatalf("got %d waypoints, want 2 (middle point denoised)", tr.Len())
	}
}
