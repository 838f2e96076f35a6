package trackfilter

import (
	"testing"
	"time"

	"github.com/rotblauer/trackfilter/types/waypoint"
)

func TestApplyMoveShiftsTimestamps(t *testing.T) {
	s := buildStore([]*waypoint.Waypoint{wp(1, 1, 0), wp(1, 1, time.Minute)})
	opts := Options{Move: strPtr("1h")}
	idx, err := buildIndex(s, opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := applyMove(idx, opts); err != nil {
		t.Fatal(err)
	}
	got := s.Tracks()[0].Waypoints[0].Time
	want := testEpoch.Add(time.Hour)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestApplyMoveLeavesTimelessWaypointsAlone(t *testing.T) {
	s := buildStore([]*waypoint.Waypoint{{Lat: 1, Lon: 1}})
	opts := Options{Move: strPtr("1h")}
	// needTime(opts) is true for `move`, so buildIndex would reject a
	// timeless waypoint before applyMove ever ran; build the index by
	// hand so applyMove itself is exercised.
	idx := &trackIndex{entries: []*indexEntry{{Track: s.Tracks()[0]}}}
	if err := applyMove(idx, opts); err != nil {
		t.Fatal(err)
	}
	if s.Tracks()[0].Waypoints[0].HasTime {
		t.Error("timeless waypoint should remain timeless")
	}
}
