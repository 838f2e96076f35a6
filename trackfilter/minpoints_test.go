package trackfilter

import (
	"testing"

	"github.com/rotblauer/trackfilter/types/waypoint"
)

func TestApplyMinPointsDropsShortTracks(t *testing.T) {
	s := buildStore(
		[]*waypoint.Waypoint{wp(0, 0, 0)},
		[]*waypoint.Waypoint{wp(0, 0, 0), wp(0, 0, 0), wp(0, 0, 0)},
	)
	if err := applyMinPoints(s, Options{MinPoints: strPtr("2")}); err != nil {
		t.Fatal(err)
	}
	if len(s.Tracks()) != 1 {
		t.Fatalf("got %d tracks, want 1", len(s.Tracks()))
	}
}

func TestApplyMinPointsRejectsNonInteger(t *testing.T) {
	s := buildStore([]*waypoint.Waypoint{wp(0, 0, 0)})
	if err := applyMinPoints(s, Options{MinPoints: strPtr("nope")}); err == nil {
		t.Fatal("want an error for a non-integer minpoints value")
	}
}
