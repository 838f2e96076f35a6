package trackfilter

import (
	"testing"
	"time"

	"github.com/rotblauer/trackfilter/store"
	"github.com/rotblauer/trackfilter/types/waypoint"
)

func TestSplitByDateBoundary(t *testing.T) {
	s := buildStore([]*waypoint.Waypoint{
		wp(0, 0, 0),
		wp(0, 0, 12*time.Hour),
		wp(0, 0, 36*time.Hour), // crosses into the next calendar day (UTC local zone)
	})
	opts := Options{}
	idx, err := buildIndex(s, opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := splitTrack(s, idx, opts); err != nil {
		t.Fatal(err)
	}
	if len(s.Tracks()) != 2 {
		t.Fatalf("got %d tracks, want 2", len(s.Tracks()))
	}
}

func TestSplitByDateBoundaryUsesLocalNotUTC(t *testing.T) {
	// Same UTC calendar day is not the test: this pair falls on two
	// different UTC dates (2024-01-01 and 2024-01-02) but, once shifted
	// into a -1h zone, lands on the same local date. A UTC-based
	// comparison would wrongly split these into two tracks.
	old := time.Local
	time.Local = time.FixedZone("UTC-1", -1*60*60)
	t.Cleanup(func() { time.Local = old })

	epoch := time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)
	s := store.NewMemStore()
	tr := s.InsertHead("one")
	s.AddWaypoint(tr, &waypoint.Waypoint{HasTime: true, Time: epoch})
	s.AddWaypoint(tr, &waypoint.Waypoint{HasTime: true, Time: epoch.Add(time.Hour)})

	opts := Options{}
	idx, err := buildIndex(s, opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := splitTrack(s, idx, opts); err != nil {
		t.Fatal(err)
	}
	if len(s.Tracks()) != 1 {
		t.Fatalf("got %d tracks, want 1 (same local date despite crossing a UTC date boundary)", len(s.Tracks()))
	}
}

func TestSplitBothThresholdsRequireBoth(t *testing.T) {
	// §13 Open Question (b): when both split (interval) and sdistance
	// are given, a cut only fires when BOTH thresholds are exceeded.
	s := buildStore([]*waypoint.Waypoint{
		wp(0, 0, 0),
		wp(0, 0.5, time.Hour), // far apart in distance, but not in time
	})
	opts := Options{Split: strPtr("2h"), SDistance: strPtr("1k")}
	idx, err := buildIndex(s, opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := splitTrack(s, idx, opts); err != nil {
		t.Fatal(err)
	}
	if len(s.Tracks()) != 1 {
		t.Fatalf("got %d tracks, want 1 (distance exceeded but not time, so no split)", len(s.Tracks()))
	}
}

func TestSplitByIntervalNamesWithTimestamp(t *testing.T) {
	s := buildStore([]*waypoint.Waypoint{
		wp(0, 0, 0),
		wp(0, 0, 3*time.Hour),
	})
	opts := Options{Split: strPtr("1h")}
	idx, err := buildIndex(s, opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := splitTrack(s, idx, opts); err != nil {
		t.Fatal(err)
	}
	if len(s.Tracks()) != 2 {
		t.Fatalf("got %d tracks, want 2", len(s.Tracks()))
	}
	if len(s.Tracks()[1].Name) != len("20240101030000") {
		t.Errorf("got name %q, want a YYYYMMDDHHMMSS name", s.Tracks()[1].Name)
	}
}
