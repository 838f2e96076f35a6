package store

import (
	"path/filepath"
	"testing"

	"github.com/rotblauer/trackfilter/types/waypoint"
)

func TestBoltStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracks.db")

	bs, err := OpenBoltStore(path)
	if err != nil {
		t.Fatal(err)
	}
	tr := bs.InsertHead("alpha")
	bs.AddWaypoint(tr, &waypoint.Waypoint{Lat: 1, Lon: 2})
	if err := bs.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := OpenBoltStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	tracks := reopened.Tracks()
	if len(tracks) != 1 || tracks[0].Name != "alpha" {
		t.Fatalf("got %v tracks, want 1 named alpha", tracks)
	}
	if tracks[0].Len() != 1 || tracks[0].Waypoints[0].Lat != 1 {
		t.Fatalf("waypoints did not round-trip: %+v", tracks[0].Waypoints)
	}
}

func TestOpenBoltStoreEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	bs, err := OpenBoltStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer bs.Close()
	if len(bs.Tracks()) != 0 {
		t.Fatalf("want no tracks, got %v", bs.Tracks())
	}
}
