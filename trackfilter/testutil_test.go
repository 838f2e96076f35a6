package trackfilter

import (
	"time"

	"github.com/rotblauer/trackfilter/store"
	"github.com/rotblauer/trackfilter/types/waypoint"
)

// wp builds a timestamped waypoint at the given offset from a fixed
// epoch, for tests that only care about relative ordering.
func wp(lat, lon float64, offset time.Duration) *waypoint.Waypoint {
	return &waypoint.Waypoint{
		Lat: lat, Lon: lon,
		HasTime: true,
		Time:    testEpoch.Add(offset),
	}
}

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func buildStore(tracks ...[]*waypoint.Waypoint) store.TrackStore {
	s := store.NewMemStore()
	for i, wps := range tracks {
		tr := s.InsertHead(trackName(i))
		for _, w := range wps {
			s.AddWaypoint(tr, w)
		}
	}
	return s
}

func trackName(i int) string {
	names := []string{"one", "two", "three", "four", "five"}
	if i < len(names) {
		return names[i]
	}
	return "track"
}
