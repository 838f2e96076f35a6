// Package store provides the track store trackfilter consumes (§6):
// enumerate tracks and their waypoints, insert/delete tracks, and
// add/delete waypoints. MemStore is the default in-memory
// implementation; BoltStore (bolt.go) durably persists the same shape
// for longer-lived CLI sessions.
package store

import (
	"github.com/rotblauer/trackfilter/types/track"
	"github.com/rotblauer/trackfilter/types/waypoint"
)

// TrackStore is the mutable collection of tracks trackfilter mutates
// through. The filter never holds its own copy of track state across
// calls; every operation walks the store via this interface.
type TrackStore interface {
	// Tracks returns every track currently in the store, in store order.
	Tracks() []*track.Track

	// InsertHead appends a new, empty track and returns it.
	InsertHead(name string) *track.Track

	// InsertHeadAfter inserts a new, empty track immediately after
	// `after` and returns it. Used by seg2trk to preserve track order.
	InsertHeadAfter(after *track.Track, name string) *track.Track

	// DeleteHead detaches a track from the store. It does not touch
	// the track's waypoints; callers that want them gone should clear
	// t.Waypoints themselves, or reinsert them elsewhere first.
	DeleteHead(t *track.Track)

	// AddWaypoint appends a waypoint to the end of a track.
	AddWaypoint(t *track.Track, w *waypoint.Waypoint)

	// DeleteWaypoint removes a waypoint from a track, propagating its
	// NewSegment flag to the following waypoint if set (see
	// track.Track.DeleteWaypointAt).
	DeleteWaypoint(t *track.Track, w *waypoint.Waypoint)
}

// MemStore is an in-memory TrackStore: a flat, ordered list of tracks.
// It is the default store a CLI or test harness hands to trackfilter.
type MemStore struct {
	tracks []*track.Track
	nextID int
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// NewMemStoreFromTracks returns a MemStore pre-loaded with the given
// tracks. Each track keeps its own ID; tracks inserted later are
// numbered after the highest ID present.
func NewMemStoreFromTracks(tracks []*track.Track) *MemStore {
	s := &MemStore{tracks: tracks}
	for _, t := range tracks {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	return s
}

func (s *MemStore) Tracks() []*track.Track {
	out := make([]*track.Track, len(s.tracks))
	copy(out, s.tracks)
	return out
}

func (s *MemStore) InsertHead(name string) *track.Track {
	t := track.New(s.nextID, name)
	s.nextID++
	s.tracks = append(s.tracks, t)
	return t
}

func (s *MemStore) InsertHeadAfter(after *track.Track, name string) *track.Track {
	t := track.New(s.nextID, name)
	s.nextID++
	idx := s.indexOf(after)
	if idx < 0 {
		s.tracks = append(s.tracks, t)
		return t
	}
	s.tracks = append(s.tracks[:idx+1], append([]*track.Track{t}, s.tracks[idx+1:]...)...)
	return t
}

func (s *MemStore) DeleteHead(t *track.Track) {
	idx := s.indexOf(t)
	if idx < 0 {
		return
	}
	s.tracks = append(s.tracks[:idx], s.tracks[idx+1:]...)
}

func (s *MemStore) AddWaypoint(t *track.Track, w *waypoint.Waypoint) {
	t.AddWaypoint(w)
}

func (s *MemStore) DeleteWaypoint(t *track.Track, w *waypoint.Waypoint) {
	for i, candidate := range t.Waypoints {
		if candidate == w {
			t.DeleteWaypointAt(i)
			return
		}
	}
}

func (s *MemStore) indexOf(t *track.Track) int {
	for i, candidate := range s.tracks {
		if candidate == t {
			return i
		}
	}
	return -1
}
