package store

import (
	"encoding/json"
	"fmt"

	"github.com/rotblauer/trackfilter/types/track"
	"go.etcd.io/bbolt"
)

var tracksBucket = []byte("tracks")

const snapshotKey = "snapshot"

// BoltStore is a TrackStore durably backed by a single bbolt database
// file, for CLI sessions that want the result of a filter run to
// survive the process. It keeps its working set in an embedded
// MemStore and persists a full snapshot on Save/Close, the same
// coarse-grained persistence state/cat.go uses for cat state: open the
// file, mutate in memory, write the whole thing back.
type BoltStore struct {
	*MemStore
	db *bbolt.DB
}

// OpenBoltStore opens (creating if necessary) a bolt-backed store at
// path and loads any previously persisted tracks into memory.
func OpenBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("store: open bolt db: %w", err)
	}

	var tracks []*track.Track
	err = db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(tracksBucket)
		if err != nil {
			return err
		}
		raw := b.Get([]byte(snapshotKey))
		if raw == nil {
			return nil
		}
		return json.Unmarshal(raw, &tracks)
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: load snapshot: %w", err)
	}

	return &BoltStore{MemStore: NewMemStoreFromTracks(tracks), db: db}, nil
}

// Save persists the current in-memory track set, overwriting whatever
// snapshot was previously stored.
func (s *BoltStore) Save() error {
	raw, err := json.Marshal(s.Tracks())
	if err != nil {
		return fmt.Errorf("store: marshal snapshot: %w", err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(tracksBucket)
		if err != nil {
			return err
		}
		return b.Put([]byte(snapshotKey), raw)
	})
}

// Close saves the current snapshot and closes the underlying database.
func (s *BoltStore) Close() error {
	if err := s.Save(); err != nil {
		return err
	}
	return s.db.Close()
}
