package trackfilter

import (
	"fmt"
	"sort"
	"time"

	"github.com/rotblauer/trackfilter/store"
	"github.com/rotblauer/trackfilter/types/track"
)

// indexEntry caches a track's chronological span so later steps don't
// re-scan its waypoints just to compare tracks against each other.
type indexEntry struct {
	Track     *track.Track
	FirstTime time.Time
	LastTime  time.Time
}

// trackIndex is the transient view of the store built at the start of
// a pass and after any operation that reorders or regroups waypoints
// (§4.1 Index builder). It never outlives the Process call that built
// it.
type trackIndex struct {
	entries        []*indexEntry
	totalPoints    int
	timelessPoints int
}

// needTime reports whether the requested option set requires every
// waypoint to carry a valid creation time, and therefore requires the
// index to be chronologically sorted. Only merge, pack, split,
// sdistance, move, fix, speed, a title containing '%', and the
// zero-option default (pack) need time; every other option does not.
func needTime(opts Options) bool {
	if opts.Count() == 0 {
		return true
	}
	if opts.Merge != nil || opts.Pack != nil || opts.Split != nil ||
		opts.SDistance != nil || opts.Move != nil || opts.Fix != nil ||
		opts.Speed != nil {
		return true
	}
	if opts.Title != nil && containsPercent(*opts.Title) {
		return true
	}
	return false
}

func containsPercent(s string) bool {
	for _, r := range s {
		if r == '%' {
			return true
		}
	}
	return false
}

// buildIndex walks the store once: it drops empty tracks and tracks
// excluded by the `name` filter, validates timestamps where required,
// and (when time is needed) sorts tracks by first waypoint time. It
// is trackfilter.cc's init(), generalized to run the `name` filter
// inline rather than as its own pass.
func buildIndex(s store.TrackStore, opts Options, warn func(string)) (*trackIndex, error) {
	need := needTime(opts)
	mergeDiscard := opts.Merge != nil && opts.Discard != nil

	idx := &trackIndex{}

	for _, t := range s.Tracks() {
		if t.Len() == 0 {
			s.DeleteHead(t)
			continue
		}
		if opts.Name != nil && !NameMatches(*opts.Name, t.Name) {
			for t.Len() > 0 {
				s.DeleteWaypoint(t, t.Waypoints[0])
			}
			s.DeleteHead(t)
			continue
		}

		var prevHasTime bool
		var prevTime time.Time
		for i, w := range t.Waypoints {
			idx.totalPoints++
			if !w.HasTime {
				idx.timelessPoints++
			}
			if !mergeDiscard && need && !w.HasTime {
				return nil, &Error{Kind: ErrMissingTimestamp, Message: fmt.Sprintf("track %q: waypoint %d has no creation time", t.Name, i)}
			}
			if need && prevHasTime && w.HasTime && prevTime.After(w.Time) {
				if opts.Merge == nil {
					return nil, &Error{Kind: ErrOutOfOrderTimestamps, Message: fmt.Sprintf("track %q: points badly ordered (%s > %s)", t.Name, prevTime, w.Time)}
				}
			}
			prevHasTime, prevTime = w.HasTime, w.Time
		}

		entry := &indexEntry{Track: t}
		if first := t.First(); first != nil {
			entry.FirstTime = first.Time
		}
		if last := t.Last(); last != nil {
			entry.LastTime = last.Time
		}
		idx.entries = append(idx.entries, entry)
	}

	if need {
		sort.SliceStable(idx.entries, func(i, j int) bool {
			return idx.entries[i].FirstTime.Before(idx.entries[j].FirstTime)
		})
	}

	return idx, nil
}

func firstTimeOf(t *track.Track) time.Time {
	if w := t.First(); w != nil {
		return w.Time
	}
	return time.Time{}
}

func lastTimeOf(t *track.Track) time.Time {
	if w := t.Last(); w != nil {
		return w.Time
	}
	return time.Time{}
}

// singleEntryIndex rebuilds a one-track index around master after an
// operation (pack or merge) that collapses the whole store into a
// single track, without re-scanning every waypoint.
func singleEntryIndex(master *track.Track, prev *trackIndex) *trackIndex {
	return &trackIndex{
		entries: []*indexEntry{{
			Track:     master,
			FirstTime: firstTimeOf(master),
			LastTime:  lastTimeOf(master),
		}},
		totalPoints:    prev.totalPoints,
		timelessPoints: prev.timelessPoints,
	}
}
