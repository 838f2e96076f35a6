package trackfilter

import "github.com/rotblauer/trackfilter/store"

// noExplicitOptions is the sentinel opts-remaining value meaning "the
// caller gave no options at all", which makes pack the default action
// instead of one the caller had to ask for (§4.5).
const noExplicitOptions = -1

// Process runs the full pipeline against s: name-filter, move, synth,
// faketime, range, seg2trk, trk2seg, title, pack-or-merge, split,
// minpoints — in that fixed order, stopping as soon as every
// requested option has been consumed (§4.5 Pipeline orchestrator).
// `segment` runs first, before the index is built, since its effects
// must be visible before anything else inspects the index.
//
// Process never suspends and has no rollback: when a step returns a
// *Error, the whole call returns it and the store is left exactly as
// far along as it got (§5 Concurrency & resource model).
func Process(s store.TrackStore, opts Options, sinks Sinks) error {
	// Segmenting runs before the index is built (and thus before the
	// time/order validation and the point counts it carries), mirroring
	// init()'s fixed order: segment first, then fill the track list.
	if opts.Segment != nil {
		for _, t := range s.Tracks() {
			segmentTrack(s, t)
		}
	}

	idx, err := buildIndex(s, opts, sinks.Warning)
	if err != nil {
		return err
	}
	if len(idx.entries) == 0 {
		return nil
	}

	remaining := opts.Count()
	if remaining == 0 {
		remaining = noExplicitOptions
	}

	if opts.Name != nil {
		remaining--
		if remaining == 0 {
			return nil
		}
	}

	if opts.Move != nil {
		if err := applyMove(idx, opts); err != nil {
			return err
		}
		remaining--
		if remaining == 0 {
			return nil
		}
	}

	if opts.Fix != nil || opts.Course != nil || opts.Speed != nil {
		if err := applySynth(idx, opts, sinks.statusFunc()); err != nil {
			return err
		}
		if opts.Fix != nil {
			remaining--
		}
		if opts.Course != nil {
			remaining--
		}
		if opts.Speed != nil {
			remaining--
		}
		if remaining == 0 {
			return nil
		}
	}

	if opts.Faketime != nil {
		if err := applyFaketime(idx, opts); err != nil {
			return err
		}
		remaining--
		if remaining == 0 {
			return nil
		}
		idx, err = buildIndex(s, opts, sinks.Warning)
		if err != nil {
			return err
		}
		if len(idx.entries) == 0 {
			return nil
		}
	}

	if opts.Start != nil || opts.Stop != nil {
		if err := applyRange(s, idx, opts, sinks.Warning); err != nil {
			return err
		}
		if opts.Start != nil {
			remaining--
		}
		if opts.Stop != nil {
			remaining--
		}
		if remaining == 0 {
			return nil
		}
		idx, err = buildIndex(s, opts, sinks.Warning)
		if err != nil {
			return err
		}
		if len(idx.entries) == 0 {
			return nil
		}
	}

	if opts.Seg2Trk != nil {
		seg2trkTracks(s, idx)
		remaining--
		if remaining == 0 {
			return nil
		}
		idx, err = buildIndex(s, opts, sinks.Warning)
		if err != nil {
			return err
		}
		if len(idx.entries) == 0 {
			return nil
		}
	}

	if opts.Trk2Seg != nil {
		trk2segTracks(s, idx)
		remaining--
		if remaining == 0 {
			return nil
		}
	}

	if opts.Title != nil {
		remaining--
		if remaining == 0 {
			return applyTitle(idx, opts)
		}
	}

	packedOrMerged := false
	switch {
	case opts.Pack != nil || remaining == noExplicitOptions:
		if err := packTracks(s, idx, sinks.statusFunc()); err != nil {
			return err
		}
		packedOrMerged = true
	case opts.Merge != nil:
		if err := mergeTracks(s, idx, sinks.statusFunc()); err != nil {
			return err
		}
		packedOrMerged = true
	}

	if packedOrMerged {
		master := idx.entries[0].Track
		idx = singleEntryIndex(master, idx)
		remaining--
		if remaining <= 0 {
			if opts.Title != nil {
				return applyTitle(idx, opts)
			}
			return nil
		}
	}

	if opts.Split != nil || opts.SDistance != nil {
		if len(idx.entries) > 1 {
			return &Error{Kind: ErrSplitMultipleTracks, Message: "more than one track remains; pack or merge before splitting"}
		}
		if err := splitTrack(s, idx, opts); err != nil {
			return err
		}
	}

	if opts.MinPoints != nil {
		return applyMinPoints(s, opts)
	}

	return nil
}
