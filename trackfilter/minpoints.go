package trackfilter

import (
	"strconv"

	"github.com/rotblauer/trackfilter/store"
)

// applyMinPoints deletes every track with fewer than n waypoints. It
// walks the live store rather than a (possibly stale) index, since it
// always runs last, after operations that may have created or
// consolidated tracks without a rebuild (§4.3 Minpoints).
func applyMinPoints(s store.TrackStore, opts Options) error {
	if opts.MinPoints == nil {
		return nil
	}
	n, err := strconv.Atoi(*opts.MinPoints)
	if err != nil {
		return &Error{Kind: ErrMalformedOption, Option: "minpoints", Message: err.Error()}
	}
	if n <= 0 {
		return nil
	}
	for _, t := range s.Tracks() {
		if t.Len() < n {
			s.DeleteHead(t)
		}
	}
	return nil
}
