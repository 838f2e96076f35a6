package trackfilter

import (
	"time"

	"github.com/rotblauer/trackfilter/types/track"
)

// applyTitle renames every track in the index. A literal '%' in the
// title is treated as a strftime format applied to the track's first
// waypoint time; otherwise it's used verbatim (§4.3 Title).
func applyTitle(idx *trackIndex, opts Options) error {
	if opts.Title == nil {
		return nil
	}
	if *opts.Title == "" {
		return &Error{Kind: ErrMalformedOption, Option: "title", Message: "title must not be empty"}
	}
	for _, e := range idx.entries {
		setTrackTitle(e.Track, *opts.Title, e.FirstTime)
	}
	return nil
}

func setTrackTitle(t *track.Track, title string, at time.Time) {
	if containsPercent(title) {
		t.Name = strftime(title, at)
		return
	}
	t.Name = title
}
