package trackfilter

import "time"

// applyFaketime assigns sequential fabricated timestamps to waypoints
// that lack one, or to every waypoint if the spec was force-prefixed
// with 'f' (§4.3 Faketime). It walks tracks in index order: that is
// store order when the option set does not need time (see needTime),
// and order of first waypoint time when it does.
func applyFaketime(idx *trackIndex, opts Options) error {
	if opts.Faketime == nil {
		return nil
	}
	force, start, step, err := ParseFaketime(*opts.Faketime)
	if err != nil {
		return err
	}
	cur := start
	inc := time.Duration(step) * time.Second
	for _, e := range idx.entries {
		for _, w := range e.Track.Waypoints {
			if force || !w.HasTime {
				w.HasTime, w.Time = true, cur
				cur = cur.Add(inc)
			}
		}
	}
	return nil
}
