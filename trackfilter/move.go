package trackfilter

import "time"

// applyMove shifts every timestamped waypoint in the index by a fixed
// signed duration (§4.3 Move). Waypoints without a time are left
// alone rather than given one.
func applyMove(idx *trackIndex, opts Options) error {
	if opts.Move == nil {
		return nil
	}
	seconds, err := ParseDuration(*opts.Move, "move")
	if err != nil {
		return err
	}
	if seconds == 0 {
		return nil
	}
	delta := time.Duration(seconds) * time.Second
	for _, e := range idx.entries {
		for _, w := range e.Track.Waypoints {
			if w.HasTime {
				w.Time = w.Time.Add(delta)
			}
		}
		e.FirstTime = e.FirstTime.Add(delta)
		e.LastTime = e.LastTime.Add(delta)
	}
	return nil
}
