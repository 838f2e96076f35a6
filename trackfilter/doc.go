// Package trackfilter applies a user-selected pipeline of
// transformations to an in-memory collection of GPS tracks: reordering,
// merging, splitting, time-shifting, synthesizing derived fields,
// segmenting, and filtering by time range, distance, or point count.
//
// The filter owns none of the data it operates on. It mutates tracks
// and waypoints exclusively through a store.TrackStore, the way a
// caller-supplied route_head/waypoint queue is mutated through
// GPSBabel's track_add_wpt/track_del_wpt primitives. It performs no
// I/O and suspends for nothing; Process runs to completion or returns
// an error describing why it could not.
package trackfilter
