package trackfilter

import "fmt"

// ErrorKind classifies the fatal conditions trackfilter can detect
// (the fatal half of GPSBabel's fatal()/warning() sink pair — see
// doc.go and Sinks). A pipeline run returns one of these wrapped in
// *Error instead of aborting the process outright, so callers decide
// whether and how to surface it.
type ErrorKind int

const (
	// ErrMalformedOption means an option string didn't match its
	// expected syntax (duration, distance, timestamp, fix kind, ...).
	ErrMalformedOption ErrorKind = iota
	// ErrMissingTimestamp means a waypoint needed a creation time that
	// it didn't have, and no option permitted discarding it.
	ErrMissingTimestamp
	// ErrOutOfOrderTimestamps means a track's waypoints weren't in
	// non-decreasing time order and merge wasn't active to excuse it.
	ErrOutOfOrderTimestamps
	// ErrTemporalOverlap means pack found two tracks whose time spans
	// intersect, so concatenation would scramble chronology.
	ErrTemporalOverlap
	// ErrSplitMultipleTracks means split or sdistance was requested
	// while more than one track remained in the store.
	ErrSplitMultipleTracks
)

func (k ErrorKind) String() string {
	switch k {
	case ErrMalformedOption:
		return "malformed option"
	case ErrMissingTimestamp:
		return "missing timestamp"
	case ErrOutOfOrderTimestamps:
		return "out of order timestamps"
	case ErrTemporalOverlap:
		return "temporal overlap"
	case ErrSplitMultipleTracks:
		return "split requires a single track"
	default:
		return "unknown"
	}
}

// Error is a fatal pipeline error. Option names the option that
// triggered it, if any.
type Error struct {
	Kind    ErrorKind
	Option  string
	Message string
}

func (e *Error) Error() string {
	if e.Option != "" {
		return fmt.Sprintf("trackfilter: %s (%s): %s", e.Kind, e.Option, e.Message)
	}
	return fmt.Sprintf("trackfilter: %s: %s", e.Kind, e.Message)
}

// Sinks are the two synchronous diagnostic outlets a filter run
// reports through (§6 Diagnostic sinks). Warning is called for
// conditions that don't abort the run; Status is called for
// verbose-only progress lines and is skipped entirely unless Verbose
// is positive. Either func may be nil.
type Sinks struct {
	Warning func(string)
	Status  func(string)
	Verbose int
}

func (s Sinks) warn(format string, args ...any) {
	if s.Warning == nil {
		return
	}
	s.Warning(fmt.Sprintf(format, args...))
}

func (s Sinks) statusFunc() func(string) {
	if s.Verbose <= 0 || s.Status == nil {
		return nil
	}
	return s.Status
}
