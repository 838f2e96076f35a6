package trackfilter

// Options is the flag-style option bag described in §6 External
// Interfaces: every field is either unset (the option was never
// given) or points at a string (the option was given, possibly
// empty, for options that are meaningful as a bare flag). Presence,
// not value, drives whether an operation runs at all.
type Options struct {
	Name      *string
	Title     *string
	Move      *string
	Pack      *string
	Merge     *string
	Discard   *string
	Split     *string
	SDistance *string
	Start     *string
	Stop      *string
	Faketime  *string
	Fix       *string
	Course    *string
	Speed     *string
	Seg2Trk   *string
	Trk2Seg   *string
	Segment   *string
	MinPoints *string
}

func strPtr(s string) *string { return &s }

func (o *Options) fields() []*string {
	return []*string{
		o.Name, o.Title, o.Move, o.Pack, o.Merge, o.Discard,
		o.Split, o.SDistance, o.Start, o.Stop, o.Faketime, o.Fix,
		o.Course, o.Speed, o.Seg2Trk, o.Trk2Seg, o.Segment, o.MinPoints,
	}
}

// Count returns how many options were given, i.e. how many fields are
// non-nil. This is the raw count; Process folds a count of zero into
// the "do pack by default" sentinel itself.
func (o *Options) Count() int {
	n := 0
	for _, f := range o.fields() {
		if f != nil {
			n++
		}
	}
	return n
}
