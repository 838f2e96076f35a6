package trackfilter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rotblauer/trackfilter/params"
	"github.com/rotblauer/trackfilter/types/waypoint"
)

var (
	durationRe         = regexp.MustCompile(`(?i)^([+-]?\d+)([dhms])$`)
	durationFractionRe = regexp.MustCompile(`(?i)^([+-]?(?:\d+(?:\.\d*)?|\.\d+))([dhms])$`)
	distanceRe         = regexp.MustCompile(`(?i)^([+-]?(?:\d+(?:\.\d*)?|\.\d+))([km])$`)
	partialTimestampRe = regexp.MustCompile(`^(\d{0,14})$`)
	faketimeRe         = regexp.MustCompile(`^(f?)(\d{0,14})(?:\+(\d{1,10}))?$`)
)

const timestampTemplate = "00000101000000"

// ParseDuration parses a signed integer duration with a single unit
// suffix (d/h/m/s) into seconds. Used by `move`.
func ParseDuration(s, option string) (int64, error) {
	m := durationRe.FindStringSubmatch(s)
	if m == nil {
		return 0, &Error{Kind: ErrMalformedOption, Option: option, Message: fmt.Sprintf("%q is not a valid duration", s)}
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, &Error{Kind: ErrMalformedOption, Option: option, Message: err.Error()}
	}
	return n * unitSeconds(m[2]), nil
}

// ParseDurationFraction parses a positive, possibly fractional
// duration with a single unit suffix into seconds. Used by `split`'s
// time-interval form.
func ParseDurationFraction(s, option string) (float64, error) {
	m := durationFractionRe.FindStringSubmatch(s)
	if m == nil {
		return 0, &Error{Kind: ErrMalformedOption, Option: option, Message: fmt.Sprintf("%q is not a valid duration", s)}
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, &Error{Kind: ErrMalformedOption, Option: option, Message: err.Error()}
	}
	v := n * float64(unitSeconds(m[2]))
	if v <= 0 {
		return 0, &Error{Kind: ErrMalformedOption, Option: option, Message: "split interval must be positive"}
	}
	return v, nil
}

func unitSeconds(unit string) int64 {
	switch strings.ToLower(unit) {
	case "d":
		return params.SecondsPerDay
	case "h":
		return params.SecondsPerHour
	case "m":
		return params.SecondsPerMin
	default:
		return 1
	}
}

// ParseDistance parses a positive distance with a single unit suffix
// (k=kilometers, m=miles) into meters. Used by `sdistance`.
func ParseDistance(s, option string) (float64, error) {
	m := distanceRe.FindStringSubmatch(s)
	if m == nil {
		return 0, &Error{Kind: ErrMalformedOption, Option: option, Message: fmt.Sprintf("%q is not a valid distance", s)}
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, &Error{Kind: ErrMalformedOption, Option: option, Message: err.Error()}
	}
	var meters float64
	switch strings.ToLower(m[2]) {
	case "k":
		meters = n * params.MetersPerKilometer
	default: // "m" => miles
		meters = n * params.MetersPerMile
	}
	if meters <= 0 {
		return 0, &Error{Kind: ErrMalformedOption, Option: option, Message: "distance must be positive"}
	}
	return meters, nil
}

// ParsePartialTimestamp parses a prefix of "YYYYMMDDHHMMSS" (0 to 14
// digits), padding the missing suffix from "00000101000000", into a
// UTC time.Time. An empty string is therefore valid and yields year
// zero (§13 Open Question a). Used by `range`'s start/stop options.
func ParsePartialTimestamp(s, option string) (time.Time, error) {
	if !partialTimestampRe.MatchString(s) {
		return time.Time{}, &Error{Kind: ErrMalformedOption, Option: option, Message: fmt.Sprintf("%q is not a valid timestamp prefix", s)}
	}
	full := s + timestampTemplate[len(s):]
	t, err := time.Parse("20060102150405", full)
	if err != nil {
		return time.Time{}, &Error{Kind: ErrMalformedOption, Option: option, Message: fmt.Sprintf("%q does not name a valid calendar date/time", s)}
	}
	return t.UTC(), nil
}

// ParseFaketime parses `faketime`'s "[f]YYYYMMDDHHMMSS[+step]" syntax:
// an optional leading 'f' forces every waypoint's time to be
// overwritten (not just missing ones), a partial timestamp gives the
// starting time, and an optional "+step" gives the per-waypoint
// increment in seconds (default 0, i.e. every waypoint gets the same
// timestamp unless a step is given).
func ParseFaketime(s string) (force bool, start time.Time, stepSeconds int64, err error) {
	m := faketimeRe.FindStringSubmatch(s)
	if m == nil {
		return false, time.Time{}, 0, &Error{Kind: ErrMalformedOption, Option: "faketime", Message: fmt.Sprintf("%q is not a valid faketime spec", s)}
	}
	force = m[1] == "f"
	start, err = ParsePartialTimestamp(m[2], "faketime")
	if err != nil {
		return false, time.Time{}, 0, err
	}
	stepSeconds = 0
	if m[3] != "" {
		stepSeconds, err = strconv.ParseInt(m[3], 10, 64)
		if err != nil {
			return false, time.Time{}, 0, &Error{Kind: ErrMalformedOption, Option: "faketime", Message: err.Error()}
		}
	}
	return force, start, stepSeconds, nil
}

// ParseFixKind parses a case-insensitive fix-kind name into a Fix and
// its suggested satellite count. Used by `synth`'s fix sub-option.
func ParseFixKind(s, option string) (waypoint.Fix, int, error) {
	lower := strings.ToLower(s)
	fix, ok := waypoint.ParseFix(lower)
	if !ok {
		return waypoint.FixUnknown, 0, &Error{Kind: ErrMalformedOption, Option: option, Message: fmt.Sprintf("%q is not a recognized fix kind", s)}
	}
	return fix, params.FixSuggestedSatCount[lower], nil
}

// NameMatches reports whether name matches a case-insensitive shell
// glob (only '*' and '?' are special). Used by `name` to filter
// tracks before any other operation runs.
func NameMatches(glob, name string) bool {
	return globRegexp(glob).MatchString(name)
}

func globRegexp(glob string) *regexp.Regexp {
	var sb strings.Builder
	sb.WriteString("(?i)^")
	for _, r := range glob {
		switch r {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")
	return regexp.MustCompile(sb.String())
}
