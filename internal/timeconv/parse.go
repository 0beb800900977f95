package timeconv

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseOptions controls how Parse and Convert read an input.
type ParseOptions struct {
	// Zone used to interpret formatted input. Default UTC.
	Zone Zone

	// Unit forces the reading of numeric input. Ignored for formatted input.
	Unit Unit
}

// Convert runs the whole pipeline on raw: Classify, apply the forced unit,
// then Parse.
func Convert(raw string, opts ParseOptions) (Conversion, error) {
	kind, err := Classify(raw)
	if err != nil {
		return Conversion{}, err
	}

	if kind.IsNumeric() {
		switch opts.Unit {
		case UnitSeconds:
			kind = UnixSeconds
		case UnitMillis:
			kind = UnixMillis
		}
	}

	inst, err := Parse(raw, kind, opts)
	if err != nil {
		return Conversion{}, err
	}

	return Conversion{
		Input:     raw,
		Kind:      kind,
		Instant:   inst,
		InputZone: opts.Zone,
	}, nil
}

// Parse converts raw, already classified as kind, into an Instant.
// All failures are returned as *ParseError.
func Parse(raw string, kind InputKind, opts ParseOptions) (Instant, error) {
	var (
		inst Instant
		err  error
	)
	s := strings.TrimSpace(raw)
	switch kind {
	case UnixSeconds:
		inst, err = parseTimestamp(s, UnitSeconds)
	case UnixMillis:
		inst, err = parseTimestamp(s, UnitMillis)
	case FormattedDateTime:
		inst, err = parseFormatted(s, opts.Zone.Location())
	default:
		err = fmt.Errorf("unknown input kind %d", int(kind))
	}
	if err != nil {
		return Instant{}, &ParseError{Input: raw, Kind: kind, Err: err}
	}
	return inst, nil
}

func parseTimestamp(s string, unit Unit) (Instant, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Instant{}, &NumericOverflowError{Literal: s, Unit: unit}
		}
		return Instant{}, fmt.Errorf("%w: not a base-10 integer", ErrMalformedLiteral)
	}

	secs, nanos := n, int64(0)
	if unit == UnitMillis {
		secs, nanos = n/1000, (n%1000)*int64(time.Millisecond)
	}
	inst, ok := NewInstant(secs, nanos)
	if !ok {
		return Instant{}, &NumericOverflowError{Literal: s, Unit: unit}
	}
	return inst, nil
}

// datetime layout: YYYY/M[M]/D[D] H[H]:M[M]:S[S]
func parseFormatted(s string, loc *time.Location) (Instant, error) {
	date, clock, ok := strings.Cut(s, " ")
	if !ok || strings.Contains(clock, " ") {
		return Instant{}, fmt.Errorf("%w: expected exactly one space between date and time", ErrMalformedLiteral)
	}

	dateParts := strings.Split(date, "/")
	if len(dateParts) != 3 {
		return Instant{}, fmt.Errorf("%w: expected date as YYYY/MM/DD", ErrMalformedLiteral)
	}
	clockParts := strings.Split(clock, ":")
	if len(clockParts) != 3 {
		return Instant{}, fmt.Errorf("%w: expected time as HH:MM:SS", ErrMalformedLiteral)
	}

	year, err := field(dateParts[0], "year", 4, 4)
	if err != nil {
		return Instant{}, err
	}
	month, err := field(dateParts[1], "month", 1, 2)
	if err != nil {
		return Instant{}, err
	}
	day, err := field(dateParts[2], "day", 1, 2)
	if err != nil {
		return Instant{}, err
	}
	hour, err := field(clockParts[0], "hour", 1, 2)
	if err != nil {
		return Instant{}, err
	}
	minute, err := field(clockParts[1], "minute", 1, 2)
	if err != nil {
		return Instant{}, err
	}
	second, err := field(clockParts[2], "second", 1, 2)
	if err != nil {
		return Instant{}, err
	}

	if err := checkRange("month", month, 1, 12); err != nil {
		return Instant{}, err
	}
	if err := checkRange("day", day, 1, daysIn(year, time.Month(month))); err != nil {
		return Instant{}, err
	}
	if err := checkRange("hour", hour, 0, 23); err != nil {
		return Instant{}, err
	}
	if err := checkRange("minute", minute, 0, 59); err != nil {
		return Instant{}, err
	}
	if err := checkRange("second", second, 0, 59); err != nil {
		return Instant{}, err
	}

	wall := wallClock{year, time.Month(month), day, hour, minute, second}
	t, err := wall.resolve(loc)
	if err != nil {
		return Instant{}, err
	}

	inst, ok := InstantFromTime(t)
	if !ok {
		// Only reachable for local times near the year 0000/9999 edges.
		return Instant{}, &NumericOverflowError{Literal: s, Unit: UnitSeconds}
	}
	return inst, nil
}

func field(s, name string, minWidth, maxWidth int) (int, error) {
	if len(s) < minWidth || len(s) > maxWidth {
		if minWidth == maxWidth {
			return 0, fmt.Errorf("%w: %s must have %d digits", ErrMalformedLiteral, name, minWidth)
		}
		return 0, fmt.Errorf("%w: %s must have %d-%d digits", ErrMalformedLiteral, name, minWidth, maxWidth)
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %s %q is not numeric", ErrMalformedLiteral, name, s)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

func checkRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return &InvalidDateComponentError{Component: name, Value: v, Min: lo, Max: hi}
	}
	return nil
}

// daysIn returns the number of days in the month, honoring leap years.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

type wallClock struct {
	year   int
	month  time.Month
	day    int
	hour   int
	minute int
	second int
}

// resolve maps the wall clock to exactly one instant in loc. A wall time can
// map to zero instants (DST gap) or two (DST overlap); both are errors.
func (w wallClock) resolve(loc *time.Location) (time.Time, error) {
	naive := time.Date(w.year, w.month, w.day, w.hour, w.minute, w.second, 0, time.UTC)
	if loc == time.UTC {
		return naive, nil
	}

	// Any transition affecting this wall time happens within a day of it, so
	// the offsets in force 24h either side are the only candidates.
	var found []time.Time
	for _, probe := range []time.Time{naive.Add(-24 * time.Hour), naive.Add(24 * time.Hour)} {
		_, offset := probe.In(loc).Zone()
		candidate := naive.Add(-time.Duration(offset) * time.Second)
		if !w.matches(candidate.In(loc)) {
			continue
		}
		if len(found) == 0 || !found[0].Equal(candidate) {
			found = append(found, candidate)
		}
	}

	switch len(found) {
	case 0:
		return time.Time{}, ErrNonexistentLocalTime
	case 1:
		return found[0], nil
	default:
		return time.Time{}, ErrAmbiguousLocalTime
	}
}

func (w wallClock) matches(t time.Time) bool {
	y, m, d := t.Date()
	h, mi, s := t.Clock()
	return y == w.year && m == w.month && d == w.day && h == w.hour && mi == w.minute && s == w.second
}
