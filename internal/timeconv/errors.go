package timeconv

import (
	"errors"
	"fmt"
)

// Sentinel causes wrapped by ParseError.
var (
	// ErrMalformedLiteral indicates the input has the right shape class but
	// the wrong layout (separator counts, field widths, stray characters).
	ErrMalformedLiteral = errors.New("malformed literal")

	// ErrNonexistentLocalTime indicates a local wall time skipped by a DST gap.
	ErrNonexistentLocalTime = errors.New("non-existent local time (DST transition)")

	// ErrAmbiguousLocalTime indicates a local wall time repeated by a DST overlap.
	ErrAmbiguousLocalTime = errors.New("ambiguous local time (DST transition)")
)

// ClassificationError reports input that is neither a unix timestamp nor a
// formatted datetime.
type ClassificationError struct {
	Input  string
	Reason string
}

// Error implements the error interface.
func (e *ClassificationError) Error() string {
	return fmt.Sprintf("unrecognized input %q: %s (expected a unix timestamp or YYYY/MM/DD HH:MM:SS)", e.Input, e.Reason)
}

// ParseError reports a malformed literal for an already classified input.
// Err is one of the sentinel errors above, a *NumericOverflowError, or an
// *InvalidDateComponentError.
type ParseError struct {
	Input string
	Kind  InputKind
	Err   error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as %s: %v", e.Input, e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NumericOverflowError reports a timestamp outside the representable range.
type NumericOverflowError struct {
	Literal string
	Unit    Unit
}

// Error implements the error interface.
func (e *NumericOverflowError) Error() string {
	return fmt.Sprintf("%s timestamp %s is outside the supported range (years 0000-9999)", e.Unit, e.Literal)
}

// InvalidDateComponentError reports a date or time field outside its range.
type InvalidDateComponentError struct {
	Component string // "month", "day", "hour", "minute", "second"
	Value     int
	Min       int
	Max       int
}

// Error implements the error interface.
func (e *InvalidDateComponentError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", e.Component, e.Value, e.Min, e.Max)
}

// IsClassificationError returns true if err is or wraps a ClassificationError.
func IsClassificationError(err error) bool {
	var ce *ClassificationError
	return errors.As(err, &ce)
}

// IsParseError returns true if err is or wraps a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsNumericOverflow returns true if err wraps a NumericOverflowError.
func IsNumericOverflow(err error) bool {
	var oe *NumericOverflowError
	return errors.As(err, &oe)
}

// IsInvalidDateComponent returns true if err wraps an InvalidDateComponentError.
func IsInvalidDateComponent(err error) bool {
	var de *InvalidDateComponentError
	return errors.As(err, &de)
}
