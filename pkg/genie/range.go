package genie

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is the (start, length) pair of range-extract mode, kept as text.
type Range struct {
	Start  string
	Length string
}

// ParseRange splits s on commas and trims each piece. The first two pieces
// become start and length, anything after them is ignored, and a missing
// piece is left empty, so "abc" renders as "abc" followed by an empty length
// rather than a placeholder word. Values are not interpreted.
func ParseRange(s string) Range {
	parts := strings.Split(s, ",")
	var r Range
	r.Start = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		r.Length = strings.TrimSpace(parts[1])
	}
	return r
}

// ParseRangeStrict is ParseRange plus a check that both values are integers,
// start is at least 1 and length is not negative.
func ParseRangeStrict(s string) (Range, error) {
	r := ParseRange(s)
	start, err := strconv.Atoi(r.Start)
	if err != nil {
		return r, fmt.Errorf("%w: start %q is not a number", ErrInvalidRange, r.Start)
	}
	if r.Length == "" {
		return r, fmt.Errorf("%w: expected \"start,length\", got %q", ErrInvalidRange, s)
	}
	length, err := strconv.Atoi(r.Length)
	if err != nil {
		return r, fmt.Errorf("%w: length %q is not a number", ErrInvalidRange, r.Length)
	}
	if start < 1 {
		return r, fmt.Errorf("%w: start must be at least 1, got %d", ErrInvalidRange, start)
	}
	if length < 0 {
		return r, fmt.Errorf("%w: length must not be negative, got %d", ErrInvalidRange, length)
	}
	return r, nil
}
