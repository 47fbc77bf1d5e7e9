// Package unit normalizes displacement values into pixels.
//
// Displacements can be written three ways: a bare number (already pixels), a
// pixel string such as "10px", or a percentage string such as "50%" that is
// resolved against a container dimension. Malformed input never errors; it
// degrades to a NaN pixel value that propagates into the final offset, which
// is the documented behavior for broken displacement strings.
package unit

import (
	"math"
	"strconv"
	"strings"
)

// Unit discriminates how a Length's value is interpreted.
type Unit int

const (
	// Pixels is an absolute length.
	Pixels Unit = iota

	// Percent is a length relative to a container dimension.
	Percent
)

// Length is a displacement with its unit.
type Length struct {
	Value float64
	Unit  Unit
}

// Px returns an absolute pixel length.
func Px(v float64) Length {
	return Length{Value: v, Unit: Pixels}
}

// Pct returns a percentage length. Pct(50) resolves to half the container
// dimension.
func Pct(v float64) Length {
	return Length{Value: v, Unit: Percent}
}

// Parse interprets a displacement string.
//
// "10px" and "10" both parse to ten pixels; "50%" parses to a percentage.
// Anything else yields Px(NaN) rather than an error.
func Parse(s string) Length {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasSuffix(s, "px"):
		return Px(parseFloat(strings.TrimSuffix(s, "px")))
	case strings.HasSuffix(s, "%"):
		return Pct(parseFloat(strings.TrimSuffix(s, "%")))
	default:
		return Px(parseFloat(s))
	}
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Resolve converts the length to pixels against the given container
// dimension. Pixel lengths pass through untouched; percentages multiply the
// dimension. No rounding happens here: the positioner rounds its base
// centering term only, and adds the resolved displacement raw.
func (l Length) Resolve(dim float64) float64 {
	if l.Unit == Percent {
		return dim * l.Value / 100
	}
	return l.Value
}

// IsZero reports whether the length resolves to zero for any dimension.
func (l Length) IsZero() bool {
	return l.Value == 0
}
