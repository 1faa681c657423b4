// Package dither quantizes float samples to integer PCM with optional
// dither noise.
package dither

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidOption = errors.New("dither: invalid option")

// Type selects the probability distribution of the dither noise.
type Type int

const (
	// None rounds to the nearest step without noise.
	None Type = iota
	// Rectangular adds uniform noise of one step peak-to-peak.
	Rectangular
	// Triangular adds the sum of two uniform draws (TPDF).
	Triangular

	typeCount
)

var typeNames = [typeCount]string{"none", "rectangular", "triangular"}

func (t Type) String() string {
	if t.Valid() {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", t)
}

// Valid reports whether t is a known dither type.
func (t Type) Valid() bool {
	return t >= 0 && t < typeCount
}

// ParseType accepts a type name or its first letter, case-insensitively.
func ParseType(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range typeNames {
		if s == name || (len(s) == 1 && s[0] == name[0]) {
			return Type(t), nil
		}
	}
	return None, fmt.Errorf("%w: unknown dither type %q", ErrInvalidOption, s)
}
