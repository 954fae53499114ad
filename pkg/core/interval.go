package core

import (
	"cmp"
	"math"
)

// Interval is a range [Min, Max] over an ordered type.
// Callers must not construct an interval with Min > Max.
type Interval[T cmp.Ordered] struct {
	Min, Max T
}

// NewInterval creates a new interval
func NewInterval[T cmp.Ordered](min, max T) Interval[T] {
	return Interval[T]{Min: min, Max: max}
}

// Contains reports whether x lies in [Min, Max]
func (i Interval[T]) Contains(x T) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether x lies in (Min, Max)
func (i Interval[T]) Surrounds(x T) bool {
	return i.Min < x && x < i.Max
}

// SurroundsInterval reports whether other lies strictly inside this interval
func (i Interval[T]) SurroundsInterval(other Interval[T]) bool {
	return i.Min < other.Min && other.Max < i.Max
}

// Clamp saturates x to [Min, Max]
func (i Interval[T]) Clamp(x T) T {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// WithMax returns a copy of the interval with a new upper bound
func (i Interval[T]) WithMax(max T) Interval[T] {
	return Interval[T]{Min: i.Min, Max: max}
}

var (
	// HitRange is the distance window for primary and scattered rays.
	// The 0.001 lower bound keeps a scattered ray from re-hitting its own origin.
	HitRange = NewInterval(0.001, math.Inf(1))

	// OutputIntensity is the channel range used before quantizing to 8 bits
	OutputIntensity = NewInterval(0.0, 0.999)
)
