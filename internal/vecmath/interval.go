package vecmath

import "math"

// Interval is a closed 1-D interval [Min, Max]. The zero value is not
// empty; use EmptyInterval for the additive identity of Union.
type Interval struct {
	Min, Max float64
}

// EmptyInterval returns an interval that contains no points, suitable as
// the seed value when folding Union over a collection.
func EmptyInterval() Interval {
	return Interval{Min: math.Inf(1), Max: math.Inf(-1)}
}

// UniverseInterval returns an interval that contains every real number.
func UniverseInterval() Interval {
	return Interval{Min: math.Inf(-1), Max: math.Inf(1)}
}

// NewInterval creates an interval [min, max].
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Size returns Max - Min.
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether x lies in the interval, inclusive of the
// endpoints.
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether x lies strictly inside the interval.
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp clamps x to the interval.
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// Expand returns the interval padded by delta/2 on each side.
func (i Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}

// Union returns the smallest interval containing both i and o.
func (i Interval) Union(o Interval) Interval {
	return Interval{Min: math.Min(i.Min, o.Min), Max: math.Max(i.Max, o.Max)}
}
