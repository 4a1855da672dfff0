package types

import "math"

// Interval is a 1D range [Min,Max] that may be unbounded or empty.
type Interval struct {
	Min, Max float64
}

// EmptyInterval is the canonical empty interval (+inf,-inf): merging it
// with any interval A yields A, making Merge associative with an identity.
var EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}

// UniverseInterval spans all of ℝ.
var UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}

// NewInterval builds the interval [min,max].
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Size returns Max-Min.
func (iv Interval) Size() float64 {
	return iv.Max - iv.Min
}

// Empty reports whether the interval's size is non-positive.
func (iv Interval) Empty() bool {
	return iv.Size() <= 0
}

// Midpoint returns the interval's centroid.
func (iv Interval) Midpoint() float64 {
	return 0.5 * (iv.Min + iv.Max)
}

// Contains reports whether x lies within [Min,Max], inclusive.
func (iv Interval) Contains(x float64) bool {
	return iv.Min <= x && x <= iv.Max
}

// Surrounds reports whether x lies strictly within (Min,Max).
func (iv Interval) Surrounds(x float64) bool {
	return iv.Min < x && x < iv.Max
}

// Clamp restricts x to [Min,Max].
func (iv Interval) Clamp(x float64) float64 {
	if x < iv.Min {
		return iv.Min
	}
	if x > iv.Max {
		return iv.Max
	}
	return x
}

// Merge returns the componentwise min/max of iv and other.
func (iv Interval) Merge(other Interval) Interval {
	return Interval{
		Min: math.Min(iv.Min, other.Min),
		Max: math.Max(iv.Max, other.Max),
	}
}

// PadWith widens both sides of the interval by p.
func (iv Interval) PadWith(p float64) Interval {
	return Interval{Min: iv.Min - p, Max: iv.Max + p}
}

// At returns Min for index 0 and Max for any other index, matching the
// [min,max] pair indexing used by the optimized slab test to pick the
// near/far plane directly from a ray direction's sign.
func (iv Interval) At(index int) float64 {
	if index == 0 {
		return iv.Min
	}
	return iv.Max
}
