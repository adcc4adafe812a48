package space

import (
	"fmt"
	"slices"
)

// FinalInterval is an immutable integer interval. Its zero value is not
// usable; construct it with NewInterval, NewIntervalFromDims or CopyInterval.
type FinalInterval struct {
	min []int64
	max []int64
}

var _ Interval = FinalInterval{}

// NewInterval creates an interval from per-axis bounds. The slices are
// copied.
func NewInterval(min, max []int64) (FinalInterval, error) {
	if err := CheckDimensions(len(min), min, max); err != nil {
		return FinalInterval{}, err
	}
	for d := range min {
		if min[d] > max[d] {
			return FinalInterval{}, fmt.Errorf("%w: axis %d has min %d > max %d", ErrInvalidBounds, d, min[d], max[d])
		}
	}
	return FinalInterval{min: slices.Clone(min), max: slices.Clone(max)}, nil
}

// NewIntervalFromDims creates the interval [0, dims[d]-1] on every axis.
func NewIntervalFromDims(dims ...int64) (FinalInterval, error) {
	if len(dims) == 0 {
		return FinalInterval{}, ErrNoDimensions
	}
	min := make([]int64, len(dims))
	max := make([]int64, len(dims))
	for d, n := range dims {
		if n < 1 {
			return FinalInterval{}, fmt.Errorf("%w: axis %d has size %d", ErrInvalidBounds, d, n)
		}
		max[d] = n - 1
	}
	return FinalInterval{min: min, max: max}, nil
}

// MustInterval is like NewIntervalFromDims but panics on error. It is meant
// for literals in tests and examples.
func MustInterval(dims ...int64) FinalInterval {
	iv, err := NewIntervalFromDims(dims...)
	if err != nil {
		panic(err)
	}
	return iv
}

// CopyInterval copies the bounds of any Interval by value.
func CopyInterval(src Interval) FinalInterval {
	n := src.NumDimensions()
	iv := FinalInterval{min: make([]int64, n), max: make([]int64, n)}
	src.MinInto(iv.min)
	src.MaxInto(iv.max)
	return iv
}

func (iv FinalInterval) NumDimensions() int { return len(iv.min) }

func (iv FinalInterval) Min(d int) int64 { return iv.min[d] }

func (iv FinalInterval) Max(d int) int64 { return iv.max[d] }

func (iv FinalInterval) MinInto(dst []int64) {
	mustMatch(len(iv.min), len(dst))
	copy(dst, iv.min)
}

func (iv FinalInterval) MaxInto(dst []int64) {
	mustMatch(len(iv.max), len(dst))
	copy(dst, iv.max)
}

func (iv FinalInterval) Dimension(d int) int64 { return iv.max[d] - iv.min[d] + 1 }

// Dimensions returns the size of every axis.
func (iv FinalInterval) Dimensions() []int64 {
	dims := make([]int64, len(iv.min))
	for d := range dims {
		dims[d] = iv.Dimension(d)
	}
	return dims
}

// Volume returns the number of integer positions inside the interval.
func (iv FinalInterval) Volume() int64 {
	return Volume(iv)
}

// Contains reports whether pos lies inside the interval.
func (iv FinalInterval) Contains(pos []int64) bool {
	mustMatch(len(iv.min), len(pos))
	for d, p := range pos {
		if p < iv.min[d] || p > iv.max[d] {
			return false
		}
	}
	return true
}

// Intersect returns the overlap of iv and other. The boolean is false when
// the two do not overlap.
func (iv FinalInterval) Intersect(other Interval) (FinalInterval, bool, error) {
	if other.NumDimensions() != iv.NumDimensions() {
		return FinalInterval{}, false, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, iv.NumDimensions(), other.NumDimensions())
	}
	out := FinalInterval{min: make([]int64, len(iv.min)), max: make([]int64, len(iv.max))}
	for d := range out.min {
		out.min[d] = max(iv.min[d], other.Min(d))
		out.max[d] = min(iv.max[d], other.Max(d))
		if out.min[d] > out.max[d] {
			return FinalInterval{}, false, nil
		}
	}
	return out, true, nil
}

// Union returns the smallest interval containing both iv and other.
func (iv FinalInterval) Union(other Interval) (FinalInterval, error) {
	if other.NumDimensions() != iv.NumDimensions() {
		return FinalInterval{}, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, iv.NumDimensions(), other.NumDimensions())
	}
	out := FinalInterval{min: make([]int64, len(iv.min)), max: make([]int64, len(iv.max))}
	for d := range out.min {
		out.min[d] = min(iv.min[d], other.Min(d))
		out.max[d] = max(iv.max[d], other.Max(d))
	}
	return out, nil
}

// Expand grows (or, for negative entries, shrinks) the interval by border[d]
// on both sides of axis d.
func (iv FinalInterval) Expand(border []int64) (FinalInterval, error) {
	if err := CheckDimensions(len(iv.min), border); err != nil {
		return FinalInterval{}, err
	}
	min := make([]int64, len(iv.min))
	max := make([]int64, len(iv.max))
	for d := range min {
		min[d] = iv.min[d] - border[d]
		max[d] = iv.max[d] + border[d]
	}
	return NewInterval(min, max)
}

// Equals reports whether both intervals have identical bounds.
func (iv FinalInterval) Equals(other Interval) bool {
	return EqualIntervals(iv, other)
}

func (iv FinalInterval) String() string {
	return fmt.Sprintf("[%v..%v]", iv.min, iv.max)
}

// Volume returns the number of integer positions inside any interval.
func Volume(iv Interval) int64 {
	v := int64(1)
	for d := 0; d < iv.NumDimensions(); d++ {
		v *= iv.Dimension(d)
	}
	return v
}

// EqualIntervals reports whether a and b have the same dimensionality and
// bounds.
func EqualIntervals(a, b Interval) bool {
	if a.NumDimensions() != b.NumDimensions() {
		return false
	}
	for d := 0; d < a.NumDimensions(); d++ {
		if a.Min(d) != b.Min(d) || a.Max(d) != b.Max(d) {
			return false
		}
	}
	return true
}
