package space

import (
	"fmt"
	"slices"
)

// FinalRealInterval is an immutable real-valued interval.
type FinalRealInterval struct {
	min []float64
	max []float64
}

var _ RealInterval = FinalRealInterval{}

// NewRealInterval creates a real interval from per-axis bounds. The slices
// are copied.
func NewRealInterval(min, max []float64) (FinalRealInterval, error) {
	if err := CheckRealDimensions(len(min), min, max); err != nil {
		return FinalRealInterval{}, err
	}
	for d := range min {
		if min[d] > max[d] {
			return FinalRealInterval{}, fmt.Errorf("%w: axis %d has min %g > max %g", ErrInvalidBounds, d, min[d], max[d])
		}
	}
	return FinalRealInterval{min: slices.Clone(min), max: slices.Clone(max)}, nil
}

// CopyRealInterval copies the bounds of any RealInterval by value.
func CopyRealInterval(src RealInterval) FinalRealInterval {
	n := src.NumDimensions()
	iv := FinalRealInterval{min: make([]float64, n), max: make([]float64, n)}
	src.RealMinInto(iv.min)
	src.RealMaxInto(iv.max)
	return iv
}

// RealIntervalOf converts an integer interval to its real-valued bounds.
func RealIntervalOf(src Interval) FinalRealInterval {
	n := src.NumDimensions()
	iv := FinalRealInterval{min: make([]float64, n), max: make([]float64, n)}
	for d := 0; d < n; d++ {
		iv.min[d] = float64(src.Min(d))
		iv.max[d] = float64(src.Max(d))
	}
	return iv
}

func (iv FinalRealInterval) NumDimensions() int { return len(iv.min) }

func (iv FinalRealInterval) RealMin(d int) float64 { return iv.min[d] }

func (iv FinalRealInterval) RealMax(d int) float64 { return iv.max[d] }

func (iv FinalRealInterval) RealMinInto(dst []float64) {
	mustMatch(len(iv.min), len(dst))
	copy(dst, iv.min)
}

func (iv FinalRealInterval) RealMaxInto(dst []float64) {
	mustMatch(len(iv.max), len(dst))
	copy(dst, iv.max)
}

// ContainsReal reports whether pos lies inside the closed interval.
func (iv FinalRealInterval) ContainsReal(pos []float64) bool {
	mustMatch(len(iv.min), len(pos))
	for d, p := range pos {
		if p < iv.min[d] || p > iv.max[d] {
			return false
		}
	}
	return true
}
