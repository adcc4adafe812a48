package region

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-nd/nd/space"
)

// Neighborhood is a rectangular window around a center point.
type Neighborhood struct {
	center   []int64
	negative []int64
	positive []int64
}

// NewNeighborhood validates and copies the descriptor. Extents must be
// non-negative; they are not corrected.
func NewNeighborhood(center, negative, positive []int64) (Neighborhood, error) {
	n := len(center)
	if n == 0 || len(negative) != n || len(positive) != n {
		return Neighborhood{}, fmt.Errorf("%w: center %d, negative %d, positive %d",
			ErrDimensionMismatch, len(center), len(negative), len(positive))
	}
	for d := 0; d < n; d++ {
		if negative[d] < 0 || positive[d] < 0 {
			return Neighborhood{}, fmt.Errorf("%w: axis %d has extents -%d/+%d", ErrNegativeExtent, d, negative[d], positive[d])
		}
	}
	return Neighborhood{
		center:   slices.Clone(center),
		negative: slices.Clone(negative),
		positive: slices.Clone(positive),
	}, nil
}

// Symmetric creates a window reaching radius in both directions on every
// axis.
func Symmetric(center []int64, radius int64) (Neighborhood, error) {
	ext := make([]int64, len(center))
	for d := range ext {
		ext[d] = radius
	}
	return NewNeighborhood(center, ext, ext)
}

func (n Neighborhood) NumDimensions() int { return len(n.center) }

// Center returns a copy of the center.
func (n Neighborhood) Center() []int64 { return slices.Clone(n.center) }

// NegativeExtent returns a copy of the per-axis reach below the center.
func (n Neighborhood) NegativeExtent() []int64 { return slices.Clone(n.negative) }

// PositiveExtent returns a copy of the per-axis reach above the center.
func (n Neighborhood) PositiveExtent() []int64 { return slices.Clone(n.positive) }

func (n Neighborhood) Min(d int) int64 { return n.center[d] - n.negative[d] }

func (n Neighborhood) Max(d int) int64 { return n.center[d] + n.positive[d] }

// Span returns the number of positions along axis d.
func (n Neighborhood) Span(d int) int64 { return n.negative[d] + n.positive[d] + 1 }

// Volume returns the number of positions in the window.
func (n Neighborhood) Volume() int64 {
	v := int64(1)
	for d := range n.center {
		v *= n.Span(d)
	}
	return v
}

// Interval returns the window as an interval.
func (n Neighborhood) Interval() space.FinalInterval {
	min := make([]int64, len(n.center))
	max := make([]int64, len(n.center))
	for d := range n.center {
		min[d] = n.Min(d)
		max[d] = n.Max(d)
	}
	iv, _ := space.NewInterval(min, max)
	return iv
}

// MoveTo returns a copy of n centered at center.
func (n Neighborhood) MoveTo(center []int64) (Neighborhood, error) {
	return NewNeighborhood(center, n.negative, n.positive)
}
