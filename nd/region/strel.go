package region

import (
	"fmt"
	"slices"
)

// StructuringElement is a box with a membership mask. The mask is stored in
// iterator order (axis 0 fastest) and the center sits at dims[d]/2.
type StructuringElement struct {
	name   string
	dims   []int64
	center []int64
	mask   []bool
	count  int
}

// Box creates a fully populated rectangular element.
func Box(dims ...int64) (*StructuringElement, error) {
	vol, err := boxVolume(dims)
	if err != nil {
		return nil, err
	}
	mask := make([]bool, vol)
	for i := range mask {
		mask[i] = true
	}
	return newElement(fmt.Sprintf("box%v", dims), dims, mask), nil
}

// Ball creates an n-dimensional Euclidean ball of the given radius inside a
// box of side 2·radius+1.
func Ball(radius int64, n int) (*StructuringElement, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: radius %d", ErrNegativeExtent, radius)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: %d dimensions", ErrDimensionMismatch, n)
	}
	dims := make([]int64, n)
	for d := range dims {
		dims[d] = 2*radius + 1
	}
	vol, err := boxVolume(dims)
	if err != nil {
		return nil, err
	}
	mask := make([]bool, vol)
	off := make([]int64, n)
	r2 := radius * radius
	for i := range mask {
		var dist int64
		for d := range off {
			c := off[d] - radius
			dist += c * c
		}
		mask[i] = dist <= r2
		for d := range off {
			off[d]++
			if off[d] < dims[d] {
				break
			}
			off[d] = 0
		}
	}
	return newElement(fmt.Sprintf("ball(r=%d,n=%d)", radius, n), dims, mask), nil
}

// FromMask creates an element from an explicit mask in iterator order.
func FromMask(mask []bool, dims ...int64) (*StructuringElement, error) {
	vol, err := boxVolume(dims)
	if err != nil {
		return nil, err
	}
	if int64(len(mask)) != vol {
		return nil, fmt.Errorf("%w: mask has %d entries, box holds %d", ErrDimensionMismatch, len(mask), vol)
	}
	if !slices.Contains(mask, true) {
		return nil, ErrEmptyShape
	}
	return newElement(fmt.Sprintf("mask%v", dims), dims, slices.Clone(mask)), nil
}

func boxVolume(dims []int64) (int64, error) {
	if len(dims) == 0 {
		return 0, fmt.Errorf("%w: no dimensions", ErrDimensionMismatch)
	}
	vol := int64(1)
	for d, n := range dims {
		if n < 1 {
			return 0, fmt.Errorf("%w: axis %d has size %d", ErrNegativeExtent, d, n)
		}
		vol *= n
	}
	return vol, nil
}

func newElement(name string, dims []int64, mask []bool) *StructuringElement {
	center := make([]int64, len(dims))
	for d, n := range dims {
		center[d] = n / 2
	}
	count := 0
	for _, m := range mask {
		if m {
			count++
		}
	}
	return &StructuringElement{name: name, dims: slices.Clone(dims), center: center, mask: mask, count: count}
}

func (s *StructuringElement) Name() string { return s.name }

func (s *StructuringElement) NumDimensions() int { return len(s.dims) }

// Dimensions returns the box size per axis.
func (s *StructuringElement) Dimensions() []int64 { return slices.Clone(s.dims) }

// Count returns the number of mask members.
func (s *StructuringElement) Count() int { return s.count }

// Contains reports whether the box ordinal index is a mask member.
func (s *StructuringElement) Contains(index int64) bool { return s.mask[index] }

// Extents returns the reach below and above the center per axis.
func (s *StructuringElement) Extents() (negative, positive []int64) {
	negative = slices.Clone(s.center)
	positive = make([]int64, len(s.dims))
	for d, n := range s.dims {
		positive[d] = n - 1 - s.center[d]
	}
	return negative, positive
}

// Neighborhood places the element at center.
func (s *StructuringElement) Neighborhood(center []int64) (Neighborhood, error) {
	neg, pos := s.Extents()
	return NewNeighborhood(center, neg, pos)
}
