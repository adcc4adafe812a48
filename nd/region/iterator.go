package region

import (
	"fmt"

	"github.com/cwbudde/algo-nd/nd/space"
)

// Iterator walks every position of a Neighborhood window. It is reusable:
// Relocate moves the window without allocating.
type Iterator struct {
	center   []int64
	negative []int64
	positive []int64
	min      []int64
	max      []int64
	pos      []int64

	started bool
	index   int64
	volume  int64
}

// NewIterator creates an unstarted iterator over n.
func NewIterator(n Neighborhood) *Iterator {
	dims := n.NumDimensions()
	it := &Iterator{
		center:   n.Center(),
		negative: n.NegativeExtent(),
		positive: n.PositiveExtent(),
		min:      make([]int64, dims),
		max:      make([]int64, dims),
		pos:      make([]int64, dims),
		volume:   n.Volume(),
	}
	it.setMinsAndMaxes()
	return it
}

func (it *Iterator) NumDimensions() int { return len(it.pos) }

// State reports where the iterator stands in its traversal.
func (it *Iterator) State() space.State {
	switch {
	case !it.started:
		return space.Unstarted
	case it.index == it.volume-1:
		return space.Exhausted
	default:
		return space.Positioned
	}
}

// HasNext reports whether Fwd may be called. It is always true while
// unstarted.
func (it *Iterator) HasNext() bool {
	if !it.started {
		return true
	}
	for d, p := range it.pos {
		if p < it.max[d] {
			return true
		}
	}
	return false
}

// HasPrev reports whether Bck may be called. It is always true while
// unstarted.
func (it *Iterator) HasPrev() bool {
	if !it.started {
		return true
	}
	for d, p := range it.pos {
		if p > it.min[d] {
			return true
		}
	}
	return false
}

// Fwd moves to the next position. From the unstarted state it moves to the
// window minimum. It panics with ErrPastEnd at the window maximum.
func (it *Iterator) Fwd() {
	if !it.started {
		copy(it.pos, it.min)
		it.started = true
		it.index = 0
		return
	}
	for d := range it.pos {
		it.pos[d]++
		if it.pos[d] <= it.max[d] {
			it.index++
			return
		}
		it.pos[d] = it.min[d]
	}
	copy(it.pos, it.max)
	panic(ErrPastEnd)
}

// Bck moves to the previous position. From the unstarted state it moves to
// the window maximum. It panics with ErrBeforeStart at the window minimum.
func (it *Iterator) Bck() {
	if !it.started {
		copy(it.pos, it.max)
		it.started = true
		it.index = it.volume - 1
		return
	}
	for d := range it.pos {
		it.pos[d]--
		if it.pos[d] >= it.min[d] {
			it.index--
			return
		}
		it.pos[d] = it.max[d]
	}
	copy(it.pos, it.min)
	panic(ErrBeforeStart)
}

// Reset returns to the unstarted state without moving the window.
func (it *Iterator) Reset() {
	it.started = false
}

// Relocate centers the window on center and resets the iterator.
func (it *Iterator) Relocate(center []int64) {
	if len(center) != len(it.center) {
		panic(fmt.Errorf("%w: relocate to %d coordinates, want %d", ErrDimensionMismatch, len(center), len(it.center)))
	}
	copy(it.center, center)
	it.setMinsAndMaxes()
	it.Reset()
}

// Position returns the current position. The slice is owned by the iterator
// and changes on every step; copy it to keep it.
func (it *Iterator) Position() []int64 { return it.pos }

// Localize writes the current position into dst.
func (it *Iterator) Localize(dst []int64) { copy(dst, it.pos) }

// Offset writes the current position relative to the window minimum into
// dst, so the first position is all zeros.
func (it *Iterator) Offset(dst []int64) {
	for d, p := range it.pos {
		dst[d] = p - it.min[d]
	}
}

// Index returns the ordinal of the current position, 0 for the window
// minimum and Volume()-1 for the maximum.
func (it *Iterator) Index() int64 { return it.index }

// Volume returns the number of positions in the window.
func (it *Iterator) Volume() int64 { return it.volume }

// Min returns the window minimum along axis d.
func (it *Iterator) Min(d int) int64 { return it.min[d] }

// Max returns the window maximum along axis d.
func (it *Iterator) Max(d int) int64 { return it.max[d] }

func (it *Iterator) setMinsAndMaxes() {
	for d, c := range it.center {
		it.min[d] = c - it.negative[d]
		it.max[d] = c + it.positive[d]
	}
}
