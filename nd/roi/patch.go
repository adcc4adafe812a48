package roi

import (
	"github.com/cwbudde/algo-nd/nd/img"
	"github.com/cwbudde/algo-nd/nd/region"
)

// Patch is the neighborhood of one output position as seen by a PatchFunc.
// It is reused for every position; do not keep it or the slices it returns.
type Patch[T any] struct {
	it     *region.Iterator
	src    img.RandomAccess[T]
	center []int64
}

// Next advances to the next neighborhood position and reports whether there
// was one.
func (p *Patch[T]) Next() bool {
	if !p.it.HasNext() {
		return false
	}
	p.it.Fwd()
	p.src.SetPosition(p.it.Position())
	return true
}

// Get returns the input sample at the current neighborhood position. Values
// outside the input come from the out-of-bounds strategy.
func (p *Patch[T]) Get() *T { return p.src.Get() }

// Offset writes the current position relative to the window minimum.
func (p *Patch[T]) Offset(dst []int64) { p.it.Offset(dst) }

// Index returns the ordinal of the current position within the window,
// axis 0 fastest.
func (p *Patch[T]) Index() int64 { return p.it.Index() }

// Position returns the current absolute position.
func (p *Patch[T]) Position() []int64 { return p.it.Position() }

// Center returns the output position being computed.
func (p *Patch[T]) Center() []int64 { return p.center }

// Volume returns the number of positions in the window.
func (p *Patch[T]) Volume() int64 { return p.it.Volume() }

func (p *Patch[T]) NumDimensions() int { return len(p.center) }
