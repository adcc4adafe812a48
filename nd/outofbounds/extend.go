package outofbounds

import (
	"github.com/cwbudde/algo-nd/nd/img"
	"github.com/cwbudde/algo-nd/nd/space"
)

// Extended is a source container whose random accesses answer reads at any
// position. It keeps the source interval, so it can be handed to anything
// that expects a RandomAccessibleInterval.
type Extended[T any] struct {
	space.Interval
	src     img.RandomAccessibleInterval[T]
	factory Factory[T]
}

var _ img.RandomAccessibleInterval[float64] = (*Extended[float64])(nil)

// Extend wraps src with the given factory.
func Extend[T any](src img.RandomAccessibleInterval[T], factory Factory[T]) *Extended[T] {
	return &Extended[T]{Interval: src, src: src, factory: factory}
}

// RandomAccess returns a new out-of-bounds random access positioned at the
// source minimum.
func (e *Extended[T]) RandomAccess() img.RandomAccess[T] {
	return e.factory.Create(e.src)
}

// Source returns the wrapped container.
func (e *Extended[T]) Source() img.RandomAccessibleInterval[T] { return e.src }

// Factory returns the strategy factory in use.
func (e *Extended[T]) Factory() Factory[T] { return e.factory }
