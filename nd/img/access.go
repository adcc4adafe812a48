package img

import "github.com/cwbudde/algo-nd/nd/space"

// Sampler yields a live reference to the sample at the current position.
type Sampler[T any] interface {
	Get() *T
}

// RandomAccess combines absolute and relative positioning with sample access.
type RandomAccess[T any] interface {
	space.Localizable
	space.Positionable
	Sampler[T]
	// Copy returns an independent RandomAccess at the same position.
	Copy() RandomAccess[T]
}

// RandomAccessible hands out random accesses.
type RandomAccessible[T any] interface {
	space.EuclideanSpace
	RandomAccess() RandomAccess[T]
}

// RandomAccessibleInterval is a RandomAccessible with known bounds. This is
// the bounded container every local operator consumes.
type RandomAccessibleInterval[T any] interface {
	RandomAccessible[T]
	space.Interval
}

// Cursor iterates every sample of a container exactly once.
type Cursor[T any] interface {
	space.Localizable
	Sampler[T]
	Fwd()
	Bck()
	HasNext() bool
	HasPrev() bool
	Reset()
	State() space.State
	// Close releases the reference to the container. It is idempotent.
	Close() error
}

// Img is an iterable container with a factory for containers of the same
// kind.
type Img[T any] interface {
	RandomAccessibleInterval[T]
	Cursor() Cursor[T]
	Factory() Factory[T]
}

// Factory creates empty containers.
type Factory[T any] interface {
	Create(iv space.Interval) Img[T]
}

// ToSlice copies every sample of im into a new slice in cursor order.
func ToSlice[T any](im Img[T]) []T {
	out := make([]T, 0, space.Volume(im))
	c := im.Cursor()
	defer c.Close()
	for c.HasNext() {
		c.Fwd()
		out = append(out, *c.Get())
	}
	return out
}
