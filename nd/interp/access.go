package interp

import (
	"math"

	"github.com/cwbudde/algo-nd/nd/img"
	"github.com/cwbudde/algo-nd/nd/outofbounds"
	"github.com/cwbudde/algo-nd/nd/space"
)

// RealRandomAccess reads interpolated values at a real position.
type RealRandomAccess[T any] interface {
	space.RealLocalizable
	space.RealPositionable
	// Get returns the interpolated value at the current position.
	Get() T
}

// RealSampler reports the interpolated value as a float64, before it is
// converted to the sample type.
type RealSampler interface {
	GetReal() float64
}

// Factory creates interpolating accesses over a source.
type Factory[T any] interface {
	Create(src img.RandomAccessibleInterval[T]) (RealRandomAccess[T], error)
}

// cell is the state every policy shares: the real position, an extended
// random access and the floor of the position.
type cell[T any] struct {
	*space.RealPoint
	src  img.RandomAccess[T]
	base []int64
}

func newCell[T any](src img.RandomAccessibleInterval[T], oob outofbounds.Factory[T]) (cell[T], error) {
	if src == nil {
		return cell[T]{}, ErrNilSource
	}
	if oob == nil {
		oob = outofbounds.Border[T]()
	}
	n := src.NumDimensions()
	return cell[T]{
		RealPoint: space.NewRealPoint(n),
		src:       oob.Create(src),
		base:      make([]int64, n),
	}, nil
}

// anchor moves the discrete access to the floor of the position.
func (c *cell[T]) anchor() {
	c.Floor(c.base)
	c.src.SetPosition(c.base)
}

// frac returns the distance of the position from its floor along axis d.
func (c *cell[T]) frac(d int) float64 {
	return c.RealPosition(d) - float64(c.base[d])
}

// NearestNeighbor returns the sample whose position is closest, rounding
// halves up.
type NearestNeighbor[T any] struct {
	OutOfBounds outofbounds.Factory[T]
}

type nearest[T any] struct {
	cell[T]
}

func (f NearestNeighbor[T]) Create(src img.RandomAccessibleInterval[T]) (RealRandomAccess[T], error) {
	c, err := newCell(src, f.OutOfBounds)
	if err != nil {
		return nil, err
	}
	return &nearest[T]{cell: c}, nil
}

func (a *nearest[T]) Get() T {
	for d := range a.base {
		a.base[d] = int64(math.Floor(a.RealPosition(d) + 0.5))
	}
	a.src.SetPosition(a.base)
	return *a.src.Get()
}
