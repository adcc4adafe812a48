package interp

import (
	"fmt"

	"github.com/cwbudde/algo-nd/nd/img"
	"github.com/cwbudde/algo-nd/nd/outofbounds"
	"github.com/cwbudde/algo-nd/nd/value"
)

// Bilinear interpolates 2-D sources from the four corners of the cell
// holding the position.
type Bilinear[T value.Real[T]] struct {
	OutOfBounds outofbounds.Factory[T]
}

type bilinear[T value.Real[T]] struct {
	cell[T]
}

func (f Bilinear[T]) Create(src img.RandomAccessibleInterval[T]) (RealRandomAccess[T], error) {
	if src != nil && src.NumDimensions() != 2 {
		return nil, fmt.Errorf("%w: got %d dimensions", ErrNotTwoDimensional, src.NumDimensions())
	}
	c, err := newCell(src, f.OutOfBounds)
	if err != nil {
		return nil, err
	}
	return &bilinear[T]{cell: c}, nil
}

// Get walks the corners counter-clockwise from the floor:
//
//	y4 *<------* y3
//	           ^
//	           |
//	y1 *------>* y2
func (a *bilinear[T]) Get() T {
	a.anchor()
	t, u := a.frac(0), a.frac(1)
	t1, u1 := 1-t, 1-u

	y1 := (*a.src.Get()).Real()
	a.src.Fwd(0)
	y2 := (*a.src.Get()).Real()
	a.src.Fwd(1)
	y3 := (*a.src.Get()).Real()
	a.src.Bck(0)
	y4 := (*a.src.Get()).Real()

	return value.FromFloat[T](y1*t1*u1 + y2*t*u1 + y3*t*u + y4*t1*u)
}

// NLinear interpolates n-D sources from the 2^n corners of the cell holding
// the position. For 2-D sources it agrees with Bilinear.
type NLinear[T value.Real[T]] struct {
	OutOfBounds outofbounds.Factory[T]
}

type nlinear[T value.Real[T]] struct {
	cell[T]
	corner []int64
}

func (f NLinear[T]) Create(src img.RandomAccessibleInterval[T]) (RealRandomAccess[T], error) {
	c, err := newCell(src, f.OutOfBounds)
	if err != nil {
		return nil, err
	}
	return &nlinear[T]{cell: c, corner: make([]int64, len(c.base))}, nil
}

func (a *nlinear[T]) Get() T {
	a.Floor(a.base)
	n := len(a.base)
	sum := 0.0
	for mask := 0; mask < 1<<n; mask++ {
		w := 1.0
		for d := 0; d < n; d++ {
			f := a.frac(d)
			if mask&(1<<d) != 0 {
				a.corner[d] = a.base[d] + 1
				w *= f
			} else {
				a.corner[d] = a.base[d]
				w *= 1 - f
			}
		}
		if w == 0 {
			continue
		}
		a.src.SetPosition(a.corner)
		sum += w * (*a.src.Get()).Real()
	}
	return value.FromFloat[T](sum)
}
