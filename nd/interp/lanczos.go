package interp

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-nd/nd/img"
	"github.com/cwbudde/algo-nd/nd/outofbounds"
	"github.com/cwbudde/algo-nd/nd/region"
	"github.com/cwbudde/algo-nd/nd/value"
)

// DefaultLanczosAlpha is the window radius used by NewLanczos.
const DefaultLanczosAlpha = 3

// Lanczos interpolates with the separable kernel
//
//	L(x) = sinc(x) · sinc(x/Alpha)   for |x| < Alpha, else 0
//
// over the 2·Alpha samples per axis around the position. The weighted sum
// is divided by the sum of the weights. Sinc interpolation can overshoot
// the source range. The accesses it creates implement [RealSampler]: with
// Clip set, GetReal is limited to [MinReal, MaxReal] of T, otherwise it
// reports the overshoot. Get always converts through T, which saturates
// integer types either way.
type Lanczos[T value.Real[T]] struct {
	Alpha       int
	Clip        bool
	OutOfBounds outofbounds.Factory[T]
}

// NewLanczos returns a Lanczos factory with alpha 3 and clipping enabled.
func NewLanczos[T value.Real[T]](oob outofbounds.Factory[T]) Lanczos[T] {
	return Lanczos[T]{Alpha: DefaultLanczosAlpha, Clip: true, OutOfBounds: oob}
}

var _ RealSampler = (*lanczos[value.Float64])(nil)

type lanczos[T value.Real[T]] struct {
	cell[T]
	alpha   int
	clip    bool
	it      *region.Iterator
	weights [][]float64
	off     []int64
}

func (f Lanczos[T]) Create(src img.RandomAccessibleInterval[T]) (RealRandomAccess[T], error) {
	if f.Alpha < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidAlpha, f.Alpha)
	}
	c, err := newCell(src, f.OutOfBounds)
	if err != nil {
		return nil, err
	}
	n := len(c.base)
	neg := make([]int64, n)
	pos := make([]int64, n)
	weights := make([][]float64, n)
	for d := range neg {
		neg[d] = int64(f.Alpha - 1)
		pos[d] = int64(f.Alpha)
		weights[d] = make([]float64, 2*f.Alpha)
	}
	nb, err := region.NewNeighborhood(c.base, neg, pos)
	if err != nil {
		return nil, err
	}
	return &lanczos[T]{
		cell:    c,
		alpha:   f.Alpha,
		clip:    f.Clip,
		it:      region.NewIterator(nb),
		weights: weights,
		off:     make([]int64, n),
	}, nil
}

func (a *lanczos[T]) Get() T {
	return value.FromFloat[T](a.GetReal())
}

func (a *lanczos[T]) GetReal() float64 {
	a.Floor(a.base)
	for d, w := range a.weights {
		x := a.frac(d)
		for i := range w {
			// Sample i sits at base - alpha + 1 + i.
			w[i] = lanczosKernel(x-float64(i-a.alpha+1), float64(a.alpha))
		}
	}

	a.it.Relocate(a.base)
	sum, wsum := 0.0, 0.0
	for a.it.HasNext() {
		a.it.Fwd()
		a.it.Offset(a.off)
		w := 1.0
		for d, o := range a.off {
			w *= a.weights[d][o]
		}
		if w == 0 {
			continue
		}
		a.src.SetPosition(a.it.Position())
		sum += w * (*a.src.Get()).Real()
		wsum += w
	}
	if wsum != 0 {
		sum /= wsum
	}
	if a.clip {
		sum = value.Clip[T](sum)
	}
	return sum
}

// lanczosKernel evaluates the Lanczos window of radius alpha at x. Nonzero
// integers map to exactly 0 so integer positions reproduce their sample.
func lanczosKernel(x, alpha float64) float64 {
	if x == 0 {
		return 1
	}
	if math.Abs(x) >= alpha || x == math.Trunc(x) {
		return 0
	}
	px := math.Pi * x
	return alpha * math.Sin(px) * math.Sin(px/alpha) / (px * px)
}
