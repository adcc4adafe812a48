package fourier

import (
	"errors"
	"fmt"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/cwbudde/algo-nd/nd/core"
)

var (
	ErrNotPowerOfTwo     = errors.New("fourier: axis length must be a power of two")
	ErrLength            = errors.New("fourier: data length does not match dimensions")
	ErrNilInput          = errors.New("fourier: input is nil")
	ErrDimensionMismatch = errors.New("fourier: dimension mismatch")
)

// Transform is an in-place N-D FFT over a fixed grid.
type Transform struct {
	dims    []int
	strides []int
	size    int
	plans   map[int]*algofft.Plan[complex128]
	line    []complex128
}

// NewTransform prepares plans for a grid of the given axis lengths.
func NewTransform(dims ...int) (*Transform, error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("%w: no dimensions", ErrDimensionMismatch)
	}
	t := &Transform{
		dims:    append([]int(nil), dims...),
		strides: make([]int, len(dims)),
		size:    1,
		plans:   make(map[int]*algofft.Plan[complex128]),
	}
	longest := 0
	for d, n := range dims {
		if !core.IsPowerOfTwo(n) {
			return nil, fmt.Errorf("%w: axis %d has length %d", ErrNotPowerOfTwo, d, n)
		}
		t.strides[d] = t.size
		t.size *= n
		longest = max(longest, n)
		if n == 1 || t.plans[n] != nil {
			continue
		}
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("fourier: failed to create FFT plan: %w", err)
		}
		t.plans[n] = plan
	}
	t.line = make([]complex128, longest)
	return t, nil
}

// Dims returns the axis lengths.
func (t *Transform) Dims() []int { return append([]int(nil), t.dims...) }

// Len returns the number of grid points.
func (t *Transform) Len() int { return t.size }

// Forward replaces data with its spectrum.
func (t *Transform) Forward(data []complex128) error {
	return t.apply(data, true)
}

// Inverse replaces a spectrum with its signal. The result is normalised, so
// Inverse(Forward(x)) == x up to rounding.
func (t *Transform) Inverse(data []complex128) error {
	return t.apply(data, false)
}

func (t *Transform) apply(data []complex128, forward bool) error {
	if len(data) != t.size {
		return fmt.Errorf("%w: got %d, want %d", ErrLength, len(data), t.size)
	}
	for d, n := range t.dims {
		if n == 1 {
			continue
		}
		plan := t.plans[n]
		line := t.line[:n]
		stride := t.strides[d]
		block := stride * n
		for base := 0; base < t.size; base += block {
			for off := 0; off < stride; off++ {
				start := base + off
				for i := range line {
					line[i] = data[start+i*stride]
				}
				var err error
				if forward {
					err = plan.Forward(line, line)
				} else {
					err = plan.Inverse(line, line)
				}
				if err != nil {
					return fmt.Errorf("fourier: axis %d: %w", d, err)
				}
				for i, v := range line {
					data[start+i*stride] = v
				}
			}
		}
	}
	return nil
}
