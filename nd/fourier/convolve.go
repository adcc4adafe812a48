package fourier

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-nd/nd/core"
	"github.com/cwbudde/algo-nd/nd/img"
	"github.com/cwbudde/algo-nd/nd/region"
	"github.com/cwbudde/algo-nd/nd/value"
)

// Convolve returns in convolved with kernel, aligned like
// roi.NewConvolution: the kernel center is size/2 on every axis and samples
// outside in count as zero.
func Convolve[In value.Complex[In], K value.Complex[K], Out value.Complex[Out]](
	in img.RandomAccessibleInterval[In], kernel img.RandomAccessibleInterval[K],
) (img.Img[Out], error) {
	return filter[In, K, Out](in, kernel, false)
}

// Correlate returns the cross-correlation of in with the conjugated kernel,
// aligned like roi.NewCorrelation.
func Correlate[In value.Complex[In], K value.Complex[K], Out value.Complex[Out]](
	in img.RandomAccessibleInterval[In], kernel img.RandomAccessibleInterval[K],
) (img.Img[Out], error) {
	return filter[In, K, Out](in, kernel, true)
}

func filter[In value.Complex[In], K value.Complex[K], Out value.Complex[Out]](
	in img.RandomAccessibleInterval[In], kernel img.RandomAccessibleInterval[K], correlate bool,
) (img.Img[Out], error) {
	if in == nil || kernel == nil {
		return nil, ErrNilInput
	}
	n := in.NumDimensions()
	if kernel.NumDimensions() != n {
		return nil, fmt.Errorf("%w: kernel has %d axes, input has %d", ErrDimensionMismatch, kernel.NumDimensions(), n)
	}

	padded := make([]int, n)
	for d := range padded {
		padded[d] = core.NextPowerOfTwo(int(in.Dimension(d) + kernel.Dimension(d) - 1))
	}
	t, err := NewTransform(padded...)
	if err != nil {
		return nil, err
	}

	a := make([]complex128, t.Len())
	b := make([]complex128, t.Len())
	if err := gather(in, a, t.strides); err != nil {
		return nil, err
	}
	if err := gather(kernel, b, t.strides); err != nil {
		return nil, err
	}
	if err := t.Forward(a); err != nil {
		return nil, err
	}
	if err := t.Forward(b); err != nil {
		return nil, err
	}
	for i := range a {
		if correlate {
			a[i] *= complex(real(b[i]), -imag(b[i]))
		} else {
			a[i] *= b[i]
		}
	}
	if err := t.Inverse(a); err != nil {
		return nil, err
	}

	// Output position p reads the full result at p+shift, wrapping negative
	// indices for correlation.
	shift := make([]int, n)
	for d := range shift {
		size := int(kernel.Dimension(d))
		if correlate {
			shift[d] = -(size / 2)
		} else {
			shift[d] = size - 1 - size/2
		}
	}

	out := img.ArrayFactory[Out]{}.Create(in)
	c := out.Cursor()
	defer c.Close()
	pos := make([]int64, n)
	var zero Out
	for c.HasNext() {
		c.Fwd()
		c.Localize(pos)
		idx := 0
		for d, p := range pos {
			m := int(p-in.Min(d)) + shift[d]
			if m < 0 {
				m += padded[d]
			}
			idx += m * t.strides[d]
		}
		v := a[idx]
		*c.Get() = zero.WithComplex(core.FlushDenormals(real(v)), core.FlushDenormals(imag(v)))
	}
	return out, nil
}

// gather copies src into the low corner of a zeroed grid with the given
// strides.
func gather[T value.Complex[T]](src img.RandomAccessibleInterval[T], dst []complex128, strides []int) error {
	n := src.NumDimensions()
	origin := make([]int64, n)
	span := make([]int64, n)
	src.MinInto(origin)
	for d := range span {
		span[d] = src.Dimension(d) - 1
	}
	nb, err := region.NewNeighborhood(origin, make([]int64, n), span)
	if err != nil {
		return fmt.Errorf("fourier: %w", err)
	}
	ra := src.RandomAccess()
	off := make([]int64, n)
	it := region.NewIterator(nb)
	for it.HasNext() {
		it.Fwd()
		it.Offset(off)
		idx := 0
		for d, o := range off {
			idx += int(o) * strides[d]
		}
		ra.SetPosition(it.Position())
		v := *ra.Get()
		dst[idx] = complex(v.Real(), v.Imag())
	}
	return nil
}

// PowerSpectrum returns |F|² of src zero-padded to power-of-two axes. The
// result has its minimum at the origin and the padded size.
func PowerSpectrum[T value.Complex[T]](src img.RandomAccessibleInterval[T]) (*img.ArrayImg[value.Float64], error) {
	return spectrum(src, vecmath.Power)
}

// MagnitudeSpectrum returns |F| of src zero-padded to power-of-two axes.
func MagnitudeSpectrum[T value.Complex[T]](src img.RandomAccessibleInterval[T]) (*img.ArrayImg[value.Float64], error) {
	return spectrum(src, vecmath.Magnitude)
}

func spectrum[T value.Complex[T]](src img.RandomAccessibleInterval[T], reduce func(dst, re, im []float64)) (*img.ArrayImg[value.Float64], error) {
	if src == nil {
		return nil, ErrNilInput
	}
	n := src.NumDimensions()
	padded := make([]int, n)
	dims := make([]int64, n)
	for d := range padded {
		padded[d] = core.NextPowerOfTwo(int(src.Dimension(d)))
		dims[d] = int64(padded[d])
	}
	t, err := NewTransform(padded...)
	if err != nil {
		return nil, err
	}
	grid := make([]complex128, t.Len())
	if err := gather(src, grid, t.strides); err != nil {
		return nil, err
	}
	if err := t.Forward(grid); err != nil {
		return nil, err
	}

	re := make([]float64, len(grid))
	im := make([]float64, len(grid))
	for i, v := range grid {
		re[i], im[i] = real(v), imag(v)
	}
	mag := make([]float64, len(grid))
	reduce(mag, re, im)

	out, err := img.NewArrayImgFromDims[value.Float64](dims...)
	if err != nil {
		return nil, err
	}
	for i, v := range mag {
		out.Data()[i] = value.Float64(v)
	}
	return out, nil
}
