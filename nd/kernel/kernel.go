package kernel

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-nd/internal/fastmath"
	"github.com/cwbudde/algo-nd/nd/img"
	"github.com/cwbudde/algo-nd/nd/region"
	"github.com/cwbudde/algo-nd/nd/value"
)

var (
	ErrInvalidSigma = errors.New("kernel: sigma must be positive")
	ErrInvalidSize  = errors.New("kernel: size must be positive")
	ErrNoDimensions = errors.New("kernel: at least one dimension is required")
)

// SobelVertical returns the 3x3 Sobel kernel responding to changes along
// axis 0.
func SobelVertical() *img.ArrayImg[value.Int16] {
	return quick3x3([3][3]value.Int16{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	})
}

// SobelHorizontal returns the 3x3 Sobel kernel responding to changes along
// axis 1.
func SobelHorizontal() *img.ArrayImg[value.Int16] {
	return quick3x3([3][3]value.Int16{
		{1, 0, -1},
		{2, 0, -2},
		{1, 0, -1},
	})
}

// quick3x3 stores vals[x][y] at position (x, y).
func quick3x3(vals [3][3]value.Int16) *img.ArrayImg[value.Int16] {
	k, _ := img.NewArrayImgFromDims[value.Int16](3, 3)
	for x := range vals {
		for y, v := range vals[x] {
			*k.At(int64(x), int64(y)) = v
		}
	}
	return k
}

// Box returns a normalised box kernel.
func Box(dims ...int64) (*img.ArrayImg[value.Float64], error) {
	k, err := newFloatKernel(dims)
	if err != nil {
		return nil, err
	}
	buf := make([]float64, len(k.Data()))
	for i := range buf {
		buf[i] = 1
	}
	normalize(buf)
	store(k, buf)
	return k, nil
}

// Gaussian returns a normalised Gaussian kernel with one sigma per axis.
// Axis d has radius ceil(3·sigma[d]).
func Gaussian(sigma ...float64) (*img.ArrayImg[value.Float64], error) {
	if len(sigma) == 0 {
		return nil, ErrNoDimensions
	}
	n := len(sigma)
	radius := make([]int64, n)
	dims := make([]int64, n)
	profiles := make([][]float64, n)
	for d, s := range sigma {
		if !(s > 0) || math.IsInf(s, 0) {
			return nil, fmt.Errorf("%w: axis %d has sigma %v", ErrInvalidSigma, d, s)
		}
		radius[d] = int64(math.Ceil(3 * s))
		dims[d] = 2*radius[d] + 1
		profiles[d] = make([]float64, dims[d])
		for i := range profiles[d] {
			x := float64(int64(i) - radius[d])
			profiles[d][i] = fastmath.Exp(-x * x / (2 * s * s))
		}
	}

	k, err := newFloatKernel(dims)
	if err != nil {
		return nil, err
	}
	nb, err := region.NewNeighborhood(make([]int64, n), radius, radius)
	if err != nil {
		return nil, err
	}
	buf := make([]float64, len(k.Data()))
	off := make([]int64, n)
	it := region.NewIterator(nb)
	for it.HasNext() {
		it.Fwd()
		it.Offset(off)
		w := 1.0
		for d, o := range off {
			w *= profiles[d][o]
		}
		buf[it.Index()] = w
	}
	normalize(buf)
	store(k, buf)
	return k, nil
}

// Laplacian returns the 3^n discrete Laplacian: -2n at the center and 1 at
// the 2n direct neighbors.
func Laplacian(n int) (*img.ArrayImg[value.Float64], error) {
	if n < 1 {
		return nil, ErrNoDimensions
	}
	dims := make([]int64, n)
	center := make([]int64, n)
	for d := range dims {
		dims[d] = 3
		center[d] = 1
	}
	k, err := img.NewArrayImgFromDims[value.Float64](dims...)
	if err != nil {
		return nil, err
	}
	*k.At(center...) = value.Float64(-2 * n)
	for d := range center {
		for _, step := range []int64{-1, 1} {
			center[d] += step
			*k.At(center...) = 1
			center[d] -= step
		}
	}
	return k, nil
}

// Impulse returns a kernel with a single one at its center. Convolving with
// it leaves the input unchanged.
func Impulse[T value.Real[T]](dims ...int64) (*img.ArrayImg[T], error) {
	if len(dims) == 0 {
		return nil, ErrNoDimensions
	}
	if err := checkSizes(dims); err != nil {
		return nil, err
	}
	k, err := img.NewArrayImgFromDims[T](dims...)
	if err != nil {
		return nil, err
	}
	center := make([]int64, len(dims))
	for d, s := range dims {
		center[d] = s / 2
	}
	*k.At(center...) = value.FromFloat[T](1)
	return k, nil
}

func newFloatKernel(dims []int64) (*img.ArrayImg[value.Float64], error) {
	if len(dims) == 0 {
		return nil, ErrNoDimensions
	}
	if err := checkSizes(dims); err != nil {
		return nil, err
	}
	return img.NewArrayImgFromDims[value.Float64](dims...)
}

func checkSizes(dims []int64) error {
	for d, s := range dims {
		if s < 1 {
			return fmt.Errorf("%w: axis %d has size %d", ErrInvalidSize, d, s)
		}
	}
	return nil
}

// normalize scales buf so its elements sum to 1.
func normalize(buf []float64) {
	if sum := vecmath.Sum(buf); sum != 0 {
		vecmath.ScaleBlockInPlace(buf, 1/sum)
	}
}

func store(k *img.ArrayImg[value.Float64], buf []float64) {
	for i, v := range buf {
		k.Data()[i] = value.Float64(v)
	}
}
