package img

import (
	"fmt"

	"github.com/cwbudde/algo-nd/nd/space"
)

// ArrayImg stores samples in one flat slice, axis 0 varying fastest. The
// interval may start anywhere; positions are translated by its minimum.
type ArrayImg[T any] struct {
	space.FinalInterval
	strides []int64
	data    []T
}

var _ Img[float64] = (*ArrayImg[float64])(nil)

// NewArrayImg allocates a zeroed container covering iv.
func NewArrayImg[T any](iv space.Interval) *ArrayImg[T] {
	fi := space.CopyInterval(iv)
	return &ArrayImg[T]{
		FinalInterval: fi,
		strides:       stridesOf(fi),
		data:          make([]T, fi.Volume()),
	}
}

// NewArrayImgFromDims allocates a zeroed container of the given size with
// its minimum at the origin.
func NewArrayImgFromDims[T any](dims ...int64) (*ArrayImg[T], error) {
	iv, err := space.NewIntervalFromDims(dims...)
	if err != nil {
		return nil, err
	}
	return NewArrayImg[T](iv), nil
}

// Wrap uses data as the backing store of a container covering iv. The slice
// is not copied.
func Wrap[T any](data []T, iv space.Interval) (*ArrayImg[T], error) {
	fi := space.CopyInterval(iv)
	if int64(len(data)) != fi.Volume() {
		return nil, fmt.Errorf("%w: got %d samples, interval holds %d", ErrDataLength, len(data), fi.Volume())
	}
	return &ArrayImg[T]{FinalInterval: fi, strides: stridesOf(fi), data: data}, nil
}

// FromSlice wraps data as a container of the given size with its minimum at
// the origin.
func FromSlice[T any](data []T, dims ...int64) (*ArrayImg[T], error) {
	iv, err := space.NewIntervalFromDims(dims...)
	if err != nil {
		return nil, err
	}
	return Wrap(data, iv)
}

func stridesOf(iv space.FinalInterval) []int64 {
	strides := make([]int64, iv.NumDimensions())
	s := int64(1)
	for d := range strides {
		strides[d] = s
		s *= iv.Dimension(d)
	}
	return strides
}

// Data returns the backing slice.
func (a *ArrayImg[T]) Data() []T { return a.data }

// Interval returns the bounds of the container.
func (a *ArrayImg[T]) Interval() space.FinalInterval { return a.FinalInterval }

// Index returns the flat index of pos. It does not check bounds.
func (a *ArrayImg[T]) Index(pos []int64) int {
	idx := int64(0)
	for d, p := range pos {
		idx += (p - a.Min(d)) * a.strides[d]
	}
	return int(idx)
}

// At returns a reference to the sample at pos, panicking with ErrOutOfBounds
// when pos lies outside the container.
func (a *ArrayImg[T]) At(pos ...int64) *T {
	if len(pos) != a.NumDimensions() || !a.Contains(pos) {
		panic(fmt.Errorf("%w: %v not in %v", ErrOutOfBounds, pos, a.FinalInterval))
	}
	return &a.data[a.Index(pos)]
}

// Fill sets every sample to v.
func (a *ArrayImg[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Copy returns a deep copy.
func (a *ArrayImg[T]) Copy() *ArrayImg[T] {
	data := make([]T, len(a.data))
	copy(data, a.data)
	return &ArrayImg[T]{FinalInterval: a.FinalInterval, strides: a.strides, data: data}
}

// RandomAccess returns a random access positioned at the container minimum.
func (a *ArrayImg[T]) RandomAccess() RandomAccess[T] {
	return newArrayRandomAccess(a)
}

// Cursor returns an unstarted cursor over all samples.
func (a *ArrayImg[T]) Cursor() Cursor[T] {
	return newArrayCursor(a)
}

// Factory returns a factory creating ArrayImg containers.
func (a *ArrayImg[T]) Factory() Factory[T] { return ArrayFactory[T]{} }

// ArrayFactory creates ArrayImg containers.
type ArrayFactory[T any] struct{}

func (ArrayFactory[T]) Create(iv space.Interval) Img[T] {
	return NewArrayImg[T](iv)
}
