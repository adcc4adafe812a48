package roi

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-nd/nd/core"
	"github.com/cwbudde/algo-nd/nd/img"
	"github.com/cwbudde/algo-nd/nd/outofbounds"
	"github.com/cwbudde/algo-nd/nd/region"
	"github.com/cwbudde/algo-nd/nd/value"
)

// NewRank creates an order statistic filter returning the rank-th smallest
// member value, 0 being the minimum and strel.Count()-1 the maximum.
func NewRank[T value.Comparable[T]](in img.RandomAccessibleInterval[T], strel *region.StructuringElement,
	rank int, oob outofbounds.Factory[T], opts ...core.OperatorOption,
) *Operator[T, T] {
	var neg, pos []int64
	if strel != nil {
		neg, pos = strel.Extents()
	}
	var buf []T
	fn := func(p *Patch[T]) T {
		buf = buf[:0]
		for p.Next() {
			if strel.Contains(p.Index()) {
				buf = append(buf, *p.Get())
			}
		}
		slices.SortFunc(buf, func(a, b T) int { return a.Compare(b) })
		return buf[rank]
	}
	op := New(in, neg, pos, oob, fn, append([]core.OperatorOption{core.WithName(fmt.Sprintf("rank-%d", rank))}, opts...)...)
	op.validate = func() error {
		if err := checkElement(strel, op.in); err != nil {
			return err
		}
		if rank < 0 || rank >= strel.Count() {
			return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidRank, rank, strel.Count())
		}
		buf = make([]T, 0, strel.Count())
		return nil
	}
	return op
}

// NewMedian creates a median filter over the members of strel. The median
// is computed on the real values and converted back to T, so integer types
// round the mean of the two central values of an even count.
func NewMedian[T value.Real[T]](in img.RandomAccessibleInterval[T], strel *region.StructuringElement,
	oob outofbounds.Factory[T], opts ...core.OperatorOption,
) *Operator[T, T] {
	var neg, pos []int64
	if strel != nil {
		neg, pos = strel.Extents()
	}
	var buf []float64
	fn := func(p *Patch[T]) T {
		buf = core.EnsureLen(buf, int(p.Volume()))
		n := 0
		for p.Next() {
			if strel.Contains(p.Index()) {
				buf[n] = (*p.Get()).Real()
				n++
			}
		}
		return value.FromFloat[T](Median(buf[:n]))
	}
	op := New(in, neg, pos, oob, fn, append([]core.OperatorOption{core.WithName("median")}, opts...)...)
	op.validate = func() error { return checkElement(strel, op.in) }
	return op
}

// Median returns the middle value of values, or the mean of the two middle
// values for an even count. An empty slice yields 0. values is sorted in
// place.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	slices.Sort(values)
	if n%2 == 1 {
		return values[n/2]
	}
	return (values[n/2-1] + values[n/2]) / 2
}
