package space

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIntervalCopiesBounds(t *testing.T) {
	min := []int64{0, -2}
	max := []int64{4, 3}

	iv, err := NewInterval(min, max)
	require.NoError(t, err)

	min[0] = 100
	max[1] = -100

	assert.Equal(t, int64(0), iv.Min(0))
	assert.Equal(t, int64(3), iv.Max(1))
	assert.Equal(t, int64(6), iv.Dimension(1))
	assert.Equal(t, int64(30), iv.Volume())
}

func TestNewIntervalErrors(t *testing.T) {
	tests := []struct {
		name string
		min  []int64
		max  []int64
		want error
	}{
		{name: "length mismatch", min: []int64{0, 0}, max: []int64{1}, want: ErrDimensionMismatch},
		{name: "min above max", min: []int64{2}, max: []int64{1}, want: ErrInvalidBounds},
		{name: "empty", min: nil, max: nil, want: ErrNoDimensions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInterval(tt.min, tt.max)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCopyIntervalDoesNotAlias(t *testing.T) {
	src := MustInterval(3, 4)
	cp := CopyInterval(src)

	require.True(t, cp.Equals(src))

	bounds := make([]int64, 2)
	cp.MinInto(bounds)
	bounds[0] = 7
	assert.Equal(t, int64(0), cp.Min(0))
	assert.Equal(t, int64(0), src.Min(0))
}

func TestIntersectAndUnion(t *testing.T) {
	a, err := NewInterval([]int64{0, 0}, []int64{4, 4})
	require.NoError(t, err)
	b, err := NewInterval([]int64{2, 3}, []int64{8, 9})
	require.NoError(t, err)

	in, ok, err := a.Intersect(b)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int64{3, 2}, in.Dimensions())

	u, err := a.Union(b)
	require.NoError(t, err)
	assert.Equal(t, []int64{9, 10}, u.Dimensions())

	c, err := NewInterval([]int64{10, 10}, []int64{11, 11})
	require.NoError(t, err)
	_, ok, err = a.Intersect(c)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = a.Union(MustInterval(3))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestExpand(t *testing.T) {
	iv := MustInterval(4, 4)
	grown, err := iv.Expand([]int64{1, 2})
	require.NoError(t, err)

	assert.Equal(t, int64(-1), grown.Min(0))
	assert.Equal(t, int64(5), grown.Max(1))
	assert.Equal(t, int64(0), iv.Min(0), "original must be unchanged")

	_, err = iv.Expand([]int64{1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = iv.Expand([]int64{-3, 0})
	assert.ErrorIs(t, err, ErrInvalidBounds)
}

func TestContainsPanicsOnMismatch(t *testing.T) {
	iv := MustInterval(2, 2)
	assert.True(t, iv.Contains([]int64{1, 1}))
	assert.False(t, iv.Contains([]int64{2, 0}))
	assert.Panics(t, func() { iv.Contains([]int64{1}) })
}

func TestRealInterval(t *testing.T) {
	iv, err := NewRealInterval([]float64{-0.5, 0}, []float64{1.5, 2})
	require.NoError(t, err)
	assert.True(t, iv.ContainsReal([]float64{0, 2}))
	assert.False(t, iv.ContainsReal([]float64{-1, 0}))

	cp := CopyRealInterval(iv)
	assert.Equal(t, 1.5, cp.RealMax(0))

	r := RealIntervalOf(MustInterval(3, 5))
	assert.Equal(t, 4.0, r.RealMax(1))

	_, err = NewRealInterval([]float64{0}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
