package img_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-nd/nd/img"
	"github.com/cwbudde/algo-nd/nd/space"
	"github.com/cwbudde/algo-nd/nd/value"
)

func ramp(t *testing.T, dims ...int64) *img.ArrayImg[value.Float64] {
	t.Helper()
	im, err := img.NewArrayImgFromDims[value.Float64](dims...)
	require.NoError(t, err)
	for i := range im.Data() {
		im.Data()[i] = value.Float64(i)
	}
	return im
}

func TestRandomAccessReflectsMoves(t *testing.T) {
	im := ramp(t, 4, 3)
	ra := im.RandomAccess()

	assert.Equal(t, value.Float64(0), *ra.Get())

	ra.Fwd(0)
	assert.Equal(t, value.Float64(1), *ra.Get())

	ra.Fwd(1)
	assert.Equal(t, value.Float64(5), *ra.Get())

	ra.Move(2, 0)
	assert.Equal(t, value.Float64(7), *ra.Get())

	ra.Bck(1)
	assert.Equal(t, value.Float64(3), *ra.Get())

	ra.SetPosition([]int64{1, 2})
	assert.Equal(t, value.Float64(9), *ra.Get())

	ra.SetPositionAt(3, 0)
	assert.Equal(t, value.Float64(11), *ra.Get())

	ra.MoveBy([]int64{-3, -2})
	assert.Equal(t, value.Float64(0), *ra.Get())
}

func TestRandomAccessWritesThrough(t *testing.T) {
	im := ramp(t, 2, 2)
	ra := im.RandomAccess()
	ra.SetPosition([]int64{1, 1})
	*ra.Get() = 42

	assert.Equal(t, value.Float64(42), *im.At(1, 1))

	cp := ra.Copy()
	ra.Bck(0)
	assert.Equal(t, int64(1), cp.Position(0), "copy must not follow the original")
}

func TestRandomAccessOutsidePanics(t *testing.T) {
	im := ramp(t, 3, 3)
	ra := im.RandomAccess()
	ra.Bck(0)

	assert.PanicsWithError(t, "img: position outside interval: [-1 0] not in [[0 0]..[2 2]]", func() {
		ra.Get()
	})

	// Index arithmetic alone would land on a valid slot; bounds are checked
	// per axis.
	ra.SetPosition([]int64{3, 0})
	assert.Panics(t, func() { ra.Get() })
}

func TestNonZeroMinimum(t *testing.T) {
	iv, err := space.NewInterval([]int64{-2, 10}, []int64{1, 11})
	require.NoError(t, err)
	im := img.NewArrayImg[value.Int16](iv)
	*im.At(-2, 10) = 1
	*im.At(1, 11) = 8

	assert.Equal(t, value.Int16(1), im.Data()[0])
	assert.Equal(t, value.Int16(8), im.Data()[7])
}

func TestCursorStateMachine(t *testing.T) {
	im := ramp(t, 2, 2)
	c := im.Cursor()

	assert.Equal(t, space.Unstarted, c.State())
	assert.True(t, c.HasNext())
	assert.True(t, c.HasPrev())
	assert.PanicsWithValue(t, img.ErrNotPositioned, func() { c.Get() })

	var seen []value.Float64
	var positions [][]int64
	for c.HasNext() {
		c.Fwd()
		seen = append(seen, *c.Get())
		pos := make([]int64, 2)
		c.Localize(pos)
		positions = append(positions, pos)
		if c.HasNext() {
			assert.Equal(t, space.Positioned, c.State())
		}
	}
	assert.Equal(t, space.Exhausted, c.State())
	assert.Equal(t, []value.Float64{0, 1, 2, 3}, seen)
	if diff := cmp.Diff([][]int64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, positions); diff != "" {
		t.Fatalf("visit order mismatch (-want +got):\n%s", diff)
	}

	assert.PanicsWithValue(t, img.ErrCursorExhausted, func() { c.Fwd() })

	c.Bck()
	assert.Equal(t, value.Float64(2), *c.Get())
	assert.Equal(t, int64(0), c.Position(0))
	assert.Equal(t, int64(1), c.Position(1))

	c.Reset()
	assert.Equal(t, space.Unstarted, c.State())
	c.Bck()
	assert.Equal(t, value.Float64(3), *c.Get())
}

func TestCursorBackwardPastStartPanics(t *testing.T) {
	im := ramp(t, 3)
	c := im.Cursor()
	c.Fwd()
	assert.False(t, c.HasPrev())
	assert.PanicsWithValue(t, img.ErrCursorExhausted, func() { c.Bck() })
}

func TestCursorCloseIsIdempotent(t *testing.T) {
	im := ramp(t, 3)
	c := im.Cursor()
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	assert.PanicsWithValue(t, img.ErrCursorClosed, func() { c.Fwd() })
}

func TestWrapChecksLength(t *testing.T) {
	_, err := img.FromSlice([]value.Uint8{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, img.ErrDataLength)

	im, err := img.FromSlice([]value.Uint8{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []value.Uint8{1, 2, 3, 4}, img.ToSlice[value.Uint8](im))
}

func TestFactoryAndCopy(t *testing.T) {
	im := ramp(t, 3, 2)
	out := im.Factory().Create(im)
	assert.True(t, space.EqualIntervals(im, out))

	cp := im.Copy()
	cp.Fill(9)
	assert.Equal(t, value.Float64(0), im.Data()[0])
	assert.Equal(t, value.Float64(9), cp.Data()[5])
}
