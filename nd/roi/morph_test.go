package roi

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-nd/internal/testutil"
	"github.com/cwbudde/algo-nd/nd/img"
	"github.com/cwbudde/algo-nd/nd/outofbounds"
	"github.com/cwbudde/algo-nd/nd/region"
	"github.com/cwbudde/algo-nd/nd/value"
)

type u8 = value.Uint8

func box(t *testing.T, dims ...int64) *region.StructuringElement {
	t.Helper()
	s, err := region.Box(dims...)
	require.NoError(t, err)
	return s
}

func TestFlatRegionInvariance(t *testing.T) {
	in := testutil.Constant(u8(5), 3, 3)
	strel := box(t, 3, 3)
	want := []u8{5, 5, 5, 5, 5, 5, 5, 5, 5}

	for name, op := range map[string]*Operator[u8, u8]{
		"erode":  NewErode[u8](in, strel, nil),
		"dilate": NewDilate[u8](in, strel, nil),
	} {
		t.Run(name, func(t *testing.T) {
			require.True(t, op.CheckInput(), op.ErrorMessage())
			out := op.Process()
			require.True(t, out.OK(), out.Message())
			assert.Equal(t, want, img.ToSlice(out.Result))
		})
	}
}

func TestErodeWithZeroBorder(t *testing.T) {
	in := testutil.Constant(u8(5), 3, 3)
	out := NewErode[u8](in, box(t, 3, 3), outofbounds.Zero[u8]()).Process()
	require.True(t, out.OK())
	assert.Equal(t, []u8{0, 0, 0, 0, 5, 0, 0, 0, 0}, img.ToSlice(out.Result))
}

func TestDilateSpreadsImpulse(t *testing.T) {
	in := testutil.Impulse[f64]([]int64{2, 2}, 5, 5)

	square := NewDilate[f64](in, box(t, 3, 3), nil).Process()
	require.True(t, square.OK())
	want := []f64{
		0, 0, 0, 0, 0,
		0, 1, 1, 1, 0,
		0, 1, 1, 1, 0,
		0, 1, 1, 1, 0,
		0, 0, 0, 0, 0,
	}
	if diff := cmp.Diff(want, img.ToSlice(square.Result)); diff != "" {
		t.Fatalf("box dilation mismatch (-want +got):\n%s", diff)
	}

	ball, err := region.Ball(1, 2)
	require.NoError(t, err)
	cross := NewDilate[f64](in, ball, nil).Process()
	require.True(t, cross.OK())
	want = []f64{
		0, 0, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 1, 1, 1, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 0, 0,
	}
	if diff := cmp.Diff(want, img.ToSlice(cross.Result)); diff != "" {
		t.Fatalf("ball dilation mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenCloseIdempotentOnBinary(t *testing.T) {
	strel := box(t, 3, 3)
	for _, seed := range []int64{1, 42, 1234} {
		in := testutil.Binary[u8](seed, 0.5, 16, 12)
		for name, build := range map[string]func(img.RandomAccessibleInterval[u8]) *Chain[u8]{
			"open":  func(im img.RandomAccessibleInterval[u8]) *Chain[u8] { return NewOpen[u8](im, strel, nil) },
			"close": func(im img.RandomAccessibleInterval[u8]) *Chain[u8] { return NewClose[u8](im, strel, nil) },
		} {
			once := build(in).Process()
			require.True(t, once.OK(), once.Message())
			twice := build(once.Result).Process()
			require.True(t, twice.OK(), twice.Message())
			assert.Equal(t, img.ToSlice(once.Result), img.ToSlice(twice.Result), "%s seed %d", name, seed)
		}
	}
}

func TestOpenRemovesSpeckle(t *testing.T) {
	in := testutil.Impulse[u8]([]int64{3, 3}, 7, 7)
	c := NewOpen[u8](in, box(t, 3, 3), nil)
	require.True(t, c.CheckInput())
	out := c.Process()
	require.True(t, out.OK(), out.Message())
	assert.Equal(t, Processed, c.Phase())
	for i, v := range img.ToSlice(c.Result()) {
		assert.Zero(t, v, "sample %d", i)
	}
	assert.Empty(t, c.ErrorMessage())
	assert.Equal(t, "open", c.Name())
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}

func TestChainPropagatesFirstStageFailure(t *testing.T) {
	in := testutil.Constant(u8(1), 4, 4)

	c := NewClose[u8](in, box(t, 3), nil)
	assert.False(t, c.CheckInput())
	assert.Equal(t, CheckedFailed, c.Phase())
	assert.Contains(t, c.ErrorMessage(), "dimension mismatch")

	out := c.Process()
	assert.Equal(t, Failed, out.Status)
	assert.ErrorIs(t, out.Err, ErrDimensionMismatch)
	assert.Nil(t, c.Result())
	assert.Nil(t, c.second, "second stage must not be built")

	nilStrel := NewOpen[u8](in, nil, nil)
	assert.False(t, nilStrel.CheckInput())
	assert.ErrorIs(t, nilStrel.Err(), ErrNilElement)
}

func TestChainProcessAfterCloseFails(t *testing.T) {
	c := NewOpen[u8](testutil.Constant(u8(1), 4, 4), box(t, 3, 3), nil)
	require.True(t, c.CheckInput())
	require.NoError(t, c.Close())

	out := c.Process()
	assert.Equal(t, Failed, out.Status)
	assert.ErrorIs(t, out.Err, ErrClosed)
	assert.NotErrorIs(t, out.Err, ErrPanic)
	assert.Nil(t, c.second)
}

func TestChainAggregatesSecondStage(t *testing.T) {
	in := testutil.Constant(u8(1), 4, 4)
	c := NewOpen[u8](in, box(t, 3, 3), nil)
	require.True(t, c.Process().OK())
	require.NotNil(t, c.second)
	require.True(t, c.CheckInput())

	require.NoError(t, c.second.Close())
	assert.False(t, c.CheckInput())
	assert.ErrorIs(t, c.Err(), ErrClosed)
	assert.Contains(t, c.ErrorMessage(), "closed")
}
