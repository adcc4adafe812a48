package outofbounds_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-nd/nd/img"
	"github.com/cwbudde/algo-nd/nd/outofbounds"
	"github.com/cwbudde/algo-nd/nd/value"
)

func readRow(t *testing.T, f outofbounds.Factory[value.Int16], from, to int64) []value.Int16 {
	t.Helper()
	src, err := img.FromSlice([]value.Int16{10, 20, 30}, 3)
	require.NoError(t, err)

	ra := outofbounds.Extend[value.Int16](src, f).RandomAccess()
	var out []value.Int16
	for p := from; p <= to; p++ {
		ra.SetPosition([]int64{p})
		out = append(out, *ra.Get())
	}
	return out
}

func TestStrategies(t *testing.T) {
	tests := []struct {
		name    string
		factory outofbounds.Factory[value.Int16]
		want    []value.Int16 // positions -4..6
	}{
		{
			name:    "constant",
			factory: outofbounds.NewConstant[value.Int16](-1),
			want:    []value.Int16{-1, -1, -1, -1, 10, 20, 30, -1, -1, -1, -1},
		},
		{
			name:    "zero",
			factory: outofbounds.Zero[value.Int16](),
			want:    []value.Int16{0, 0, 0, 0, 10, 20, 30, 0, 0, 0, 0},
		},
		{
			name:    "border",
			factory: outofbounds.Border[value.Int16](),
			want:    []value.Int16{10, 10, 10, 10, 10, 20, 30, 30, 30, 30, 30},
		},
		{
			name:    "mirror",
			factory: outofbounds.Mirror[value.Int16](),
			want:    []value.Int16{10, 20, 30, 20, 10, 20, 30, 20, 10, 20, 30},
		},
		{
			name:    "mirror double",
			factory: outofbounds.MirrorDouble[value.Int16](),
			want:    []value.Int16{30, 30, 20, 10, 10, 20, 30, 30, 20, 10, 10},
		},
		{
			name:    "periodic",
			factory: outofbounds.Periodic[value.Int16](),
			want:    []value.Int16{30, 10, 20, 30, 10, 20, 30, 10, 20, 30, 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, readRow(t, tt.factory, -4, 6))
		})
	}
}

func TestOutsideReadsDoNotMutateSource(t *testing.T) {
	src, err := img.FromSlice([]value.Float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)

	ra := outofbounds.Extend[value.Float64](src, outofbounds.Border[value.Float64]()).RandomAccess()
	ra.SetPosition([]int64{-5, 1})
	*ra.Get() = 100
	assert.Equal(t, []value.Float64{1, 2, 3, 4}, src.Data())

	// Inside reads are live references.
	ra.SetPosition([]int64{1, 0})
	*ra.Get() = 7
	assert.Equal(t, value.Float64(7), src.Data()[1])
}

func TestRelativeMovesCrossTheBoundary(t *testing.T) {
	src, err := img.FromSlice([]value.Uint8{1, 2, 3, 4, 5, 6}, 3, 2)
	require.NoError(t, err)

	ra := outofbounds.Extend[value.Uint8](src, outofbounds.Periodic[value.Uint8]()).RandomAccess()
	ra.Bck(0)
	assert.Equal(t, value.Uint8(3), *ra.Get())
	ra.Bck(1)
	assert.Equal(t, value.Uint8(6), *ra.Get())
	ra.Move(4, 0)
	assert.Equal(t, value.Uint8(4), *ra.Get())
	ra.MoveBy([]int64{-3, 1})
	assert.Equal(t, value.Uint8(1), *ra.Get())

	cp := ra.Copy()
	ra.Fwd(0)
	assert.Equal(t, value.Uint8(1), *cp.Get())
	assert.Equal(t, value.Uint8(2), *ra.Get())
}

func TestExtendedKeepsInterval(t *testing.T) {
	src, err := img.NewArrayImgFromDims[value.Float32](5, 7)
	require.NoError(t, err)
	ext := outofbounds.Extend[value.Float32](src, outofbounds.Mirror[value.Float32]())

	assert.Equal(t, 2, ext.NumDimensions())
	assert.Equal(t, int64(6), ext.Max(1))
	assert.Same(t, src, ext.Source())
}

func TestParseStrategy(t *testing.T) {
	for _, s := range outofbounds.Strategies() {
		got, err := outofbounds.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	got, err := outofbounds.ParseStrategy(" Clamp ")
	require.NoError(t, err)
	assert.Equal(t, outofbounds.StrategyBorder, got)

	_, err = outofbounds.ParseStrategy("wrap-around")
	assert.ErrorIs(t, err, outofbounds.ErrUnknownStrategy)
	assert.Equal(t, "Strategy(9)", outofbounds.Strategy(9).String())
}

func TestHelpersSelectStrategy(t *testing.T) {
	tests := []struct {
		cfg  outofbounds.Config[value.Int16]
		want outofbounds.Strategy
	}{
		{outofbounds.Zero[value.Int16](), outofbounds.StrategyConstant},
		{outofbounds.NewConstant(value.Int16(7)), outofbounds.StrategyConstant},
		{outofbounds.Border[value.Int16](), outofbounds.StrategyBorder},
		{outofbounds.Mirror[value.Int16](), outofbounds.StrategyMirror},
		{outofbounds.MirrorDouble[value.Int16](), outofbounds.StrategyMirrorDouble},
		{outofbounds.Periodic[value.Int16](), outofbounds.StrategyPeriodic},
	}
	for _, tc := range tests {
		t.Run(tc.want.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.cfg.Strategy)
		})
	}
	assert.Equal(t, []outofbounds.Strategy{
		outofbounds.StrategyConstant, outofbounds.StrategyBorder, outofbounds.StrategyMirror,
		outofbounds.StrategyMirrorDouble, outofbounds.StrategyPeriodic,
	}, outofbounds.Strategies())
}
