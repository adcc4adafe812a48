package fourier_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-nd/internal/testutil"
	"github.com/cwbudde/algo-nd/nd/fourier"
	"github.com/cwbudde/algo-nd/nd/img"
	"github.com/cwbudde/algo-nd/nd/roi"
	"github.com/cwbudde/algo-nd/nd/value"
)

type (
	f64  = value.Float64
	c128 = value.Complex128
)

func TestTransformRoundTrip(t *testing.T) {
	tr, err := fourier.NewTransform(8, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 32, tr.Len())
	assert.Equal(t, []int{8, 1, 4}, tr.Dims())

	data := make([]complex128, tr.Len())
	for i := range data {
		data[i] = complex(math.Sin(float64(i)), math.Cos(float64(3*i)))
	}
	orig := append([]complex128(nil), data...)

	require.NoError(t, tr.Forward(data))
	require.NoError(t, tr.Inverse(data))
	for i := range data {
		assert.InDelta(t, 0, cmplx.Abs(data[i]-orig[i]), 1e-12, "index %d", i)
	}
}

func TestTransformOfImpulseIsFlat(t *testing.T) {
	tr, err := fourier.NewTransform(4, 4)
	require.NoError(t, err)
	data := make([]complex128, 16)
	data[0] = 1
	require.NoError(t, tr.Forward(data))
	for i, v := range data {
		assert.InDelta(t, 0, cmplx.Abs(v-1), 1e-12, "bin %d", i)
	}
}

func TestTransformErrors(t *testing.T) {
	_, err := fourier.NewTransform(6)
	assert.ErrorIs(t, err, fourier.ErrNotPowerOfTwo)

	_, err = fourier.NewTransform()
	assert.ErrorIs(t, err, fourier.ErrDimensionMismatch)

	tr, err := fourier.NewTransform(4)
	require.NoError(t, err)
	assert.ErrorIs(t, tr.Forward(make([]complex128, 3)), fourier.ErrLength)
}

func TestConvolveMatchesDirect(t *testing.T) {
	in := testutil.Noise[f64](21, -1, 1, 13, 9)
	for _, dims := range [][]int64{{3, 3}, {5, 2}, {1, 4}, {4, 4}} {
		k := testutil.Noise[f64](22, -1, 1, dims...)

		fast, err := fourier.Convolve[f64, f64, f64](in, k)
		require.NoError(t, err)
		direct := roi.NewConvolution[f64, f64, f64](in, k, nil).Process()
		require.True(t, direct.OK(), direct.Message())
		testutil.RequireImgNearlyEqual[f64](t, fast, direct.Result, 1e-9)

		fastCorr, err := fourier.Correlate[f64, f64, f64](in, k)
		require.NoError(t, err)
		directCorr := roi.NewCorrelation[f64, f64, f64](in, k, nil).Process()
		require.True(t, directCorr.OK(), directCorr.Message())
		testutil.RequireImgNearlyEqual[f64](t, fastCorr, directCorr.Result, 1e-9)
	}
}

func TestCorrelateConjugatesComplexKernel(t *testing.T) {
	in, err := img.FromSlice([]c128{1, 2i, -1, 3 + 1i, 0.5}, 5)
	require.NoError(t, err)
	k, err := img.FromSlice([]c128{1 - 1i, 2, 0.5i}, 3)
	require.NoError(t, err)

	fast, err := fourier.Correlate[c128, c128, c128](in, k)
	require.NoError(t, err)
	direct := roi.NewCorrelation[c128, c128, c128](in, k, nil).Process()
	require.True(t, direct.OK(), direct.Message())
	testutil.RequireImgNearlyEqual[c128](t, fast, direct.Result, 1e-12)

	fastConv, err := fourier.Convolve[c128, c128, c128](in, k)
	require.NoError(t, err)
	directConv := roi.NewConvolution[c128, c128, c128](in, k, nil).Process()
	require.True(t, directConv.OK(), directConv.Message())
	testutil.RequireImgNearlyEqual[c128](t, fastConv, directConv.Result, 1e-12)
}

func TestConvolveErrors(t *testing.T) {
	in := testutil.Constant(f64(1), 4, 4)
	_, err := fourier.Convolve[f64, f64, f64](in, testutil.Constant(f64(1), 3))
	assert.ErrorIs(t, err, fourier.ErrDimensionMismatch)

	_, err = fourier.Convolve[f64, f64, f64](in, nil)
	assert.ErrorIs(t, err, fourier.ErrNilInput)
}

func TestPowerSpectrumOfConstant(t *testing.T) {
	src := testutil.Constant(f64(2), 4, 2)
	ps, err := fourier.PowerSpectrum[f64](src)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 2}, ps.Dimensions())
	assert.InDelta(t, 256, float64(ps.Data()[0]), 1e-9)
	for i, v := range ps.Data()[1:] {
		assert.InDelta(t, 0, float64(v), 1e-9, "bin %d", i+1)
	}

	mag, err := fourier.MagnitudeSpectrum[f64](src)
	require.NoError(t, err)
	assert.InDelta(t, 16, float64(mag.Data()[0]), 1e-9)
}

func TestSpectrumPadsToPowerOfTwo(t *testing.T) {
	ps, err := fourier.PowerSpectrum[f64](testutil.Constant(f64(1), 5, 3))
	require.NoError(t, err)
	assert.Equal(t, []int64{8, 4}, ps.Dimensions())
	assert.InDelta(t, 225, float64(ps.Data()[0]), 1e-9)
}
