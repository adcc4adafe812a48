package interp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-nd/internal/testutil"
	"github.com/cwbudde/algo-nd/nd/img"
	"github.com/cwbudde/algo-nd/nd/outofbounds"
	"github.com/cwbudde/algo-nd/nd/value"
)

type f64 = value.Float64

// plane returns a 2-D container holding a + b·x + c·y.
func plane(a, b, c float64, w, h int64) *img.ArrayImg[f64] {
	im := testutil.Constant(f64(0), w, h)
	for y := int64(0); y < h; y++ {
		for x := int64(0); x < w; x++ {
			*im.At(x, y) = f64(a + b*float64(x) + c*float64(y))
		}
	}
	return im
}

func factories() map[string]Factory[f64] {
	return map[string]Factory[f64]{
		"nearest":  NearestNeighbor[f64]{},
		"bilinear": Bilinear[f64]{},
		"nlinear":  NLinear[f64]{},
		"lanczos":  NewLanczos[f64](nil),
		"lanczos1": Lanczos[f64]{Alpha: 1},
	}
}

func TestExactAtGridPositions(t *testing.T) {
	src := testutil.Noise[f64](3, -10, 10, 6, 5)
	for name, f := range factories() {
		t.Run(name, func(t *testing.T) {
			ra, err := f.Create(src)
			require.NoError(t, err)
			for y := int64(0); y < 5; y++ {
				for x := int64(0); x < 6; x++ {
					ra.RealSetPosition([]float64{float64(x), float64(y)})
					assert.Equal(t, *src.At(x, y), ra.Get(), "at (%d,%d)", x, y)
				}
			}
		})
	}
}

func TestBilinearReproducesPlanes(t *testing.T) {
	src := plane(1, 2, -3, 5, 5)
	ra, err := Bilinear[f64]{}.Create(src)
	require.NoError(t, err)

	for _, p := range [][]float64{{0.5, 0.5}, {1.25, 3.75}, {3.9, 0.1}, {2, 2.5}} {
		ra.RealSetPosition(p)
		want := 1 + 2*p[0] - 3*p[1]
		assert.InDelta(t, want, float64(ra.Get()), 1e-12, "at %v", p)
	}
}

func TestBilinearFormula(t *testing.T) {
	data := []f64{
		1, 2,
		4, 8,
	}
	src, err := img.FromSlice(data, 2, 2)
	require.NoError(t, err)
	ra, err := Bilinear[f64]{}.Create(src)
	require.NoError(t, err)

	ra.RealSetPosition([]float64{0.25, 0.5})
	tx, ty := 0.25, 0.5
	want := 1*(1-tx)*(1-ty) + 2*tx*(1-ty) + 8*tx*ty + 4*(1-tx)*ty
	assert.InDelta(t, want, float64(ra.Get()), 1e-12)
}

func TestNegativeCoordinatesUseFloor(t *testing.T) {
	src, err := img.FromSlice([]f64{10, 20, 30, 40}, 2, 2)
	require.NoError(t, err)

	zero := outofbounds.Zero[f64]()
	ra, err := Bilinear[f64]{OutOfBounds: zero}.Create(src)
	require.NoError(t, err)

	// The cell of -0.5 starts at -1, which reads 0 under the zero strategy.
	// Truncation would anchor at 0 and return 10 instead.
	ra.RealSetPosition([]float64{-0.5, 0})
	assert.InDelta(t, 5, float64(ra.Get()), 1e-12)

	nn, err := NearestNeighbor[f64]{OutOfBounds: zero}.Create(src)
	require.NoError(t, err)
	nn.RealSetPosition([]float64{-0.6, 0})
	assert.Equal(t, f64(0), nn.Get())
	nn.RealSetPosition([]float64{-0.4, 0})
	assert.Equal(t, f64(10), nn.Get())
}

func TestNLinearAgreesWithBilinear(t *testing.T) {
	src := testutil.Noise[f64](11, 0, 1, 7, 7)
	bi, err := Bilinear[f64]{}.Create(src)
	require.NoError(t, err)
	nl, err := NLinear[f64]{}.Create(src)
	require.NoError(t, err)

	for _, p := range [][]float64{{0.3, 0.7}, {5.5, 2.25}, {-1.5, 6.5}, {6.9, 6.9}} {
		bi.RealSetPosition(p)
		nl.RealSetPosition(p)
		assert.InDelta(t, float64(bi.Get()), float64(nl.Get()), 1e-12, "at %v", p)
	}
}

func TestNLinear3D(t *testing.T) {
	src := testutil.Constant(f64(0), 2, 2, 2)
	for i := range src.Data() {
		src.Data()[i] = f64(i)
	}
	ra, err := NLinear[f64]{}.Create(src)
	require.NoError(t, err)
	ra.RealSetPosition([]float64{0.5, 0.5, 0.5})
	assert.InDelta(t, 3.5, float64(ra.Get()), 1e-12)

	ra.RealMove(0.25, 2)
	assert.InDelta(t, 0.75, ra.RealPosition(2), 0)
	assert.InDelta(t, 4.5, float64(ra.Get()), 1e-12)
}

func TestLanczosKeepsConstants(t *testing.T) {
	src := testutil.Constant(f64(7), 9, 9)
	ra, err := NewLanczos[f64](nil).Create(src)
	require.NoError(t, err)
	for _, p := range [][]float64{{4.5, 4.5}, {0.1, 8.9}, {2.3, 5.7}} {
		ra.RealSetPosition(p)
		assert.InDelta(t, 7, float64(ra.Get()), 1e-12, "at %v", p)
	}
}

func TestLanczosClipping(t *testing.T) {
	// A step overshoots near the edge.
	data := []value.Uint8{0, 0, 0, 255, 255, 255}
	src, err := img.FromSlice(data, 6)
	require.NoError(t, err)

	free, err := Lanczos[value.Float64]{Alpha: 3}.Create(toFloat(src))
	require.NoError(t, err)
	free.RealSetPosition([]float64{3.25})
	over := float64(free.Get())
	require.Greater(t, over, 255.0, "expected overshoot")

	clipped, err := NewLanczos[value.Uint8](nil).Create(src)
	require.NoError(t, err)
	clipped.RealSetPosition([]float64{3.25})
	assert.Equal(t, value.Uint8(255), clipped.Get())
	assert.Equal(t, 255.0, clipped.(RealSampler).GetReal())

	unclipped, err := Lanczos[value.Uint8]{Alpha: 3}.Create(src)
	require.NoError(t, err)
	unclipped.RealSetPosition([]float64{3.25})
	assert.InDelta(t, over, unclipped.(RealSampler).GetReal(), 1e-9, "overshoot is reported without Clip")
	assert.Equal(t, value.Uint8(255), unclipped.Get(), "conversion to Uint8 saturates")

	// Below the range on the other side of the step.
	under, err := Lanczos[value.Uint8]{Alpha: 3}.Create(src)
	require.NoError(t, err)
	under.RealSetPosition([]float64{1.75})
	require.Less(t, under.(RealSampler).GetReal(), 0.0)
	clipped.RealSetPosition([]float64{1.75})
	assert.Equal(t, 0.0, clipped.(RealSampler).GetReal())
}

func toFloat(src *img.ArrayImg[value.Uint8]) *img.ArrayImg[f64] {
	out := img.NewArrayImg[f64](src)
	for i, v := range src.Data() {
		out.Data()[i] = value.Convert[f64](v)
	}
	return out
}

func TestLanczosKernel(t *testing.T) {
	assert.Equal(t, 1.0, lanczosKernel(0, 3))
	assert.Equal(t, 0.0, lanczosKernel(2, 3))
	assert.Equal(t, 0.0, lanczosKernel(-3.5, 3))
	assert.InDelta(t, lanczosKernel(0.5, 3), lanczosKernel(-0.5, 3), 0)
	want := 3 * math.Sin(math.Pi/2) * math.Sin(math.Pi/6) / (math.Pi * math.Pi / 4)
	assert.InDelta(t, want, lanczosKernel(0.5, 3), 1e-15)
}

func TestFactoryErrors(t *testing.T) {
	_, err := Bilinear[f64]{}.Create(testutil.Constant(f64(0), 3))
	assert.ErrorIs(t, err, ErrNotTwoDimensional)

	_, err = Lanczos[f64]{Alpha: 0}.Create(testutil.Constant(f64(0), 3))
	assert.ErrorIs(t, err, ErrInvalidAlpha)

	_, err = NLinear[f64]{}.Create(nil)
	assert.ErrorIs(t, err, ErrNilSource)
}
