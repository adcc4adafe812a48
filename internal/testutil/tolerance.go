package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-nd/nd/img"
	"github.com/cwbudde/algo-nd/nd/space"
	"github.com/cwbudde/algo-nd/nd/value"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireImgNearlyEqual fails t if the containers cover different intervals
// or if the real or imaginary part of any sample pair differs by more than
// eps.
func RequireImgNearlyEqual[T value.Complex[T]](t *testing.T, got, want img.Img[T], eps float64) {
	t.Helper()
	if !space.EqualIntervals(got, want) {
		t.Fatalf("interval mismatch: got %v, want %v", space.CopyInterval(got), space.CopyInterval(want))
	}
	RequireSliceNearlyEqual(t, Reals(got), Reals(want), eps)
	RequireSliceNearlyEqual(t, Imags(got), Imags(want), eps)
}

// Reals returns the real part of every sample in cursor order.
func Reals[T value.Complex[T]](im img.Img[T]) []float64 {
	samples := img.ToSlice(im)
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Real()
	}
	return out
}

// Imags returns the imaginary part of every sample in cursor order.
func Imags[T value.Complex[T]](im img.Img[T]) []float64 {
	samples := img.ToSlice(im)
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Imag()
	}
	return out
}
