package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-nd/nd/img"
	"github.com/cwbudde/algo-nd/nd/value"
)

func mustImg[T any](dims []int64) *img.ArrayImg[T] {
	a, err := img.NewArrayImgFromDims[T](dims...)
	if err != nil {
		panic(err)
	}
	return a
}

// Noise returns a container of uniform noise in [lo, hi) with a fixed seed
// for reproducibility.
func Noise[T value.Real[T]](seed int64, lo, hi float64, dims ...int64) *img.ArrayImg[T] {
	a := mustImg[T](dims)
	rng := rand.New(rand.NewSource(seed))
	for i := range a.Data() {
		a.Data()[i] = value.FromFloat[T](lo + rng.Float64()*(hi-lo))
	}
	return a
}

// Binary returns a container of 0 and 1 samples where each sample is 1 with
// probability density.
func Binary[T value.Real[T]](seed int64, density float64, dims ...int64) *img.ArrayImg[T] {
	a := mustImg[T](dims)
	rng := rand.New(rand.NewSource(seed))
	for i := range a.Data() {
		if rng.Float64() < density {
			a.Data()[i] = value.FromFloat[T](1)
		}
	}
	return a
}

// Ramp returns a container whose samples hold their flat index.
func Ramp[T value.Real[T]](dims ...int64) *img.ArrayImg[T] {
	a := mustImg[T](dims)
	for i := range a.Data() {
		a.Data()[i] = value.FromFloat[T](float64(i))
	}
	return a
}

// Impulse returns a zero container with a single 1 at pos.
func Impulse[T value.Real[T]](pos []int64, dims ...int64) *img.ArrayImg[T] {
	a := mustImg[T](dims)
	*a.At(pos...) = value.FromFloat[T](1)
	return a
}

// Constant returns a container filled with v.
func Constant[T any](v T, dims ...int64) *img.ArrayImg[T] {
	a := mustImg[T](dims)
	a.Fill(v)
	return a
}
