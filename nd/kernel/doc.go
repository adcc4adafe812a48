// Package kernel builds common convolution kernels as containers that
// roi.NewConvolution and fourier.Convolve accept directly.
//
// Kernels have their minimum at the origin. Their center, the position the
// output sample is aligned with, is size/2 on every axis.
//
// Smoothing kernels ([Box], [Gaussian]) are value.Float64 and sum to 1.
// [SobelVertical] and [SobelHorizontal] are value.Int16 so integer images
// can be filtered without a float detour.
package kernel
