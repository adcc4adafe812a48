// Package fourier computes N-dimensional discrete Fourier transforms and
// uses them for fast convolution of containers.
//
// [Transform] applies a 1-D algo-fft plan along every axis of a flat
// complex128 grid stored axis 0 fastest, the layout of img.ArrayImg.
// Axis lengths must be powers of two.
//
// [Convolve] and [Correlate] zero-pad input and kernel to a power-of-two
// grid large enough to avoid wrap-around, multiply the spectra and crop the
// result back to the input interval. The output matches roi.NewConvolution
// and roi.NewCorrelation with a constant zero border up to rounding, and is
// much faster for large kernels.
package fourier
