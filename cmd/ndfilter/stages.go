package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/cwbudde/algo-nd/nd/core"
	"github.com/cwbudde/algo-nd/nd/fourier"
	"github.com/cwbudde/algo-nd/nd/img"
	"github.com/cwbudde/algo-nd/nd/kernel"
	"github.com/cwbudde/algo-nd/nd/outofbounds"
	"github.com/cwbudde/algo-nd/nd/region"
	"github.com/cwbudde/algo-nd/nd/roi"
	"github.com/cwbudde/algo-nd/nd/value"
)

var (
	errUnknownShape  = errors.New("ndfilter: unknown structuring element shape")
	errUnknownKernel = errors.New("ndfilter: unknown kernel")
	errUnknownMethod = errors.New("ndfilter: unknown method")
	errNotPlanar     = errors.New("ndfilter: sobel needs a two-dimensional input")
)

type stageFunc func(in *img.ArrayImg[sample], s StageSpec, opts []core.OperatorOption) (*img.ArrayImg[sample], error)

type stageEntry struct {
	name string
	help string
	run  stageFunc
}

var stageRegistry = []stageEntry{
	{"dilate", "maximum over the structuring element", morphStage(roi.NewDilate[sample])},
	{"erode", "minimum over the structuring element", morphStage(roi.NewErode[sample])},
	{"open", "erosion followed by dilation", chainStage(roi.NewOpen[sample])},
	{"close", "dilation followed by erosion", chainStage(roi.NewClose[sample])},
	{"median", "median over the structuring element", medianStage},
	{"rank", "rank-th smallest value over the structuring element", rankStage},
	{"convolve", "convolution with a named kernel (direct or fft)", filterStage(false)},
	{"correlate", "correlation with a named kernel (direct or fft)", filterStage(true)},
	{"gaussian", "Gaussian smoothing, sigma per axis", gaussianStage},
	{"sobel", "gradient magnitude of two Sobel correlations", sobelStage},
}

func morphStage(
	build func(img.RandomAccessibleInterval[sample], *region.StructuringElement, outofbounds.Factory[sample], ...core.OperatorOption) *roi.Operator[sample, sample],
) stageFunc {
	return func(in *img.ArrayImg[sample], s StageSpec, opts []core.OperatorOption) (*img.ArrayImg[sample], error) {
		strel, err := structuringElement(s, in.NumDimensions())
		if err != nil {
			return nil, err
		}
		oob, err := boundary(s, nil)
		if err != nil {
			return nil, err
		}
		return execute[sample](build(in, strel, oob, opts...))
	}
}

func chainStage(
	build func(img.RandomAccessibleInterval[sample], *region.StructuringElement, outofbounds.Factory[sample], ...core.OperatorOption) *roi.Chain[sample],
) stageFunc {
	return func(in *img.ArrayImg[sample], s StageSpec, opts []core.OperatorOption) (*img.ArrayImg[sample], error) {
		strel, err := structuringElement(s, in.NumDimensions())
		if err != nil {
			return nil, err
		}
		oob, err := boundary(s, nil)
		if err != nil {
			return nil, err
		}
		return execute[sample](build(in, strel, oob, opts...))
	}
}

func medianStage(in *img.ArrayImg[sample], s StageSpec, opts []core.OperatorOption) (*img.ArrayImg[sample], error) {
	strel, err := structuringElement(s, in.NumDimensions())
	if err != nil {
		return nil, err
	}
	oob, err := boundary(s, nil)
	if err != nil {
		return nil, err
	}
	return execute[sample](roi.NewMedian[sample](in, strel, oob, opts...))
}

// rankStage defaults to the middle rank.
func rankStage(in *img.ArrayImg[sample], s StageSpec, opts []core.OperatorOption) (*img.ArrayImg[sample], error) {
	strel, err := structuringElement(s, in.NumDimensions())
	if err != nil {
		return nil, err
	}
	oob, err := boundary(s, nil)
	if err != nil {
		return nil, err
	}
	rank := strel.Count() / 2
	if s.Rank != nil {
		rank = *s.Rank
	}
	return execute[sample](roi.NewRank[sample](in, strel, rank, oob, opts...))
}

func filterStage(correlate bool) stageFunc {
	return func(in *img.ArrayImg[sample], s StageSpec, opts []core.OperatorOption) (*img.ArrayImg[sample], error) {
		k, err := namedKernel(s, in.NumDimensions())
		if err != nil {
			return nil, err
		}
		return applyKernel(in, k, s, correlate, nil, opts)
	}
}

// gaussianStage replicates a single sigma over every axis and extends the
// input by its border unless another strategy is named.
func gaussianStage(in *img.ArrayImg[sample], s StageSpec, opts []core.OperatorOption) (*img.ArrayImg[sample], error) {
	k, err := kernel.Gaussian(sigmas(s.Sigma, in.NumDimensions())...)
	if err != nil {
		return nil, err
	}
	return applyKernel(in, k, s, false, outofbounds.Border[sample](), opts)
}

func sobelStage(in *img.ArrayImg[sample], s StageSpec, opts []core.OperatorOption) (*img.ArrayImg[sample], error) {
	if in.NumDimensions() != 2 {
		return nil, fmt.Errorf("%w: got %d axes", errNotPlanar, in.NumDimensions())
	}
	oob, err := boundary(s, outofbounds.Border[sample]())
	if err != nil {
		return nil, err
	}
	gx, err := execute[sample](roi.NewCorrelation[sample, value.Int16, sample](in, kernel.SobelVertical(), oob, opts...))
	if err != nil {
		return nil, err
	}
	gy, err := execute[sample](roi.NewCorrelation[sample, value.Int16, sample](in, kernel.SobelHorizontal(), oob, opts...))
	if err != nil {
		return nil, err
	}
	for i, x := range gx.Data() {
		y := gy.Data()[i]
		gx.Data()[i] = sample(math.Hypot(float64(x), float64(y)))
	}
	return gx, nil
}

func applyKernel(in *img.ArrayImg[sample], k *img.ArrayImg[sample], s StageSpec, correlate bool,
	fallback outofbounds.Factory[sample], opts []core.OperatorOption,
) (*img.ArrayImg[sample], error) {
	switch s.Method {
	case "", "direct":
		oob, err := boundary(s, fallback)
		if err != nil {
			return nil, err
		}
		if correlate {
			return execute[sample](roi.NewCorrelation[sample, sample, sample](in, k, oob, opts...))
		}
		return execute[sample](roi.NewConvolution[sample, sample, sample](in, k, oob, opts...))
	case "fft":
		if s.OOB != "" {
			cfg := core.ApplyOperatorOptions(opts...)
			cfg.Logger.Warn("ndfilter: fft treats the outside as zero", "stage", cfg.Name, "oob", s.OOB)
		}
		var (
			out img.Img[sample]
			err error
		)
		if correlate {
			out, err = fourier.Correlate[sample, sample, sample](in, k)
		} else {
			out, err = fourier.Convolve[sample, sample, sample](in, k)
		}
		if err != nil {
			return nil, err
		}
		return toArray(out), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownMethod, s.Method)
	}
}

// execute runs the check/process protocol and closes the algorithm.
func execute[T any](alg roi.Algorithm[T]) (*img.ArrayImg[T], error) {
	defer func() { _ = alg.Close() }()
	if !alg.CheckInput() {
		return nil, alg.Err()
	}
	out := alg.Process()
	if !out.OK() {
		return nil, out.Err
	}
	return toArray(out.Result), nil
}

func toArray[T any](im img.Img[T]) *img.ArrayImg[T] {
	if a, ok := im.(*img.ArrayImg[T]); ok {
		return a
	}
	a := img.NewArrayImg[T](im)
	copy(a.Data(), img.ToSlice(im))
	return a
}

func structuringElement(s StageSpec, n int) (*region.StructuringElement, error) {
	switch s.Shape {
	case "", "box":
		size := s.Size
		if size == nil {
			size = lo.Times(n, func(int) int64 { return 3 })
		}
		return region.Box(size...)
	case "ball":
		return region.Ball(max(s.Radius, 1), n)
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownShape, s.Shape)
	}
}

// boundary returns the configured strategy, or fallback when none is named.
// A nil result leaves the choice to the operator.
func boundary(s StageSpec, fallback outofbounds.Factory[sample]) (outofbounds.Factory[sample], error) {
	if s.OOB == "" {
		return fallback, nil
	}
	st, err := outofbounds.ParseStrategy(s.OOB)
	if err != nil {
		return nil, err
	}
	return outofbounds.Config[sample]{Strategy: st, Value: sample(s.Value)}, nil
}

func namedKernel(s StageSpec, n int) (*img.ArrayImg[sample], error) {
	switch s.Kernel {
	case "", "box":
		size := s.Size
		if size == nil {
			size = lo.Times(n, func(int) int64 { return 3 })
		}
		return kernel.Box(size...)
	case "gaussian":
		return kernel.Gaussian(sigmas(s.Sigma, n)...)
	case "laplacian":
		return kernel.Laplacian(n)
	case "impulse":
		return kernel.Impulse[sample](lo.Times(n, func(int) int64 { return 3 })...)
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownKernel, s.Kernel)
	}
}

// sigmas spreads a single value over n axes and defaults to 1.
func sigmas(sigma []float64, n int) []float64 {
	switch len(sigma) {
	case 0:
		return lo.Times(n, func(int) float64 { return 1 })
	case 1:
		return lo.Times(n, func(int) float64 { return sigma[0] })
	default:
		return sigma
	}
}
