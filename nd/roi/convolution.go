package roi

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-nd/nd/core"
	"github.com/cwbudde/algo-nd/nd/img"
	"github.com/cwbudde/algo-nd/nd/outofbounds"
	"github.com/cwbudde/algo-nd/nd/region"
	"github.com/cwbudde/algo-nd/nd/space"
	"github.com/cwbudde/algo-nd/nd/value"
)

// NewConvolution creates a direct convolution of in with kernel:
//
//	out(p) = Σ_o in(p - size/2 + o) · kernel(size-1-o)
//
// where o runs over every kernel offset and size is the kernel size per
// axis. The sum is accumulated in float64 from zero and converted to Out
// once, with the saturation rules of Out. A nil oob uses constant zero
// unless in is already extended.
func NewConvolution[In value.Complex[In], K value.Complex[K], Out value.Complex[Out]](
	in img.RandomAccessibleInterval[In], kernel img.RandomAccessibleInterval[K],
	oob outofbounds.Factory[In], opts ...core.OperatorOption,
) *Operator[In, Out] {
	return newDirect[In, K, Out](in, kernel, oob, true, "convolve", opts)
}

// NewCorrelation creates a direct cross-correlation, using the conjugated
// kernel at the same offset:
//
//	out(p) = Σ_o in(p - size/2 + o) · conj(kernel(o))
func NewCorrelation[In value.Complex[In], K value.Complex[K], Out value.Complex[Out]](
	in img.RandomAccessibleInterval[In], kernel img.RandomAccessibleInterval[K],
	oob outofbounds.Factory[In], opts ...core.OperatorOption,
) *Operator[In, Out] {
	return newDirect[In, K, Out](in, kernel, oob, false, "correlate", opts)
}

type direct[In value.Complex[In], K value.Complex[K]] struct {
	kernel img.RandomAccessibleInterval[K]
	invert bool
	isReal bool
	wRe    []float64
	wIm    []float64
	inRe   []float64
	inIm   []float64
}

func newDirect[In value.Complex[In], K value.Complex[K], Out value.Complex[Out]](
	in img.RandomAccessibleInterval[In], kernel img.RandomAccessibleInterval[K],
	oob outofbounds.Factory[In], invert bool, name string, opts []core.OperatorOption,
) *Operator[In, Out] {
	var neg, pos []int64
	if kernel != nil {
		neg, pos = KernelExtents(kernel)
	}
	if oob == nil {
		if _, ok := in.(*outofbounds.Extended[In]); !ok {
			oob = outofbounds.Zero[In]()
		}
	}
	d := &direct[In, K]{kernel: kernel, invert: invert}
	var zero Out
	fn := func(p *Patch[In]) Out {
		re, im := d.accumulate(p)
		return zero.WithComplex(core.FlushDenormals(re), core.FlushDenormals(im))
	}
	op := New(in, neg, pos, oob, fn, append([]core.OperatorOption{core.WithName(name)}, opts...)...)
	op.validate = func() error { return d.load(op.in) }
	return op
}

// KernelExtents returns the window a kernel of the given size covers around
// its center: size/2 below and size-1-size/2 above on each axis.
func KernelExtents(kernel space.Interval) (negative, positive []int64) {
	n := kernel.NumDimensions()
	negative = make([]int64, n)
	positive = make([]int64, n)
	for d := 0; d < n; d++ {
		size := kernel.Dimension(d)
		negative[d] = size / 2
		positive[d] = size - 1 - size/2
	}
	return negative, positive
}

// load validates the kernel and caches its weights in window order. For
// convolution the weight at ordinal i is the kernel value at the point
// reflected offset, whose ordinal is total-1-i.
func (d *direct[In, K]) load(in space.EuclideanSpace) error {
	if d.kernel == nil {
		return ErrNilKernel
	}
	if d.kernel.NumDimensions() != in.NumDimensions() {
		return fmt.Errorf("%w: kernel has %d axes, input has %d",
			ErrDimensionMismatch, d.kernel.NumDimensions(), in.NumDimensions())
	}

	n := d.kernel.NumDimensions()
	origin := make([]int64, n)
	zeros := make([]int64, n)
	span := make([]int64, n)
	d.kernel.MinInto(origin)
	for k := range span {
		span[k] = d.kernel.Dimension(k) - 1
	}
	nb, err := region.NewNeighborhood(origin, zeros, span)
	if err != nil {
		return fmt.Errorf("roi: kernel: %w", err)
	}

	total := int(nb.Volume())
	d.wRe = core.EnsureLen(d.wRe, total)
	d.wIm = core.EnsureLen(d.wIm, total)
	d.inRe = core.EnsureLen(d.inRe, total)
	d.inIm = core.EnsureLen(d.inIm, total)
	d.isReal = true

	ra := d.kernel.RandomAccess()
	it := region.NewIterator(nb)
	for it.HasNext() {
		it.Fwd()
		ra.SetPosition(it.Position())
		k := *ra.Get()
		i := int(it.Index())
		// Convolution takes the reflected kernel as is; only correlation
		// conjugates. The textbook definitions differ this way, and a kernel
		// that conjugates in both modes would give the wrong sign on the
		// imaginary part of a complex convolution.
		if d.invert {
			i = total - 1 - i
			d.wIm[i] = k.Imag()
		} else {
			d.wIm[i] = -k.Imag()
		}
		d.wRe[i] = k.Real()
		if k.Imag() != 0 {
			d.isReal = false
		}
	}
	return nil
}

// accumulate returns the weighted sum over the window. Real kernels need
// two dot products, complex kernels four.
func (d *direct[In, K]) accumulate(p *Patch[In]) (re, im float64) {
	for p.Next() {
		v := *p.Get()
		i := p.Index()
		d.inRe[i] = v.Real()
		d.inIm[i] = v.Imag()
	}
	re = vecmath.DotProduct(d.inRe, d.wRe)
	im = vecmath.DotProduct(d.inIm, d.wRe)
	if !d.isReal {
		re -= vecmath.DotProduct(d.inIm, d.wIm)
		im += vecmath.DotProduct(d.inRe, d.wIm)
	}
	return re, im
}
