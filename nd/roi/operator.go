package roi

import (
	"fmt"
	"slices"
	"time"

	"github.com/cwbudde/algo-nd/nd/core"
	"github.com/cwbudde/algo-nd/nd/img"
	"github.com/cwbudde/algo-nd/nd/outofbounds"
	"github.com/cwbudde/algo-nd/nd/region"
	"github.com/cwbudde/algo-nd/nd/space"
)

// PatchFunc reduces the neighborhood of one output position to a sample.
type PatchFunc[In, Out any] func(p *Patch[In]) Out

// Operator is the engine behind every local operator. For each position of
// the input interval it relocates one reusable region iterator, walks the
// window over the out-of-bounds extended input and stores the PatchFunc
// result at the same position of a new output container.
type Operator[In, Out any] struct {
	cfg      core.OperatorConfig
	in       img.RandomAccessibleInterval[In]
	negative []int64
	positive []int64
	oob      outofbounds.Factory[In]
	fn       PatchFunc[In, Out]
	factory  img.Factory[Out]
	validate func() error

	phase   Phase
	err     error
	last    Outcome[Out]
	elapsed time.Duration
	closed  bool
}

var _ Algorithm[float64] = (*Operator[float64, float64])(nil)

// New creates an operator whose window reaches negative[d] below and
// positive[d] above each output position. A nil oob uses the strategy of an
// *outofbounds.Extended input, or Border for any other input.
func New[In, Out any](
	in img.RandomAccessibleInterval[In],
	negative, positive []int64,
	oob outofbounds.Factory[In],
	fn PatchFunc[In, Out],
	opts ...core.OperatorOption,
) *Operator[In, Out] {
	return &Operator[In, Out]{
		cfg:      core.ApplyOperatorOptions(opts...).Named("roi"),
		in:       in,
		negative: slices.Clone(negative),
		positive: slices.Clone(positive),
		oob:      oob,
		fn:       fn,
		factory:  img.ArrayFactory[Out]{},
	}
}

// Name returns the configured operator name.
func (o *Operator[In, Out]) Name() string { return o.cfg.Name }

// CheckInput validates the input, the window and any operator specific
// preconditions. On failure it records the error and returns false.
func (o *Operator[In, Out]) CheckInput() bool {
	o.err = o.check()
	if o.err != nil {
		o.phase = CheckedFailed
		return false
	}
	o.phase = CheckedOK
	return true
}

func (o *Operator[In, Out]) check() error {
	switch {
	case o.closed:
		return ErrClosed
	case o.in == nil:
		return ErrNilInput
	case o.fn == nil:
		return ErrNilPatchFunc
	}
	if o.validate != nil {
		if err := o.validate(); err != nil {
			return err
		}
	}
	n := o.in.NumDimensions()
	if len(o.negative) != n || len(o.positive) != n {
		return fmt.Errorf("%w: window has %d/%d axes, input has %d",
			ErrDimensionMismatch, len(o.negative), len(o.positive), n)
	}
	if _, err := region.NewNeighborhood(make([]int64, n), o.negative, o.positive); err != nil {
		return fmt.Errorf("roi: %s: %w", o.cfg.Name, err)
	}
	return nil
}

// Process computes the output. It runs CheckInput first unless the last
// check passed and the operator is still open. A panic inside the patch function fails the run instead of
// escaping.
func (o *Operator[In, Out]) Process() Outcome[Out] {
	start := time.Now()
	defer func() { o.elapsed = time.Since(start) }()

	if (o.closed || o.phase != CheckedOK) && !o.CheckInput() {
		o.last = failed[Out](o.err)
		o.cfg.Logger.Warn("roi: input rejected", "name", o.cfg.Name, "err", o.err)
		return o.last
	}

	result, err := o.run()
	if err != nil {
		o.phase, o.err = ProcessFailed, err
		o.last = failed[Out](err)
		o.cfg.Logger.Warn("roi: process failed", "name", o.cfg.Name, "err", err)
		return o.last
	}
	o.phase, o.err = Processed, nil
	o.last = succeeded(result)
	o.cfg.Logger.Debug("roi: processed", "name", o.cfg.Name,
		"volume", space.Volume(result), "elapsed", time.Since(start))
	return o.last
}

func (o *Operator[In, Out]) run() (result img.Img[Out], err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("%w: %s: %v", ErrPanic, o.cfg.Name, r)
		}
	}()

	n := o.in.NumDimensions()
	center := make([]int64, n)
	o.in.MinInto(center)
	nb, err := region.NewNeighborhood(center, o.negative, o.positive)
	if err != nil {
		return nil, err
	}

	patch := &Patch[In]{
		it:     region.NewIterator(nb),
		src:    o.source(),
		center: center,
	}
	out := o.factory.Create(o.in)
	c := out.Cursor()
	defer c.Close()
	for c.HasNext() {
		c.Fwd()
		c.Localize(center)
		patch.it.Relocate(center)
		*c.Get() = o.fn(patch)
	}
	return out, nil
}

func (o *Operator[In, Out]) source() img.RandomAccess[In] {
	if o.oob != nil {
		return o.oob.Create(o.in)
	}
	if ext, ok := o.in.(*outofbounds.Extended[In]); ok {
		return ext.RandomAccess()
	}
	return outofbounds.Border[In]().Create(o.in)
}

// Result returns the output of the last successful Process, or nil.
func (o *Operator[In, Out]) Result() img.Img[Out] {
	if o.phase != Processed {
		return nil
	}
	return o.last.Result
}

func (o *Operator[In, Out]) Outcome() Outcome[Out] { return o.last }

// ErrorMessage returns the recorded failure, or "".
func (o *Operator[In, Out]) ErrorMessage() string {
	if o.err == nil {
		return ""
	}
	return o.err.Error()
}

func (o *Operator[In, Out]) Err() error { return o.err }

func (o *Operator[In, Out]) Phase() Phase { return o.phase }

// ProcessingTime returns the wall time of the last Process call.
func (o *Operator[In, Out]) ProcessingTime() time.Duration { return o.elapsed }

// Close drops the input reference. Later checks fail with ErrClosed; a
// result already produced stays valid. Close is idempotent.
func (o *Operator[In, Out]) Close() error {
	o.closed = true
	o.in = nil
	return nil
}
