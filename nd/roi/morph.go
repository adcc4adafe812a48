package roi

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/cwbudde/algo-nd/nd/core"
	"github.com/cwbudde/algo-nd/nd/img"
	"github.com/cwbudde/algo-nd/nd/outofbounds"
	"github.com/cwbudde/algo-nd/nd/region"
	"github.com/cwbudde/algo-nd/nd/value"
)

// NewDilate creates a grey-level dilation: the maximum over the members of
// strel. A nil oob uses Border unless in is already extended.
func NewDilate[T value.Comparable[T]](in img.RandomAccessibleInterval[T], strel *region.StructuringElement,
	oob outofbounds.Factory[T], opts ...core.OperatorOption,
) *Operator[T, T] {
	return newExtremum(in, strel, oob, "dilate", func(c, best T) bool { return c.Compare(best) > 0 }, opts)
}

// NewErode creates a grey-level erosion: the minimum over the members of
// strel.
func NewErode[T value.Comparable[T]](in img.RandomAccessibleInterval[T], strel *region.StructuringElement,
	oob outofbounds.Factory[T], opts ...core.OperatorOption,
) *Operator[T, T] {
	return newExtremum(in, strel, oob, "erode", func(c, best T) bool { return c.Compare(best) < 0 }, opts)
}

func newExtremum[T any](in img.RandomAccessibleInterval[T], strel *region.StructuringElement,
	oob outofbounds.Factory[T], name string, better func(c, best T) bool, opts []core.OperatorOption,
) *Operator[T, T] {
	var neg, pos []int64
	if strel != nil {
		neg, pos = strel.Extents()
	}
	fn := func(p *Patch[T]) T {
		var best T
		found := false
		for p.Next() {
			if !strel.Contains(p.Index()) {
				continue
			}
			if v := *p.Get(); !found || better(v, best) {
				best, found = v, true
			}
		}
		return best
	}
	op := New(in, neg, pos, oob, fn, append([]core.OperatorOption{core.WithName(name)}, opts...)...)
	op.validate = func() error { return checkElement(strel, op.in) }
	return op
}

func checkElement[T any](strel *region.StructuringElement, in img.RandomAccessibleInterval[T]) error {
	if strel == nil {
		return ErrNilElement
	}
	if strel.NumDimensions() != in.NumDimensions() {
		return fmt.Errorf("%w: %s has %d axes, input has %d",
			ErrDimensionMismatch, strel.Name(), strel.NumDimensions(), in.NumDimensions())
	}
	return nil
}

// withName appends a name option without touching the caller's slice.
func withName(opts []core.OperatorOption, name string) []core.OperatorOption {
	return append(slices.Clone(opts), core.WithName(name))
}

type stageFunc[T any] func(in img.RandomAccessibleInterval[T], strel *region.StructuringElement,
	oob outofbounds.Factory[T], opts ...core.OperatorOption) *Operator[T, T]

// Chain runs two morphology stages, feeding the result of the first into
// the second. The second stage is built only after the first succeeds.
type Chain[T value.Comparable[T]] struct {
	cfg    core.OperatorConfig
	strel  *region.StructuringElement
	oob    outofbounds.Factory[T]
	opts   []core.OperatorOption
	build  stageFunc[T]
	first  *Operator[T, T]
	second *Operator[T, T]

	phase   Phase
	last    Outcome[T]
	elapsed time.Duration
}

var _ Algorithm[value.Float64] = (*Chain[value.Float64])(nil)

// NewOpen creates a morphological opening: erosion followed by dilation.
func NewOpen[T value.Comparable[T]](in img.RandomAccessibleInterval[T], strel *region.StructuringElement,
	oob outofbounds.Factory[T], opts ...core.OperatorOption,
) *Chain[T] {
	return newChain(in, strel, oob, "open", NewErode[T], NewDilate[T], opts)
}

// NewClose creates a morphological closing: dilation followed by erosion.
func NewClose[T value.Comparable[T]](in img.RandomAccessibleInterval[T], strel *region.StructuringElement,
	oob outofbounds.Factory[T], opts ...core.OperatorOption,
) *Chain[T] {
	return newChain(in, strel, oob, "close", NewDilate[T], NewErode[T], opts)
}

func newChain[T value.Comparable[T]](in img.RandomAccessibleInterval[T], strel *region.StructuringElement,
	oob outofbounds.Factory[T], name string, first, second stageFunc[T], opts []core.OperatorOption,
) *Chain[T] {
	cfg := core.ApplyOperatorOptions(opts...).Named(name)
	return &Chain[T]{
		cfg:   cfg,
		strel: strel,
		oob:   oob,
		opts:  opts,
		build: second,
		first: first(in, strel, oob, withName(opts, cfg.Name+"/1")...),
	}
}

func (c *Chain[T]) Name() string { return c.cfg.Name }

// CheckInput checks the first stage, and the second stage once it exists.
func (c *Chain[T]) CheckInput() bool {
	ok := c.first.CheckInput()
	if c.second != nil {
		ok = c.second.CheckInput() && ok
	}
	if ok {
		c.phase = CheckedOK
	} else {
		c.phase = CheckedFailed
	}
	return ok
}

// Process runs the first stage and, if it succeeded, builds and runs the
// second on its result.
func (c *Chain[T]) Process() Outcome[T] {
	start := time.Now()
	defer func() { c.elapsed = time.Since(start) }()

	if out := c.first.Process(); !out.OK() {
		c.phase = c.first.Phase()
		c.last = failed[T](out.Err)
		c.cfg.Logger.Warn("roi: first stage failed", "name", c.cfg.Name, "err", out.Err)
		return c.last
	}
	if c.second != nil {
		_ = c.second.Close()
	}
	c.second = c.build(c.first.Result(), c.strel, c.oob, withName(c.opts, c.cfg.Name+"/2")...)
	out := c.second.Process()
	if !out.OK() {
		c.phase = c.second.Phase()
		c.last = failed[T](out.Err)
		c.cfg.Logger.Warn("roi: second stage failed", "name", c.cfg.Name, "err", out.Err)
		return c.last
	}
	c.phase = Processed
	c.last = out
	c.cfg.Logger.Debug("roi: processed", "name", c.cfg.Name, "elapsed", time.Since(start))
	return c.last
}

// Result returns the output of the second stage after a successful Process.
func (c *Chain[T]) Result() img.Img[T] {
	if c.phase != Processed {
		return nil
	}
	return c.last.Result
}

func (c *Chain[T]) Outcome() Outcome[T] { return c.last }

// Err joins the errors of both stages.
func (c *Chain[T]) Err() error {
	if c.second == nil {
		return c.first.Err()
	}
	return errors.Join(c.first.Err(), c.second.Err())
}

// ErrorMessage concatenates the messages of both stages.
func (c *Chain[T]) ErrorMessage() string {
	if err := c.Err(); err != nil {
		return err.Error()
	}
	return ""
}

func (c *Chain[T]) Phase() Phase { return c.phase }

func (c *Chain[T]) ProcessingTime() time.Duration { return c.elapsed }

// Close closes both stages. It is idempotent.
func (c *Chain[T]) Close() error {
	err := c.first.Close()
	if c.second != nil {
		err = errors.Join(err, c.second.Close())
	}
	return err
}
