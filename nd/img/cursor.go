package img

import (
	"github.com/cwbudde/algo-nd/nd/space"
)

// arrayCursor walks the flat store of an ArrayImg. index is -1 while
// unstarted; pos is kept in step with index by an odometer so Localize does
// no division.
type arrayCursor[T any] struct {
	img   *ArrayImg[T]
	pos   []int64
	index int
	last  int
}

func newArrayCursor[T any](a *ArrayImg[T]) *arrayCursor[T] {
	return &arrayCursor[T]{
		img:   a,
		pos:   make([]int64, a.NumDimensions()),
		index: -1,
		last:  len(a.data) - 1,
	}
}

func (c *arrayCursor[T]) NumDimensions() int { return len(c.pos) }

func (c *arrayCursor[T]) Localize(dst []int64) {
	mustLen(len(c.pos), len(dst))
	copy(dst, c.pos)
}

func (c *arrayCursor[T]) Position(d int) int64 { return c.pos[d] }

func (c *arrayCursor[T]) State() space.State {
	switch {
	case c.index < 0:
		return space.Unstarted
	case c.index == c.last:
		return space.Exhausted
	default:
		return space.Positioned
	}
}

func (c *arrayCursor[T]) HasNext() bool {
	return c.index < c.last
}

// HasPrev is true while unstarted, since the first Bck jumps to the last
// sample.
func (c *arrayCursor[T]) HasPrev() bool {
	return c.index != 0
}

func (c *arrayCursor[T]) Fwd() {
	a := c.live()
	if c.index < 0 {
		c.index = 0
		a.MinInto(c.pos)
		return
	}
	if c.index >= c.last {
		panic(ErrCursorExhausted)
	}
	c.index++
	for d := range c.pos {
		c.pos[d]++
		if c.pos[d] <= a.Max(d) {
			return
		}
		c.pos[d] = a.Min(d)
	}
}

func (c *arrayCursor[T]) Bck() {
	a := c.live()
	if c.index < 0 {
		c.index = c.last
		a.MaxInto(c.pos)
		return
	}
	if c.index == 0 {
		panic(ErrCursorExhausted)
	}
	c.index--
	for d := range c.pos {
		c.pos[d]--
		if c.pos[d] >= a.Min(d) {
			return
		}
		c.pos[d] = a.Max(d)
	}
}

func (c *arrayCursor[T]) Reset() {
	c.index = -1
}

func (c *arrayCursor[T]) Get() *T {
	a := c.live()
	if c.index < 0 {
		panic(ErrNotPositioned)
	}
	return &a.data[c.index]
}

func (c *arrayCursor[T]) Close() error {
	c.img = nil
	return nil
}

func (c *arrayCursor[T]) live() *ArrayImg[T] {
	if c.img == nil {
		panic(ErrCursorClosed)
	}
	return c.img
}
