package outofbounds

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-nd/nd/img"
)

type randomAccess[T any] struct {
	src     img.RandomAccess[T]
	cfg     Config[T]
	min     []int64
	max     []int64
	pos     []int64
	mapped  []int64
	scratch T
}

func newRandomAccess[T any](src img.RandomAccessibleInterval[T], cfg Config[T]) *randomAccess[T] {
	n := src.NumDimensions()
	r := &randomAccess[T]{
		src:    src.RandomAccess(),
		cfg:    cfg,
		min:    make([]int64, n),
		max:    make([]int64, n),
		pos:    make([]int64, n),
		mapped: make([]int64, n),
	}
	src.MinInto(r.min)
	src.MaxInto(r.max)
	copy(r.pos, r.min)
	return r
}

func (r *randomAccess[T]) NumDimensions() int { return len(r.pos) }

func (r *randomAccess[T]) Localize(dst []int64) {
	checkLen(len(r.pos), len(dst))
	copy(dst, r.pos)
}

func (r *randomAccess[T]) Position(d int) int64 { return r.pos[d] }

func (r *randomAccess[T]) Fwd(d int) { r.pos[d]++ }

func (r *randomAccess[T]) Bck(d int) { r.pos[d]-- }

func (r *randomAccess[T]) Move(distance int64, d int) { r.pos[d] += distance }

func (r *randomAccess[T]) MoveBy(distance []int64) {
	checkLen(len(r.pos), len(distance))
	for d, v := range distance {
		r.pos[d] += v
	}
}

func (r *randomAccess[T]) SetPosition(pos []int64) {
	checkLen(len(r.pos), len(pos))
	copy(r.pos, pos)
}

func (r *randomAccess[T]) SetPositionAt(pos int64, d int) { r.pos[d] = pos }

// IsOutOfBounds reports whether the current position lies outside the
// source interval.
func (r *randomAccess[T]) IsOutOfBounds() bool {
	for d, p := range r.pos {
		if p < r.min[d] || p > r.max[d] {
			return true
		}
	}
	return false
}

func (r *randomAccess[T]) Get() *T {
	if !r.IsOutOfBounds() {
		r.src.SetPosition(r.pos)
		return r.src.Get()
	}
	if r.cfg.Strategy == StrategyConstant {
		r.scratch = r.cfg.Value
		return &r.scratch
	}
	for d, p := range r.pos {
		r.mapped[d] = mapCoord(r.cfg.Strategy, p, r.min[d], r.max[d])
	}
	r.src.SetPosition(r.mapped)
	r.scratch = *r.src.Get()
	return &r.scratch
}

func (r *randomAccess[T]) Copy() img.RandomAccess[T] {
	return &randomAccess[T]{
		src:    r.src.Copy(),
		cfg:    r.cfg,
		min:    r.min,
		max:    r.max,
		pos:    slices.Clone(r.pos),
		mapped: make([]int64, len(r.pos)),
	}
}

func checkLen(want, got int) {
	if want != got {
		panic(fmt.Sprintf("outofbounds: got %d coordinates, want %d", got, want))
	}
}
