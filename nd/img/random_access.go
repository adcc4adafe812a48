package img

import (
	"fmt"
	"slices"
)

type arrayRandomAccess[T any] struct {
	img   *ArrayImg[T]
	pos   []int64
	index int64
}

func newArrayRandomAccess[T any](a *ArrayImg[T]) *arrayRandomAccess[T] {
	ra := &arrayRandomAccess[T]{img: a, pos: make([]int64, a.NumDimensions())}
	a.MinInto(ra.pos)
	return ra
}

func (r *arrayRandomAccess[T]) NumDimensions() int { return len(r.pos) }

func (r *arrayRandomAccess[T]) Localize(dst []int64) {
	mustLen(len(r.pos), len(dst))
	copy(dst, r.pos)
}

func (r *arrayRandomAccess[T]) Position(d int) int64 { return r.pos[d] }

func (r *arrayRandomAccess[T]) Fwd(d int) {
	r.pos[d]++
	r.index += r.img.strides[d]
}

func (r *arrayRandomAccess[T]) Bck(d int) {
	r.pos[d]--
	r.index -= r.img.strides[d]
}

func (r *arrayRandomAccess[T]) Move(distance int64, d int) {
	r.pos[d] += distance
	r.index += distance * r.img.strides[d]
}

func (r *arrayRandomAccess[T]) MoveBy(distance []int64) {
	mustLen(len(r.pos), len(distance))
	for d, v := range distance {
		r.Move(v, d)
	}
}

func (r *arrayRandomAccess[T]) SetPosition(pos []int64) {
	mustLen(len(r.pos), len(pos))
	copy(r.pos, pos)
	r.index = int64(r.img.Index(pos))
}

func (r *arrayRandomAccess[T]) SetPositionAt(pos int64, d int) {
	r.Move(pos-r.pos[d], d)
}

func (r *arrayRandomAccess[T]) Get() *T {
	for d, p := range r.pos {
		if p < r.img.Min(d) || p > r.img.Max(d) {
			panic(fmt.Errorf("%w: %v not in %v", ErrOutOfBounds, r.pos, r.img.FinalInterval))
		}
	}
	return &r.img.data[r.index]
}

func (r *arrayRandomAccess[T]) Copy() RandomAccess[T] {
	return &arrayRandomAccess[T]{img: r.img, pos: slices.Clone(r.pos), index: r.index}
}

func mustLen(want, got int) {
	if want != got {
		panic(fmt.Sprintf("img: got %d coordinates, want %d", got, want))
	}
}
