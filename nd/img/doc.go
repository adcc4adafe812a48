// Package img defines how samples are reached: random access by position and
// sequential iteration by cursor. It also ships [ArrayImg], a flat in-memory
// container used as the default output of the local operators in package roi.
//
// # Random access
//
// A [RandomAccess] is both Localizable and Positionable. It can step by one
// unit along an axis, move by an arbitrary distance, or jump to an absolute
// position. Get returns a pointer into the backing store, so
//
//	ra := im.RandomAccess()
//	ra.SetPosition([]int64{3, 4})
//	*ra.Get() = 7
//
// writes the sample at (3, 4). There is no caching: Get always reflects the
// current position.
//
// # Cursors
//
// A [Cursor] visits every sample of a container once, axis 0 fastest. It is a
// three-state machine (see space.State): a fresh cursor is Unstarted, the
// first Fwd moves it to the first sample, and it is Exhausted while it sits
// on the last one. Stepping beyond either end panics with
// [ErrCursorExhausted].
//
//	c := im.Cursor()
//	for c.HasNext() {
//		c.Fwd()
//		sum += c.Get().Real()
//	}
//
// # Bounds
//
// ArrayImg panics with [ErrOutOfBounds] when a sample outside its interval is
// read. Wrap the container with package outofbounds to read beyond the edge.
//
// None of the types in this package are safe for concurrent mutation. Give
// every goroutine its own RandomAccess or Cursor.
package img
