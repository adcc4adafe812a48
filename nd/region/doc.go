// Package region enumerates the integer positions of a rectangular window
// around a moving center.
//
// A [Neighborhood] is a value-like descriptor: a center plus a negative and a
// positive extent per axis. The window covers
//
//	center[d]-negative[d] .. center[d]+positive[d]
//
// An [Iterator] walks that window in a fixed order, axis 0 fastest, like an
// odometer. It never allocates while stepping, and [Iterator.Relocate] moves
// the window to a new center in place, so one iterator serves every output
// position of an image:
//
//	it := region.NewIterator(nb)
//	for each output position p {
//		it.Relocate(p)
//		for it.HasNext() {
//			it.Fwd()
//			visit(it.Position())
//		}
//	}
//
// Stepping past either end of the window is a programming error and panics
// with [ErrPastEnd] or [ErrBeforeStart].
//
// A [StructuringElement] adds a boolean mask to a box so morphology can use
// non-rectangular shapes such as [Ball]; [StructuringElement.Contains] takes
// the ordinal reported by [Iterator.Index].
package region
