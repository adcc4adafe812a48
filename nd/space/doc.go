// Package space describes the geometry every other nd package is built on:
// dimensionality, integer and real-valued intervals, and the two facets of a
// position (reading it and moving it).
//
// # Intervals
//
// An [Interval] is a per-axis closed range [min, max]. It owns no samples;
// it only describes extent. [FinalInterval] is the immutable implementation:
//
//	box, err := space.NewInterval([]int64{0, 0}, []int64{639, 479})
//	grown := box.Expand([]int64{2, 2})    // new interval, box unchanged
//
// Constructing an interval from another one copies the bounds, so the two
// never alias.
//
// # Positions
//
// [Localizable] reports a coordinate vector, [Positionable] changes it by
// unit steps, arbitrary distances, or absolute jumps. [Point] and [RealPoint]
// are the plain implementations; cursors in the img package implement the
// same facets.
//
// # Dimensionality
//
// Every coordinate array handed to this package must have exactly
// NumDimensions() entries. A mismatch is reported as [ErrDimensionMismatch]
// and never silently truncated or padded.
package space
