// Package outofbounds lets a bounded container answer reads at any position.
//
// A [Strategy] names the rule applied outside the interval:
//
//   - StrategyConstant: a fixed value.
//   - StrategyBorder: the nearest sample inside (clamp).
//   - StrategyMirror: coordinates reflect at the edge sample, which is not repeated
//     (-1 reads 1).
//   - StrategyMirrorDouble: coordinates reflect beyond the edge sample, which is
//     repeated (-1 reads 0).
//   - StrategyPeriodic: coordinates wrap modulo the extent.
//
// Strategies are configuration, not subclasses: a [Config] holds the
// strategy and the constant value, and creates random accesses over any
// img.RandomAccessibleInterval.
//
//	ext := outofbounds.Extend(im, outofbounds.Mirror[value.Float64]())
//	ra := ext.RandomAccess()
//	ra.SetPosition([]int64{-1, 0})
//	v := *ra.Get()
//
// The returned random access satisfies img.RandomAccess, so every consumer of
// a plain random access accepts an extended one unchanged. Reads inside the
// interval return live references into the source. Reads outside return a
// reference to a private scratch sample that is refreshed on every Get, so
// writing through it never touches the source.
package outofbounds
