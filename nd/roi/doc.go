// Package roi implements local operators: every output sample is computed
// from a window of input samples around the same position.
//
// # Protocol
//
// Every operator follows the same three phases:
//
//	op := roi.NewErode[value.Uint8](im, strel, nil)
//	if !op.CheckInput() {
//		return errors.New(op.ErrorMessage())
//	}
//	out := op.Process()
//	if !out.OK() {
//		return out.Err
//	}
//	result := op.Result()
//
// [Phase] tracks where an operator stands. Configuration problems such as a
// nil kernel or a dimension mismatch are reported by CheckInput and never
// panic. Process returns an [Outcome] instead of a bare bool; it runs the
// check itself when needed and turns any panic raised while walking the
// input into a Failed outcome.
//
// # Operators
//
//   - [NewDilate], [NewErode]: maximum and minimum over a structuring
//     element, for any value.Comparable sample.
//   - [NewOpen], [NewClose]: two-stage [Chain]s of the above. The second
//     stage is built from the first stage's result only after it succeeded.
//   - [NewRank], [NewMedian]: order statistics.
//   - [NewConvolution], [NewCorrelation]: direct weighted sums for
//     value.Complex samples.
//   - [New]: any reduction given as a [PatchFunc].
//
// # Borders
//
// Windows near the edge read through an out-of-bounds strategy. Morphology
// and rank filters default to Border, convolution and correlation to a
// constant zero. Passing an *outofbounds.Extended input with a nil factory
// uses the input's own strategy.
//
// Operators are single-threaded. Independent operators may share a
// read-only input.
package roi
