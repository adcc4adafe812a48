// Package value defines the capability tiers a sample type can offer and the
// concrete sample types shipped with algo-nd.
//
// Algorithms are written against capabilities, not concrete types, so one
// operator serves integer, floating-point, complex and packed ARGB samples:
//
//   - [Comparable]: a total order. Needed by morphology and rank filters.
//   - [Complex]: arithmetic plus real and imaginary parts. Needed by
//     convolution and by frequency-domain consumers.
//   - [Real]: a Complex type with a total order, a settable real part and a
//     representable range. Needed by median filtering and interpolation.
//
// The tiers are generic interfaces used as type constraints, for example
//
//	func Dilate[T value.Comparable[T]](...)
//
// so a sample type that lacks a capability is rejected by the compiler when
// the operator is instantiated.
//
// Sample types are small value types. Containers hand out *T pointers into
// their storage; writing through the pointer writes the sample.
package value
