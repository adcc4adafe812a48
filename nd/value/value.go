package value

import "cmp"

// Comparable is a total order over T.
type Comparable[T any] interface {
	// Compare returns a negative number, zero or a positive number when the
	// receiver sorts before, equal to or after other.
	Compare(other T) int
}

// Numeric is the arithmetic shared by all numeric sample types.
type Numeric[T any] interface {
	Add(other T) T
	Mul(other T) T
	Zero() T
	One() T
}

// Complex is a numeric type with real and imaginary parts.
type Complex[T any] interface {
	Numeric[T]
	Real() float64
	Imag() float64
	// WithComplex returns a T holding re + i·im. Types without an imaginary
	// part drop im.
	WithComplex(re, im float64) T
}

// Real is an ordered complex type whose imaginary part is always zero.
type Real[T any] interface {
	Complex[T]
	Comparable[T]
	// WithReal returns a T holding x, rounded and saturated as the type
	// requires.
	WithReal(x float64) T
	// MinReal and MaxReal bound the representable range.
	MinReal() float64
	MaxReal() float64
}

// FromFloat converts x to T.
func FromFloat[T Real[T]](x float64) T {
	var zero T
	return zero.WithReal(x)
}

// Convert maps a sample of one complex type to another.
func Convert[D Complex[D], S Complex[S]](s S) D {
	var zero D
	return zero.WithComplex(s.Real(), s.Imag())
}

// Max returns the larger of a and b, preferring a on ties.
func Max[T Comparable[T]](a, b T) T {
	if b.Compare(a) > 0 {
		return b
	}
	return a
}

// Min returns the smaller of a and b, preferring a on ties.
func Min[T Comparable[T]](a, b T) T {
	if b.Compare(a) < 0 {
		return b
	}
	return a
}

// Clip saturates x to the representable range of T.
func Clip[T Real[T]](x float64) float64 {
	var zero T
	lo, hi := zero.MinReal(), zero.MaxReal()
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// cmp3 orders NaN before every other value and equal to itself, so float
// samples keep a total order.
func cmp3[N int64 | float64](a, b N) int {
	return cmp.Compare(a, b)
}
