package value

import "math/cmplx"

// Complex128 is a double-precision complex sample. It has no total order
// and therefore only satisfies the Complex tier.
type Complex128 complex128

var _ Complex[Complex128] = Complex128(0)

func (v Complex128) Add(o Complex128) Complex128 { return v + o }
func (v Complex128) Mul(o Complex128) Complex128 { return v * o }
func (Complex128) Zero() Complex128 { return 0 }
func (Complex128) One() Complex128 { return 1 }
func (v Complex128) Real() float64 { return real(v) }
func (v Complex128) Imag() float64 { return imag(v) }

func (Complex128) WithComplex(re, im float64) Complex128 {
	return Complex128(complex(re, im))
}

// Conj returns the complex conjugate.
func (v Complex128) Conj() Complex128 { return Complex128(cmplx.Conj(complex128(v))) }

// Abs returns the magnitude.
func (v Complex128) Abs() float64 { return cmplx.Abs(complex128(v)) }
