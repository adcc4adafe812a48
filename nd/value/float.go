package value

import "math"

// Float32 is a single-precision sample.
type Float32 float32

// Float64 is a double-precision sample.
type Float64 float64

var (
	_ Real[Float32] = Float32(0)
	_ Real[Float64] = Float64(0)
)

func (v Float32) Compare(o Float32) int { return cmp3(float64(v), float64(o)) }
func (v Float32) Add(o Float32) Float32 { return v + o }
func (v Float32) Mul(o Float32) Float32 { return v * o }
func (Float32) Zero() Float32 { return 0 }
func (Float32) One() Float32 { return 1 }
func (v Float32) Real() float64 { return float64(v) }
func (Float32) Imag() float64 { return 0 }
func (Float32) WithComplex(re, _ float64) Float32 { return Float32(re) }
func (Float32) WithReal(x float64) Float32 { return Float32(x) }
func (Float32) MinReal() float64 { return -math.MaxFloat32 }
func (Float32) MaxReal() float64 { return math.MaxFloat32 }

func (v Float64) Compare(o Float64) int { return cmp3(float64(v), float64(o)) }
func (v Float64) Add(o Float64) Float64 { return v + o }
func (v Float64) Mul(o Float64) Float64 { return v * o }
func (Float64) Zero() Float64 { return 0 }
func (Float64) One() Float64 { return 1 }
func (v Float64) Real() float64 { return float64(v) }
func (Float64) Imag() float64 { return 0 }
func (Float64) WithComplex(re, _ float64) Float64 { return Float64(re) }
func (Float64) WithReal(x float64) Float64 { return Float64(x) }
func (Float64) MinReal() float64 { return -math.MaxFloat64 }
func (Float64) MaxReal() float64 { return math.MaxFloat64 }
