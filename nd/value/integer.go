package value

import "math"

// Uint8 is an unsigned 8-bit sample.
type Uint8 uint8

// Int16 is a signed 16-bit sample.
type Int16 int16

// Uint16 is an unsigned 16-bit sample.
type Uint16 uint16

// Int32 is a signed 32-bit sample.
type Int32 int32

var (
	_ Real[Uint8]  = Uint8(0)
	_ Real[Int16]  = Int16(0)
	_ Real[Uint16] = Uint16(0)
	_ Real[Int32]  = Int32(0)
)

// saturate rounds half away from zero and clamps to [lo, hi]. NaN maps to 0.
func saturate(x float64, lo, hi int64) int64 {
	if math.IsNaN(x) {
		return 0
	}
	r := math.Round(x)
	if r <= float64(lo) {
		return lo
	}
	if r >= float64(hi) {
		return hi
	}
	return int64(r)
}

func clampInt(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (v Uint8) Compare(o Uint8) int { return cmp3(int64(v), int64(o)) }
func (v Uint8) Add(o Uint8) Uint8 { return Uint8(clampInt(int64(v)+int64(o), 0, math.MaxUint8)) }
func (v Uint8) Mul(o Uint8) Uint8 { return Uint8(clampInt(int64(v)*int64(o), 0, math.MaxUint8)) }
func (Uint8) Zero() Uint8 { return 0 }
func (Uint8) One() Uint8 { return 1 }
func (v Uint8) Real() float64 { return float64(v) }
func (Uint8) Imag() float64 { return 0 }
func (Uint8) WithComplex(re, _ float64) Uint8 { return Uint8(saturate(re, 0, math.MaxUint8)) }
func (Uint8) WithReal(x float64) Uint8 { return Uint8(saturate(x, 0, math.MaxUint8)) }
func (Uint8) MinReal() float64 { return 0 }
func (Uint8) MaxReal() float64 { return math.MaxUint8 }

func (v Int16) Compare(o Int16) int { return cmp3(int64(v), int64(o)) }
func (v Int16) Add(o Int16) Int16 { return Int16(clampInt(int64(v)+int64(o), math.MinInt16, math.MaxInt16)) }
func (v Int16) Mul(o Int16) Int16 { return Int16(clampInt(int64(v)*int64(o), math.MinInt16, math.MaxInt16)) }
func (Int16) Zero() Int16 { return 0 }
func (Int16) One() Int16 { return 1 }
func (v Int16) Real() float64 { return float64(v) }
func (Int16) Imag() float64 { return 0 }
func (Int16) WithComplex(re, _ float64) Int16 { return Int16(saturate(re, math.MinInt16, math.MaxInt16)) }
func (Int16) WithReal(x float64) Int16 { return Int16(saturate(x, math.MinInt16, math.MaxInt16)) }
func (Int16) MinReal() float64 { return math.MinInt16 }
func (Int16) MaxReal() float64 { return math.MaxInt16 }

func (v Uint16) Compare(o Uint16) int { return cmp3(int64(v), int64(o)) }
func (v Uint16) Add(o Uint16) Uint16 { return Uint16(clampInt(int64(v)+int64(o), 0, math.MaxUint16)) }
func (v Uint16) Mul(o Uint16) Uint16 { return Uint16(clampInt(int64(v)*int64(o), 0, math.MaxUint16)) }
func (Uint16) Zero() Uint16 { return 0 }
func (Uint16) One() Uint16 { return 1 }
func (v Uint16) Real() float64 { return float64(v) }
func (Uint16) Imag() float64 { return 0 }
func (Uint16) WithComplex(re, _ float64) Uint16 { return Uint16(saturate(re, 0, math.MaxUint16)) }
func (Uint16) WithReal(x float64) Uint16 { return Uint16(saturate(x, 0, math.MaxUint16)) }
func (Uint16) MinReal() float64 { return 0 }
func (Uint16) MaxReal() float64 { return math.MaxUint16 }

func (v Int32) Compare(o Int32) int { return cmp3(int64(v), int64(o)) }
func (v Int32) Add(o Int32) Int32 { return Int32(clampInt(int64(v)+int64(o), math.MinInt32, math.MaxInt32)) }
func (v Int32) Mul(o Int32) Int32 { return Int32(clampInt(int64(v)*int64(o), math.MinInt32, math.MaxInt32)) }
func (Int32) Zero() Int32 { return 0 }
func (Int32) One() Int32 { return 1 }
func (v Int32) Real() float64 { return float64(v) }
func (Int32) Imag() float64 { return 0 }
func (Int32) WithComplex(re, _ float64) Int32 { return Int32(saturate(re, math.MinInt32, math.MaxInt32)) }
func (Int32) WithReal(x float64) Int32 { return Int32(saturate(x, math.MinInt32, math.MaxInt32)) }
func (Int32) MinReal() float64 { return math.MinInt32 }
func (Int32) MaxReal() float64 { return math.MaxInt32 }

