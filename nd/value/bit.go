package value

// Bit is a binary sample. Add is logical OR and Mul is logical AND, so the
// arithmetic saturates at 1.
type Bit bool

var _ Real[Bit] = Bit(false)

func (v Bit) Compare(o Bit) int {
	switch {
	case v == o:
		return 0
	case !bool(v):
		return -1
	default:
		return 1
	}
}

func (v Bit) Add(o Bit) Bit { return v || o }
func (v Bit) Mul(o Bit) Bit { return v && o }
func (Bit) Zero() Bit { return false }
func (Bit) One() Bit { return true }

func (v Bit) Real() float64 {
	if v {
		return 1
	}
	return 0
}

func (Bit) Imag() float64 { return 0 }

// WithReal maps values of at least 0.5 to true.
func (Bit) WithReal(x float64) Bit { return x >= 0.5 }

func (b Bit) WithComplex(re, _ float64) Bit { return b.WithReal(re) }
func (Bit) MinReal() float64 { return 0 }
func (Bit) MaxReal() float64 { return 1 }
