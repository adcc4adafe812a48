package value

import "fmt"

// ARGB is a packed 8-bit-per-channel colour sample laid out as 0xAARRGGBB.
//
// Samples are ordered by luminance, ties broken by the packed value, which
// makes colour images usable with morphology and rank filters. Arithmetic is
// per channel and saturating; Mul treats channels as fractions of 255.
type ARGB uint32

var (
	_ Comparable[ARGB] = ARGB(0)
	_ Numeric[ARGB]    = ARGB(0)
)

// NewARGB packs four channels.
func NewARGB(a, r, g, b uint8) ARGB {
	return ARGB(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (v ARGB) A() uint8 { return uint8(v >> 24) }
func (v ARGB) R() uint8 { return uint8(v >> 16) }
func (v ARGB) G() uint8 { return uint8(v >> 8) }
func (v ARGB) B() uint8 { return uint8(v) }

// Luminance returns the Rec. 601 luma of the colour channels in [0, 255].
func (v ARGB) Luminance() float64 {
	return 0.299*float64(v.R()) + 0.587*float64(v.G()) + 0.114*float64(v.B())
}

func (v ARGB) Compare(o ARGB) int {
	if c := cmp3(v.Luminance(), o.Luminance()); c != 0 {
		return c
	}
	return cmp3(int64(v), int64(o))
}

func (v ARGB) Add(o ARGB) ARGB {
	add := func(a, b uint8) uint8 {
		s := uint16(a) + uint16(b)
		if s > 255 {
			return 255
		}
		return uint8(s)
	}
	return NewARGB(add(v.A(), o.A()), add(v.R(), o.R()), add(v.G(), o.G()), add(v.B(), o.B()))
}

func (v ARGB) Mul(o ARGB) ARGB {
	mul := func(a, b uint8) uint8 {
		return uint8((uint16(a)*uint16(b) + 127) / 255)
	}
	return NewARGB(mul(v.A(), o.A()), mul(v.R(), o.R()), mul(v.G(), o.G()), mul(v.B(), o.B()))
}

func (ARGB) Zero() ARGB { return 0 }
func (ARGB) One() ARGB { return 0xFFFFFFFF }

func (v ARGB) String() string {
	return fmt.Sprintf("argb(%d,%d,%d,%d)", v.A(), v.R(), v.G(), v.B())
}
