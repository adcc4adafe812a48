//go:build !fastmath

package fastmath

import "math"

// Exp returns e**x.
func Exp(x float64) float64 {
	return math.Exp(x)
}
