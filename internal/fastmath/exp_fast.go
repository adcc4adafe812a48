//go:build fastmath

package fastmath

import "github.com/meko-christian/algo-approx"

// Exp returns an approximation of e**x.
func Exp(x float64) float64 {
	return approx.FastExp(x)
}
