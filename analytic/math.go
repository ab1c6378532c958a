//go:build !fastmath

package analytic

import "math"

// natExp computes e^x using the standard library.
func natExp(x float64) float64 {
	return math.Exp(x)
}

// log10 computes log10(x) using the standard library.
func log10(x float64) float64 {
	return math.Log10(x)
}
