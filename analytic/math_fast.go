//go:build fastmath

package analytic

import "github.com/meko-christian/algo-approx"

// natExp computes e^x using algo-approx's fast approximation. Enabled
// by the fastmath build tag for hosts scanning large coverage grids
// (radar-equation sweeps, coverage maps) where Gauss/SinXX gain() is
// called enough times that the approximation's relative error is an
// acceptable trade for speed.
func natExp(x float64) float64 {
	return approx.FastExp(x)
}

// log10 computes log10(x) via algo-approx's fast natural log.
// log10(x) = ln(x) / ln(10).
func log10(x float64) float64 {
	const ln10 = 2.302585092994046
	return approx.FastLog(x) / ln10
}
