package interp

import "math"

// Complex is a plain {re, im} pair with component-wise linear
// arithmetic, sufficient for monopulse sum/difference interpolation.
// No library complex type is required, per spec design notes; this
// exists mainly so it can satisfy [Value] alongside float64.
type Complex struct {
	Re, Im float64
}

// FromMagPhase builds a Complex from a magnitude in dB and a phase in
// degrees, the on-disk representation used by the monopulse format.
func FromMagPhase(magDB, phaseDeg float64) Complex {
	mag := math.Pow(10, magDB/20)
	rad := phaseDeg * math.Pi / 180
	return Complex{Re: mag * math.Cos(rad), Im: mag * math.Sin(rad)}
}

// Abs returns the magnitude, computed with math.Hypot for numeric
// stability as called for by the design notes.
func (c Complex) Abs() float64 {
	return math.Hypot(c.Re, c.Im)
}

// Lerp linearly interpolates between c and other at parameter t,
// component-wise on the real and imaginary parts.
func (c Complex) Lerp(other Complex, t float64) Complex {
	return Complex{
		Re: c.Re + (other.Re-c.Re)*t,
		Im: c.Im + (other.Im-c.Im)*t,
	}
}

// Add returns the component-wise sum of c and other.
func (c Complex) Add(other Complex) Complex {
	return Complex{Re: c.Re + other.Re, Im: c.Im + other.Im}
}

// Scale returns c scaled by a real factor.
func (c Complex) Scale(factor float64) Complex {
	return Complex{Re: c.Re * factor, Im: c.Im * factor}
}
