// Package interp provides the ordered-key lookup tables used by the
// tabulated pattern models.
//
// [Table] is a generic 1-D interpolation table: keys strictly
// ascending, lookup by bisection, linear interpolation between the
// bracketing pair, and clamping (no extrapolation) outside the stored
// range. [SymmetricTable] wraps a Table with a symmetry code that
// folds an out-of-range key into the stored domain before lookup,
// for formats that store only half (or a quadrant) of a pattern and
// rely on mirror/rotational symmetry for the rest.
//
// Two value types are supported: float64 for ordinary real-valued
// tables, and [Complex] for the sum/difference channels of a monopulse
// pattern, where both magnitude and phase must be interpolated
// component-wise on their real and imaginary parts.
package interp
