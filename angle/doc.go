// Package angle provides angle-wrapping and dB/linear conversion
// primitives shared by the analytic and tabulated pattern models.
//
// All angles are radians. Azimuth wraps to (-pi, pi]; elevation clamps
// to [-pi/2, pi/2] rather than wrapping, saturating at the poles
// instead of cycling. Gain conversions use the power
// convention (10*log10), not the amplitude convention (20*log10),
// since antenna gain is a power ratio.
package angle
