// Package patternspectrum is an additive diagnostic, not part of the
// gain query path: it FFTs a pattern's azimuth-gain samples to surface
// the dominant angular frequency content of a pattern — i.e., the
// side-lobe periodicity, a standard aperture/pattern Fourier-duality
// check in antenna engineering.
//
// It follows the teacher's measure/thd and measure/sweep idiom: a
// small Analyzer type wraps one algofft.Plan64 and returns a metrics
// struct, rather than exposing the FFT plan or raw complex spectrum to
// the caller.
package patternspectrum
