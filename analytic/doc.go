// Package analytic implements the closed-form gain models: Gauss,
// CscSq (cosecant-squared), SinXX, Pedestal, and Omni, per spec.md
// §4.3. Each model computes refGain + shape(azim, elev, hbw, vbw,
// sideLobe) in dB, clamped to at least backLobe once |azim| exceeds
// pi/2, and each reports its min/max gain analytically rather than by
// scanning a table — there is nothing to scan.
//
// Models ignore polarity except to record it, per spec.md §4.6; they
// never fail a query, so LastError is always nil. They are
// constructed directly (New*), not through the factory, since there's
// no file to sniff.
package analytic
