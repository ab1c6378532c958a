package analytic

import (
	"math"

	"github.com/cwbudde/algo-pattern/angle"
	"github.com/cwbudde/algo-pattern/ptype"
)

// DefaultFirstSideLobeGauss is the side-lobe level a Gauss model tapers
// to beyond its 3 dB contour when the query doesn't override
// FirstSideLobe.
const DefaultFirstSideLobeGauss = -20.0

// DefaultBackLobeGauss is the back-hemisphere floor used when the
// query doesn't override BackLobe.
const DefaultBackLobeGauss = -40.0

// gaussTaperRatio is the normalized radius (in half-beamwidths) beyond
// which the pattern has fully transitioned from the Gaussian main-lobe
// shape to the flat side-lobe floor.
const gaussTaperRatio = 2.0

// Gauss is a Gaussian main-lobe pattern: the main lobe falls off as
// exp(-ln2 * r^2) in linear power, where r is the look direction's
// distance from boresight in half-beamwidths — placing the -3 dB
// contour at r=1, i.e. at az=hbw/2 (and symmetrically for elevation),
// matching the glossary's "beamwidth is the full width between -3 dB
// points" convention. Beyond the 3 dB contour the pattern tapers
// linearly (in dB, vs. r) out to the first-side-lobe level by
// r=gaussTaperRatio, then holds flat.
type Gauss struct {
	base
}

// NewGauss constructs a Gaussian main-lobe pattern.
func NewGauss() *Gauss {
	return &Gauss{}
}

// Type returns ptype.TypeGauss.
func (m *Gauss) Type() ptype.PatternType { return ptype.TypeGauss }

func (m *Gauss) shape(q ptype.GainQuery, az, el float64) float64 {
	if q.HBW <= 0 || q.VBW <= 0 {
		return resolveBackLobe(q, DefaultBackLobeGauss)
	}
	rAz := az / (q.HBW / 2)
	rEl := el / (q.VBW / 2)
	r2 := rAz*rAz + rEl*rEl
	r := math.Sqrt(r2)

	firstSideLobe := resolveSideLobe(q, DefaultFirstSideLobeGauss)

	if r <= 1 {
		return linToDB(natExp(-ln2 * r2))
	}
	if r >= gaussTaperRatio {
		return firstSideLobe
	}
	// Linear taper in dB from -3dB at r=1 to firstSideLobe at
	// r=gaussTaperRatio.
	frac := (r - 1) / (gaussTaperRatio - 1)
	return -3 + (firstSideLobe+3)*frac
}

// Gain implements the shared analytic formula: refGain + shape(...),
// clamped to the back-lobe floor past |azim| > pi/2.
func (m *Gauss) Gain(q ptype.GainQuery) float32 {
	m.record(q.Polarity)
	az := angle.WrapPi(q.Azim)
	el := angle.WrapPiOver2(q.Elev)
	backLobe := resolveBackLobe(q, DefaultBackLobeGauss)
	g := q.RefGain + m.shape(q, az, el)
	g = clampBackLobe(g, az, q.RefGain+backLobe)
	return float32(g)
}

// MinMaxGain returns the closed-form (min, max) for Gauss: max is
// always RefGain, min is the worse of the back lobe and 60 dB below
// the first side lobe, both relative to RefGain.
func (m *Gauss) MinMaxGain(q ptype.GainQuery) (min, max float32) {
	firstSideLobe := resolveSideLobe(q, DefaultFirstSideLobeGauss)
	backLobe := resolveBackLobe(q, DefaultBackLobeGauss)
	return analyticMinMax(q.RefGain, q.RefGain+firstSideLobe, q.RefGain+backLobe)
}
