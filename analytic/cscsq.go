package analytic

import (
	"math"

	"github.com/cwbudde/algo-pattern/angle"
	"github.com/cwbudde/algo-pattern/ptype"
)

// DefaultFirstSideLobeCscSq and DefaultBackLobeCscSq are the defaults
// used when a query doesn't override FirstSideLobe/BackLobe.
const (
	DefaultFirstSideLobeCscSq = -20.0
	DefaultBackLobeCscSq      = -40.0
)

// CscSq is a cosecant-squared elevation fan combined with a Gaussian
// azimuth beam, per spec.md §4.3. The fan's lower edge el0 is fixed at
// vbw/2 above boresight (the elevation at which the pattern attains
// its peak, i.e. shapeEl(el0)=0) and its upper edge el1 is the
// elevation ceiling pi/2; within [el0, el1] the elevation shape follows
// -10*log10(sin^2(el)/sin^2(el0)), and below el0 it rolls off as a
// Gaussian referenced at el0 with half-width vbw/2, shaping the
// fan-to-boresight transition the same way Gauss shapes its main lobe.
// Azimuth always uses the Gaussian shape from [Gauss].
type CscSq struct {
	base
}

// NewCscSq constructs a cosecant-squared pattern.
func NewCscSq() *CscSq {
	return &CscSq{}
}

// Type returns ptype.TypeCscSq.
func (m *CscSq) Type() ptype.PatternType { return ptype.TypeCscSq }

func gaussianLobe(r, firstSideLobe float64) float64 {
	r = math.Abs(r)
	if r <= 1 {
		return linToDB(natExp(-ln2 * r * r))
	}
	if r >= gaussTaperRatio {
		return firstSideLobe
	}
	frac := (r - 1) / (gaussTaperRatio - 1)
	return -3 + (firstSideLobe+3)*frac
}

func (m *CscSq) shape(q ptype.GainQuery, az, el float64) float64 {
	firstSideLobe := resolveSideLobe(q, DefaultFirstSideLobeCscSq)

	var shapeAz float64
	if q.HBW > 0 {
		shapeAz = gaussianLobe(az/(q.HBW/2), firstSideLobe)
	}

	var shapeEl float64
	if q.VBW > 0 {
		el0 := q.VBW / 2
		switch {
		case el >= el0:
			sinEl0 := math.Sin(el0)
			sinEl := math.Sin(el)
			shapeEl = -10 * log10((sinEl*sinEl)/(sinEl0*sinEl0))
		default:
			shapeEl = gaussianLobe((el-el0)/(q.VBW/2), firstSideLobe)
		}
	}

	return shapeAz + shapeEl
}

// Gain implements refGain + shape(...), clamped to the back-lobe floor
// past |azim| > pi/2.
func (m *CscSq) Gain(q ptype.GainQuery) float32 {
	m.record(q.Polarity)
	az := angle.WrapPi(q.Azim)
	el := angle.WrapPiOver2(q.Elev)
	backLobe := resolveBackLobe(q, DefaultBackLobeCscSq)
	g := q.RefGain + m.shape(q, az, el)
	g = clampBackLobe(g, az, q.RefGain+backLobe)
	return float32(g)
}

// MinMaxGain returns the closed-form (min, max): max is RefGain (at
// el=el0, az=0), min is the worse of the back lobe and 60 dB below the
// first side lobe.
func (m *CscSq) MinMaxGain(q ptype.GainQuery) (min, max float32) {
	firstSideLobe := resolveSideLobe(q, DefaultFirstSideLobeCscSq)
	backLobe := resolveBackLobe(q, DefaultBackLobeCscSq)
	return analyticMinMax(q.RefGain, q.RefGain+firstSideLobe, q.RefGain+backLobe)
}
