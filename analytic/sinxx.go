package analytic

import (
	"math"

	"github.com/cwbudde/algo-pattern/angle"
	"github.com/cwbudde/algo-pattern/ptype"
)

// DefaultFirstSideLobeSinXX and DefaultBackLobeSinXX are the defaults
// used when a query doesn't override FirstSideLobe/BackLobe. -13.2 dB
// is the classic uniform-aperture sinc side-lobe level.
const (
	DefaultFirstSideLobeSinXX = -13.2
	DefaultBackLobeSinXX      = -40.0
)

// SinXX is a separable sin(x)/x beam: the uniform-aperture far-field
// pattern in each plane, combined as a product and floored at the
// first side-lobe level so that nulls between lobes don't read deeper
// than the envelope spec.md describes. sinc(0)=1 by definition, so
// boresight always reads RefGain exactly.
type SinXX struct {
	base
}

// NewSinXX constructs a sin(x)/x beam.
func NewSinXX() *SinXX {
	return &SinXX{}
}

// Type returns ptype.TypeSinXX.
func (m *SinXX) Type() ptype.PatternType { return ptype.TypeSinXX }

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(x) / x
}

func (m *SinXX) shape(q ptype.GainQuery, az, el float64) float64 {
	firstSideLobe := resolveSideLobe(q, DefaultFirstSideLobeSinXX)

	var sAz, sEl float64 = 1, 1
	if q.HBW > 0 {
		sAz = sinc(az * math.Pi / q.HBW)
	}
	if q.VBW > 0 {
		sEl = sinc(el * math.Pi / q.VBW)
	}

	raw := linToDB(sAz * sAz * sEl * sEl)
	if raw < firstSideLobe {
		return firstSideLobe
	}
	return raw
}

// Gain implements refGain + shape(...), clamped to the back-lobe floor
// past |azim| > pi/2.
func (m *SinXX) Gain(q ptype.GainQuery) float32 {
	m.record(q.Polarity)
	az := angle.WrapPi(q.Azim)
	el := angle.WrapPiOver2(q.Elev)
	backLobe := resolveBackLobe(q, DefaultBackLobeSinXX)
	g := q.RefGain + m.shape(q, az, el)
	g = clampBackLobe(g, az, q.RefGain+backLobe)
	return float32(g)
}

// MinMaxGain returns the closed-form (min, max): max is RefGain (at
// boresight), min is the worse of the back lobe and 60 dB below the
// first side lobe.
func (m *SinXX) MinMaxGain(q ptype.GainQuery) (min, max float32) {
	firstSideLobe := resolveSideLobe(q, DefaultFirstSideLobeSinXX)
	backLobe := resolveBackLobe(q, DefaultBackLobeSinXX)
	return analyticMinMax(q.RefGain, q.RefGain+firstSideLobe, q.RefGain+backLobe)
}
