package analytic

import (
	"math"

	"github.com/cwbudde/algo-pattern/angle"
	"github.com/cwbudde/algo-pattern/ptype"
)

// DefaultBackLobePedestal is the back-hemisphere floor used when the
// query doesn't override BackLobe.
const DefaultBackLobePedestal = -40.0

// Pedestal is flat at RefGain within the box |az|<=hbw/2, |el|<=vbw/2,
// and falls linearly (in dB) to the back-lobe level as the look
// direction moves out to the edge of its domain (|az|=pi for azimuth,
// |el|=pi/2 for elevation) — whichever axis is proportionally further
// outside its box dominates the falloff.
type Pedestal struct {
	base
}

// NewPedestal constructs a pedestal-taper pattern.
func NewPedestal() *Pedestal {
	return &Pedestal{}
}

// Type returns ptype.TypePedestal.
func (m *Pedestal) Type() ptype.PatternType { return ptype.TypePedestal }

// excess returns how far |v| sits beyond the plateau edge, normalized
// to the [edge, limit] run; 0 inside the plateau, 1 at the domain
// limit, clamped in between.
func excess(v, edge, limit float64) float64 {
	v = math.Abs(v)
	if v <= edge || limit <= edge {
		return 0
	}
	if v >= limit {
		return 1
	}
	return (v - edge) / (limit - edge)
}

func (m *Pedestal) shape(q ptype.GainQuery, az, el float64) float64 {
	backLobe := resolveBackLobe(q, DefaultBackLobePedestal)

	exAz := excess(az, q.HBW/2, math.Pi)
	exEl := excess(el, q.VBW/2, math.Pi/2)
	ex := exAz
	if exEl > ex {
		ex = exEl
	}
	return ex * backLobe
}

// Gain implements refGain + shape(...), clamped to the back-lobe floor
// past |azim| > pi/2.
func (m *Pedestal) Gain(q ptype.GainQuery) float32 {
	m.record(q.Polarity)
	az := angle.WrapPi(q.Azim)
	el := angle.WrapPiOver2(q.Elev)
	backLobe := resolveBackLobe(q, DefaultBackLobePedestal)
	g := q.RefGain + m.shape(q, az, el)
	g = clampBackLobe(g, az, q.RefGain+backLobe)
	return float32(g)
}

// MinMaxGain returns the closed-form (min, max): max is RefGain
// (anywhere in the plateau), min is the back-lobe floor.
func (m *Pedestal) MinMaxGain(q ptype.GainQuery) (min, max float32) {
	backLobe := resolveBackLobe(q, DefaultBackLobePedestal)
	return float32(q.RefGain + backLobe), float32(q.RefGain)
}
