package analytic

import "github.com/cwbudde/algo-pattern/ptype"

// Omni is a constant-gain pattern: shape(az,el) = 0 everywhere.
type Omni struct {
	base
}

// NewOmni constructs an omnidirectional pattern.
func NewOmni() *Omni {
	return &Omni{}
}

// Gain returns q.RefGain unconditionally.
func (m *Omni) Gain(q ptype.GainQuery) float32 {
	m.record(q.Polarity)
	return float32(q.RefGain)
}

// MinMaxGain returns (q.RefGain, q.RefGain): an omni pattern has no
// spread.
func (m *Omni) MinMaxGain(q ptype.GainQuery) (min, max float32) {
	g := float32(q.RefGain)
	return g, g
}

// Type returns ptype.TypeOmni.
func (m *Omni) Type() ptype.PatternType { return ptype.TypeOmni }
