package ptype

// PatternType identifies which pattern variant a handle implements.
// The set is closed: every on-disk format plus every analytic shape
// spec.md names, and nothing else — there is no open-ended registry.
type PatternType int

const (
	TypeUnknown PatternType = iota
	TypeGauss
	TypeCscSq
	TypeSinXX
	TypePedestal
	TypeOmni
	TypeTable
	TypeRelTable
	TypeCRUISE
	TypeMonopulse
	TypeBiLinear
	TypeNSMA
	TypeEZNEC
	TypeXFDTD
)

// Polarity selects the transmit/receive polarization channel a query
// is interested in.
type Polarity int

const (
	PolarityUnknown Polarity = iota
	PolarityHorizontal
	PolarityVertical
	PolarityRightCircular
	PolarityLeftCircular
	PolarityHorzVert
	PolarityVertHorz
)

// GainQuery is the complete input to a Gain or MinMaxGain computation.
//
// Azim/Elev are normalized by every implementation before use (callers
// need not pre-wrap them); HBW/VBW and RefGain are required by the
// analytic models and by weighted table lookup; Freq is required by
// the frequency-dependent tabulated formats (CRUISE, Monopulse,
// BiLinear); FirstSideLobe/BackLobe are sentinel-driven (see the
// field comments below and NoOverride for the exact replacement
// rule); Weighting selects angular-distance blending of azimuth and
// elevation samples instead of additive combination; Delta selects the
// monopulse difference channel instead of the sum channel.
type GainQuery struct {
	Azim, Elev float64
	Polarity   Polarity
	HBW, VBW   float64
	RefGain    float64
	// FirstSideLobe and BackLobe are dB levels. A value at or below
	// NoOverride signals "use the table/analytic default"; any value
	// above it overrides it.
	FirstSideLobe float64
	BackLobe      float64
	Freq          float64
	Weighting     bool
	Delta         bool
}

// NoOverride is the FirstSideLobe/BackLobe sentinel threshold: this
// value and anything more negative are treated as "not specified" and replaced
// by the pattern's own default, per spec.md's "sentinel-driven" rule.
const NoOverride = -200.0

// HasFirstSideLobeOverride reports whether q.FirstSideLobe specifies an
// override rather than asking for the pattern default.
func (q GainQuery) HasFirstSideLobeOverride() bool {
	return q.FirstSideLobe > NoOverride
}

// HasBackLobeOverride reports whether q.BackLobe specifies an override
// rather than asking for the pattern default.
func (q GainQuery) HasBackLobeOverride() bool {
	return q.BackLobe > NoOverride
}
