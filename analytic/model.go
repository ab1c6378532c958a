package analytic

import (
	"math"

	"github.com/cwbudde/algo-pattern/ptype"
)

// ln2 is used by Gauss to place its -3 dB contour at the half-beamwidth
// point, per the glossary definition of hbw/vbw as the full width
// between -3 dB points.
const ln2 = 0.693147180559945309417232121458

// linEpsilon floors a linear power ratio before log10 so the result
// never produces -Inf/NaN; chosen so linToDB(0) lands at the
// angle.SmallDB-equivalent floor used throughout this package.
const linEpsilon = 1e-30

// linToDB converts a linear power ratio to dB using this package's
// (possibly fast-math) log10, flooring non-positive input.
func linToDB(linear float64) float64 {
	if linear < linEpsilon {
		linear = linEpsilon
	}
	return 10 * log10(linear)
}

// base holds the state every analytic model shares: the
// last-recorded polarity (models ignore polarity for gain purposes but
// still report it back, per spec.md §4.6). There is no last-error
// slot: LastError always returns nil, since analytic models never fail
// a query.
type base struct {
	polarity ptype.Polarity
}

func (b *base) Valid() bool             { return true }
func (b *base) Filename() string        { return "" }
func (b *base) Polarity() ptype.Polarity { return b.polarity }
func (b *base) LastError() error        { return nil }

func (b *base) record(p ptype.Polarity) {
	b.polarity = p
}

// clampBackLobe enforces spec.md §4.3's back-hemisphere floor: once
// the look direction is more than 90 degrees off boresight in azimuth,
// gain can't read lower than the back-lobe level — it's clamped up to
// at least backLobeDB.
func clampBackLobe(gainDB, azim, backLobeDB float64) float64 {
	if math.Abs(azim) > math.Pi/2 && gainDB < backLobeDB {
		return backLobeDB
	}
	return gainDB
}

// resolveSideLobe returns q's FirstSideLobe override if present,
// otherwise def.
func resolveSideLobe(q ptype.GainQuery, def float64) float64 {
	if q.HasFirstSideLobeOverride() {
		return q.FirstSideLobe
	}
	return def
}

// resolveBackLobe returns q's BackLobe override if present, otherwise
// def.
func resolveBackLobe(q ptype.GainQuery, def float64) float64 {
	if q.HasBackLobeOverride() {
		return q.BackLobe
	}
	return def
}

// analyticMinMax implements the closed-form min/max rule shared by
// every analytic model: max is always the reference gain (attained at
// boresight), min is the worse of the back lobe floor and 60 dB below
// the first side lobe.
func analyticMinMax(refGain, firstSideLobe, backLobe float64) (min, max float32) {
	m := backLobe
	if alt := firstSideLobe - 60; alt > m {
		m = alt
	}
	return float32(m), float32(refGain)
}
