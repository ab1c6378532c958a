// Package pattern answers "what is the gain of this antenna looking
// at (az, el) at frequency f under polarization p?" for radar/EW/
// link-budget hosts. It is the factory and shared-type root for the
// analytic models in [analytic] and the on-disk formats in [formats];
// neither sub-package depends on this one, so there is no import
// cycle between the factory and what it dispatches to.
package pattern

import (
	"github.com/cwbudde/algo-pattern/angle"
	"github.com/cwbudde/algo-pattern/ptype"
)

// PatternHandle is the single interface every pattern type satisfies,
// whether loaded from disk or constructed analytically. Gain and
// MinMaxGain never return an error directly: a query-path failure
// (unsupported frequency, missing polarization channel) sets
// LastError and returns [SmallDB] instead, so a host sweeping many
// angles never has to check an error return on every call.
//
// Implementations are single-writer: Gain/MinMaxGain mutate a
// LastError slot (and, for table formats, a min/max cache entry), so
// concurrent callers on the same handle need host-side synchronization
// unless the handle was loaded with [WithAtomicCache], which swaps the
// table formats' cache for a lock-free compare-and-swap variant.
type PatternHandle interface {
	Gain(q GainQuery) float32
	MinMaxGain(q GainQuery) (min, max float32)
	Type() PatternType
	Valid() bool
	Filename() string
	Polarity() Polarity
	LastError() error
}

// HeaderInfo is implemented by handles that carry on-disk header
// metadata beyond type/valid/min/max — NSMA's identification block,
// XFDTD's named UAN parameters, PAT's header refGain/hbw/vbw — none of
// which feed into Gain. A host wanting to display that metadata should
// type-assert a PatternHandle against HeaderInfo rather than against a
// concrete formats.* type, since [WithErrorSink] wraps the handle
// LoadPatternFile returns.
type HeaderInfo interface {
	HeaderSummary() string
}

// GainQuery, PatternType, and Polarity are re-exported from ptype so
// callers of this package never need to import it directly.
type (
	GainQuery   = ptype.GainQuery
	PatternType = ptype.PatternType
	Polarity    = ptype.Polarity
)

// SmallDB is the gain floor Gain/MinMaxGain return in place of a
// meaningful value on a query-path failure, and the clamp floor for
// any analytic or tabulated shape's own roll-off.
const SmallDB = angle.SmallDB

// NoOverride is the GainQuery.FirstSideLobe/BackLobe sentinel: this
// value and anything more negative mean "use the pattern's own default."
const NoOverride = ptype.NoOverride

// Pattern type constants, re-exported for callers that want to branch
// on PatternHandle.Type() without importing ptype.
const (
	TypeGauss     = ptype.TypeGauss
	TypeCscSq     = ptype.TypeCscSq
	TypeSinXX     = ptype.TypeSinXX
	TypePedestal  = ptype.TypePedestal
	TypeOmni      = ptype.TypeOmni
	TypeTable     = ptype.TypeTable
	TypeRelTable  = ptype.TypeRelTable
	TypeCRUISE    = ptype.TypeCRUISE
	TypeMonopulse = ptype.TypeMonopulse
	TypeBiLinear  = ptype.TypeBiLinear
	TypeNSMA      = ptype.TypeNSMA
	TypeEZNEC     = ptype.TypeEZNEC
	TypeXFDTD     = ptype.TypeXFDTD
)

// Polarity constants, re-exported for the same reason.
const (
	PolarityUnknown       = ptype.PolarityUnknown
	PolarityHorizontal    = ptype.PolarityHorizontal
	PolarityVertical      = ptype.PolarityVertical
	PolarityRightCircular = ptype.PolarityRightCircular
	PolarityLeftCircular  = ptype.PolarityLeftCircular
	PolarityHorzVert      = ptype.PolarityHorzVert
	PolarityVertHorz      = ptype.PolarityVertHorz
)

// PatternTypeName returns t's canonical name ("Gauss", "CRUISE",
// "Monopulse", ...), or "Unknown".
func PatternTypeName(t PatternType) string { return ptype.TypeName(t) }

// PatternTypeFromName parses a canonical pattern type name, the
// inverse of PatternTypeName.
func PatternTypeFromName(s string) (PatternType, error) { return ptype.TypeFromName(s) }
