package formats

import (
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-pattern/angle"
	"github.com/cwbudde/algo-pattern/cache"
	"github.com/cwbudde/algo-pattern/internal/lex"
	"github.com/cwbudde/algo-pattern/interp"
	"github.com/cwbudde/algo-pattern/ptype"
	"github.com/cwbudde/algo-pattern/weighting"
)

// RelTable is the REL format: two 1-D tables like PAT, but the stored
// gains are explicitly relative (the table's own maximum is 0dB) and
// RefGain in every query is the sole source of absolute level —
// there's no header refGain/hbw/vbw to offset against. Header is a
// single line: azCount elCount symmetry.
type RelTable struct {
	filename string
	azim     *interp.SymmetricTable[float64]
	elev     *interp.SymmetricTable[float64]
	polarity ptype.Polarity
	lastErr  error
	cache    cache.MinMaxCache
}

// ParseRel reads a .rel file.
func ParseRel(r io.Reader) (*RelTable, error) {
	s := lex.New(r, "//")

	header, err := s.ExpectFloats(3)
	if err != nil {
		return nil, fmt.Errorf("%w: REL header: %v", ptype.ErrParse, err)
	}
	azCount, elCount := int(header[0]), int(header[1])
	symCode := interp.Symmetry(header[2])

	azim, err := parseRelAxis(s, azCount)
	if err != nil {
		return nil, err
	}
	elev, err := parseRelAxis(s, elCount)
	if err != nil {
		return nil, err
	}

	azSym, err := interp.NewSymmetric(azim, symCode)
	if err != nil {
		return nil, fmt.Errorf("%w: azimuth: %v", ptype.ErrRangeInvariant, err)
	}
	elSym, err := interp.NewSymmetric(elev, symCode)
	if err != nil {
		return nil, fmt.Errorf("%w: elevation: %v", ptype.ErrRangeInvariant, err)
	}

	return &RelTable{azim: azSym, elev: elSym, cache: &cache.Entry{}}, nil
}

func parseRelAxis(s *lex.Scanner, count int) (*interp.Table[float64], error) {
	t := interp.New[float64](count)
	for i := 0; i < count; i++ {
		pair, err := s.ExpectFloats(2)
		if err != nil {
			return nil, fmt.Errorf("%w: sample %d: %v", ptype.ErrParse, i, err)
		}
		t.Insert(pair[0]*math.Pi/180, pair[1])
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ptype.ErrRangeInvariant, err)
	}
	return t, nil
}

// Type returns ptype.TypeRelTable.
func (t *RelTable) Type() ptype.PatternType { return ptype.TypeRelTable }

// Valid always reports true; ParseRel never returns a partial table.
func (t *RelTable) Valid() bool { return true }

// Filename returns the path t was loaded from.
func (t *RelTable) Filename() string { return t.filename }

// SetFilename records the path t was loaded from.
func (t *RelTable) SetFilename(name string) { t.filename = name }

// SetMinMaxCache replaces t's min/max cache.
func (t *RelTable) SetMinMaxCache(c cache.MinMaxCache) { t.cache = c }

// Polarity returns the polarity of the most recent Gain query.
func (t *RelTable) Polarity() ptype.Polarity { return t.polarity }

// LastError returns the error from the most recent query, or nil.
func (t *RelTable) LastError() error { return t.lastErr }

// Gain implements the common tabulated-model algorithm: since the
// table is already relative to 0dB max, offsetting by RefGain is
// exactly "add RefGain".
func (t *RelTable) Gain(q ptype.GainQuery) float32 {
	t.polarity = q.Polarity
	t.lastErr = nil

	az := angle.WrapPi(q.Azim)
	el := angle.WrapPiOver2(q.Elev)
	gA := t.azim.Lookup(az)
	gE := t.elev.Lookup(el)
	g := weighting.Combine(gA, gE, az, el, q.Weighting) + q.RefGain
	if g < angle.SmallDB {
		g = angle.SmallDB
	}
	return float32(g)
}

// MinMaxGain checks t's cache before scanning both tables' extremes;
// see [PAT.MinMaxGain] for the weighted-combination caveat.
func (t *RelTable) MinMaxGain(q ptype.GainQuery) (min, max float32) {
	return t.cache.Get(cache.KeyFromQuery(q), func() (float32, float32) {
		azMin, azMax := t.azim.Extremes()
		elMin, elMax := t.elev.Extremes()
		lo := weighting.Combine(azMin, elMin, 1, 1, q.Weighting) + q.RefGain
		hi := weighting.Combine(azMax, elMax, 1, 1, q.Weighting) + q.RefGain
		return float32(lo), float32(hi)
	})
}
