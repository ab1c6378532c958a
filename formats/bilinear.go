package formats

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/cwbudde/algo-pattern/angle"
	"github.com/cwbudde/algo-pattern/cache"
	"github.com/cwbudde/algo-pattern/internal/lex"
	"github.com/cwbudde/algo-pattern/ptype"
)

// realGrid is complexGrid's real-valued counterpart, used by BiLinear.
type realGrid struct {
	azKeys []float64
	elKeys []float64
	// vals[elIdx][azIdx]
	vals [][]float64
}

func (g *realGrid) lookup(az, el float64) float64 {
	ai0, ai1, afrac := bracket(g.azKeys, az)
	ei0, ei1, efrac := bracket(g.elKeys, el)
	v00, v01 := g.vals[ei0][ai0], g.vals[ei0][ai1]
	v10, v11 := g.vals[ei1][ai0], g.vals[ei1][ai1]
	top := v00 + (v01-v00)*afrac
	bot := v10 + (v11-v10)*afrac
	return top + (bot-top)*efrac
}

// BiLinear is a single 2-D (azimuth, elevation) real-valued table,
// gridded over frequency rows exactly like Monopulse but without the
// complex sum/diff split: bilinear in angle, linear in frequency.
type BiLinear struct {
	filename string
	freqs    []float64
	grids    []*realGrid
	polarity ptype.Polarity
	lastErr  error
	cache    cache.MinMaxCache
}

// ParseBiLinear reads a .bil file:
//
//	freqCount azCount elCount freqMinHz freqStepHz azMinDeg azStepDeg elMinDeg elStepDeg
//	gainDB_0 ... gainDB_{azCount-1}   (one line per elevation, elCount lines per frequency, x freqCount)
func ParseBiLinear(r io.Reader) (*BiLinear, error) {
	s := lex.New(r, "//")

	header, err := s.ExpectFloats(9)
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ptype.ErrParse, err)
	}
	freqCount := int(header[0])
	azCount := int(header[1])
	elCount := int(header[2])
	freqMin, freqStep := header[3], header[4]
	azMinDeg, azStepDeg := header[5], header[6]
	elMinDeg, elStepDeg := header[7], header[8]

	azKeys := make([]float64, azCount)
	for i := range azKeys {
		azKeys[i] = (azMinDeg + float64(i)*azStepDeg) * math.Pi / 180
	}
	elKeys := make([]float64, elCount)
	for i := range elKeys {
		elKeys[i] = (elMinDeg + float64(i)*elStepDeg) * math.Pi / 180
	}

	freqs := make([]float64, freqCount)
	grids := make([]*realGrid, freqCount)
	for f := 0; f < freqCount; f++ {
		freqs[f] = freqMin + float64(f)*freqStep
		vals := make([][]float64, elCount)
		for e := 0; e < elCount; e++ {
			row, err := s.ExpectFloats(azCount)
			if err != nil {
				return nil, fmt.Errorf("%w: freq %d el %d: %v", ptype.ErrParse, f, e, err)
			}
			vals[e] = row
		}
		grids[f] = &realGrid{azKeys: azKeys, elKeys: elKeys, vals: vals}
	}
	return &BiLinear{freqs: freqs, grids: grids, cache: &cache.Entry{}}, nil
}

// Type returns ptype.TypeBiLinear.
func (b *BiLinear) Type() ptype.PatternType { return ptype.TypeBiLinear }

// Valid always reports true; ParseBiLinear never returns a partial
// pattern.
func (b *BiLinear) Valid() bool { return true }

// Filename returns the path b was loaded from.
func (b *BiLinear) Filename() string { return b.filename }

// SetFilename records the path b was loaded from.
func (b *BiLinear) SetFilename(name string) { b.filename = name }

// SetMinMaxCache replaces b's min/max cache.
func (b *BiLinear) SetMinMaxCache(c cache.MinMaxCache) { b.cache = c }

// Polarity returns the polarity of the most recent Gain query.
func (b *BiLinear) Polarity() ptype.Polarity { return b.polarity }

// LastError returns the error from the most recent query, or nil.
func (b *BiLinear) LastError() error { return b.lastErr }

// Gain bilinearly interpolates in (az, el) at the bracketing frequency
// rows and linearly interpolates the two results in frequency. Unlike
// Monopulse, BiLinear clamps an out-of-range frequency to the nearest
// edge rather than reporting UnsupportedFrequency — spec.md §4.4
// singles out Monopulse as the one format that disallows clamping.
func (b *BiLinear) Gain(q ptype.GainQuery) float32 {
	b.polarity = q.Polarity
	b.lastErr = nil

	az := angle.WrapPi(q.Azim)
	el := angle.WrapPiOver2(q.Elev)
	g := b.lookup(az, el, q.Freq) + q.RefGain
	if g < angle.SmallDB {
		g = angle.SmallDB
	}
	return float32(g)
}

func (b *BiLinear) lookup(az, el, freq float64) float64 {
	n := len(b.freqs)
	if n == 1 || freq <= b.freqs[0] {
		return b.grids[0].lookup(az, el)
	}
	if freq >= b.freqs[n-1] {
		return b.grids[n-1].lookup(az, el)
	}
	i := sort.SearchFloat64s(b.freqs, freq)
	if i < n && b.freqs[i] == freq {
		return b.grids[i].lookup(az, el)
	}
	v0 := b.grids[i-1].lookup(az, el)
	v1 := b.grids[i].lookup(az, el)
	frac := (freq - b.freqs[i-1]) / (b.freqs[i] - b.freqs[i-1])
	return v0 + (v1-v0)*frac
}

// MinMaxGain checks b's cache before scanning every stored grid cell
// across all frequency rows.
func (b *BiLinear) MinMaxGain(q ptype.GainQuery) (min, max float32) {
	return b.cache.Get(cache.KeyFromQuery(q), func() (float32, float32) {
		lo, hi := angle.SmallDB, angle.SmallDB
		first := true
		for _, g := range b.grids {
			for _, row := range g.vals {
				for _, v := range row {
					db := v + q.RefGain
					if first || db < lo {
						lo = db
					}
					if first || db > hi {
						hi = db
					}
					first = false
				}
			}
		}
		return float32(lo), float32(hi)
	})
}
