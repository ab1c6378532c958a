package formats

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/cwbudde/algo-pattern/angle"
	"github.com/cwbudde/algo-pattern/cache"
	"github.com/cwbudde/algo-pattern/internal/lex"
	"github.com/cwbudde/algo-pattern/interp"
	"github.com/cwbudde/algo-pattern/ptype"
	"github.com/cwbudde/algo-vecmath"
)

// complexGrid is a 2-D (azimuth, elevation) grid of complex samples
// for a single frequency row. Lookup bilinearly interpolates,
// clamping to the nearest edge outside the stored range (no
// extrapolation), mirroring [interp.Table.Lookup]'s clamping rule in
// two dimensions.
type complexGrid struct {
	azKeys []float64
	elKeys []float64
	// vals[elIdx][azIdx]
	vals [][]interp.Complex
}

func bracket(keys []float64, key float64) (i0, i1 int, frac float64) {
	n := len(keys)
	if n == 1 || key <= keys[0] {
		return 0, 0, 0
	}
	if key >= keys[n-1] {
		return n - 1, n - 1, 0
	}
	i := sort.SearchFloat64s(keys, key)
	if i < n && keys[i] == key {
		return i, i, 0
	}
	return i - 1, i, (key - keys[i-1]) / (keys[i] - keys[i-1])
}

func (g *complexGrid) lookup(az, el float64) interp.Complex {
	ai0, ai1, afrac := bracket(g.azKeys, az)
	ei0, ei1, efrac := bracket(g.elKeys, el)
	c00 := g.vals[ei0][ai0]
	c01 := g.vals[ei0][ai1]
	c10 := g.vals[ei1][ai0]
	c11 := g.vals[ei1][ai1]
	top := c00.Lerp(c01, afrac)
	bot := c10.Lerp(c11, afrac)
	return top.Lerp(bot, efrac)
}

// monopulseChannel is one of the sum/diff blocks: a frequency axis
// plus one complexGrid per frequency.
type monopulseChannel struct {
	freqs []float64
	grids []*complexGrid
}

// lookup returns (value, inRange). Out-of-frequency-range queries
// report inRange=false per spec.md §4.4's UnsupportedFrequency rule
// (Monopulse disallows clamping, unlike CRUISE).
func (c *monopulseChannel) lookup(az, el, freq float64) (interp.Complex, bool) {
	n := len(c.freqs)
	if freq < c.freqs[0] || freq > c.freqs[n-1] {
		return interp.Complex{}, false
	}
	if n == 1 || freq == c.freqs[0] {
		return c.grids[0].lookup(az, el), true
	}
	if freq == c.freqs[n-1] {
		return c.grids[n-1].lookup(az, el), true
	}
	i := sort.SearchFloat64s(c.freqs, freq)
	v0 := c.grids[i-1].lookup(az, el)
	v1 := c.grids[i].lookup(az, el)
	frac := (freq - c.freqs[i-1]) / (c.freqs[i] - c.freqs[i-1])
	return v0.Lerp(v1, frac), true
}

// Monopulse is the sum/difference complex-channel format used for
// monopulse angle-error measurement.
type Monopulse struct {
	filename string
	sum      monopulseChannel
	diff     monopulseChannel
	polarity ptype.Polarity
	lastErr  error
	cache    cache.MinMaxCache
}

// ParseMonopulse reads a .mon file: two blocks (sum, then diff), each:
//
//	freqCount azCount elCount freqMinHz freqStepHz azMinDeg azStepDeg elMinDeg elStepDeg
//	magDB phaseDeg   (azCount*elCount*freqCount of these, ordered freq, el, az)
func ParseMonopulse(r io.Reader) (*Monopulse, error) {
	s := lex.New(r, "//")

	sum, err := parseMonopulseChannel(s)
	if err != nil {
		return nil, fmt.Errorf("sum: %w", err)
	}
	diff, err := parseMonopulseChannel(s)
	if err != nil {
		return nil, fmt.Errorf("diff: %w", err)
	}
	return &Monopulse{sum: sum, diff: diff, cache: &cache.Entry{}}, nil
}

func parseMonopulseChannel(s *lex.Scanner) (monopulseChannel, error) {
	header, err := s.ExpectFloats(9)
	if err != nil {
		return monopulseChannel{}, fmt.Errorf("%w: header: %v", ptype.ErrParse, err)
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
	grids := make([]*complexGrid, freqCount)
	for f := 0; f < freqCount; f++ {
		freqs[f] = freqMin + float64(f)*freqStep
		vals := make([][]interp.Complex, elCount)
		for e := 0; e < elCount; e++ {
			row := make([]interp.Complex, azCount)
			for a := 0; a < azCount; a++ {
				pair, err := s.ExpectFloats(2)
				if err != nil {
					return monopulseChannel{}, fmt.Errorf("%w: freq %d el %d az %d: %v", ptype.ErrParse, f, e, a, err)
				}
				row[a] = interp.FromMagPhase(pair[0], pair[1])
			}
			vals[e] = row
		}
		grids[f] = &complexGrid{azKeys: azKeys, elKeys: elKeys, vals: vals}
	}
	return monopulseChannel{freqs: freqs, grids: grids}, nil
}

// Type returns ptype.TypeMonopulse.
func (m *Monopulse) Type() ptype.PatternType { return ptype.TypeMonopulse }

// Valid always reports true; ParseMonopulse never returns a partial
// pattern.
func (m *Monopulse) Valid() bool { return true }

// Filename returns the path m was loaded from.
func (m *Monopulse) Filename() string { return m.filename }

// SetFilename records the path m was loaded from.
func (m *Monopulse) SetFilename(name string) { m.filename = name }

// SetMinMaxCache replaces m's min/max cache.
func (m *Monopulse) SetMinMaxCache(c cache.MinMaxCache) { m.cache = c }

// Polarity returns the polarity of the most recent Gain query.
func (m *Monopulse) Polarity() ptype.Polarity { return m.polarity }

// LastError returns the error from the most recent query, or nil —
// in particular [ptype.ErrUnsupportedFrequency] after a query whose
// Freq fell outside the stored frequency axis.
func (m *Monopulse) LastError() error { return m.lastErr }

// Gain implements spec.md §4.4's Monopulse algorithm: select sum or
// diff by q.Delta, bilinearly interpolate in (az, el) at the
// bracketing frequency rows, linearly interpolate the two complex
// results in frequency, return 20*log10(|result|) + RefGain.
// Out-of-frequency-range queries return SmallDB and set LastError to
// [ptype.ErrUnsupportedFrequency] rather than clamping.
func (m *Monopulse) Gain(q ptype.GainQuery) float32 {
	m.polarity = q.Polarity
	m.lastErr = nil

	ch := &m.sum
	if q.Delta {
		ch = &m.diff
	}

	az := angle.WrapPi(q.Azim)
	el := angle.WrapPiOver2(q.Elev)
	result, inRange := ch.lookup(az, el, q.Freq)
	if !inRange {
		m.lastErr = ptype.ErrUnsupportedFrequency
		return float32(angle.SmallDB)
	}

	mag := result.Abs()
	g := 20*safeLog10(mag) + q.RefGain
	if g < angle.SmallDB {
		g = angle.SmallDB
	}
	return float32(g)
}

func safeLog10(x float64) float64 {
	const epsilon = 1e-30
	if x < epsilon {
		x = epsilon
	}
	return math.Log10(x)
}

// MinMaxGain checks m's cache for q's (hbw,vbw,polarity,freq,delta) key
// before scanning every stored grid cell for the channel selected by
// q.Delta; Monopulse has no closed form, so a cache miss genuinely
// requires a full scan. The per-cell magnitude |re+j*im| on a miss is
// computed with a single vecmath.Magnitude call over the whole grid's
// flattened re/im slices rather than a cmplx.Abs per sample.
func (m *Monopulse) MinMaxGain(q ptype.GainQuery) (min, max float32) {
	return m.cache.Get(cache.KeyFromQuery(q), func() (float32, float32) {
		ch := &m.sum
		if q.Delta {
			ch = &m.diff
		}
		lo, hi := angle.SmallDB, angle.SmallDB
		first := true
		for _, g := range ch.grids {
			n := 0
			for _, row := range g.vals {
				n += len(row)
			}
			re := make([]float64, 0, n)
			im := make([]float64, 0, n)
			for _, row := range g.vals {
				for _, c := range row {
					re = append(re, c.Re)
					im = append(im, c.Im)
				}
			}
			mags := make([]float64, n)
			vecmath.Magnitude(mags, re, im)
			for _, mag := range mags {
				db := 20*safeLog10(mag) + q.RefGain
				if first || db < lo {
					lo = db
				}
				if first || db > hi {
					hi = db
				}
				first = false
			}
		}
		return float32(lo), float32(hi)
	})
}
