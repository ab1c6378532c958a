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
	"github.com/cwbudde/algo-pattern/weighting"
)

// cruiseAxis holds one plane (azimuth or elevation) of a CRUISE file:
// a frequency axis and, for each frequency, a 1-D table over angle.
// Samples on disk are voltage gains; they're squared to power and
// converted to dB at parse time so query-time work is pure
// interpolation.
type cruiseAxis struct {
	freqs  []float64
	tables []*interp.Table[float64]
}

// lookup interpolates gA/gE's common two-stage algorithm from spec.md
// §4.4: clamp frequency to the nearest row outside [min,max], else
// linearly interpolate the two bracketing rows' angle lookups.
func (a *cruiseAxis) lookup(ang, freq float64) float64 {
	n := len(a.freqs)
	if n == 1 || freq <= a.freqs[0] {
		return a.tables[0].Lookup(ang)
	}
	if freq >= a.freqs[n-1] {
		return a.tables[n-1].Lookup(ang)
	}
	i := sort.SearchFloat64s(a.freqs, freq)
	if i < n && a.freqs[i] == freq {
		return a.tables[i].Lookup(ang)
	}
	f0, f1 := a.freqs[i-1], a.freqs[i]
	v0 := a.tables[i-1].Lookup(ang)
	v1 := a.tables[i].Lookup(ang)
	frac := (freq - f0) / (f1 - f0)
	return v0 + (v1-v0)*frac
}

func (a *cruiseAxis) extremes() (min, max float64) {
	min, max = angle.SmallDB, -angle.SmallDB
	first := true
	for _, t := range a.tables {
		tmin, tmax := t.Extremes()
		if first || tmin < min {
			min = tmin
		}
		if first || tmax > max {
			max = tmax
		}
		first = false
	}
	return min, max
}

// CRUISE is the frequency-dependent voltage-gain format: two planes
// (azimuth, elevation), each gridded over (frequency, angle).
type CRUISE struct {
	filename string
	azim     cruiseAxis
	elev     cruiseAxis
	polarity ptype.Polarity
	lastErr  error
	cache    cache.MinMaxCache
}

// ParseCRUISE reads a .cru file: two axis blocks (azimuth, then
// elevation), each:
//
//	angleCount freqCount angleMinDeg angleStepDeg
//	freq_0 freq_1 ... freq_{freqCount-1}      (Hz)
//	v_0 v_1 ... v_{angleCount-1}              (one row per frequency, x freqCount)
func ParseCRUISE(r io.Reader) (*CRUISE, error) {
	s := lex.New(r, "//")

	azim, err := parseCruiseAxis(s)
	if err != nil {
		return nil, fmt.Errorf("azimuth: %w", err)
	}
	elev, err := parseCruiseAxis(s)
	if err != nil {
		return nil, fmt.Errorf("elevation: %w", err)
	}
	return &CRUISE{azim: azim, elev: elev, cache: &cache.Entry{}}, nil
}

func parseCruiseAxis(s *lex.Scanner) (cruiseAxis, error) {
	header, err := s.ExpectFloats(4)
	if err != nil {
		return cruiseAxis{}, fmt.Errorf("%w: header: %v", ptype.ErrParse, err)
	}
	angleCount := int(header[0])
	freqCount := int(header[1])
	angleMinDeg := header[2]
	angleStepDeg := header[3]

	freqs, err := s.ExpectFloats(freqCount)
	if err != nil {
		return cruiseAxis{}, fmt.Errorf("%w: freq axis: %v", ptype.ErrParse, err)
	}
	for i := 1; i < len(freqs); i++ {
		if freqs[i] <= freqs[i-1] {
			return cruiseAxis{}, fmt.Errorf("%w: freq axis not ascending", ptype.ErrRangeInvariant)
		}
	}

	axis := cruiseAxis{freqs: freqs, tables: make([]*interp.Table[float64], freqCount)}
	for f := 0; f < freqCount; f++ {
		row, err := s.ExpectFloats(angleCount)
		if err != nil {
			return cruiseAxis{}, fmt.Errorf("%w: freq row %d: %v", ptype.ErrParse, f, err)
		}
		t := interp.New[float64](angleCount)
		for i, voltage := range row {
			angleRad := (angleMinDeg + float64(i)*angleStepDeg) * math.Pi / 180
			power := voltage * voltage
			t.Insert(angleRad, angle.LinearToDB(power))
		}
		if err := t.Validate(); err != nil {
			return cruiseAxis{}, fmt.Errorf("%w: freq row %d: %v", ptype.ErrRangeInvariant, f, err)
		}
		axis.tables[f] = t
	}
	return axis, nil
}

// Type returns ptype.TypeCRUISE.
func (c *CRUISE) Type() ptype.PatternType { return ptype.TypeCRUISE }

// Valid always reports true; ParseCRUISE never returns a partial
// pattern.
func (c *CRUISE) Valid() bool { return true }

// Filename returns the path c was loaded from.
func (c *CRUISE) Filename() string { return c.filename }

// SetFilename records the path c was loaded from.
func (c *CRUISE) SetFilename(name string) { c.filename = name }

// SetMinMaxCache replaces c's min/max cache.
func (c *CRUISE) SetMinMaxCache(ca cache.MinMaxCache) { c.cache = ca }

// Polarity returns the polarity of the most recent Gain query.
func (c *CRUISE) Polarity() ptype.Polarity { return c.polarity }

// LastError returns the error from the most recent query, or nil.
func (c *CRUISE) LastError() error { return c.lastErr }

// Gain implements spec.md §4.4's CRUISE algorithm: frequency-aware
// lookup on each plane, combine, offset, clamp.
func (c *CRUISE) Gain(q ptype.GainQuery) float32 {
	c.polarity = q.Polarity
	c.lastErr = nil

	az := angle.WrapPi(q.Azim)
	el := angle.WrapPiOver2(q.Elev)
	gA := c.azim.lookup(az, q.Freq)
	gE := c.elev.lookup(el, q.Freq)
	g := weighting.Combine(gA, gE, az, el, q.Weighting) + q.RefGain
	if g < angle.SmallDB {
		g = angle.SmallDB
	}
	return float32(g)
}

// MinMaxGain checks c's cache before scanning both planes' extremes
// across every stored frequency row; see [PAT.MinMaxGain] for the
// weighted-combination caveat.
func (c *CRUISE) MinMaxGain(q ptype.GainQuery) (min, max float32) {
	return c.cache.Get(cache.KeyFromQuery(q), func() (float32, float32) {
		azMin, azMax := c.azim.extremes()
		elMin, elMax := c.elev.extremes()
		lo := weighting.Combine(azMin, elMin, 1, 1, q.Weighting) + q.RefGain
		hi := weighting.Combine(azMax, elMax, 1, 1, q.Weighting) + q.RefGain
		return float32(lo), float32(hi)
	})
}
