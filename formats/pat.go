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

// AngleUnit selects how a PAT file's stored angle keys are scaled
// into radians.
type AngleUnit int

const (
	// AngleUnitAbsolute means keys are ordinary angles on disk (in
	// degrees, per the common parser rules), converted straight to
	// radians.
	AngleUnitAbsolute AngleUnit = 0
	// AngleUnitBeamwidths means keys are expressed as a multiple of
	// the half-beamwidth: a stored key of 1.0 is az=hbw/2 (the -3dB
	// point), consistent with the r=1 convention [analytic.Gauss]
	// uses.
	AngleUnitBeamwidths AngleUnit = 1
)

// PAT is the AntennaPatternTable format: two 1-D tables, azimuth and
// elevation, each with its own symmetry code, no frequency axis.
type PAT struct {
	filename string
	// refGain, hbw, vbw are the file's own header values. They are
	// informational only — Gain and MinMaxGain use the query's
	// RefGain/HBW/VBW, never these — and are surfaced to a host via
	// [PAT.HeaderSummary].
	refGain  float64
	hbw, vbw float64
	azim     *interp.SymmetricTable[float64]
	elev     *interp.SymmetricTable[float64]
	polarity ptype.Polarity
	lastErr  error
	cache    cache.MinMaxCache
}

// ParsePAT reads a .pat file. Header line: refGainDB hbwDeg vbwDeg
// angleUnit(0|1) symmetry(1|2). Second line: azCount elCount. Then
// azCount "(angle gainDB)" lines, then elCount more.
func ParsePAT(r io.Reader) (*PAT, error) {
	s := lex.New(r, "//")

	header, err := s.ExpectFloats(5)
	if err != nil {
		return nil, fmt.Errorf("%w: PAT header: %v", ptype.ErrParse, err)
	}
	refGain, hbwDeg, vbwDeg := header[0], header[1], header[2]
	unit := AngleUnit(header[3])
	symCode := interp.Symmetry(header[4])

	if hbwDeg <= 0 || vbwDeg <= 0 {
		return nil, fmt.Errorf("%w: PAT hbw/vbw must be > 0", ptype.ErrRangeInvariant)
	}
	hbw := hbwDeg * math.Pi / 180
	vbw := vbwDeg * math.Pi / 180

	counts, err := s.ExpectFloats(2)
	if err != nil {
		return nil, fmt.Errorf("%w: PAT counts: %v", ptype.ErrParse, err)
	}
	azCount, elCount := int(counts[0]), int(counts[1])

	azim, err := parsePatAxis(s, azCount, unit, hbw/2)
	if err != nil {
		return nil, err
	}
	elev, err := parsePatAxis(s, elCount, unit, vbw/2)
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

	return &PAT{refGain: refGain, hbw: hbw, vbw: vbw, azim: azSym, elev: elSym, cache: &cache.Entry{}}, nil
}

func parsePatAxis(s *lex.Scanner, count int, unit AngleUnit, halfBeamwidth float64) (*interp.Table[float64], error) {
	t := interp.New[float64](count)
	for i := 0; i < count; i++ {
		pair, err := s.ExpectFloats(2)
		if err != nil {
			return nil, fmt.Errorf("%w: sample %d: %v", ptype.ErrParse, i, err)
		}
		key := pair[0]
		if unit == AngleUnitBeamwidths {
			key *= halfBeamwidth
		} else {
			key *= math.Pi / 180
		}
		t.Insert(key, pair[1])
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ptype.ErrRangeInvariant, err)
	}
	return t, nil
}

// Type returns ptype.TypeTable.
func (p *PAT) Type() ptype.PatternType { return ptype.TypeTable }

// Valid reports whether p parsed successfully (always true once
// returned by ParsePAT — load failures never produce a partial PAT).
func (p *PAT) Valid() bool { return true }

// Filename returns the path p was loaded from.
func (p *PAT) Filename() string { return p.filename }

// SetFilename records the path p was loaded from. LoadPatternFile
// calls this after a successful parse, since ParsePAT reads from an
// io.Reader and has no path of its own to record.
func (p *PAT) SetFilename(name string) { p.filename = name }

// SetMinMaxCache replaces p's min/max cache, e.g. with
// [cache.AtomicEntry] for a handle shared across goroutines.
func (p *PAT) SetMinMaxCache(c cache.MinMaxCache) { p.cache = c }

// Polarity returns the polarity of the most recent Gain query.
func (p *PAT) Polarity() ptype.Polarity { return p.polarity }

// LastError returns the error from the most recent query, or nil.
func (p *PAT) LastError() error { return p.lastErr }

// HeaderSummary formats p's header refGain/hbw/vbw for display; a
// host can reach this through [pattern.HeaderInfo] without importing
// formats directly.
func (p *PAT) HeaderSummary() string {
	return fmt.Sprintf("header: refgain=%.2fdB hbw=%.2fdeg vbw=%.2fdeg",
		p.refGain, p.hbw*180/math.Pi, p.vbw*180/math.Pi)
}

// Gain implements the common tabulated-model algorithm from spec.md
// §4.4: normalize, sample both tables, combine, offset by RefGain,
// clamp to SmallDB.
func (p *PAT) Gain(q ptype.GainQuery) float32 {
	p.polarity = q.Polarity
	p.lastErr = nil

	az := angle.WrapPi(q.Azim)
	el := angle.WrapPiOver2(q.Elev)
	gA := p.azim.Lookup(az)
	gE := p.elev.Lookup(el)
	g := weighting.Combine(gA, gE, az, el, q.Weighting) + q.RefGain
	if g < angle.SmallDB {
		g = angle.SmallDB
	}
	return float32(g)
}

// MinMaxGain checks p's cache for q's (hbw,vbw,polarity,freq,delta)
// key before scanning both tables' extremes, per spec.md §4.5.
// Unweighted combination is exactly additive, so the true min/max
// follows directly from each axis's extremes; the weighted
// combination is approximated using the equal-weight (az=el) point,
// since the true weighted extremum depends on the joint (az,el)
// sample that attains it, which isn't recoverable from per-axis
// extremes alone.
func (p *PAT) MinMaxGain(q ptype.GainQuery) (min, max float32) {
	return p.cache.Get(cache.KeyFromQuery(q), func() (float32, float32) {
		azMin, azMax := p.azim.Extremes()
		elMin, elMax := p.elev.Extremes()
		lo := weighting.Combine(azMin, elMin, 1, 1, q.Weighting) + q.RefGain
		hi := weighting.Combine(azMax, elMax, 1, 1, q.Weighting) + q.RefGain
		return float32(lo), float32(hi)
	})
}
