package formats

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/cwbudde/algo-pattern/angle"
	"github.com/cwbudde/algo-pattern/cache"
	"github.com/cwbudde/algo-pattern/internal/lex"
	"github.com/cwbudde/algo-pattern/interp"
	"github.com/cwbudde/algo-pattern/ptype"
)

// eznecSlice is one elevation's azimuth block: three 1-D tables over
// azimuth (in math convention, radians), one per column.
type eznecSlice struct {
	elev  float64
	vert  *interp.Table[float64]
	horz  *interp.Table[float64]
	total *interp.Table[float64]
}

// EZNEC is the per-elevation-slice format: azimuth cuts stacked over
// elevation, with V/H/Tot columns per sample and an on-disk angle
// convention (compass or math) that's canonicalized at parse time.
type EZNEC struct {
	filename string
	slices   []eznecSlice // sorted by elev ascending
	polarity ptype.Polarity
	lastErr  error
	cache    cache.MinMaxCache
}

// compassToMath converts a compass-convention angle (0=north,
// clockwise positive) to math convention (0=east, counterclockwise
// positive), per DESIGN.md's resolution of the angle-convention open
// question.
func compassToMath(compassRad float64) float64 {
	return angle.Wrap2Pi(math.Pi/2 - compassRad)
}

// ParseEZNEC reads a .ezn file:
//
//	Compass|Math                 (convention header, case-insensitive)
//	elevationCount
//	elevationDeg azCount
//	deg vDB hDB totDB            (azCount of these)
//	... repeated elevationCount times
func ParseEZNEC(r io.Reader) (*EZNEC, error) {
	s := lex.New(r, "//", "#")

	if !s.Next() {
		return nil, fmt.Errorf("%w: EZNEC missing convention header", ptype.ErrParse)
	}
	compass := strings.EqualFold(strings.TrimSpace(s.Line()), "Compass")

	countLine, err := s.ExpectFloats(1)
	if err != nil {
		return nil, fmt.Errorf("%w: EZNEC elevation count: %v", ptype.ErrParse, err)
	}
	elevCount := int(countLine[0])

	slices := make([]eznecSlice, elevCount)
	for e := 0; e < elevCount; e++ {
		sliceHeader, err := s.ExpectFloats(2)
		if err != nil {
			return nil, fmt.Errorf("%w: EZNEC slice %d header: %v", ptype.ErrParse, e, err)
		}
		elevDeg, azCount := sliceHeader[0], int(sliceHeader[1])

		vert := interp.New[float64](azCount)
		horz := interp.New[float64](azCount)
		total := interp.New[float64](azCount)
		for i := 0; i < azCount; i++ {
			row, err := s.ExpectFloats(4)
			if err != nil {
				return nil, fmt.Errorf("%w: EZNEC slice %d sample %d: %v", ptype.ErrParse, e, i, err)
			}
			azRad := row[0] * math.Pi / 180
			if compass {
				azRad = compassToMath(azRad)
			}
			vert.Insert(azRad, row[1])
			horz.Insert(azRad, row[2])
			total.Insert(azRad, row[3])
		}
		for _, t := range []*interp.Table[float64]{vert, horz, total} {
			if err := t.Validate(); err != nil {
				return nil, fmt.Errorf("%w: EZNEC slice %d: %v", ptype.ErrRangeInvariant, e, err)
			}
		}
		slices[e] = eznecSlice{elev: elevDeg * math.Pi / 180, vert: vert, horz: horz, total: total}
	}

	sort.Slice(slices, func(i, j int) bool { return slices[i].elev < slices[j].elev })
	return &EZNEC{slices: slices, cache: &cache.Entry{}}, nil
}

// Type returns ptype.TypeEZNEC.
func (e *EZNEC) Type() ptype.PatternType { return ptype.TypeEZNEC }

// Valid always reports true; ParseEZNEC never returns a partial
// pattern.
func (e *EZNEC) Valid() bool { return true }

// Filename returns the path e was loaded from.
func (e *EZNEC) Filename() string { return e.filename }

// SetFilename records the path e was loaded from.
func (e *EZNEC) SetFilename(name string) { e.filename = name }

// SetMinMaxCache replaces e's min/max cache.
func (e *EZNEC) SetMinMaxCache(c cache.MinMaxCache) { e.cache = c }

// Polarity returns the polarity of the most recent Gain query.
func (e *EZNEC) Polarity() ptype.Polarity { return e.polarity }

// LastError returns the error from the most recent query, or nil.
func (e *EZNEC) LastError() error { return e.lastErr }

func columnOf(s eznecSlice, p ptype.Polarity) *interp.Table[float64] {
	switch p {
	case ptype.PolarityVertical:
		return s.vert
	case ptype.PolarityHorizontal:
		return s.horz
	default:
		return s.total
	}
}

// Gain implements spec.md §4.4's EZNEC algorithm: bracket the query
// elevation between two stored slices, interpolate each slice in
// azimuth (picking the V/H/Tot column per polarity), then linearly
// interpolate the two azimuth results in elevation.
func (e *EZNEC) Gain(q ptype.GainQuery) float32 {
	e.polarity = q.Polarity
	e.lastErr = nil

	az := angle.WrapPi(q.Azim)
	el := angle.WrapPiOver2(q.Elev)

	n := len(e.slices)
	var g float64
	switch {
	case n == 1 || el <= e.slices[0].elev:
		g = columnOf(e.slices[0], q.Polarity).Lookup(az)
	case el >= e.slices[n-1].elev:
		g = columnOf(e.slices[n-1], q.Polarity).Lookup(az)
	default:
		i := sort.Search(n, func(i int) bool { return e.slices[i].elev >= el })
		lo, hi := e.slices[i-1], e.slices[i]
		v0 := columnOf(lo, q.Polarity).Lookup(az)
		v1 := columnOf(hi, q.Polarity).Lookup(az)
		frac := (el - lo.elev) / (hi.elev - lo.elev)
		g = v0 + (v1-v0)*frac
	}

	g += q.RefGain
	if g < angle.SmallDB {
		g = angle.SmallDB
	}
	return float32(g)
}

// MinMaxGain checks e's cache before scanning every stored slice's
// selected column for its extremes.
func (e *EZNEC) MinMaxGain(q ptype.GainQuery) (min, max float32) {
	return e.cache.Get(cache.KeyFromQuery(q), func() (float32, float32) {
		lo, hi := angle.SmallDB, angle.SmallDB
		first := true
		for _, s := range e.slices {
			tmin, tmax := columnOf(s, q.Polarity).Extremes()
			if first || tmin < lo {
				lo = tmin
			}
			if first || tmax > hi {
				hi = tmax
			}
			first = false
		}
		lo += q.RefGain
		hi += q.RefGain
		return float32(lo), float32(hi)
	})
}
