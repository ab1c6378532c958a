package formats

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-pattern/angle"
	"github.com/cwbudde/algo-pattern/cache"
	"github.com/cwbudde/algo-pattern/internal/lex"
	"github.com/cwbudde/algo-pattern/ptype"
)

// xfdtdPoint is one far-field sample: gain and phase in both
// spherical polarizations, at a given (phi, theta).
type xfdtdPoint struct {
	gainTheta, gainPhi   float64
	phaseTheta, phasePhi float64
}

// XFDTD is the UAN-style far-field format: a free-form named-parameter
// header followed by a (phi, theta) grid of dual-polarization gain
// samples.
type XFDTD struct {
	filename string
	// Params holds the header's named UAN parameters verbatim, for
	// hosts that want to inspect them (see [XFDTD.HeaderSummary]);
	// none of them feed into Gain.
	Params map[string]string

	phiKeys   []float64 // az, radians, ascending
	thetaKeys []float64 // el, radians, ascending (note: theta descending on disk maps to el ascending)
	// grid[elIdx][azIdx]
	grid [][]xfdtdPoint

	polarity ptype.Polarity
	lastErr  error
	cache    cache.MinMaxCache
}

// ParseXFDTD reads a .xfd/.uan file: any number of "key: value" header
// lines, followed by a line "phiCount thetaCount", followed by
// phiCount*thetaCount rows of "phi theta gainTheta gainPhi phaseTheta
// phasePhi" (degrees for angles, dB for gains, degrees for phases),
// ordered theta-major, phi-minor.
func ParseXFDTD(r io.Reader) (*XFDTD, error) {
	s := lex.New(r, "//", "#")

	params := make(map[string]string)
	var phiCount, thetaCount int
	for s.Next() {
		if fields := s.Fields(); len(fields) == 2 {
			if n0, err0 := strconv.Atoi(fields[0]); err0 == nil {
				if n1, err1 := strconv.Atoi(fields[1]); err1 == nil {
					phiCount, thetaCount = n0, n1
					break
				}
			}
		}
		if key, val, ok := strings.Cut(s.Line(), ":"); ok {
			params[strings.TrimSpace(key)] = strings.TrimSpace(val)
		}
	}
	if phiCount == 0 || thetaCount == 0 {
		return nil, fmt.Errorf("%w: XFDTD missing phi/theta count line", ptype.ErrParse)
	}

	phiKeys := make([]float64, phiCount)
	thetaKeysDeg := make([]float64, thetaCount)
	grid := make([][]xfdtdPoint, thetaCount)
	for th := 0; th < thetaCount; th++ {
		row := make([]xfdtdPoint, phiCount)
		for ph := 0; ph < phiCount; ph++ {
			vals, err := s.ExpectFloats(6)
			if err != nil {
				return nil, fmt.Errorf("%w: XFDTD theta %d phi %d: %v", ptype.ErrParse, th, ph, err)
			}
			if th == 0 {
				phiKeys[ph] = vals[0] * math.Pi / 180
			}
			if ph == 0 {
				thetaKeysDeg[th] = vals[1]
			}
			row[ph] = xfdtdPoint{gainTheta: vals[2], gainPhi: vals[3], phaseTheta: vals[4], phasePhi: vals[5]}
		}
		grid[th] = row
	}

	// el = pi/2 - theta: theta ascending on disk maps to el descending,
	// so reverse both the theta axis and the grid rows to keep elKeys
	// ascending for bisection.
	elKeys := make([]float64, thetaCount)
	revGrid := make([][]xfdtdPoint, thetaCount)
	for i, thetaDeg := range thetaKeysDeg {
		elKeys[thetaCount-1-i] = math.Pi/2 - thetaDeg*math.Pi/180
		revGrid[thetaCount-1-i] = grid[i]
	}

	return &XFDTD{Params: params, phiKeys: phiKeys, thetaKeys: elKeys, grid: revGrid, cache: &cache.Entry{}}, nil
}

// Type returns ptype.TypeXFDTD.
func (x *XFDTD) Type() ptype.PatternType { return ptype.TypeXFDTD }

// Valid always reports true; ParseXFDTD never returns a partial
// pattern.
func (x *XFDTD) Valid() bool { return true }

// Filename returns the path x was loaded from.
func (x *XFDTD) Filename() string { return x.filename }

// SetFilename records the path x was loaded from.
func (x *XFDTD) SetFilename(name string) { x.filename = name }

// SetMinMaxCache replaces x's min/max cache.
func (x *XFDTD) SetMinMaxCache(c cache.MinMaxCache) { x.cache = c }

// Polarity returns the polarity of the most recent Gain query.
func (x *XFDTD) Polarity() ptype.Polarity { return x.polarity }

// LastError returns the error from the most recent query, or nil.
func (x *XFDTD) LastError() error { return x.lastErr }

// HeaderSummary formats x's UAN header parameters for display; a host
// can reach this through [pattern.HeaderInfo] without importing
// formats directly.
func (x *XFDTD) HeaderSummary() string {
	if len(x.Params) == 0 {
		return ""
	}
	keys := make([]string, 0, len(x.Params))
	for k := range x.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + x.Params[k]
	}
	return strings.Join(parts, " ")
}

func (x *XFDTD) lookupPoint(az, el float64) xfdtdPoint {
	ai0, ai1, afrac := bracket(x.phiKeys, az)
	ei0, ei1, efrac := bracket(x.thetaKeys, el)
	p00, p01 := x.grid[ei0][ai0], x.grid[ei0][ai1]
	p10, p11 := x.grid[ei1][ai0], x.grid[ei1][ai1]
	lerp := func(a, b, t float64) float64 { return a + (b-a)*t }
	top := xfdtdPoint{
		gainTheta: lerp(p00.gainTheta, p01.gainTheta, afrac),
		gainPhi:   lerp(p00.gainPhi, p01.gainPhi, afrac),
	}
	bot := xfdtdPoint{
		gainTheta: lerp(p10.gainTheta, p11.gainTheta, afrac),
		gainPhi:   lerp(p10.gainPhi, p11.gainPhi, afrac),
	}
	return xfdtdPoint{
		gainTheta: lerp(top.gainTheta, bot.gainTheta, efrac),
		gainPhi:   lerp(top.gainPhi, bot.gainPhi, efrac),
	}
}

// polarityGain applies spec.md §4.4's XFDTD polarity rule: Vertical
// (theta-polar, per DESIGN.md's spherical-to-linear mapping) reads
// gainTheta, Horizontal (phi-polar) reads gainPhi, anything else
// combines both in linear power.
func polarityGain(p xfdtdPoint, pol ptype.Polarity) float64 {
	switch pol {
	case ptype.PolarityVertical:
		return p.gainTheta
	case ptype.PolarityHorizontal:
		return p.gainPhi
	default:
		return angle.LinearToDB(angle.DBToLinear(p.gainTheta) + angle.DBToLinear(p.gainPhi))
	}
}

// Gain bilinearly interpolates (gainTheta, gainPhi) in (az, el) and
// applies polarityGain, offset by RefGain.
func (x *XFDTD) Gain(q ptype.GainQuery) float32 {
	x.polarity = q.Polarity
	x.lastErr = nil

	az := angle.WrapPi(q.Azim)
	el := angle.WrapPiOver2(q.Elev)
	p := x.lookupPoint(az, el)
	g := polarityGain(p, q.Polarity) + q.RefGain
	if g < angle.SmallDB {
		g = angle.SmallDB
	}
	return float32(g)
}

// MinMaxGain checks x's cache before scanning every stored grid point
// under the query's polarization rule.
func (x *XFDTD) MinMaxGain(q ptype.GainQuery) (min, max float32) {
	return x.cache.Get(cache.KeyFromQuery(q), func() (float32, float32) {
		lo, hi := angle.SmallDB, angle.SmallDB
		first := true
		for _, row := range x.grid {
			for _, p := range row {
				db := polarityGain(p, q.Polarity) + q.RefGain
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
