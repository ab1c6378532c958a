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

// NSMAHeader carries the textual identification block every NSMA file
// opens with; none of it participates in gain math, but it's the
// first thing a host wants to show a user inspecting a loaded file —
// see [NSMA.HeaderSummary].
type NSMAHeader struct {
	Manufacturer string
	Model        string
	Comment      string
	FCCID        string
	Revision     string
	Date         string
	AntennaID    string
	FreqLowMHz   float64
	FreqHighMHz  float64
	MidBandGain  float64
	HBW, VBW     float64
}

// nsmaChannelName pairs a polarization pair (HH, HV, VV, VH) with a
// plane (AZ, EL), matching the block markers NSMA files use.
type nsmaChannelName struct {
	pair  string
	plane string
}

func (n nsmaChannelName) String() string { return n.pair + "_" + n.plane }

// NSMA is the manufacturer-data format: a text header plus up to
// eight named channel blocks.
type NSMA struct {
	filename string
	Header   NSMAHeader
	channels map[string]*interp.Table[float64]
	polarity ptype.Polarity
	lastErr  error
	cache    cache.MinMaxCache
}

// ParseNSMA reads a .nsm file: seven opaque text header lines,
// followed by a numeric line "freqLowMHz freqHighMHz", a numeric line
// "midBandGainDB", a numeric line "hbwDeg vbwDeg", then any number (up
// to eight) of channel blocks:
//
//	HH_AZ
//	count
//	angleDeg gainDB   (count of these)
func ParseNSMA(r io.Reader) (*NSMA, error) {
	s := lex.New(r, "//", "#")

	textLines := make([]string, 7)
	for i := range textLines {
		if !s.Next() {
			return nil, fmt.Errorf("%w: NSMA header line %d missing", ptype.ErrParse, i+1)
		}
		textLines[i] = s.Line()
	}

	freqRange, err := s.ExpectFloats(2)
	if err != nil {
		return nil, fmt.Errorf("%w: NSMA frequency range: %v", ptype.ErrParse, err)
	}
	midGain, err := s.ExpectFloats(1)
	if err != nil {
		return nil, fmt.Errorf("%w: NSMA mid-band gain: %v", ptype.ErrParse, err)
	}
	beamwidths, err := s.ExpectFloats(2)
	if err != nil {
		return nil, fmt.Errorf("%w: NSMA beamwidths: %v", ptype.ErrParse, err)
	}
	if beamwidths[0] <= 0 || beamwidths[1] <= 0 {
		return nil, fmt.Errorf("%w: NSMA hbw/vbw must be > 0", ptype.ErrRangeInvariant)
	}

	header := NSMAHeader{
		Manufacturer: textLines[0],
		Model:        textLines[1],
		Comment:      textLines[2],
		FCCID:        textLines[3],
		Revision:     textLines[4],
		Date:         textLines[5],
		AntennaID:    textLines[6],
		FreqLowMHz:   freqRange[0],
		FreqHighMHz:  freqRange[1],
		MidBandGain:  midGain[0],
		HBW:          beamwidths[0] * math.Pi / 180,
		VBW:          beamwidths[1] * math.Pi / 180,
	}

	channels := make(map[string]*interp.Table[float64], 8)
	for s.Next() {
		name := s.Line()
		countLine, err := s.ExpectFloats(1)
		if err != nil {
			return nil, fmt.Errorf("%w: NSMA channel %q count: %v", ptype.ErrParse, name, err)
		}
		count := int(countLine[0])
		t := interp.New[float64](count)
		for i := 0; i < count; i++ {
			pair, err := s.ExpectFloats(2)
			if err != nil {
				return nil, fmt.Errorf("%w: NSMA channel %q sample %d: %v", ptype.ErrParse, name, i, err)
			}
			t.Insert(pair[0]*math.Pi/180, pair[1])
		}
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("%w: NSMA channel %q: %v", ptype.ErrRangeInvariant, name, err)
		}
		channels[name] = t
	}

	return &NSMA{Header: header, channels: channels, cache: &cache.Entry{}}, nil
}

// Type returns ptype.TypeNSMA.
func (n *NSMA) Type() ptype.PatternType { return ptype.TypeNSMA }

// Valid always reports true; ParseNSMA never returns a partial
// pattern.
func (n *NSMA) Valid() bool { return true }

// Filename returns the path n was loaded from.
func (n *NSMA) Filename() string { return n.filename }

// SetFilename records the path n was loaded from.
func (n *NSMA) SetFilename(name string) { n.filename = name }

// SetMinMaxCache replaces n's min/max cache.
func (n *NSMA) SetMinMaxCache(c cache.MinMaxCache) { n.cache = c }

// Polarity returns the polarity of the most recent Gain query.
func (n *NSMA) Polarity() ptype.Polarity { return n.polarity }

// LastError returns the error from the most recent query, or nil.
func (n *NSMA) LastError() error { return n.lastErr }

// HeaderSummary formats n's identification block for display; a host
// can reach this through [pattern.HeaderInfo] without importing
// formats directly.
func (n *NSMA) HeaderSummary() string {
	return fmt.Sprintf("manufacturer=%s model=%s fccid=%s rev=%s date=%s antenna=%s freq=[%.1f,%.1f]MHz midgain=%.2fdB",
		n.Header.Manufacturer, n.Header.Model, n.Header.FCCID, n.Header.Revision, n.Header.Date, n.Header.AntennaID,
		n.Header.FreqLowMHz, n.Header.FreqHighMHz, n.Header.MidBandGain)
}

// polarityPair maps a query's polarity to the NSMA channel-pair
// prefix to read, per DESIGN.md's resolution of spec.md §9's open
// question: HorzVert/VertHorz select the cross-pol channel pair
// outright rather than combining two channels.
func polarityPair(p ptype.Polarity) (string, bool) {
	switch p {
	case ptype.PolarityHorizontal:
		return "HH", true
	case ptype.PolarityVertical:
		return "VV", true
	case ptype.PolarityHorzVert:
		return "HV", true
	case ptype.PolarityVertHorz:
		return "VH", true
	default:
		return "", false
	}
}

// Gain implements spec.md §4.4's NSMA algorithm: map polarity to a
// channel pair, look up azimuth and elevation in the matching AZ/EL
// channels, combine, add RefGain.
func (n *NSMA) Gain(q ptype.GainQuery) float32 {
	n.polarity = q.Polarity
	n.lastErr = nil

	pair, ok := polarityPair(q.Polarity)
	if !ok {
		n.lastErr = ptype.ErrChannelMissing
		return float32(angle.SmallDB)
	}
	azTable, ok := n.channels[nsmaChannelName{pair, "AZ"}.String()]
	if !ok {
		n.lastErr = ptype.ErrChannelMissing
		return float32(angle.SmallDB)
	}
	elTable, ok := n.channels[nsmaChannelName{pair, "EL"}.String()]
	if !ok {
		n.lastErr = ptype.ErrChannelMissing
		return float32(angle.SmallDB)
	}

	az := angle.WrapPi(q.Azim)
	el := angle.WrapPiOver2(q.Elev)
	gA := azTable.Lookup(az)
	gE := elTable.Lookup(el)
	g := weighting.Combine(gA, gE, az, el, q.Weighting) + q.RefGain
	if g < angle.SmallDB {
		g = angle.SmallDB
	}
	return float32(g)
}

// MinMaxGain checks n's cache before scanning the selected channel
// pair's az/el extremes; see [PAT.MinMaxGain] for the
// weighted-combination caveat.
func (n *NSMA) MinMaxGain(q ptype.GainQuery) (min, max float32) {
	return n.cache.Get(cache.KeyFromQuery(q), func() (float32, float32) {
		pair, ok := polarityPair(q.Polarity)
		if !ok {
			return float32(angle.SmallDB), float32(angle.SmallDB)
		}
		azTable, ok1 := n.channels[nsmaChannelName{pair, "AZ"}.String()]
		elTable, ok2 := n.channels[nsmaChannelName{pair, "EL"}.String()]
		if !ok1 || !ok2 {
			return float32(angle.SmallDB), float32(angle.SmallDB)
		}
		azMin, azMax := azTable.Extremes()
		elMin, elMax := elTable.Extremes()
		lo := weighting.Combine(azMin, elMin, 1, 1, q.Weighting) + q.RefGain
		hi := weighting.Combine(azMax, elMax, 1, 1, q.Weighting) + q.RefGain
		return float32(lo), float32(hi)
	})
}
