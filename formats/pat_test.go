package formats

import (
	"math"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/cwbudde/algo-pattern/cache"
	"github.com/cwbudde/algo-pattern/ptype"
)

func TestParsePATGoldenFixture(t *testing.T) {
	f, err := os.Open("testdata/sample.pat")
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()

	p, err := ParsePAT(f)
	if err != nil {
		t.Fatalf("ParsePAT: %v", err)
	}
	q := ptype.GainQuery{RefGain: 0, FirstSideLobe: ptype.NoOverride, BackLobe: ptype.NoOverride}
	q.Azim = 15 * math.Pi / 180
	pos := p.Gain(q)
	q.Azim = -15 * math.Pi / 180
	neg := p.Gain(q)
	if pos != neg {
		t.Fatalf("Gain(15deg)=%v != Gain(-15deg)=%v, want equal under symmetry=2", pos, neg)
	}
}

func TestPATHeaderSummaryReflectsHeaderFields(t *testing.T) {
	f, err := os.Open("testdata/sample.pat")
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()

	p, err := ParsePAT(f)
	if err != nil {
		t.Fatalf("ParsePAT: %v", err)
	}
	summary := p.HeaderSummary()
	if !strings.Contains(summary, "refgain=") || !strings.Contains(summary, "hbw=") || !strings.Contains(summary, "vbw=") {
		t.Fatalf("HeaderSummary() = %q, want refgain/hbw/vbw fields", summary)
	}
}

func TestParsePATAllZerosSymmetric(t *testing.T) {
	// 36 azimuth samples -180..170 step 10, all zero gain; symmetry=2.
	var b strings.Builder
	b.WriteString("20 3 5 0 2\n")
	b.WriteString("36 3\n")
	for i := 0; i < 36; i++ {
		deg := -180 + 10*i
		b.WriteString(strconv.Itoa(deg) + " 0\n")
	}
	for i := 0; i < 3; i++ {
		deg := -10 + 10*i
		b.WriteString(strconv.Itoa(deg) + " 0\n")
	}

	p, err := ParsePAT(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("ParsePAT: %v", err)
	}

	q := ptype.GainQuery{RefGain: 20, FirstSideLobe: ptype.NoOverride, BackLobe: ptype.NoOverride}
	for _, az := range []float64{0, 0.5, 1.2, -2.0} {
		qq := q
		qq.Azim = az
		g := p.Gain(qq)
		if math.Abs(float64(g)-20) > 1e-5 {
			t.Fatalf("Gain(az=%v) = %v, want 20 (all-zero table)", az, g)
		}
	}
}

// TestPATMinMaxGainUsesCache pre-seeds p's cache with a value no real
// scan of the parsed table could produce, then confirms MinMaxGain
// returns exactly that seeded value for the matching key — proving the
// cache is consulted before any scan, not just exercised after one.
func TestPATMinMaxGainUsesCache(t *testing.T) {
	p, err := ParsePAT(strings.NewReader("0 3 5 0 2\n3 2\n0 0\n10 -3\n20 -10\n0 0\n10 -1\n"))
	if err != nil {
		t.Fatalf("ParsePAT: %v", err)
	}
	q := ptype.GainQuery{RefGain: 0, FirstSideLobe: ptype.NoOverride, BackLobe: ptype.NoOverride}

	var e cache.Entry
	e.Store(cache.KeyFromQuery(q), -99, 99)
	p.SetMinMaxCache(&e)

	min, max := p.MinMaxGain(q)
	if min != -99 || max != 99 {
		t.Fatalf("MinMaxGain = (%v,%v), want pre-seeded cache value (-99,99); MinMaxGain is not consulting the cache", min, max)
	}

	// A different key (distinct HBW) must miss and fall through to
	// a real scan, not the stale seeded value.
	q2 := q
	q2.HBW = 0.1
	min2, _ := p.MinMaxGain(q2)
	if min2 == -99 {
		t.Fatalf("MinMaxGain(q2) = %v, reused q1's cached value despite a different key", min2)
	}
}

func TestParsePATSymmetryMirrorsAzimuth(t *testing.T) {
	var b strings.Builder
	b.WriteString("0 3 5 0 2\n")
	b.WriteString("3 2\n")
	b.WriteString("0 0\n10 -3\n20 -10\n")
	b.WriteString("0 0\n10 -1\n")

	p, err := ParsePAT(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("ParsePAT: %v", err)
	}
	q := ptype.GainQuery{RefGain: 0, FirstSideLobe: ptype.NoOverride, BackLobe: ptype.NoOverride}
	q.Azim = 15 * math.Pi / 180
	pos := p.Gain(q)
	q.Azim = -15 * math.Pi / 180
	neg := p.Gain(q)
	if pos != neg {
		t.Fatalf("Gain(15deg)=%v != Gain(-15deg)=%v, want equal under symmetry=2", pos, neg)
	}
}

