package formats

import (
	"math"
	"os"
	"strings"
	"testing"

	"github.com/cwbudde/algo-pattern/ptype"
)

func TestParseRelGoldenFixture(t *testing.T) {
	f, err := os.Open("testdata/sample.rel")
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()

	rel, err := ParseRel(f)
	if err != nil {
		t.Fatalf("ParseRel: %v", err)
	}
	q := ptype.GainQuery{RefGain: 0, FirstSideLobe: ptype.NoOverride, BackLobe: ptype.NoOverride}
	q.Azim = 15 * math.Pi / 180
	pos := rel.Gain(q)
	q.Azim = -15 * math.Pi / 180
	neg := rel.Gain(q)
	if pos != neg {
		t.Fatalf("Gain(15deg)=%v != Gain(-15deg)=%v, want equal under symmetry=2", pos, neg)
	}
}

func TestParseRelOffsetsByRefGain(t *testing.T) {
	src := "2 2 1\n" +
		"0 0\n10 -3\n" +
		"0 0\n10 -3\n"
	rel, err := ParseRel(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseRel: %v", err)
	}
	q := ptype.GainQuery{RefGain: 15, FirstSideLobe: ptype.NoOverride, BackLobe: ptype.NoOverride}
	g := rel.Gain(q)
	if g != 15 {
		t.Fatalf("Gain at boresight = %v, want 15 (table max is 0, additive offset)", g)
	}
}
