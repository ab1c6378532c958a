package formats

import (
	"math"
	"os"
	"strings"
	"testing"

	"github.com/cwbudde/algo-pattern/ptype"
)

func TestBiLinearGoldenFixture(t *testing.T) {
	f, err := os.Open("testdata/sample.bil")
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()

	b, err := ParseBiLinear(f)
	if err != nil {
		t.Fatalf("ParseBiLinear: %v", err)
	}
	q := ptype.GainQuery{RefGain: 0, FirstSideLobe: ptype.NoOverride, BackLobe: ptype.NoOverride}
	q.Freq = 8e9
	g := b.Gain(q)
	if math.Abs(float64(g)) > 1e-5 {
		t.Fatalf("Gain(boresight) = %v, want 0", g)
	}
}

func TestBiLinearClampsOutOfRangeFrequency(t *testing.T) {
	src := "2 2 2 8e9 2e9 0 10 0 10\n" +
		"0 -3\n-3 -6\n" + // freq=8e9 grid
		"0 -3\n-3 -6\n" // freq=10e9 grid, identical
	b, err := ParseBiLinear(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseBiLinear: %v", err)
	}
	q := ptype.GainQuery{RefGain: 0, FirstSideLobe: ptype.NoOverride, BackLobe: ptype.NoOverride}
	q.Freq = 100e9 // far outside [8e9,10e9]; BiLinear clamps rather than erroring.
	g := b.Gain(q)
	q.Freq = 10e9
	g2 := b.Gain(q)
	if math.Abs(float64(g-g2)) > 1e-5 {
		t.Fatalf("out-of-range freq should clamp to nearest row: g(100e9)=%v g(10e9)=%v", g, g2)
	}
	if b.LastError() != nil {
		t.Fatalf("LastError = %v, want nil (BiLinear clamps, doesn't error)", b.LastError())
	}
}
