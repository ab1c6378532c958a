package formats

import (
	"math"
	"os"
	"strings"
	"testing"

	"github.com/cwbudde/algo-pattern/ptype"
)

func TestEZNECGoldenFixture(t *testing.T) {
	f, err := os.Open("testdata/sample.ezn")
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()

	e, err := ParseEZNEC(f)
	if err != nil {
		t.Fatalf("ParseEZNEC: %v", err)
	}
	q := ptype.GainQuery{RefGain: 0, Polarity: ptype.PolarityHorizontal, FirstSideLobe: ptype.NoOverride, BackLobe: ptype.NoOverride}
	q.Elev = 0
	q.Azim = 0
	g := e.Gain(q)
	if math.Abs(float64(g)-(-2)) > 1e-5 {
		t.Fatalf("Gain(H, el=0, az=0) = %v, want -2", g)
	}
}

func eznecFixture() string {
	return "Math\n" +
		"2\n" +
		"0 2\n" +
		"0 -1 -2 0\n" +
		"90 -5 -6 -4\n" +
		"10 2\n" +
		"0 -1.5 -2.5 -0.5\n" +
		"90 -5.5 -6.5 -4.5\n"
}

func TestEZNECSelectsColumnByPolarity(t *testing.T) {
	e, err := ParseEZNEC(strings.NewReader(eznecFixture()))
	if err != nil {
		t.Fatalf("ParseEZNEC: %v", err)
	}
	q := ptype.GainQuery{RefGain: 0, Polarity: ptype.PolarityVertical, FirstSideLobe: ptype.NoOverride, BackLobe: ptype.NoOverride}
	q.Elev = 0
	q.Azim = 0
	g := e.Gain(q)
	if math.Abs(float64(g)-(-1)) > 1e-5 {
		t.Fatalf("Gain(V, el=0, az=0) = %v, want -1", g)
	}
}

func TestEZNECInterpolatesBetweenElevationSlices(t *testing.T) {
	e, err := ParseEZNEC(strings.NewReader(eznecFixture()))
	if err != nil {
		t.Fatalf("ParseEZNEC: %v", err)
	}
	q := ptype.GainQuery{RefGain: 0, Polarity: ptype.PolarityUnknown, FirstSideLobe: ptype.NoOverride, BackLobe: ptype.NoOverride}
	q.Azim = 0
	q.Elev = 5 * math.Pi / 180 // halfway between el=0 and el=10
	g := e.Gain(q)
	// Tot column at az=0: 0 at el=0, -0.5 at el=10 -> -0.25 halfway.
	if math.Abs(float64(g)-(-0.25)) > 1e-4 {
		t.Fatalf("Gain(Tot, el=5deg) = %v, want -0.25", g)
	}
}
