package formats

import (
	"math"
	"os"
	"strings"
	"testing"

	"github.com/cwbudde/algo-pattern/ptype"
)

func TestCRUISEGoldenFixture(t *testing.T) {
	f, err := os.Open("testdata/sample.cru")
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()

	c, err := ParseCRUISE(f)
	if err != nil {
		t.Fatalf("ParseCRUISE: %v", err)
	}
	q := ptype.GainQuery{RefGain: 0, FirstSideLobe: ptype.NoOverride, BackLobe: ptype.NoOverride}
	q.Freq = 10e9
	g := c.Gain(q)
	if math.Abs(float64(g)) > 1e-5 {
		t.Fatalf("Gain = %v, want 0 (unit voltage gain everywhere)", g)
	}
}

// identicalAcrossFrequency builds a CRUISE file whose voltage gain is
// 1.0 (0dB power) at every angle and frequency, so any frequency
// choice must produce the same result.
func identicalAcrossFrequency() string {
	axis := "3 5 -10 10\n" + // angleCount=3 freqCount=5 angleMin=-10 angleStep=10
		"8e9 10e9 12e9 14e9 16e9\n" +
		"1 1 1\n1 1 1\n1 1 1\n1 1 1\n1 1 1\n"
	return axis + axis
}

func TestCRUISEFrequencyInvariance(t *testing.T) {
	c, err := ParseCRUISE(strings.NewReader(identicalAcrossFrequency()))
	if err != nil {
		t.Fatalf("ParseCRUISE: %v", err)
	}
	q := ptype.GainQuery{RefGain: 10, FirstSideLobe: ptype.NoOverride, BackLobe: ptype.NoOverride}
	q.Freq = 9e9
	g9 := c.Gain(q)
	q.Freq = 10e9
	g10 := c.Gain(q)
	q.Freq = 8e9
	g8 := c.Gain(q)
	if math.Abs(float64(g9-g10)) > 1e-5 || math.Abs(float64(g10-g8)) > 1e-5 {
		t.Fatalf("frequency-dependent result on a frequency-flat table: g8=%v g9=%v g10=%v", g8, g9, g10)
	}
}
