package patternspectrum

import (
	"math"
	"testing"
)

func TestAnalyzeFindsDominantCycle(t *testing.T) {
	const lobes = 6
	a := NewAnalyzer(Config{SampleCount: 512})

	result, err := a.Analyze(func(az float64) float64 {
		return -10 + 10*math.Cos(float64(lobes)*az)
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.DominantCycle != lobes {
		t.Fatalf("DominantCycle = %d, want %d", result.DominantCycle, lobes)
	}
	wantPeriod := 360.0 / float64(lobes)
	if math.Abs(result.DominantPeriodDeg-wantPeriod) > 1e-6 {
		t.Fatalf("DominantPeriodDeg = %v, want %v", result.DominantPeriodDeg, wantPeriod)
	}
}

func TestAnalyzeDCGainIsMeanLevel(t *testing.T) {
	a := NewAnalyzer(Config{SampleCount: 256})
	result, err := a.Analyze(func(az float64) float64 { return -3.0 })
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if math.Abs(result.DCGain-(-3.0)) > 1e-9 {
		t.Fatalf("DCGain = %v, want -3", result.DCGain)
	}
}

func TestAnalyzeRejectsNilSampler(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())
	if _, err := a.Analyze(nil); err != ErrInvalidSampleCount {
		t.Fatalf("err = %v, want ErrInvalidSampleCount", err)
	}
}

func TestNextPowerOf2RoundsUp(t *testing.T) {
	a := NewAnalyzer(Config{SampleCount: 1000})
	if a.n != 1024 {
		t.Fatalf("n = %d, want 1024", a.n)
	}
}
