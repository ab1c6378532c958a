package patternspectrum

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Errors returned by Analyze.
var (
	ErrInvalidSampleCount = errors.New("patternspectrum: sample count must be positive")
	ErrFFTPlan            = errors.New("patternspectrum: failed to build FFT plan")
)

// Sampler returns a pattern's gain in dB at the given azimuth, in
// radians. Callers typically close over a PatternHandle and a fixed
// GainQuery template:
//
//	sampler := func(az float64) float64 {
//	    q.Azim = az
//	    return float64(handle.Gain(q))
//	}
type Sampler func(azimuthRad float64) float64

// Config controls Analyzer's azimuth sampling resolution.
type Config struct {
	// SampleCount is the number of azimuth samples taken around a
	// full revolution. It is rounded up to the next power of two
	// before the FFT, since algofft.Plan64 expects one.
	SampleCount int
}

// DefaultConfig returns SampleCount=1024, enough angular resolution to
// resolve side-lobe periods down to roughly 0.7 degrees (512 cycles per
// revolution).
func DefaultConfig() Config {
	return Config{SampleCount: 1024}
}

func normalizeConfig(cfg Config) Config {
	if cfg.SampleCount <= 0 {
		cfg.SampleCount = DefaultConfig().SampleCount
	}
	return cfg
}

// Result is the angular-spectrum analysis of one azimuth sweep.
type Result struct {
	// Bins holds the one-sided magnitude spectrum, Bins[k] being the
	// strength of the k-cycles-per-revolution component. len(Bins) ==
	// n/2 + 1, n being SampleCount rounded up to a power of two.
	Bins []float64
	// DCGain is the signed mean gain level around the sweep; Bins[0]
	// is its magnitude.
	DCGain float64
	// DominantCycle is the index of the strongest non-DC bin: a
	// pattern with N side lobes per revolution concentrates energy at
	// cycle N.
	DominantCycle int
	// DominantPeriodDeg is 360/DominantCycle, the angular period in
	// degrees implied by the dominant cycle.
	DominantPeriodDeg float64
}

// Analyzer FFTs a fixed-resolution azimuth sweep to produce a Result.
// It mirrors measure/thd.Calculator and measure/sweep.LogSweep's
// Analyzer/LogSweep-wraps-one-algorithm shape.
type Analyzer struct {
	cfg Config
	n   int
}

// NewAnalyzer builds an Analyzer for cfg.
func NewAnalyzer(cfg Config) *Analyzer {
	cfg = normalizeConfig(cfg)
	return &Analyzer{cfg: cfg, n: nextPowerOf2(cfg.SampleCount)}
}

// Analyze samples a full azimuth revolution at a.n evenly-spaced
// points starting at -pi, FFTs the resulting gain sequence, and
// reduces the one-sided spectrum to a Result.
func (a *Analyzer) Analyze(sample Sampler) (Result, error) {
	if sample == nil {
		return Result{}, ErrInvalidSampleCount
	}

	in := make([]complex128, a.n)
	for i := 0; i < a.n; i++ {
		az := -math.Pi + 2*math.Pi*float64(i)/float64(a.n)
		in[i] = complex(sample(az), 0)
	}

	plan, err := algofft.NewPlan64(a.n)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrFFTPlan, err)
	}

	out := make([]complex128, a.n)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("patternspectrum: forward FFT failed: %w", err)
	}

	binCount := a.n/2 + 1
	bins := make([]float64, binCount)
	for i := range bins {
		bins[i] = cmplx.Abs(out[i]) / float64(a.n)
	}

	dominant := 1
	for k := 2; k < binCount; k++ {
		if bins[k] > bins[dominant] {
			dominant = k
		}
	}
	period := 360.0
	if dominant > 0 {
		period = 360.0 / float64(dominant)
	}

	return Result{
		Bins:              bins,
		DCGain:            real(out[0]) / float64(a.n),
		DominantCycle:     dominant,
		DominantPeriodDeg: period,
	}, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
