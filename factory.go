package pattern

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-pattern/cache"
	"github.com/cwbudde/algo-pattern/formats"
)

// loadConfig holds LoadPatternFile's optional parameters. It is built
// from functional options per the teacher's dsp/core/options.go idiom.
type loadConfig struct {
	frequencyHintMHz float64
	errorSink        func(PatternHandle, error)
	atomicCache      bool
}

// LoadOption configures LoadPatternFile.
type LoadOption func(*loadConfig)

// WithFrequencyHintMHz records the operating frequency a host expects
// to query at, in MHz. It doesn't change how the file is parsed; for
// NSMA files (the only format whose header states its own supported
// frequency range) a hint outside [FreqLowMHz, FreqHighMHz] is
// reported to the error sink as a non-fatal [ErrUnsupportedFrequency]
// — the load still succeeds, since the hint is advisory, not a query.
func WithFrequencyHintMHz(mhz float64) LoadOption {
	return func(c *loadConfig) { c.frequencyHintMHz = mhz }
}

// WithErrorSink registers a callback invoked after every Gain or
// MinMaxGain call that leaves a non-nil LastError, in addition to the
// per-handle LastError() slot. This replaces the source's
// process-wide SIM_ERROR macro with an injectable, per-load callback;
// sink is also invoked once, synchronously, if a WithFrequencyHintMHz
// hint falls outside an NSMA file's stated frequency range.
func WithErrorSink(sink func(PatternHandle, error)) LoadOption {
	return func(c *loadConfig) { c.errorSink = sink }
}

// WithAtomicCache swaps the handle's single-slot min/max cache for a
// [cache.AtomicEntry], per spec.md §5's option (b) for hosts querying
// one pattern from multiple goroutines (compare-and-swap on the
// (key, min, max) triple instead of serializing through a lock or
// cloning the pattern). Analytic patterns have no cache to swap — this
// option is a no-op for them, since MinMaxGain is computed directly
// from the closed-form shape rather than scanned and cached.
func WithAtomicCache() LoadOption {
	return func(c *loadConfig) { c.atomicCache = true }
}

// extensionDispatch maps a lowercased file extension to the format
// parser that reads it, per spec.md §4.7.
var extensionDispatch = map[string]func(*os.File) (PatternHandle, error){
	".pat": func(f *os.File) (PatternHandle, error) { return formats.ParsePAT(f) },
	".rel": func(f *os.File) (PatternHandle, error) { return formats.ParseRel(f) },
	".cru": func(f *os.File) (PatternHandle, error) { return formats.ParseCRUISE(f) },
	".mon": func(f *os.File) (PatternHandle, error) { return formats.ParseMonopulse(f) },
	".bil": func(f *os.File) (PatternHandle, error) { return formats.ParseBiLinear(f) },
	".nsm": func(f *os.File) (PatternHandle, error) { return formats.ParseNSMA(f) },
	".ezn": func(f *os.File) (PatternHandle, error) { return formats.ParseEZNEC(f) },
	".xfd": func(f *os.File) (PatternHandle, error) { return formats.ParseXFDTD(f) },
	".uan": func(f *os.File) (PatternHandle, error) { return formats.ParseXFDTD(f) },
}

// filenameSetter is satisfied by every formats.* type; LoadPatternFile
// uses it to record the load path on the handle it returns, since the
// Parse* functions only see an io.Reader.
type filenameSetter interface {
	SetFilename(string)
}

// cacheSetter is satisfied by every formats.* type; WithAtomicCache
// uses it to swap in a [cache.AtomicEntry] after a successful parse.
type cacheSetter interface {
	SetMinMaxCache(cache.MinMaxCache)
}

// LoadPatternFile opens path, dispatches to the format parser matched
// by its extension, and returns a ready-to-query PatternHandle. A
// parse-path failure (ErrUnknownFormat, ErrFileIO, ErrParse,
// ErrRangeInvariant) aborts and returns a nil handle — LoadPatternFile
// never returns a partially-constructed pattern.
func LoadPatternFile(path string, opts ...LoadOption) (PatternHandle, error) {
	cfg := loadConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parse, ok := extensionDispatch[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileIO, err)
	}
	defer f.Close()

	handle, err := parse(f)
	if err != nil {
		return nil, err
	}
	if setter, ok := handle.(filenameSetter); ok {
		setter.SetFilename(path)
	}
	if cfg.atomicCache {
		if setter, ok := handle.(cacheSetter); ok {
			setter.SetMinMaxCache(&cache.AtomicEntry{})
		}
	}

	checkFrequencyHint(handle, cfg)

	if cfg.errorSink != nil {
		return &sinkHandle{inner: handle, sink: cfg.errorSink}, nil
	}
	return handle, nil
}

// checkFrequencyHint reports a frequency hint outside an NSMA file's
// stated operating range to the error sink. Every other format either
// has no header-declared frequency range (PAT/REL/EZNEC) or validates
// frequency per query instead of per load (CRUISE/Monopulse/BiLinear),
// so this is a no-op for them.
func checkFrequencyHint(handle PatternHandle, cfg loadConfig) {
	if cfg.frequencyHintMHz == 0 || cfg.errorSink == nil {
		return
	}
	nsma, ok := handle.(*formats.NSMA)
	if !ok {
		return
	}
	if cfg.frequencyHintMHz < nsma.Header.FreqLowMHz || cfg.frequencyHintMHz > nsma.Header.FreqHighMHz {
		cfg.errorSink(handle, fmt.Errorf("%w: hint %.1f MHz outside [%.1f, %.1f]",
			ErrUnsupportedFrequency, cfg.frequencyHintMHz, nsma.Header.FreqLowMHz, nsma.Header.FreqHighMHz))
	}
}

// sinkHandle decorates a PatternHandle so every Gain/MinMaxGain call
// that leaves a non-nil LastError is also reported to a LoadOption's
// WithErrorSink callback, without the underlying formats.* type
// needing to know sinks exist.
type sinkHandle struct {
	inner PatternHandle
	sink  func(PatternHandle, error)
}

func (s *sinkHandle) Gain(q GainQuery) float32 {
	g := s.inner.Gain(q)
	if err := s.inner.LastError(); err != nil {
		s.sink(s.inner, err)
	}
	return g
}

func (s *sinkHandle) MinMaxGain(q GainQuery) (min, max float32) {
	min, max = s.inner.MinMaxGain(q)
	if err := s.inner.LastError(); err != nil {
		s.sink(s.inner, err)
	}
	return min, max
}

func (s *sinkHandle) Type() PatternType  { return s.inner.Type() }
func (s *sinkHandle) Valid() bool        { return s.inner.Valid() }
func (s *sinkHandle) Filename() string   { return s.inner.Filename() }
func (s *sinkHandle) Polarity() Polarity { return s.inner.Polarity() }
func (s *sinkHandle) LastError() error   { return s.inner.LastError() }

// HeaderSummary forwards to inner if inner implements [HeaderInfo], so
// a caller can type-assert a sink-wrapped handle against HeaderInfo
// the same way as an unwrapped one.
func (s *sinkHandle) HeaderSummary() string {
	if hi, ok := s.inner.(HeaderInfo); ok {
		return hi.HeaderSummary()
	}
	return ""
}
