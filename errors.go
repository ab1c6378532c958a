package pattern

import "github.com/cwbudde/algo-pattern/ptype"

// Error taxonomy, re-exported from ptype (see ptype/errors.go for the
// parse-vs-query propagation split). ErrUnknownFormat, ErrFileIO,
// ErrParse, and ErrRangeInvariant abort LoadPatternFile and are
// returned directly; ErrUnsupportedFrequency and ErrChannelMissing
// never propagate this way — they are stashed on a handle's
// LastError() and, if one was configured, reported to the
// WithErrorSink callback.
var (
	ErrUnknownFormat        = ptype.ErrUnknownFormat
	ErrFileIO               = ptype.ErrFileIO
	ErrParse                = ptype.ErrParse
	ErrRangeInvariant       = ptype.ErrRangeInvariant
	ErrUnsupportedFrequency = ptype.ErrUnsupportedFrequency
	ErrChannelMissing       = ptype.ErrChannelMissing
)
