package ptype

import "errors"

// Error taxonomy, per spec.md §7. Parsing errors (UnknownFormat,
// FileIO, Parse, RangeInvariant) abort construction and are returned
// directly — no partial pattern is ever returned. Query errors
// (UnsupportedFrequency, ChannelMissing) never propagate this way:
// Gain/MinMaxGain return angle.SmallDB and stash the error on the
// handle's LastError slot instead, per the propagation policy.
var (
	// ErrUnknownFormat means a file's suffix didn't match any known
	// parser.
	ErrUnknownFormat = errors.New("pattern: unknown format")
	// ErrFileIO means the file could not be opened or read.
	ErrFileIO = errors.New("pattern: file I/O error")
	// ErrParse means a header was malformed, a token wasn't numeric,
	// the token count was wrong, or two tables that must agree in
	// size disagreed.
	ErrParse = errors.New("pattern: parse error")
	// ErrRangeInvariant means keys weren't strictly ascending, a
	// beamwidth was <= 0, or a symmetry code wasn't in {1,2,4}.
	ErrRangeInvariant = errors.New("pattern: range invariant violated")
	// ErrUnsupportedFrequency means a query frequency fell outside a
	// required frequency axis for a format that disallows clamping
	// (Monopulse).
	ErrUnsupportedFrequency = errors.New("pattern: unsupported frequency")
	// ErrChannelMissing means a polarization channel was requested
	// but the file didn't store it.
	ErrChannelMissing = errors.New("pattern: polarization channel missing")
)
