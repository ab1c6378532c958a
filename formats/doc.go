// Package formats parses the eight on-disk pattern formats named in
// spec.md §4.4 (PAT, REL, CRUISE, Monopulse, BiLinear, NSMA, EZNEC,
// XFDTD) into populated [interp] tables, and implements each one's
// query-logic variant of [ptype.GainQuery] -> gain(dB). Parsing and
// querying are co-located per format since each format's query shape
// (frequency axis present or not, complex sum/diff channels,
// per-elevation blocks) is derived directly from what its header
// declares — there is no shared "TableSet" shape general enough to
// split the two concerns apart cleanly.
//
// Every parser follows the common rules in spec.md §6: comment lines
// (// or #, format-dependent), whitespace-separated numeric tokens,
// locale-independent decimals, angles on disk in degrees converted to
// radians on load. [github.com/cwbudde/algo-pattern/internal/lex]
// carries the shared scanning; each file here still owns its own
// header grammar.
package formats
