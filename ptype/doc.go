// Package ptype holds the plain data types shared by every pattern
// implementation — [PatternType], [Polarity], [GainQuery], and the
// error taxonomy — in a leaf package so that format parsers and
// analytic models can reference them without importing the root
// [github.com/cwbudde/algo-pattern] package (which imports them to
// build its factory, and would otherwise form an import cycle).
//
// The root package re-exports these as type aliases so callers never
// need to import ptype directly.
package ptype
