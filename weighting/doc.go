// Package weighting combines an azimuth-table sample and an
// elevation-table sample into a single gain, either additively or
// weighted by angular distance from boresight, per spec.md §4.6.
package weighting
