// Package cache implements the single-slot min/max gain cache shared
// by every tabulated pattern: one cached (min, max) pair keyed on
// (hbw, vbw, polarity, freq, delta), since workloads typically
// re-query the same beamwidth repeatedly. It is not an LRU — a miss
// simply overwrites the one slot. [Entry] and [AtomicEntry] both
// satisfy [MinMaxCache], so a pattern type can hold either behind one
// field.
package cache
