package cache

import "github.com/cwbudde/algo-pattern/ptype"

// Key identifies the query parameters a cached min/max pair was
// computed for: (hbw, vbw, polarity, freq, delta), regardless of
// az/el. RefGain and Weighting are not part of it, although the table
// formats' scans add RefGain and apply Weighting, so a hit returns the
// (min, max) computed with the RefGain and Weighting of the query that
// filled the slot.
type Key struct {
	HBW, VBW float64
	Polarity ptype.Polarity
	Freq     float64
	Delta    bool
}

// KeyFromQuery extracts the cache key from a query.
func KeyFromQuery(q ptype.GainQuery) Key {
	return Key{
		HBW:      q.HBW,
		VBW:      q.VBW,
		Polarity: q.Polarity,
		Freq:     q.Freq,
		Delta:    q.Delta,
	}
}

// MinMaxCache is satisfied by both [Entry] and [AtomicEntry], so a
// tabulated pattern can hold either behind one field and let
// [github.com/cwbudde/algo-pattern.WithAtomicCache] swap in the
// lock-free variant after load.
type MinMaxCache interface {
	Get(key Key, scan func() (min, max float32)) (min, max float32)
}

// Entry is the single cached (min, max) pair, plus the key it was
// computed for. The zero Entry has no cached key and will always miss.
type Entry struct {
	key    Key
	hasKey bool
	min    float32
	max    float32
}

// Lookup returns the cached (min, max) and true on a hit, or (0, 0,
// false) on a miss.
func (e *Entry) Lookup(key Key) (min, max float32, hit bool) {
	if !e.hasKey || e.key != key {
		return 0, 0, false
	}
	return e.min, e.max, true
}

// Store overwrites the cache with (min, max) for key.
func (e *Entry) Store(key Key, min, max float32) {
	e.key = key
	e.hasKey = true
	e.min = min
	e.max = max
}

// Get returns the cached (min, max) for key, calling scan and storing
// its result on a miss. scan is expected to run a full table scan or
// an analytic min/max computation; it is only invoked on a miss.
func (e *Entry) Get(key Key, scan func() (min, max float32)) (min, max float32) {
	if min, max, hit := e.Lookup(key); hit {
		return min, max
	}
	min, max = scan()
	e.Store(key, min, max)
	return min, max
}
