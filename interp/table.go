package interp

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cwbudde/algo-vecmath"
)

// Value is the set of types a [Table] can hold: float64 for ordinary
// real-valued samples, and [Complex] for monopulse sum/difference
// samples.
type Value interface {
	float64 | Complex
}

// ErrTooFewKeys is returned by validation when a table has fewer than
// the two keys required to interpolate.
var ErrTooFewKeys = errors.New("interp: table needs at least two keys")

// ErrKeysNotAscending is returned by validation when the table's keys
// are not strictly ascending. Insert itself returns no error; it keeps
// keys sorted and overwrites duplicates.
var ErrKeysNotAscending = errors.New("interp: keys must be strictly ascending")

// Table is an ordered mapping from a real-valued key to a sample of
// type V. Keys are kept strictly ascending; Lookup clamps to the
// endpoint value outside the stored range and otherwise linearly
// interpolates between the bracketing pair.
type Table[V Value] struct {
	keys   []float64
	values []V
}

// New returns an empty table. Reserve hints the expected sample count
// so Insert doesn't reallocate during a parse loop whose size is known
// from a format header; pass 0 if unknown.
func New[V Value](reserve int) *Table[V] {
	return &Table[V]{
		keys:   make([]float64, 0, reserve),
		values: make([]V, 0, reserve),
	}
}

// Len returns the number of stored samples.
func (t *Table[V]) Len() int {
	return len(t.keys)
}

// Insert adds or overwrites the sample at key, keeping keys sorted.
// Duplicate keys overwrite the existing value rather than appending.
func (t *Table[V]) Insert(key float64, value V) {
	i := sort.SearchFloat64s(t.keys, key)
	if i < len(t.keys) && t.keys[i] == key {
		t.values[i] = value
		return
	}
	t.keys = append(t.keys, 0)
	t.values = append(t.values, value)
	copy(t.keys[i+1:], t.keys[i:len(t.keys)-1])
	copy(t.values[i+1:], t.values[i:len(t.values)-1])
	t.keys[i] = key
	t.values[i] = value
}

// Validate reports whether the table has at least two strictly
// ascending keys, per the InterpTable invariants.
func (t *Table[V]) Validate() error {
	if len(t.keys) < 2 {
		return fmt.Errorf("%w: have %d", ErrTooFewKeys, len(t.keys))
	}
	for i := 1; i < len(t.keys); i++ {
		if t.keys[i] <= t.keys[i-1] {
			return fmt.Errorf("%w: key[%d]=%v <= key[%d]=%v", ErrKeysNotAscending, i, t.keys[i], i-1, t.keys[i-1])
		}
	}
	return nil
}

// Bounds returns the minimum and maximum stored key.
func (t *Table[V]) Bounds() (min, max float64) {
	if len(t.keys) == 0 {
		return 0, 0
	}
	return t.keys[0], t.keys[len(t.keys)-1]
}

// Lookup returns the interpolated (or clamped) value at key.
func (t *Table[V]) Lookup(key float64) V {
	n := len(t.keys)
	if n == 0 {
		var zero V
		return zero
	}
	if n == 1 || key <= t.keys[0] {
		return t.values[0]
	}
	if key >= t.keys[n-1] {
		return t.values[n-1]
	}

	i := sort.SearchFloat64s(t.keys, key)
	if i < n && t.keys[i] == key {
		return t.values[i]
	}
	// i is the index of the first key greater than key; the
	// bracketing pair is (i-1, i).
	k0, k1 := t.keys[i-1], t.keys[i]
	v0, v1 := t.values[i-1], t.values[i]
	frac := (key - k0) / (k1 - k0)
	return lerp(v0, v1, frac)
}

// Extremes returns the minimum- and maximum-magnitude stored values,
// used to seed the min/max gain cache without a full table scan on
// every miss (the cache itself still scans once per distinct key).
//
// For Complex-valued tables (monopulse sum/difference channels),
// ranking by magnitude is the same as ranking by squared magnitude
// since both are monotone in |v|, so the squaring pass runs through
// vecmath.Power instead of a scalar cmplx.Abs per sample. Real-valued
// tables keep the scalar scan: magnitude is the identity for float64,
// and x*x is not monotone across a sign change, so vectorizing the
// comparison would silently reorder negative and positive samples.
func (t *Table[V]) Extremes() (min, max V) {
	if len(t.values) == 0 {
		var zero V
		return zero, zero
	}
	if complexVals, ok := any(t.values).([]Complex); ok {
		n := len(complexVals)
		re := make([]float64, n)
		im := make([]float64, n)
		for i, c := range complexVals {
			re[i], im[i] = c.Re, c.Im
		}
		power := make([]float64, n)
		vecmath.Power(power, re, im)
		minIdx, maxIdx := 0, 0
		for i := 1; i < n; i++ {
			if power[i] < power[minIdx] {
				minIdx = i
			}
			if power[i] > power[maxIdx] {
				maxIdx = i
			}
		}
		return any(complexVals[minIdx]).(V), any(complexVals[maxIdx]).(V)
	}

	min, max = t.values[0], t.values[0]
	minMag, maxMag := magnitude(min), magnitude(max)
	for _, v := range t.values[1:] {
		m := magnitude(v)
		if m < minMag {
			min, minMag = v, m
		}
		if m > maxMag {
			max, maxMag = v, m
		}
	}
	return min, max
}

// Keys returns the stored keys in ascending order. The returned slice
// must not be modified by the caller.
func (t *Table[V]) Keys() []float64 {
	return t.keys
}

// Values returns the stored values, keyed in the same order as Keys.
// The returned slice must not be modified by the caller.
func (t *Table[V]) Values() []V {
	return t.values
}

func lerp[V Value](a, b V, t float64) V {
	switch x := any(a).(type) {
	case float64:
		y := any(b).(float64)
		return any(x + (y-x)*t).(V)
	case Complex:
		y := any(b).(Complex)
		return any(x.Lerp(y, t)).(V)
	default:
		panic(fmt.Sprintf("interp: unsupported value type %T", a))
	}
}

func magnitude[V Value](v V) float64 {
	switch x := any(v).(type) {
	case float64:
		return x
	case Complex:
		return x.Abs()
	default:
		panic(fmt.Sprintf("interp: unsupported value type %T", v))
	}
}
