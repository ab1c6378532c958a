package cache

import (
	"testing"

	"github.com/cwbudde/algo-pattern/ptype"
)

func TestEntryMissThenHit(t *testing.T) {
	var e Entry
	key := Key{HBW: 0.1, VBW: 0.2, Polarity: ptype.PolarityVertical, Freq: 1e9}

	calls := 0
	scan := func() (float32, float32) {
		calls++
		return -10, 20
	}

	min, max := e.Get(key, scan)
	if min != -10 || max != 20 {
		t.Fatalf("first Get = (%v,%v), want (-10,20)", min, max)
	}
	if calls != 1 {
		t.Fatalf("scan called %d times, want 1", calls)
	}

	min, max = e.Get(key, scan)
	if min != -10 || max != 20 {
		t.Fatalf("second Get = (%v,%v), want cached (-10,20)", min, max)
	}
	if calls != 1 {
		t.Fatalf("scan called %d times on cache hit, want still 1", calls)
	}
}

func TestEntryMissesOnKeyChange(t *testing.T) {
	var e Entry
	k1 := Key{HBW: 0.1}
	k2 := Key{HBW: 0.2}

	calls := 0
	scan := func() (float32, float32) { calls++; return float32(calls), float32(calls) }

	e.Get(k1, scan)
	e.Get(k2, scan)
	if calls != 2 {
		t.Fatalf("scan called %d times across distinct keys, want 2", calls)
	}
}

// useAsCache exercises c purely through the MinMaxCache interface, so
// this test doubles as a compile-time check that both Entry and
// AtomicEntry satisfy it.
func useAsCache(c MinMaxCache, key Key) (float32, float32) {
	return c.Get(key, func() (float32, float32) { return 1, 2 })
}

func TestEntryAndAtomicEntrySatisfyMinMaxCache(t *testing.T) {
	var e Entry
	var a AtomicEntry
	key := Key{HBW: 1}
	if min, max := useAsCache(&e, key); min != 1 || max != 2 {
		t.Fatalf("Entry via MinMaxCache = (%v,%v), want (1,2)", min, max)
	}
	if min, max := useAsCache(&a, key); min != 1 || max != 2 {
		t.Fatalf("AtomicEntry via MinMaxCache = (%v,%v), want (1,2)", min, max)
	}
}

func TestAtomicEntryMissThenHit(t *testing.T) {
	var e AtomicEntry
	key := Key{Freq: 5.6e9, Delta: true}

	calls := 0
	scan := func() (float32, float32) { calls++; return -5, 5 }

	e.Get(key, scan)
	e.Get(key, scan)
	if calls != 1 {
		t.Fatalf("scan called %d times, want 1", calls)
	}
}
