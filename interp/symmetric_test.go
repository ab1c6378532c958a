package interp

import (
	"math"
	"testing"
)

func TestSymmetricMirror(t *testing.T) {
	tbl := New[float64](0)
	tbl.Insert(0, 10)
	tbl.Insert(math.Pi, 0)

	sym, err := NewSymmetric(tbl, SymmetryMirror)
	if err != nil {
		t.Fatalf("NewSymmetric: %v", err)
	}

	for _, az := range []float64{0.3, 1.0, 2.5} {
		pos := sym.Lookup(az)
		neg := sym.Lookup(-az)
		if pos != neg {
			t.Errorf("mirror asymmetric at %v: gain(+)=%v gain(-)=%v", az, pos, neg)
		}
	}
}

func TestSymmetricQuadrant(t *testing.T) {
	tbl := New[float64](0)
	tbl.Insert(0, 0)
	tbl.Insert(math.Pi/2, 10)

	sym, err := NewSymmetric(tbl, SymmetryQuadrant)
	if err != nil {
		t.Fatalf("NewSymmetric: %v", err)
	}

	// pi/4 should read the same sample regardless of which quadrant
	// and which sign it falls in.
	want := sym.Lookup(math.Pi / 4)
	for _, key := range []float64{
		math.Pi/4 + math.Pi,
		math.Pi/4 - math.Pi,
		math.Pi - math.Pi/4,
		-(math.Pi / 4),
	} {
		if got := sym.Lookup(key); math.Abs(got-want) > 1e-9 {
			t.Errorf("Lookup(%v) = %v, want %v (quadrant fold of pi/4)", key, got, want)
		}
	}
}

func TestSymmetricInvalidCode(t *testing.T) {
	tbl := New[float64](0)
	tbl.Insert(0, 0)
	tbl.Insert(1, 1)

	if _, err := NewSymmetric(tbl, Symmetry(3)); err == nil {
		t.Error("NewSymmetric(code=3) = nil error, want error")
	}
}
