package interp

import (
	"errors"
	"math"
	"testing"
)

func TestTableLookupLinear(t *testing.T) {
	tbl := New[float64](4)
	tbl.Insert(0, 0)
	tbl.Insert(10, 10)
	tbl.Insert(20, 0)

	cases := []struct {
		key, want float64
	}{
		{0, 0},
		{5, 5},
		{10, 10},
		{15, 5},
		{20, 0},
	}
	for _, c := range cases {
		if got := tbl.Lookup(c.key); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Lookup(%v) = %v, want %v", c.key, got, c.want)
		}
	}
}

func TestTableLookupClampsOutsideRange(t *testing.T) {
	tbl := New[float64](2)
	tbl.Insert(-5, -1)
	tbl.Insert(5, 1)

	if got := tbl.Lookup(-100); got != -1 {
		t.Errorf("Lookup(below min) = %v, want -1", got)
	}
	if got := tbl.Lookup(100); got != 1 {
		t.Errorf("Lookup(above max) = %v, want 1", got)
	}
}

func TestTableInsertKeepsSortedAndOverwrites(t *testing.T) {
	tbl := New[float64](0)
	tbl.Insert(3, 30)
	tbl.Insert(1, 10)
	tbl.Insert(2, 20)
	tbl.Insert(2, 200) // overwrite

	want := []float64{1, 2, 3}
	if got := tbl.Keys(); !floatsEqual(got, want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	if got := tbl.Lookup(2); got != 200 {
		t.Errorf("Lookup(2) = %v, want 200 (overwritten)", got)
	}
}

func TestTableValidate(t *testing.T) {
	tbl := New[float64](0)
	if err := tbl.Validate(); !errors.Is(err, ErrTooFewKeys) {
		t.Errorf("empty table Validate() = %v, want ErrTooFewKeys", err)
	}

	tbl.Insert(1, 0)
	if err := tbl.Validate(); !errors.Is(err, ErrTooFewKeys) {
		t.Errorf("single-key table Validate() = %v, want ErrTooFewKeys", err)
	}

	tbl.Insert(2, 0)
	if err := tbl.Validate(); err != nil {
		t.Errorf("two-key ascending table Validate() = %v, want nil", err)
	}
}

func TestTableBounds(t *testing.T) {
	tbl := New[float64](0)
	tbl.Insert(-3, 0)
	tbl.Insert(7, 0)
	tbl.Insert(2, 0)

	min, max := tbl.Bounds()
	if min != -3 || max != 7 {
		t.Errorf("Bounds() = (%v,%v), want (-3,7)", min, max)
	}
}

func TestTableExtremesFloat(t *testing.T) {
	tbl := New[float64](0)
	tbl.Insert(0, 5)
	tbl.Insert(1, -20)
	tbl.Insert(2, 8)

	min, max := tbl.Extremes()
	if min != -20 || max != 8 {
		t.Errorf("Extremes() = (%v,%v), want (-20,8)", min, max)
	}
}

func TestTableExtremesComplex(t *testing.T) {
	tbl := New[Complex](0)
	tbl.Insert(0, Complex{Re: 1, Im: 0})
	tbl.Insert(1, Complex{Re: 3, Im: 4}) // |.| = 5, the max
	tbl.Insert(2, Complex{Re: 0, Im: 0.1})

	min, max := tbl.Extremes()
	if min.Abs() > 0.11 {
		t.Errorf("min magnitude = %v, want ~0.1", min.Abs())
	}
	if math.Abs(max.Abs()-5) > 1e-9 {
		t.Errorf("max magnitude = %v, want 5", max.Abs())
	}
}

func TestTableLookupComplex(t *testing.T) {
	tbl := New[Complex](0)
	tbl.Insert(0, Complex{Re: 0, Im: 0})
	tbl.Insert(10, Complex{Re: 10, Im: 20})

	got := tbl.Lookup(5)
	if math.Abs(got.Re-5) > 1e-9 || math.Abs(got.Im-10) > 1e-9 {
		t.Errorf("Lookup(5) = %+v, want {5 10}", got)
	}
}

func floatsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
