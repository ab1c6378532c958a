package angle

import (
	"math"
	"testing"
)

func TestWrapPi(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-2 * math.Pi, 0},
	}
	for _, c := range cases {
		got := WrapPi(c.in)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("WrapPi(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestWrapPiIsPeriodic(t *testing.T) {
	for _, x := range []float64{0.1, 1.3, -2.9, 3.0} {
		a := WrapPi(x)
		b := WrapPi(x + 2*math.Pi)
		if a != b {
			t.Errorf("WrapPi not 2pi-periodic for %v: %v != %v", x, a, b)
		}
	}
}

func TestWrap2Pi(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{-0.5, 2*math.Pi - 0.5},
		{2 * math.Pi, 0},
		{2*math.Pi + 1, 1},
	}
	for _, c := range cases {
		got := Wrap2Pi(c.in)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Wrap2Pi(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestWrapPiOver2Clamps(t *testing.T) {
	half := math.Pi / 2
	if got := WrapPiOver2(half + 0.5); got != half {
		t.Errorf("WrapPiOver2(beyond +pi/2) = %v, want %v", got, half)
	}
	if got := WrapPiOver2(-half - 0.5); got != -half {
		t.Errorf("WrapPiOver2(beyond -pi/2) = %v, want %v", got, -half)
	}
	if got := WrapPiOver2(0.3); got != 0.3 {
		t.Errorf("WrapPiOver2(in range) = %v, want 0.3", got)
	}
}

func TestDBLinearRoundTrip(t *testing.T) {
	for _, db := range []float64{-50, -10, 0, 3, 25} {
		lin := DBToLinear(db)
		back := LinearToDB(lin)
		if math.Abs(back-db) > 1e-9 {
			t.Errorf("round trip %v dB -> %v -> %v", db, lin, back)
		}
	}
}

func TestLinearToDBZeroIsSentinel(t *testing.T) {
	if got := LinearToDB(0); got != SmallDB {
		t.Errorf("LinearToDB(0) = %v, want %v", got, SmallDB)
	}
	if got := LinearToDB(-5); got != SmallDB {
		t.Errorf("LinearToDB(negative) = %v, want %v", got, SmallDB)
	}
}

func ExampleDBToLinear() {
	_ = DBToLinear(0)
	_ = DBToLinear(10)
}
