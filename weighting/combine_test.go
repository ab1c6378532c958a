package weighting

import (
	"math"
	"testing"
)

func TestCombineUnweightedIsAdditive(t *testing.T) {
	if got := Combine(-3, -4, 0.1, 0.2, false); got != -7 {
		t.Errorf("Combine(unweighted) = %v, want -7", got)
	}
}

func TestCombineWeightedAtBoresightFallsBackToSum(t *testing.T) {
	got := Combine(-3, -4, 0, 0, true)
	if got != -7 {
		t.Errorf("Combine(weighted, boresight) = %v, want -7 (fallback to sum)", got)
	}
}

func TestCombineWeightedFavorsDominantAxis(t *testing.T) {
	// Large azim, zero elev: elevation sample should dominate the
	// weighted blend (wA small since |elev|=0).
	got := Combine(-100, 0, 1.5, 0, true)
	if math.Abs(got) > 1 {
		t.Errorf("Combine(large az, el=0) = %v, want near 0 (elev sample dominates)", got)
	}

	got = Combine(0, -100, 0, 1.5, true)
	if math.Abs(got) > 1 {
		t.Errorf("Combine(az=0, large el) = %v, want near 0 (azim sample dominates)", got)
	}
}
