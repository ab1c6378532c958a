package analytic_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-pattern/analytic"
	"github.com/cwbudde/algo-pattern/ptype"
)

func ExampleNewGauss() {
	pattern := analytic.NewGauss()

	q := ptype.GainQuery{
		RefGain:       30,
		HBW:           10 * math.Pi / 180,
		VBW:           10 * math.Pi / 180,
		FirstSideLobe: ptype.NoOverride,
		BackLobe:      ptype.NoOverride,
	}

	boresight := pattern.Gain(q)

	q.Azim = q.HBW / 2 // the -3dB contour, by definition of HBW
	edge := pattern.Gain(q)

	fmt.Printf("boresight=%.1f edge=%.1f\n", boresight, edge)
	// Output:
	// boresight=30.0 edge=27.0
}
