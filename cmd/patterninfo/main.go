// Command patterninfo loads an antenna pattern file and prints its
// gain at a given look direction, or a gain-vs-azimuth sweep.
//
// Usage:
//
//	patterninfo [flags] <pattern-file>
//
// Examples:
//
//	patterninfo antenna.pat
//	patterninfo -az 15 -el 0 -pol V antenna.mon
//	patterninfo -sweep -step 5 antenna.cru
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-pattern"
)

var polarityByName = map[string]pattern.Polarity{
	"h":   pattern.PolarityHorizontal,
	"v":   pattern.PolarityVertical,
	"rhc": pattern.PolarityRightCircular,
	"lhc": pattern.PolarityLeftCircular,
	"hv":  pattern.PolarityHorzVert,
	"vh":  pattern.PolarityVertHorz,
}

func main() {
	az := flag.Float64("az", 0, "azimuth in degrees")
	el := flag.Float64("el", 0, "elevation in degrees")
	freq := flag.Float64("freq", 0, "frequency in Hz, for frequency-dependent formats")
	pol := flag.String("pol", "h", "polarization: h, v, rhc, lhc, hv, vh")
	refGain := flag.Float64("refgain", 0, "reference gain in dB added to the pattern's own value")
	hbw := flag.Float64("hbw", 0, "horizontal beamwidth in degrees, for analytic models")
	vbw := flag.Float64("vbw", 0, "vertical beamwidth in degrees, for analytic models")
	weighted := flag.Bool("weighted", false, "use angular-distance weighted az/el combination")
	delta := flag.Bool("delta", false, "query the monopulse difference channel instead of sum")
	sweep := flag.Bool("sweep", false, "print a gain-vs-azimuth sweep instead of a single query")
	step := flag.Float64("step", 10, "azimuth step in degrees for -sweep")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: patterninfo [flags] <pattern-file>\n\n")
		fmt.Fprintf(os.Stderr, "Loads an antenna pattern file and prints its gain.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	path := flag.Arg(0)

	var sinkErrors []error
	handle, err := pattern.LoadPatternFile(path,
		pattern.WithErrorSink(func(_ pattern.PatternHandle, e error) {
			sinkErrors = append(sinkErrors, e)
		}),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	polarity, ok := polarityByName[strings.ToLower(*pol)]
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown polarization %q\n", *pol)
		os.Exit(1)
	}

	q := pattern.GainQuery{
		Polarity:      polarity,
		HBW:           *hbw * math.Pi / 180,
		VBW:           *vbw * math.Pi / 180,
		RefGain:       *refGain,
		FirstSideLobe: pattern.NoOverride,
		BackLobe:      pattern.NoOverride,
		Freq:          *freq,
		Weighting:     *weighted,
		Delta:         *delta,
	}

	printHeader(handle, path)

	if *sweep {
		printSweep(handle, q, *el, *step)
	} else {
		printSingle(handle, q, *az, *el)
	}

	for _, e := range sinkErrors {
		fmt.Fprintf(os.Stderr, "warning: %v\n", e)
	}
}

func printHeader(handle pattern.PatternHandle, path string) {
	minQ := pattern.GainQuery{FirstSideLobe: pattern.NoOverride, BackLobe: pattern.NoOverride}
	min, max := handle.MinMaxGain(minQ)
	fmt.Printf("%s: type=%s valid=%v min=%.2f dB max=%.2f dB\n",
		path, pattern.PatternTypeName(handle.Type()), handle.Valid(), min, max)
	if hi, ok := handle.(pattern.HeaderInfo); ok {
		if summary := hi.HeaderSummary(); summary != "" {
			fmt.Printf("  %s\n", summary)
		}
	}
}

func printSingle(handle pattern.PatternHandle, q pattern.GainQuery, azDeg, elDeg float64) {
	q.Azim = azDeg * math.Pi / 180
	q.Elev = elDeg * math.Pi / 180
	g := handle.Gain(q)
	fmt.Printf("az=%.2f el=%.2f: gain=%.2f dB\n", azDeg, elDeg, g)
	if err := handle.LastError(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
}

func printSweep(handle pattern.PatternHandle, q pattern.GainQuery, elDeg, stepDeg float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Azimuth [deg]\tGain [dB]\n")
	fmt.Fprintf(tw, "-------------\t---------\n")
	q.Elev = elDeg * math.Pi / 180
	for azDeg := -180.0; azDeg <= 180.0; azDeg += stepDeg {
		q.Azim = azDeg * math.Pi / 180
		g := handle.Gain(q)
		fmt.Fprintf(tw, "%.2f\t%.2f\n", azDeg, g)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
