package main

import (
	"bytes"
	"log"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/htsviz/assay"
	"github.com/carbocation/htsviz/measure"
	"gonum.org/v1/gonum/floats"
)

// logZHistogram prints the distribution of raw Z values and how many fall in
// each regime.
func logZHistogram(points []measure.Point, rec assay.ParameterRecord) {
	zs := measure.ZValues(points)
	if len(zs) == 0 {
		return
	}

	low := 0
	for _, z := range zs {
		if assay.Classify(z, rec).Regime == assay.Low {
			low++
		}
	}
	log.Printf("Z values: %d low (<= %v), %d high\n", low, rec.Threshold, len(zs)-low)

	// Binning needs a nonzero spread
	if floats.Min(zs) == floats.Max(zs) {
		return
	}

	var buf bytes.Buffer
	if err := histogram.Fprint(&buf, histogram.Hist(12, zs), histogram.Linear(40)); err != nil {
		log.Println("Could not draw the Z histogram:", err)
		return
	}
	log.Printf("Z histogram:\n%s", buf.String())
}
