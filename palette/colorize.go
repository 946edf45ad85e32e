package palette

import (
	"math"

	"github.com/carbocation/htsviz/assay"
	"gonum.org/v1/gonum/floats"
)

// Normalize maps value onto [0, 1] over the domain [lo, hi], clamping values
// outside the domain. An empty or inverted domain (hi <= lo) maps everything
// to 1, the end of the gradient. NaN maps to 0.
func Normalize(value, lo, hi float64) float64 {
	if math.IsNaN(value) {
		return 0
	}

	span := hi - lo
	if !(span > 0) {
		return 1
	}

	return math.Max(0, math.Min((value-lo)/span, 1))
}

// Colorize returns the color for value. Low-regime values take their bin's
// discrete color; High-regime values are placed on the High gradient over
// [rec.Threshold, observedMax].
func Colorize(value float64, rec assay.ParameterRecord, observedMax float64) Color {
	class := assay.Classify(value, rec)
	if class.Regime == assay.Low {
		return DiscreteAt(class.Bin)
	}

	return High.At(Normalize(value, rec.Threshold, observedMax))
}

// A Colorizer colors the values of one rendering pass. Each pass (raw points,
// averaged points) has its own ObservedMax.
type Colorizer struct {
	Record      assay.ParameterRecord
	ObservedMax float64
}

// NewColorizer binds rec to the maximum of values. With no values, the
// threshold itself is used as the maximum.
func NewColorizer(rec assay.ParameterRecord, values []float64) Colorizer {
	observed := rec.Threshold
	if len(values) > 0 {
		observed = floats.Max(values)
	}

	return Colorizer{Record: rec, ObservedMax: observed}
}

// Color colors a single value.
func (c Colorizer) Color(value float64) Color {
	return Colorize(value, c.Record, c.ObservedMax)
}

// Colors colors each value in order.
func (c Colorizer) Colors(values []float64) []Color {
	out := make([]Color, len(values))
	for i, v := range values {
		out[i] = c.Color(v)
	}

	return out
}
