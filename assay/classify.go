package assay

import "math"

// PaletteSize is the number of discrete colors available to Low-regime bins.
const PaletteSize = 8

// Regime is the response class of a Z measurement.
type Regime int

const (
	Low Regime = iota
	High
)

func (r Regime) String() string {
	switch r {
	case Low:
		return "low"
	case High:
		return "high"
	default:
		return "unknown"
	}
}

// Classification is the result of Classify. Bin is only meaningful when HasBin
// is true, which is the case for every Low value.
type Classification struct {
	Regime Regime
	Bin    int
	HasBin bool
}

// Classify places value in the Low regime (value <= Threshold, inclusive) or
// the High regime. Low values get a bin in [0, PaletteSize-1]; anything the
// binning formula puts outside that range is clamped. NaN is High.
func Classify(value float64, rec ParameterRecord) Classification {
	if !(value <= rec.Threshold) {
		return Classification{Regime: High}
	}

	raw := binValue(value, rec.BinMode, rec.BinSize)
	if math.IsNaN(raw) {
		raw = 0
	}

	// Clamp before converting so that infinities stay well defined
	raw = math.Max(0, math.Min(raw, PaletteSize-1))

	return Classification{Regime: Low, Bin: int(raw), HasBin: true}
}

// BinIndex returns the unclamped bin for value under mode.
func BinIndex(value float64, mode BinMode, binSize float64) int {
	return int(binValue(value, mode, binSize))
}

func binValue(value float64, mode BinMode, binSize float64) float64 {
	switch mode {
	case BinModeAB:
		return math.Floor((value - 12) / binSize)
	case BinModeSA, BinModePA:
		return math.Floor(value / binSize)
	default:
		return 0
	}
}
