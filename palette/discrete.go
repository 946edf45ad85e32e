package palette

import "github.com/carbocation/htsviz/assay"

// Discrete is the Low-regime palette, indexed by bin. The floor color is
// repeated for the first two bins and the last bin saturates to red.
var Discrete = [assay.PaletteSize]Color{
	"grey",
	"grey",
	"#9D3CFF",
	"#00A0FF",
	"#009300",
	"#E6DC32",
	"#F08228",
	"red",
}

// DiscreteAt returns the palette entry for bin, clamping out-of-range bins to
// the ends of the palette.
func DiscreteAt(bin int) Color {
	if bin < 0 {
		bin = 0
	}
	if bin > len(Discrete)-1 {
		bin = len(Discrete) - 1
	}

	return Discrete[bin]
}
