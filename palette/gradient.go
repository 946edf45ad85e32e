package palette

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// A Gradient interpolates linearly in RGB space between evenly spaced color
// stops. If Levels is greater than one, positions are first snapped to a
// lookup table of that many entries, the same way sampled colormaps behave.
type Gradient struct {
	stops  []colorful.Color
	Levels int
}

// NewGradient builds a gradient from at least two hex color stops.
func NewGradient(levels int, hexStops ...string) (Gradient, error) {
	if len(hexStops) < 2 {
		return Gradient{}, fmt.Errorf("a gradient needs at least 2 stops, got %d", len(hexStops))
	}

	out := Gradient{Levels: levels, stops: make([]colorful.Color, 0, len(hexStops))}
	for _, h := range hexStops {
		c, err := colorful.Hex(h)
		if err != nil {
			return Gradient{}, fmt.Errorf("gradient stop %q: %w", h, err)
		}
		out.stops = append(out.stops, c)
	}

	return out, nil
}

// MustGradient is like NewGradient but panics on malformed stops. Intended
// for package-level variables.
func MustGradient(levels int, hexStops ...string) Gradient {
	g, err := NewGradient(levels, hexStops...)
	if err != nil {
		panic(err)
	}

	return g
}

// High is the High-regime gradient: light pink, red, maroon, near-black.
var High = MustGradient(256, "#FFB3AB", "#D5453F", "#800000", "#311010")

// At returns the color at fraction t of the gradient. t is clamped to [0, 1]
// and NaN is treated as 0.
func (g Gradient) At(t float64) Color {
	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	if g.Levels > 1 {
		idx := int(t * float64(g.Levels))
		if idx > g.Levels-1 {
			idx = g.Levels - 1
		}
		t = float64(idx) / float64(g.Levels-1)
	}

	segments := len(g.stops) - 1
	pos := t * float64(segments)
	lower := int(pos)
	if lower > segments-1 {
		lower = segments - 1
	}

	c := g.stops[lower].BlendRgb(g.stops[lower+1], pos-float64(lower))

	return Color(c.Clamped().Hex())
}

// Stops returns the gradient's stop colors as lowercase hex codes.
func (g Gradient) Stops() []Color {
	out := make([]Color, 0, len(g.stops))
	for _, s := range g.stops {
		out = append(out, Color(s.Hex()))
	}

	return out
}
