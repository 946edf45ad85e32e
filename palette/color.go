package palette

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is a CSS color as understood by plotly: either an SVG color name
// (e.g., "grey") or an RGB hex code (e.g., #9D3CFF).
type Color string

// NRGBA converts the color into an opaque color.NRGBA, for renderers that
// cannot take CSS strings.
func (c Color) NRGBA() (color.NRGBA, error) {
	code := strings.TrimSpace(string(c))

	if strings.HasPrefix(code, "#") {
		parsed, err := colorful.Hex(code)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("color %q: %w", c, err)
		}
		r, g, b := parsed.RGB255()

		return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
	}

	named, exists := colornames.Map[strings.ToLower(code)]
	if !exists {
		return color.NRGBA{}, fmt.Errorf("color %q is neither a hex code nor a known color name", c)
	}

	return color.NRGBA{R: named.R, G: named.G, B: named.B, A: 255}, nil
}

// Hex returns the lowercase #rrggbb form of the color.
func (c Color) Hex() (string, error) {
	col, err := c.NRGBA()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("#%02x%02x%02x", col.R, col.G, col.B), nil
}
