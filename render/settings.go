package render

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/carbocation/htsviz"
	"github.com/carbocation/pfx"
)

// Settings controls the look of the rendered figures. The assay-specific axis
// ranges are not settings; they come from the strain's parameter record.
type Settings struct {
	ConfigPath string `json:"-"`

	Width  int `json:"width"`
	Height int `json:"height"`

	RawMarkerSize float64 `json:"raw_marker_size"`
	RawOpacity    float64 `json:"raw_opacity"`

	AverageMarkerSize   float64 `json:"average_marker_size"`
	AverageOpacity      float64 `json:"average_opacity"`
	AverageOutlineColor string  `json:"average_outline_color"`
	AverageOutlineWidth float64 `json:"average_outline_width"`

	// PlotlyURL is the script the HTML document loads plotly.js from.
	PlotlyURL string `json:"plotly_url"`

	PNGWidth    int     `json:"png_width"`
	PNGHeight   int     `json:"png_height"`
	PNGDotWidth float64 `json:"png_dot_width"`
}

func DefaultSettings() Settings {
	return Settings{
		Width:  1200,
		Height: 1000,

		RawMarkerSize: 4,
		RawOpacity:    0.2,

		AverageMarkerSize:   10,
		AverageOpacity:      0.8,
		AverageOutlineColor: "black",
		AverageOutlineWidth: 2,

		PlotlyURL: "https://cdn.plot.ly/plotly-2.35.2.min.js",

		PNGWidth:    800,
		PNGHeight:   800,
		PNGDotWidth: 3,
	}
}

// Validate rejects settings that would produce an empty or invisible figure.
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("figure size must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.PNGWidth <= 0 || s.PNGHeight <= 0 {
		return fmt.Errorf("png size must be positive, got %dx%d", s.PNGWidth, s.PNGHeight)
	}
	if s.RawOpacity < 0 || s.RawOpacity > 1 || s.AverageOpacity < 0 || s.AverageOpacity > 1 {
		return fmt.Errorf("opacities must be within [0, 1], got raw=%v average=%v", s.RawOpacity, s.AverageOpacity)
	}
	if s.PlotlyURL == "" {
		return fmt.Errorf("plotly_url must be set")
	}

	return nil
}

// ParseSettingsFromPath reads a JSON settings file. Keys absent from the file
// keep their DefaultSettings values.
func ParseSettingsFromPath(path string) (Settings, error) {
	out := DefaultSettings()
	out.ConfigPath = htsviz.ExpandHome(path)

	f, err := os.Open(out.ConfigPath)
	if err != nil {
		return out, pfx.Err(err)
	}
	defer f.Close()

	err = json.NewDecoder(f).Decode(&out)
	if err != nil {
		if e, ok := err.(*json.SyntaxError); ok {
			log.Printf("syntax error at byte offset %d", e.Offset)
		}

		return out, pfx.Err(err)
	}

	if err := out.Validate(); err != nil {
		return out, fmt.Errorf("%s: %w", out.ConfigPath, err)
	}

	return out, nil
}
