package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/carbocation/htsviz/assay"
	"github.com/carbocation/htsviz/measure"
	"github.com/carbocation/htsviz/palette"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// A zero drawing.Color means "use the default" to go-chart, so transparency
// needs a nonzero channel.
var transparent = drawing.Color{R: 255, G: 255, B: 255, A: 0}

// WriteStagePNG renders a top-down X/Y projection of one dose stage's raw
// points on a transparent background. Colors come from the raw pass over all
// of raw, so they match the HTML figure.
func WriteStagePNG(w io.Writer, stage measure.DoseStage, rec assay.ParameterRecord, raw []measure.Point, s Settings) error {
	sub := measure.ByStage(raw, stage)
	if len(sub) == 0 {
		return fmt.Errorf("no %s points to plot: %w", stage, measure.ErrEmptyInput)
	}

	pass := palette.NewColorizer(rec, measure.ZValues(raw))

	xs := make([]float64, len(sub))
	ys := make([]float64, len(sub))
	dotColors := make([]drawing.Color, len(sub))
	for i, p := range sub {
		xs[i], ys[i] = p.X, p.Y

		c, err := pass.Color(p.Z).NRGBA()
		if err != nil {
			return err
		}
		dotColors[i] = drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
	}

	graph := chart.Chart{
		Title:      stage.String(),
		Width:      s.PNGWidth,
		Height:     s.PNGHeight,
		Background: chart.Style{FillColor: transparent, Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		Canvas:     chart.Style{FillColor: transparent},
		XAxis: chart.XAxis{
			Name:  "X",
			Range: &chart.ContinuousRange{Min: 0, Max: rec.XYRange},
			Ticks: axisTicks(rec.XYRange, rec.XYTick),
		},
		YAxis: chart.YAxis{
			Name:  "Y",
			Range: &chart.ContinuousRange{Min: 0, Max: rec.XYRange},
			Ticks: axisTicks(rec.XYRange, rec.XYTick),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    stage.String(),
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    s.PNGDotWidth,
					DotColorProvider: func(xr, yr chart.Range, index int, x, y float64) drawing.Color {
						return dotColors[index]
					},
				},
			},
		},
	}

	return graph.Render(chart.PNG, w)
}

func axisTicks(max, step float64) []chart.Tick {
	out := make([]chart.Tick, 0)
	if step <= 0 {
		return out
	}

	for v := 0.0; v <= max; v += step {
		out = append(out, chart.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)})
	}

	return out
}
