package render

import (
	"fmt"

	"github.com/carbocation/htsviz/assay"
	"github.com/carbocation/htsviz/measure"
	"github.com/carbocation/htsviz/palette"
)

// Figure is a plotly figure, serialized as-is into the HTML document.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

type Trace struct {
	Type    string    `json:"type"`
	Mode    string    `json:"mode"`
	Name    string    `json:"name"`
	X       []float64 `json:"x"`
	Y       []float64 `json:"y"`
	Z       []float64 `json:"z"`
	Text    []string  `json:"text,omitempty"`
	Marker  Marker    `json:"marker"`
	Opacity float64   `json:"opacity"`
}

type Marker struct {
	Size   float64         `json:"size"`
	Color  []palette.Color `json:"color"`
	Symbol string          `json:"symbol"`
	Line   *MarkerLine     `json:"line,omitempty"`
}

type MarkerLine struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

type Text struct {
	Text string `json:"text"`
}

type Axis struct {
	Range [2]float64 `json:"range"`
	DTick float64    `json:"dtick"`
	Title Text       `json:"title"`
}

type Scene struct {
	XAxis      Axis   `json:"xaxis"`
	YAxis      Axis   `json:"yaxis"`
	ZAxis      Axis   `json:"zaxis"`
	AspectMode string `json:"aspectmode"`
}

type Layout struct {
	Title  Text  `json:"title"`
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Scene  Scene `json:"scene"`
}

// BuildFigure lays out one raw trace and one average trace per dose stage.
// Raw and averaged points are colored in separate passes, each normalized to
// its own maximum Z.
func BuildFigure(title string, rec assay.ParameterRecord, raw []measure.Point, avg []measure.AggregatedPoint, s Settings) Figure {
	fig := Figure{
		Data: make([]Trace, 0, 6),
		Layout: Layout{
			Title:  Text{Text: title},
			Width:  s.Width,
			Height: s.Height,
			Scene: Scene{
				XAxis:      Axis{Range: [2]float64{0, rec.XYRange}, DTick: rec.XYTick, Title: Text{Text: "X"}},
				YAxis:      Axis{Range: [2]float64{0, rec.XYRange}, DTick: rec.XYTick, Title: Text{Text: "Y"}},
				ZAxis:      Axis{Range: [2]float64{0, rec.ZRange}, DTick: rec.ZTick, Title: Text{Text: "Z"}},
				AspectMode: "cube",
			},
		},
	}

	rawPass := palette.NewColorizer(rec, measure.ZValues(raw))
	for _, stage := range measure.Stages(raw) {
		sub := measure.ByStage(raw, stage)

		tr := Trace{
			Type:    "scatter3d",
			Mode:    "markers",
			Name:    stage.String(),
			X:       make([]float64, len(sub)),
			Y:       make([]float64, len(sub)),
			Z:       make([]float64, len(sub)),
			Text:    make([]string, len(sub)),
			Opacity: s.RawOpacity,
			Marker: Marker{
				Size:   s.RawMarkerSize,
				Color:  make([]palette.Color, len(sub)),
				Symbol: stage.Symbol(),
			},
		}
		for i, p := range sub {
			tr.X[i], tr.Y[i], tr.Z[i] = p.X, p.Y, p.Z
			tr.Text[i] = p.Condition
			tr.Marker.Color[i] = rawPass.Color(p.Z)
		}

		fig.Data = append(fig.Data, tr)
	}

	avgPass := palette.NewColorizer(rec, measure.AggregateZValues(avg))
	for _, stage := range measure.StagesOfAggregates(avg) {
		sub := measure.AggregatesByStage(avg, stage)

		tr := Trace{
			Type:    "scatter3d",
			Mode:    "markers",
			Name:    stage.String() + " (mean)",
			X:       make([]float64, len(sub)),
			Y:       make([]float64, len(sub)),
			Z:       make([]float64, len(sub)),
			Text:    make([]string, len(sub)),
			Opacity: s.AverageOpacity,
			Marker: Marker{
				Size:   s.AverageMarkerSize,
				Color:  make([]palette.Color, len(sub)),
				Symbol: stage.Symbol(),
				Line:   &MarkerLine{Color: s.AverageOutlineColor, Width: s.AverageOutlineWidth},
			},
		}
		for i, p := range sub {
			tr.X[i], tr.Y[i], tr.Z[i] = p.X, p.Y, p.Z
			tr.Text[i] = fmt.Sprintf("%s (n=%d)", p.Condition, p.N)
			tr.Marker.Color[i] = avgPass.Color(p.Z)
		}

		fig.Data = append(fig.Data, tr)
	}

	return fig
}
