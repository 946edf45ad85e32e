package render

import (
	"html/template"
	"io"

	"github.com/carbocation/pfx"
)

var pageTemplate = template.Must(template.New("figure").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.PlotlyURL}}"></script>
</head>
<body>
<div id="figure" style="width:{{.Width}}px;height:{{.Height}}px;"></div>
<script>
var figure = {{.Figure}};
Plotly.newPlot("figure", figure.data, figure.layout, {responsive: true});
</script>
</body>
</html>
`))

// WriteHTML writes fig as a standalone interactive HTML document.
func WriteHTML(w io.Writer, fig Figure, s Settings) error {
	err := pageTemplate.Execute(w, struct {
		Title     string
		PlotlyURL string
		Width     int
		Height    int
		Figure    Figure
	}{
		Title:     fig.Layout.Title.Text,
		PlotlyURL: s.PlotlyURL,
		Width:     fig.Layout.Width,
		Height:    fig.Layout.Height,
		Figure:    fig,
	})

	return pfx.Err(err)
}
