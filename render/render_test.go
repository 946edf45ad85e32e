package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/carbocation/htsviz/assay"
	"github.com/carbocation/htsviz/measure"
	"github.com/carbocation/htsviz/palette"
)

var abRecord = assay.ParameterRecord{Threshold: 95, BinMode: assay.BinModeAB, BinSize: 10, XYRange: 180, ZRange: 180, XYTick: 20, ZTick: 20}

func samplePoints(t *testing.T) ([]measure.Point, []measure.AggregatedPoint) {
	raw := []measure.Point{
		{X: 10, Y: 20, Z: 22, Condition: "AMK_IC50", Stage: measure.IC50},
		{X: 30, Y: 40, Z: 150, Condition: "AMK_IC50", Stage: measure.IC50},
		{X: 50, Y: 60, Z: 250, Condition: "AMK_MIC", Stage: measure.MIC},
		{X: 70, Y: 80, Z: 90, Condition: "AMK_MIC", Stage: measure.MIC},
	}

	avg, err := measure.Aggregate(raw)
	if err != nil {
		t.Fatal(err)
	}

	return raw, avg
}

func TestBuildFigure(t *testing.T) {
	raw, avg := samplePoints(t)
	fig := BuildFigure("plate.xlsx", abRecord, raw, avg, DefaultSettings())

	if len(fig.Data) != 4 {
		t.Fatalf("Expected 2 raw and 2 average traces, got %d", len(fig.Data))
	}

	ic50 := fig.Data[0]
	if ic50.Name != "IC50" || ic50.Marker.Symbol != "circle" || len(ic50.X) != 2 {
		t.Errorf("Unexpected raw IC50 trace %+v", ic50)
	}
	if ic50.Marker.Color[0] != "grey" {
		t.Errorf("Expected z=22 to be grey, got %s", ic50.Marker.Color[0])
	}
	if ic50.Opacity != 0.2 || ic50.Marker.Size != 4 || ic50.Marker.Line != nil {
		t.Errorf("Unexpected raw styling %+v", ic50)
	}

	mic := fig.Data[1]
	if mic.Marker.Symbol != "x" || mic.Marker.Color[0] != "#311010" {
		t.Errorf("Expected the raw max to end the gradient, got %+v", mic.Marker)
	}

	// Averaged IC50 Z is 86 (low), MIC is 170, which is the averaged max.
	avgIC50, avgMIC := fig.Data[2], fig.Data[3]
	if avgIC50.Marker.Line == nil || avgIC50.Marker.Size != 10 {
		t.Errorf("Unexpected average styling %+v", avgIC50.Marker)
	}
	if avgIC50.Marker.Color[0] != palette.DiscreteAt(7) {
		t.Errorf("Expected the IC50 mean to fall in the last bin, got %s", avgIC50.Marker.Color[0])
	}
	if avgMIC.Marker.Color[0] != "#311010" {
		t.Errorf("Expected the averaged max to end the gradient, got %s", avgMIC.Marker.Color[0])
	}
	if avgMIC.Text[0] != "AMK_MIC (n=2)" {
		t.Errorf("Unexpected hover text %q", avgMIC.Text[0])
	}

	scene := fig.Layout.Scene
	if scene.ZAxis.Range != [2]float64{0, 180} || scene.XAxis.DTick != 20 || scene.AspectMode != "cube" {
		t.Errorf("Unexpected scene %+v", scene)
	}
}

func TestWriteHTML(t *testing.T) {
	raw, avg := samplePoints(t)
	s := DefaultSettings()
	fig := BuildFigure("plate.xlsx", abRecord, raw, avg, s)

	var buf bytes.Buffer
	if err := WriteHTML(&buf, fig, s); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"<title>plate.xlsx</title>", "Plotly.newPlot", s.PlotlyURL, `"scatter3d"`, `"#311010"`, `"aspectmode":"cube"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %s", want)
		}
	}

	// The figure literal must be valid JSON
	start := strings.Index(out, "var figure = ")
	end := strings.Index(out, ";\nPlotly.newPlot")
	if start < 0 || end < 0 {
		t.Fatal("Could not find the figure literal")
	}
	var decoded Figure
	if err := json.Unmarshal([]byte(out[start+len("var figure = "):end]), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded.Data) != len(fig.Data) {
		t.Errorf("Expected %d traces, got %d", len(fig.Data), len(decoded.Data))
	}
}

func TestWriteStagePNG(t *testing.T) {
	raw, _ := samplePoints(t)
	s := DefaultSettings()

	var buf bytes.Buffer
	if err := WriteStagePNG(&buf, measure.MIC, abRecord, raw, s); err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != s.PNGWidth || b.Dy() != s.PNGHeight {
		t.Errorf("Unexpected image size %v", b)
	}

	err = WriteStagePNG(&bytes.Buffer{}, measure.NineXMIC, abRecord, raw, s)
	if !errors.Is(err, measure.ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput for an absent stage, got %v", err)
	}
}

func TestParseSettingsFromPath(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(path, []byte(`{"width": 800, "raw_opacity": 0.5}`), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := ParseSettingsFromPath(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != 800 || s.RawOpacity != 0.5 {
		t.Errorf("Overrides not applied: %+v", s)
	}
	if s.Height != 1000 || s.AverageMarkerSize != 10 {
		t.Errorf("Defaults not kept: %+v", s)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"width": `), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseSettingsFromPath(bad); err == nil {
		t.Error("Expected a decoding error")
	}

	invalid := filepath.Join(dir, "invalid.json")
	if err := os.WriteFile(invalid, []byte(`{"raw_opacity": 3}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseSettingsFromPath(invalid); err == nil {
		t.Error("Expected a validation error")
	}
}

func TestAxisTicks(t *testing.T) {
	ticks := axisTicks(180, 20)
	if len(ticks) != 10 || ticks[9].Value != 180 || ticks[9].Label != "180" {
		t.Errorf("Unexpected ticks %+v", ticks)
	}
	if len(axisTicks(180, 0)) != 0 {
		t.Error("Expected no ticks for a zero step")
	}
}
