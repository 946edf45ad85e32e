package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/carbocation/htsviz/assay"
	"github.com/carbocation/htsviz/measure"
	"github.com/carbocation/htsviz/render"
)

func TestRunWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "AMK_IC50.csv")

	body := "X value,Y value,Z value\n10,20,22\n30,40,150\n50,60,NA\n70,80,90\n"
	if err := os.WriteFile(input, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	if err := run(context.Background(), input, "AB_single", "amk", render.DefaultSettings(), true, true); err != nil {
		t.Fatal(err)
	}

	html, err := os.ReadFile(filepath.Join(dir, "AMK_IC50.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(html), "Plotly.newPlot") || !strings.Contains(string(html), `"grey"`) {
		t.Error("The HTML output is missing the figure")
	}

	for _, name := range []string{"AMK_IC50_IC50.png", "AMK_IC50_summary.tsv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Expected %s to be written: %v", name, err)
		}
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()

	err := run(context.Background(), filepath.Join(dir, "x_IC50.csv"), "E_coli", "amk", render.DefaultSettings(), false, false)
	if !errors.Is(err, assay.ErrUnknownStrain) {
		t.Errorf("Expected ErrUnknownStrain, got %v", err)
	}

	input := filepath.Join(dir, "Notes.csv")
	if err := os.WriteFile(input, []byte("X value,Y value,Z value\n1,2,3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	err = run(context.Background(), input, "SA", "van", render.DefaultSettings(), false, false)
	if !errors.Is(err, measure.ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput for a file without a dose stage, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "Notes.html")); !os.IsNotExist(statErr) {
		t.Error("No figure should be written when there is nothing to plot")
	}
}
