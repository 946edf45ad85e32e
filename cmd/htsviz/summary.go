package main

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/carbocation/htsviz/assay"
	"github.com/carbocation/htsviz/measure"
	"github.com/carbocation/htsviz/palette"
	"github.com/gocarina/gocsv"
)

type summaryRow struct {
	Condition string  `csv:"condition"`
	Stage     string  `csv:"stage"`
	N         int     `csv:"n"`
	X         float64 `csv:"x"`
	Y         float64 `csv:"y"`
	Z         float64 `csv:"z"`
	Regime    string  `csv:"regime"`
	Bin       string  `csv:"bin"`
	Color     string  `csv:"color"`
}

// summaryRows describes each averaged point with the colors of the averaged
// pass, so the rows match the outlined markers of the figure.
func summaryRows(rec assay.ParameterRecord, avg []measure.AggregatedPoint) []summaryRow {
	pass := palette.NewColorizer(rec, measure.AggregateZValues(avg))

	out := make([]summaryRow, 0, len(avg))
	for _, p := range avg {
		class := assay.Classify(p.Z, rec)

		bin := "NA"
		if class.HasBin {
			bin = strconv.Itoa(class.Bin)
		}

		out = append(out, summaryRow{
			Condition: p.Condition,
			Stage:     p.Stage.String(),
			N:         p.N,
			X:         p.X,
			Y:         p.Y,
			Z:         p.Z,
			Regime:    class.Regime.String(),
			Bin:       bin,
			Color:     string(pass.Color(p.Z)),
		})
	}

	return out
}

func writeSummaryTSV(w io.Writer, rec assay.ParameterRecord, avg []measure.AggregatedPoint) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	rows := summaryRows(rec, avg)
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return err
	}
	cw.Flush()

	return cw.Error()
}
