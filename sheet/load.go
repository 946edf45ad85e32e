package sheet

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/carbocation/htsviz/measure"
)

// ErrMalformedSheet marks a dose-stage sheet that lacks a required column.
// Such sheets are skipped, not fatal.
var ErrMalformedSheet = errors.New("missing required columns")

const (
	ColumnX = "X value"
	ColumnY = "Y value"
	ColumnZ = "Z value"
)

// Cell contents that mean "no measurement".
var missingValues = map[string]struct{}{
	"":     {},
	"NA":   {},
	"N/A":  {},
	">100": {},
}

// ParseValue coerces a cell to a number. Missing markers, unparsable text and
// non-finite values all report false.
func ParseValue(cell string) (float64, bool) {
	cell = strings.TrimSpace(cell)
	if _, missing := missingValues[cell]; missing {
		return 0, false
	}

	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

// SheetResult describes what happened to one sheet during Load.
type SheetResult struct {
	Name    string
	Stage   measure.DoseStage
	Matched bool // whether the name carries a dose stage
	Rows    int  // data rows, excluding the header
	Kept    int
	Err     error
}

// Report summarizes a Load.
type Report struct {
	Sheets []SheetResult
}

// DroppedRows counts data rows discarded for a missing coordinate.
func (r Report) DroppedRows() int {
	n := 0
	for _, s := range r.Sheets {
		n += s.Rows - s.Kept
	}

	return n
}

// Skipped returns the sheets that contributed no rows because they carry no
// dose stage or could not be read.
func (r Report) Skipped() []SheetResult {
	out := make([]SheetResult, 0)
	for _, s := range r.Sheets {
		if !s.Matched || s.Err != nil {
			out = append(out, s)
		}
	}

	return out
}

// A Loader turns workbook sheets into measurement points. Logger receives one
// line per skipped sheet; nil means log.Default().
type Loader struct {
	Logger *log.Logger
}

// Load is Loader{}.Load.
func Load(wb Workbook) ([]measure.Point, Report, error) {
	return Loader{}.Load(wb)
}

// Load reads every dose-stage sheet of wb. Sheets are visited in workbook
// order; within a sheet, rows keep their order. Header cells are matched
// against the X/Y/Z column names after trimming surrounding whitespace and a
// leading byte order mark, so " Z value" matches Z value. Sheets without a
// dose stage and sheets missing one of the X/Y/Z columns are skipped, as are
// rows with any missing coordinate. If nothing survives, the error wraps
// measure.ErrEmptyInput.
func (l Loader) Load(wb Workbook) ([]measure.Point, Report, error) {
	logger := l.Logger
	if logger == nil {
		logger = log.Default()
	}

	var report Report
	points := make([]measure.Point, 0)

	for _, name := range wb.SheetNames() {
		result := SheetResult{Name: name}

		stage, ok := measure.StageFromSheetName(name)
		if !ok {
			report.Sheets = append(report.Sheets, result)
			continue
		}
		result.Stage = stage
		result.Matched = true

		rows, err := wb.Rows(name)
		if err != nil {
			result.Err = err
			report.Sheets = append(report.Sheets, result)
			logger.Printf("Skipping sheet %q: %v\n", name, err)
			continue
		}

		sheetPoints, total, err := parseRows(name, stage, rows)
		result.Rows = total
		result.Kept = len(sheetPoints)
		result.Err = err
		report.Sheets = append(report.Sheets, result)
		if err != nil {
			logger.Printf("Skipping sheet %q: %v\n", name, err)
			continue
		}

		points = append(points, sheetPoints...)
	}

	if len(points) == 0 {
		return nil, report, fmt.Errorf("%w: none of %d sheets yielded a complete X/Y/Z row", measure.ErrEmptyInput, len(report.Sheets))
	}

	return points, report, nil
}

func parseRows(name string, stage measure.DoseStage, rows [][]string) ([]measure.Point, int, error) {
	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("%w: sheet has no header row", ErrMalformedSheet)
	}

	cols := map[string]int{ColumnX: -1, ColumnY: -1, ColumnZ: -1}
	for i, header := range rows[0] {
		header = strings.TrimSpace(strings.TrimPrefix(header, "\ufeff"))
		if idx, wanted := cols[header]; wanted && idx < 0 {
			cols[header] = i
		}
	}

	missing := make([]string, 0)
	for _, col := range []string{ColumnX, ColumnY, ColumnZ} {
		if cols[col] < 0 {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, 0, fmt.Errorf("%w: %s", ErrMalformedSheet, strings.Join(missing, ", "))
	}

	out := make([]measure.Point, 0, len(rows)-1)
	for _, row := range rows[1:] {
		x, okX := cell(row, cols[ColumnX])
		y, okY := cell(row, cols[ColumnY])
		z, okZ := cell(row, cols[ColumnZ])
		if !okX || !okY || !okZ {
			continue
		}

		out = append(out, measure.Point{X: x, Y: y, Z: z, Condition: name, Stage: stage})
	}

	return out, len(rows) - 1, nil
}

func cell(row []string, idx int) (float64, bool) {
	if idx >= len(row) {
		return 0, false
	}

	return ParseValue(row[idx])
}
