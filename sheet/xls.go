package sheet

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/carbocation/pfx"
	"github.com/extrame/xls"
)

// ErrUnreadableCells marks an .xls sheet holding numeric cells whose values
// the BIFF reader cannot recover: formula results, and numbers shown with a
// custom number format (which the reader renders as timestamps). Such sheets
// are skipped instead of having their rows silently dropped as missing.
var ErrUnreadableCells = errors.New("cells with unrecoverable numeric values")

// The BIFF reader renders every FORMULA record as this literal.
const xlsFormulaCell = "FormulaCol"

type xlsWorkbook struct {
	wb *xls.WorkBook
}

// OpenXLS reads a legacy (BIFF) .xls workbook.
func OpenXLS(r io.ReadSeeker) (Workbook, error) {
	wb, err := xls.OpenReader(r, "utf-8")
	if err != nil {
		return nil, pfx.Err(err)
	}
	if wb == nil {
		return nil, fmt.Errorf("no workbook stream found in .xls container")
	}

	return &xlsWorkbook{wb: wb}, nil
}

func (x *xlsWorkbook) SheetNames() []string {
	out := make([]string, 0, x.wb.NumSheets())
	for sheetID := 0; sheetID < x.wb.NumSheets(); sheetID++ {
		if sheet := x.wb.GetSheet(sheetID); sheet != nil {
			out = append(out, sheet.Name)
		}
	}

	return out
}

func (x *xlsWorkbook) Rows(sheetName string) ([][]string, error) {
	for sheetID := 0; sheetID < x.wb.NumSheets(); sheetID++ {
		sheet := x.wb.GetSheet(sheetID)
		if sheet == nil || sheet.Name != sheetName {
			continue
		}

		var formulas, formatted int
		out := make([][]string, 0, int(sheet.MaxRow)+1)
		for rowID := 0; rowID <= int(sheet.MaxRow); rowID++ {
			row := xlsRow(sheet, rowID)
			if row == nil {
				// Keep row positions stable; an absent row is an empty one
				out = append(out, nil)
				continue
			}

			cells := make([]string, 0, row.LastCol()+1)
			for colID := 0; colID <= row.LastCol(); colID++ {
				value := row.Col(colID)
				switch {
				case value == xlsFormulaCell:
					formulas++
				case isXLSTimestamp(value):
					formatted++
				}
				cells = append(cells, value)
			}
			out = append(out, cells)
		}

		if formulas > 0 || formatted > 0 {
			return nil, fmt.Errorf("%w: %d formula and %d custom-formatted cells; re-save the sheet as values or export it to .xlsx/.csv", ErrUnreadableCells, formulas, formatted)
		}

		return out, nil
	}

	return nil, fmt.Errorf("no sheet named %q", sheetName)
}

func (x *xlsWorkbook) Close() error { return nil }

// xlsRow returns nil for row indices that have no records. WorkSheet.Row
// dereferences the missing entry, so the panic is recovered here.
func xlsRow(sheet *xls.WorkSheet, rowID int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()

	return sheet.Row(rowID)
}

func isXLSTimestamp(value string) bool {
	_, err := time.Parse(time.RFC3339, value)
	return err == nil
}
