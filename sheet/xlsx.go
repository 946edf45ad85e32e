package sheet

import (
	"io"

	"github.com/carbocation/pfx"
	"github.com/xuri/excelize/v2"
)

type xlsxWorkbook struct {
	f *excelize.File
}

// OpenXLSX reads an Office Open XML (.xlsx, .xlsm) workbook.
func OpenXLSX(r io.Reader) (Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return &xlsxWorkbook{f: f}, nil
}

func (x *xlsxWorkbook) SheetNames() []string {
	return x.f.GetSheetList()
}

// Rows returns unformatted cell values, so numbers are not subject to the
// workbook's display format.
func (x *xlsxWorkbook) Rows(sheetName string) ([][]string, error) {
	rows, err := x.f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, pfx.Err(err)
	}

	return rows, nil
}

func (x *xlsxWorkbook) Close() error {
	return x.f.Close()
}
