package sheet

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/htsviz"
	"github.com/carbocation/pfx"
)

// ErrUnsupportedFormat is returned by Open for extensions it cannot read.
var ErrUnsupportedFormat = errors.New("unsupported workbook format")

// A Workbook is a named collection of sheets, each of which is a grid of cell
// strings. The first row of a sheet is its header.
type Workbook interface {
	SheetNames() []string
	Rows(sheetName string) ([][]string, error)
	Close() error
}

// Open reads the workbook at filePath, which may be a gs:// path if client is
// non-nil. The format is chosen by extension: .xls, .xlsx/.xlsm, or a
// delimited .csv/.tsv/.txt export that is read as a single sheet named after
// the file. A trailing .gz, .bz2 or .xz is decompressed first.
func Open(ctx context.Context, filePath string, client *storage.Client) (Workbook, error) {
	name := htsviz.TrimCompressionExt(filePath)
	ext := strings.ToLower(path.Ext(name))
	switch ext {
	case ".xls", ".xlsx", ".xlsm", ".csv", ".tsv", ".txt":
	default:
		return nil, fmt.Errorf("%w: %q (%s)", ErrUnsupportedFormat, ext, filePath)
	}

	f, _, err := htsviz.OpenInput(ctx, filePath, client)
	if err != nil {
		return nil, pfx.Err(err)
	}
	body, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		return nil, pfx.Err(err)
	}

	if name != filePath {
		if body, _, err = htsviz.MaybeDecompress(body); err != nil {
			return nil, err
		}
	}

	switch ext {
	case ".xls":
		return OpenXLS(bytes.NewReader(body))
	case ".xlsx", ".xlsm":
		return OpenXLSX(bytes.NewReader(body))
	default:
		base := strings.TrimSuffix(path.Base(name), path.Ext(name))
		return OpenDelimited(base, name, bytes.NewReader(body))
	}
}

// Memory is a Workbook held in memory. Sheets are kept in insertion order.
type Memory struct {
	names  []string
	sheets map[string][][]string
}

// NewMemory returns an empty in-memory workbook.
func NewMemory() *Memory {
	return &Memory{sheets: make(map[string][][]string)}
}

// AddSheet appends a sheet, replacing any sheet of the same name.
func (m *Memory) AddSheet(name string, rows [][]string) {
	if _, exists := m.sheets[name]; !exists {
		m.names = append(m.names, name)
	}
	m.sheets[name] = rows
}

func (m *Memory) SheetNames() []string {
	return append([]string(nil), m.names...)
}

func (m *Memory) Rows(sheetName string) ([][]string, error) {
	rows, exists := m.sheets[sheetName]
	if !exists {
		return nil, fmt.Errorf("no sheet named %q", sheetName)
	}

	return rows, nil
}

func (m *Memory) Close() error { return nil }
