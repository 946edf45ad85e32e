package sheet

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"

	"github.com/carbocation/htsviz"
	"github.com/carbocation/pfx"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// OpenDelimited reads a delimited text export as a one-sheet workbook named
// sheetName. fileName is only used to pick the delimiter. A leading UTF-8
// byte order mark, as written by Excel's "CSV UTF-8" export, is dropped.
func OpenDelimited(sheetName, fileName string, r io.Reader) (Workbook, error) {
	br := bufio.NewReader(r)
	if head, _ := br.Peek(len(utf8BOM)); bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	delim, body := htsviz.DelimiterForFile(fileName, br)

	cr := csv.NewReader(body)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, pfx.Err(err)
	}

	m := NewMemory()
	m.AddSheet(sheetName, rows)

	return m, nil
}
