package htsviz

import (
	"bufio"
	"io"
	"path/filepath"
	"strings"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the single most likely rune that would delimit the
// values in the reader, assuming a CSV-like file.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}

// DelimiterForFile picks the delimiter for a delimited export. A .tsv
// extension is taken at its word; anything else is sniffed from the head of
// the file. The returned reader yields the full, unconsumed contents.
func DelimiterForFile(name string, r io.Reader) (rune, io.Reader) {
	if strings.EqualFold(filepath.Ext(name), ".tsv") {
		return '\t', r
	}

	br := bufio.NewReader(r)
	head, _ := br.Peek(4096)

	// Only sniff whole lines
	sample := string(head)
	if i := strings.LastIndexByte(sample, '\n'); i > 0 {
		sample = sample[:i]
	}

	return DetermineDelimiter(strings.NewReader(sample)), br
}
