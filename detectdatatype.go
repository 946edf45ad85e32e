package htsviz

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"
	"path"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeXZ
	DataTypeZ
	DataTypeBZip2
)

// Zip is deliberately absent: .xlsx workbooks are zip archives and must reach
// the workbook reader intact.
var byteCodeSigs = map[DataType][]byte{
	DataTypeGzip:  {0x1f, 0x8b, 0x08},
	DataTypeXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	DataTypeZ:     {0x1f, 0x9d},
	DataTypeBZip2: {0x42, 0x5a, 0x68},
}

var compressionExts = map[string]struct{}{
	".gz":  {},
	".bz2": {},
	".xz":  {},
}

// DetectDataType checks the head of a file against known compression
// signatures. Byte code signatures from
// https://stackoverflow.com/a/19127748/199475
func DetectDataType(head []byte) DataType {
	if len(head) == 0 {
		return DataTypeInvalid
	}

Outer:
	for dt, sig := range byteCodeSigs {
		if len(head) < len(sig) {
			continue
		}
		for position := range sig {
			if head[position] != sig[position] {
				continue Outer
			}
		}
		return dt
	}

	return DataTypeNoCompression
}

// MaybeDecompress returns body decompressed if it carries a known compression
// signature, and body itself otherwise.
func MaybeDecompress(body []byte) ([]byte, DataType, error) {
	dt := DetectDataType(body)

	var r io.Reader
	var err error
	switch dt {
	case DataTypeGzip:
		r, err = gzip.NewReader(bytes.NewReader(body))
	case DataTypeBZip2:
		r = bzip2.NewReader(bytes.NewReader(body))
	case DataTypeXZ:
		r, err = xz.NewReader(bytes.NewReader(body), 0)
	case DataTypeZ:
		r, err = zlib.NewReader(bytes.NewReader(body))
	default:
		return body, dt, nil
	}
	if err != nil {
		return nil, dt, pfx.Err(err)
	}

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, dt, pfx.Err(err)
	}

	return out, dt, nil
}

// TrimCompressionExt removes a trailing .gz, .bz2 or .xz extension.
func TrimCompressionExt(name string) string {
	if _, exists := compressionExts[strings.ToLower(path.Ext(name))]; exists {
		return strings.TrimSuffix(name, path.Ext(name))
	}

	return name
}
