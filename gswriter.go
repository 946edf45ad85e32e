package htsviz

import (
	"context"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// CreateOutput creates path for writing. gs:// paths are written to Google
// Storage when client is non-nil; the object is only committed on Close.
func CreateOutput(ctx context.Context, outPath string, client *storage.Client) (io.WriteCloser, error) {
	if client != nil && IsGoogleStoragePath(outPath) {
		bucketName, pathName, err := SplitGoogleStoragePath(outPath)
		if err != nil {
			return nil, err
		}

		w := client.Bucket(bucketName).Object(pathName).NewWriter(ctx)
		w.ContentType = mime.TypeByExtension(path.Ext(pathName))

		return w, nil
	}

	f, err := os.Create(outPath)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return f, nil
}

// OutputPath derives an output path from input: same directory (or bucket
// prefix) and base name, with suffix appended to the base name and the
// extension (including any compression extension) replaced by ext.
func OutputPath(input, suffix, ext string) string {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	input = TrimCompressionExt(input)

	if IsGoogleStoragePath(input) {
		return strings.TrimSuffix(input, path.Ext(input)) + suffix + ext
	}

	return strings.TrimSuffix(input, filepath.Ext(input)) + suffix + ext
}
