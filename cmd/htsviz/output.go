package main

import (
	"context"
	"io"

	"cloud.google.com/go/storage"
	"github.com/carbocation/htsviz"
)

// writeOutput creates outPath, hands it to fill, and closes it. For gs://
// paths the upload only completes on a successful Close, so its error is
// returned.
func writeOutput(ctx context.Context, outPath string, client *storage.Client, fill func(w io.Writer) error) error {
	w, err := htsviz.CreateOutput(ctx, outPath, client)
	if err != nil {
		return err
	}

	if err := fill(w); err != nil {
		w.Close()
		return err
	}

	return w.Close()
}
