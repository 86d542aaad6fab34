package service

import (
	"context"
	"io"
)

// PhotoStore persists uploaded scale photos and yields the public path they
// are served from.
type PhotoStore interface {
	// Save writes the photo under a generated name derived from filename's
	// extension and returns the public URL path, e.g. "/uploads/5f3a….jpg".
	Save(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}
