// Package storage persists uploaded scale photos through a gocloud.dev blob
// bucket, so local disk and cloud object stores are interchangeable.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"weightwise/config"
	"weightwise/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket driver
)

// uploadsPrefix is the public URL path uploads are served under.
const uploadsPrefix = "/uploads/"

type photoStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// StoreParams holds dependencies for PhotoStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPhotoStore opens the configured blob bucket and wires its lifecycle.
func NewPhotoStore(params StoreParams) (service.PhotoStore, error) {
	bucketURL := params.Config.Uploads.BucketURL
	if bucketURL == "" {
		return nil, errors.New("uploads bucket URL must be provided")
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open blob bucket %s", bucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing photo bucket")

			return bucket.Close()
		},
	})

	return &photoStore{bucket: bucket, logger: params.Logger}, nil
}

// Save writes the photo under a random name keeping the original extension
// and returns the public path it will be served from.
func (s *photoStore) Save(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	name := uuid.NewString() + sanitizeExtension(filename)

	w, err := s.bucket.NewWriter(ctx, name, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		w.Close()

		return "", errors.Wrap(err, "failed to write photo")
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize photo write")
	}

	s.logger.Debug("Photo stored", slog.String("name", name))

	return uploadsPrefix + name, nil
}

// sanitizeExtension keeps only a plain lowercase extension from the uploaded
// filename. Anything odd degrades to no extension rather than an error.
func sanitizeExtension(filename string) string {
	ext := strings.ToLower(path.Ext(path.Base(filename)))
	if len(ext) < 2 || len(ext) > 10 {
		return ""
	}

	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}

	return ext
}
