package storage

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestSanitizeExtension(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{"plain jpg", "scale.jpg", ".jpg"},
		{"uppercase", "SCALE.JPG", ".jpg"},
		{"png", "photo.png", ".png"},
		{"no extension", "photo", ""},
		{"trailing dot", "photo.", ""},
		{"path traversal", "../../etc/passwd", ""},
		{"weird characters", "photo.j%g", ""},
		{"absurdly long", "photo.aaaaaaaaaaaaaaa", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeExtension(tt.filename))
		})
	}
}

func TestPhotoStore_Save(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := &photoStore{bucket: bucket, logger: slog.Default()}

	publicPath, err := store.Save(context.Background(), "scale.jpg", "image/jpeg", strings.NewReader("fake image bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(publicPath, "/uploads/"))
	assert.True(t, strings.HasSuffix(publicPath, ".jpg"))

	// The stored object is retrievable under the generated name.
	name := strings.TrimPrefix(publicPath, "/uploads/")
	data, err := bucket.ReadAll(context.Background(), name)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestPhotoStore_SaveUniqueNames(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := &photoStore{bucket: bucket, logger: slog.Default()}

	first, err := store.Save(context.Background(), "a.png", "image/png", strings.NewReader("one"))
	require.NoError(t, err)

	second, err := store.Save(context.Background(), "a.png", "image/png", strings.NewReader("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
