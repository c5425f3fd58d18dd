package storage

import (
	"context"
	"io"
)

// ObjectStore uploads raw report bytes to durable external storage and
// hands back a URL. The pipeline later fetches the bytes through the
// same adapter.
type ObjectStore interface {
	// Upload writes the object and returns its durable URL.
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)
	// Download retrieves the stored bytes.
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the object. Used best-effort on report deletion.
	Delete(ctx context.Context, key string) error
	// PublicURL returns the durable URL for a key without touching the store.
	PublicURL(key string) string
}
