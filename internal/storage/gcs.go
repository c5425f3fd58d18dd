package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/healthmate/healthmate-backend/internal/common"
)

// GCSStore stores report files in a Google Cloud Storage bucket.
type GCSStore struct {
	client    *storage.Client
	bucket    string
	cdnDomain string
	logger    *slog.Logger
}

// NewGCSStore builds a bucket-backed store. An optional CDN domain
// overrides the default storage.googleapis.com URL shape.
func NewGCSStore(ctx context.Context, cfg common.StorageConfig, logger *slog.Logger, opts ...option.ClientOption) (*GCSStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage: bucket name is required")
	}
	client, err := storage.NewClient(ctx, append(opts, option.WithScopes(storage.ScopeReadWrite))...)
	if err != nil {
		return nil, fmt.Errorf("storage: create client: %w", err)
	}
	return &GCSStore{
		client:    client,
		bucket:    cfg.Bucket,
		cdnDomain: strings.TrimSuffix(cfg.CDNDomain, "/"),
		logger:    logger,
	}, nil
}

func (s *GCSStore) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}
	n, err := io.Copy(w, r)
	if err != nil {
		_ = w.Close()
		s.logger.Error("storage.upload.write_error", "key", key, "error", err)
		return "", fmt.Errorf("%w: write object: %v", common.ErrUpstreamUnavailable, err)
	}
	if err := w.Close(); err != nil {
		s.logger.Error("storage.upload.close_error", "key", key, "error", err)
		return "", fmt.Errorf("%w: close writer: %v", common.ErrUpstreamUnavailable, err)
	}
	s.logger.Info("storage.upload.ok",
		"key", key,
		"bytes", n,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return s.PublicURL(key), nil
}

func (s *GCSStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	rc, err := s.client.Bucket(s.bucket).Object(key).NewReader(ctx)
	if err != nil {
		s.logger.Error("storage.download.error", "key", key, "error", err)
		return nil, fmt.Errorf("%w: open object: %v", common.ErrUpstreamUnavailable, err)
	}
	return rc, nil
}

func (s *GCSStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Bucket(s.bucket).Object(key).Delete(ctx); err != nil {
		s.logger.Warn("storage.delete.error", "key", key, "error", err)
		return fmt.Errorf("%w: delete object: %v", common.ErrUpstreamUnavailable, err)
	}
	return nil
}

func (s *GCSStore) PublicURL(key string) string {
	if s.cdnDomain != "" {
		return fmt.Sprintf("https://%s/%s", s.cdnDomain, key)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, key)
}

// Close releases the underlying client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}
