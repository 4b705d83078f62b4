// Package supabase implements the blob store on Supabase Storage.
package supabase

import (
	"context"
	"io"

	"github.com/omercangizik/AniKutusu1/internal/storage"
	appErrors "github.com/omercangizik/AniKutusu1/pkg/errors"

	storage_go "github.com/supabase-community/storage-go"
	"go.uber.org/zap"
)

// BlobStore stores photos in a public Supabase Storage bucket. Public
// readability comes from the bucket configuration; the public URL is computed
// deterministically from the project URL, bucket and path.
type BlobStore struct {
	client *storage_go.Client
	bucket string
	logger *zap.Logger
}

// NewBlobStore creates a blob store over an existing storage client.
func NewBlobStore(client *storage_go.Client, bucket string, logger *zap.Logger) storage.BlobStore {
	return &BlobStore{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Upload stores the photo bytes and returns the bucket's public URL for them.
// The storage client does not take a context; it is bound to the lifetime of
// the underlying HTTP request.
func (s *BlobStore) Upload(ctx context.Context, path, contentType string, body io.Reader) (string, error) {
	opts := storage_go.FileOptions{}
	if contentType != "" {
		opts.ContentType = &contentType
	}

	if _, err := s.client.UploadFile(s.bucket, path, body, opts); err != nil {
		s.logger.Error("Failed to upload photo",
			zap.String("path", path),
			zap.Error(err),
		)
		return "", appErrors.NewInternal("failed to upload photo", err)
	}

	return s.client.GetPublicUrl(s.bucket, path).SignedURL, nil
}

// Remove deletes the photo at the given path.
func (s *BlobStore) Remove(ctx context.Context, path string) error {
	if _, err := s.client.RemoveFile(s.bucket, []string{path}); err != nil {
		s.logger.Error("Failed to remove photo",
			zap.String("path", path),
			zap.Error(err),
		)
		return appErrors.NewInternal("failed to remove photo", err)
	}
	return nil
}
