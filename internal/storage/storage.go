// Package storage defines the blob store port for uploaded photos.
package storage

import (
	"context"
	"fmt"
	"io"
)

// BlobStore holds uploaded photo bytes and exposes public URLs.
type BlobStore interface {
	// Upload stores the bytes under the given path, marks them publicly
	// readable, and returns the public URL.
	Upload(ctx context.Context, path, contentType string, body io.Reader) (string, error)

	// Remove deletes the blob at the given path.
	Remove(ctx context.Context, path string) error
}

// MemoryPath is the addressing scheme for uploaded photos.
func MemoryPath(groupID, memoryID string) string {
	return fmt.Sprintf("memories/%s/%s", groupID, memoryID)
}
