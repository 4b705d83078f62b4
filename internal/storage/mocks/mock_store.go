// Package mocks provides an in-memory blob store for testing.
package mocks

import (
	"context"
	"io"
	"sync"
)

// MockBlobStore records uploads and removals in memory.
type MockBlobStore struct {
	mu sync.Mutex

	// Blobs maps path -> uploaded bytes.
	Blobs map[string][]byte
	// Removed lists paths passed to Remove, in order.
	Removed []string

	UploadErr error
	RemoveErr error
}

// NewMockBlobStore creates an empty mock blob store.
func NewMockBlobStore() *MockBlobStore {
	return &MockBlobStore{Blobs: make(map[string][]byte)}
}

// Upload stores the bytes and returns a fake public URL containing the path.
func (s *MockBlobStore) Upload(ctx context.Context, path, contentType string, body io.Reader) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.UploadErr != nil {
		return "", s.UploadErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	s.Blobs[path] = data
	return "https://storage.example.com/object/public/" + path, nil
}

// Remove deletes the blob and records the call.
func (s *MockBlobStore) Remove(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.RemoveErr != nil {
		return s.RemoveErr
	}
	delete(s.Blobs, path)
	s.Removed = append(s.Removed, path)
	return nil
}
