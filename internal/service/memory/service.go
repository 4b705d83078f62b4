// Package memory implements the memory service: create, list, get and delete
// of memory records scoped to a group id.
package memory

import (
	"context"
	"io"
	"time"

	"github.com/omercangizik/AniKutusu1/internal/domain"
	"github.com/omercangizik/AniKutusu1/internal/repository"
	"github.com/omercangizik/AniKutusu1/internal/storage"
	appErrors "github.com/omercangizik/AniKutusu1/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service exposes the memory operations backed by the document store and the
// blob store.
type Service struct {
	repo   repository.MemoryRepository
	blobs  storage.BlobStore
	logger *zap.Logger
}

// NewService creates a memory service.
func NewService(repo repository.MemoryRepository, blobs storage.BlobStore, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		blobs:  blobs,
		logger: logger,
	}
}

// CreateInput carries the validated fields of a create request. Photo is nil
// when no file was uploaded.
type CreateInput struct {
	Title            string
	Description      string
	Date             string
	Photo            io.Reader
	PhotoContentType string
}

// List returns the group's item sequence in insertion order. A group with no
// prior activity is lazily created as an empty document.
func (s *Service) List(ctx context.Context, groupID string) ([]domain.Memory, error) {
	group, err := s.repo.FindGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		if err := s.repo.EnsureGroup(ctx, groupID); err != nil {
			return nil, err
		}
		return []domain.Memory{}, nil
	}
	return group.Items, nil
}

// Get returns the single record matching memoryID within the group.
func (s *Service) Get(ctx context.Context, groupID, memoryID string) (*domain.Memory, error) {
	group, err := s.repo.FindGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, appErrors.NewNotFound("Anı bulunamadı")
	}
	m := group.Find(memoryID)
	if m == nil {
		return nil, appErrors.NewNotFound("Anı bulunamadı")
	}
	return m, nil
}

// Create uploads the photo when present, then appends the new record to the
// group's item sequence.
func (s *Service) Create(ctx context.Context, groupID string, in CreateInput) (*domain.Memory, error) {
	memoryID := uuid.New().String()

	var photoURL *string
	if in.Photo != nil {
		url, err := s.blobs.Upload(ctx, storage.MemoryPath(groupID, memoryID), in.PhotoContentType, in.Photo)
		if err != nil {
			return nil, err
		}
		photoURL = &url
	}

	m := domain.Memory{
		MemoryID:    memoryID,
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		PhotoURL:    photoURL,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.AppendMemory(ctx, groupID, m); err != nil {
		return nil, err
	}

	s.logger.Info("Created memory",
		zap.String("groupID", groupID),
		zap.String("memoryID", memoryID),
		zap.Bool("hasPhoto", photoURL != nil),
	)
	return &m, nil
}

// Delete removes the matching record and its blob. The blob removal and the
// document update are two independent calls without compensation; a failure
// between them can leave a dangling reference.
func (s *Service) Delete(ctx context.Context, groupID, memoryID string) error {
	group, err := s.repo.FindGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if group == nil {
		return appErrors.NewNotFound("Anı bulunamadı")
	}
	m := group.Find(memoryID)
	if m == nil {
		return appErrors.NewNotFound("Anı bulunamadı")
	}

	if m.PhotoURL != nil {
		if err := s.blobs.Remove(ctx, storage.MemoryPath(groupID, memoryID)); err != nil {
			return err
		}
	}

	if err := s.repo.ReplaceItems(ctx, groupID, group.WithoutMemory(memoryID), group.Version); err != nil {
		return err
	}

	s.logger.Info("Deleted memory",
		zap.String("groupID", groupID),
		zap.String("memoryID", memoryID),
	)
	return nil
}
