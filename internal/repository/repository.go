// Package repository defines the persistence port for memory groups.
package repository

import (
	"context"

	"github.com/omercangizik/AniKutusu1/internal/domain"
)

// MemoryRepository persists memory groups as single documents keyed by group id.
type MemoryRepository interface {
	// FindGroup returns the group document, or (nil, nil) when no document
	// exists for the id.
	FindGroup(ctx context.Context, groupID string) (*domain.MemoryGroup, error)

	// EnsureGroup creates an empty group document if none exists. Calling it
	// for an existing group is a no-op.
	EnsureGroup(ctx context.Context, groupID string) error

	// AppendMemory atomically appends a memory to the group's item sequence,
	// creating the document when absent.
	AppendMemory(ctx context.Context, groupID string, m domain.Memory) error

	// ReplaceItems overwrites the group's item sequence. The write fails if
	// the document's version no longer matches expectedVersion, so a
	// concurrent writer cannot be silently overwritten.
	ReplaceItems(ctx context.Context, groupID string, items []domain.Memory, expectedVersion int) error
}
