// Package mocks provides mock implementations of repository interfaces for testing.
package mocks

import (
	"context"
	"sync"

	"github.com/omercangizik/AniKutusu1/internal/domain"
	appErrors "github.com/omercangizik/AniKutusu1/pkg/errors"
)

// MockMemoryRepository provides an in-memory implementation of
// repository.MemoryRepository for unit testing services without a real
// database.
type MockMemoryRepository struct {
	mu sync.RWMutex

	groups map[string]*domain.MemoryGroup

	// For testing error scenarios
	shouldFailOn map[string]error
}

// NewMockMemoryRepository creates a new mock repository instance.
func NewMockMemoryRepository() *MockMemoryRepository {
	return &MockMemoryRepository{
		groups:       make(map[string]*domain.MemoryGroup),
		shouldFailOn: make(map[string]error),
	}
}

// SetError configures the mock to return an error for a specific method.
func (m *MockMemoryRepository) SetError(method string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFailOn[method] = err
}

// ClearErrors removes all configured errors.
func (m *MockMemoryRepository) ClearErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFailOn = make(map[string]error)
}

func (m *MockMemoryRepository) checkError(method string) error {
	if err, exists := m.shouldFailOn[method]; exists {
		return err
	}
	return nil
}

// FindGroup returns a copy of the stored group, or (nil, nil) when absent.
func (m *MockMemoryRepository) FindGroup(ctx context.Context, groupID string) (*domain.MemoryGroup, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.checkError("FindGroup"); err != nil {
		return nil, err
	}

	g, ok := m.groups[groupID]
	if !ok {
		return nil, nil
	}
	items := make([]domain.Memory, len(g.Items))
	copy(items, g.Items)
	return &domain.MemoryGroup{GroupID: g.GroupID, Items: items, Version: g.Version}, nil
}

// EnsureGroup creates an empty group document when absent.
func (m *MockMemoryRepository) EnsureGroup(ctx context.Context, groupID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkError("EnsureGroup"); err != nil {
		return err
	}

	if _, ok := m.groups[groupID]; !ok {
		m.groups[groupID] = &domain.MemoryGroup{GroupID: groupID, Items: []domain.Memory{}}
	}
	return nil
}

// AppendMemory appends a memory, creating the group when absent.
func (m *MockMemoryRepository) AppendMemory(ctx context.Context, groupID string, mem domain.Memory) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkError("AppendMemory"); err != nil {
		return err
	}

	g, ok := m.groups[groupID]
	if !ok {
		g = &domain.MemoryGroup{GroupID: groupID, Items: []domain.Memory{}}
		m.groups[groupID] = g
	}
	g.Items = append(g.Items, mem)
	g.Version++
	return nil
}

// ReplaceItems overwrites the item sequence under a version check.
func (m *MockMemoryRepository) ReplaceItems(ctx context.Context, groupID string, items []domain.Memory, expectedVersion int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkError("ReplaceItems"); err != nil {
		return err
	}

	g, ok := m.groups[groupID]
	if !ok {
		return appErrors.NewInternal("memory group does not exist", nil)
	}
	if g.Version != expectedVersion {
		return appErrors.NewInternal("memory group was modified concurrently", nil)
	}
	g.Items = make([]domain.Memory, len(items))
	copy(g.Items, items)
	g.Version++
	return nil
}
