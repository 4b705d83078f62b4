// Package mocks provides an in-memory identity provider for testing.
package mocks

import (
	"context"
	"strings"
	"sync"

	"github.com/omercangizik/AniKutusu1/internal/domain"
	"github.com/omercangizik/AniKutusu1/internal/identity"

	"github.com/google/uuid"
)

// MockProvider keeps accounts in memory.
type MockProvider struct {
	mu    sync.Mutex
	users map[string]*domain.User // lowercased email -> user

	FindErr   error
	CreateErr error
}

// NewMockProvider creates an empty mock provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{users: make(map[string]*domain.User)}
}

// Seed registers an account directly, bypassing error injection.
func (p *MockProvider) Seed(email, displayName string) *domain.User {
	p.mu.Lock()
	defer p.mu.Unlock()
	u := &domain.User{UID: uuid.New().String(), Email: email, DisplayName: displayName}
	p.users[strings.ToLower(email)] = u
	return u
}

// FindUserByEmail looks up a seeded account.
func (p *MockProvider) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.FindErr != nil {
		return nil, p.FindErr
	}
	u, ok := p.users[strings.ToLower(email)]
	if !ok {
		return nil, identity.ErrUserNotFound
	}
	return u, nil
}

// CreateUser registers a new account unless the email is taken.
func (p *MockProvider) CreateUser(ctx context.Context, email, password, displayName string) (*domain.User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.CreateErr != nil {
		return nil, p.CreateErr
	}
	key := strings.ToLower(email)
	if _, ok := p.users[key]; ok {
		return nil, identity.ErrEmailInUse
	}
	u := &domain.User{UID: uuid.New().String(), Email: email, DisplayName: displayName}
	p.users[key] = u
	return u, nil
}
