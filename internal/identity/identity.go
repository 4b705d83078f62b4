// Package identity defines the port to the managed identity provider.
package identity

import (
	"context"
	"errors"

	"github.com/omercangizik/AniKutusu1/internal/domain"
)

var (
	// ErrUserNotFound is returned when no account exists for an email.
	ErrUserNotFound = errors.New("identity: user not found")
	// ErrEmailInUse is returned when registering an email that already has
	// an account.
	ErrEmailInUse = errors.New("identity: email already in use")
)

// Provider reads and creates user accounts in the identity gateway. Accounts
// are owned entirely by the gateway; this application never persists them.
type Provider interface {
	// FindUserByEmail looks up an account. Returns ErrUserNotFound when no
	// account exists for the email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// CreateUser registers a new account. Returns ErrEmailInUse when the
	// email is already registered.
	CreateUser(ctx context.Context, email, password, displayName string) (*domain.User, error)
}

// TokenIssuer mints bearer tokens for authenticated users.
type TokenIssuer interface {
	IssueToken(user *domain.User) (string, error)
}
