// Package supabase implements the identity provider on Supabase GoTrue.
package supabase

import (
	"context"
	"strings"

	"github.com/omercangizik/AniKutusu1/internal/domain"
	"github.com/omercangizik/AniKutusu1/internal/identity"
	appErrors "github.com/omercangizik/AniKutusu1/pkg/errors"

	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
	"go.uber.org/zap"
)

// Provider reads and creates accounts through the GoTrue admin API, using the
// project's service-role key. The gotrue client does not take a context; the
// context is used implicitly by the underlying HTTP request.
type Provider struct {
	auth   gotrue.Client
	logger *zap.Logger
}

// NewProvider creates an identity provider over an existing auth client.
func NewProvider(auth gotrue.Client, logger *zap.Logger) identity.Provider {
	return &Provider{
		auth:   auth,
		logger: logger,
	}
}

// FindUserByEmail looks an account up by email address.
func (p *Provider) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	resp, err := p.auth.AdminListUsers()
	if err != nil {
		p.logger.Error("Failed to list identity provider users", zap.Error(err))
		return nil, appErrors.NewInternal("identity provider lookup failed", err)
	}

	for i := range resp.Users {
		if strings.EqualFold(resp.Users[i].Email, email) {
			return toDomain(&resp.Users[i]), nil
		}
	}
	return nil, identity.ErrUserNotFound
}

// CreateUser registers a new account with the display name stored as user
// metadata, mirroring how the browser client expects to read it back.
func (p *Provider) CreateUser(ctx context.Context, email, password, displayName string) (*domain.User, error) {
	resp, err := p.auth.AdminCreateUser(types.AdminCreateUserRequest{
		Email:    email,
		Password: &password,
		UserMetadata: map[string]interface{}{
			"display_name": displayName,
		},
		EmailConfirm: false,
	})
	if err != nil {
		if isDuplicateEmail(err) {
			return nil, identity.ErrEmailInUse
		}
		p.logger.Error("Failed to create identity provider user", zap.Error(err))
		return nil, appErrors.NewInternal("identity provider registration failed", err)
	}

	u := toDomain(&resp.User)
	if u.DisplayName == "" {
		u.DisplayName = displayName
	}
	return u, nil
}

func isDuplicateEmail(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already") || strings.Contains(msg, "422")
}

func toDomain(u *types.User) *domain.User {
	displayName := ""
	if v, ok := u.UserMetadata["display_name"].(string); ok {
		displayName = v
	}
	return &domain.User{
		UID:         u.ID.String(),
		Email:       u.Email,
		DisplayName: displayName,
	}
}
