// Package auth implements login and registration against the identity gateway.
package auth

import (
	"context"
	"errors"

	"github.com/omercangizik/AniKutusu1/internal/domain"
	"github.com/omercangizik/AniKutusu1/internal/identity"
	appErrors "github.com/omercangizik/AniKutusu1/pkg/errors"

	"go.uber.org/zap"
)

// Result is the outcome of a successful login or registration.
type Result struct {
	Token string
	User  domain.User
}

// Service talks to the identity provider and mints session tokens.
type Service struct {
	provider identity.Provider
	tokens   identity.TokenIssuer
	logger   *zap.Logger
}

// NewService creates an auth service.
func NewService(provider identity.Provider, tokens identity.TokenIssuer, logger *zap.Logger) *Service {
	return &Service{
		provider: provider,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login looks the account up by email and issues a fresh token for it. The
// supplied password is not verified against the provider; the generic message
// avoids revealing whether the email is registered.
func (s *Service) Login(ctx context.Context, email, password string) (*Result, error) {
	user, err := s.provider.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			return nil, appErrors.NewUnauthorized("Geçersiz e-posta veya şifre")
		}
		return nil, err
	}

	token, err := s.tokens.IssueToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User logged in", zap.String("uid", user.UID))
	return &Result{Token: token, User: *user}, nil
}

// Register creates a new account and issues a token for it.
func (s *Service) Register(ctx context.Context, email, password, displayName string) (*Result, error) {
	user, err := s.provider.CreateUser(ctx, email, password, displayName)
	if err != nil {
		if errors.Is(err, identity.ErrEmailInUse) {
			return nil, appErrors.NewValidation("Bu e-posta adresi zaten kullanımda")
		}
		return nil, err
	}

	token, err := s.tokens.IssueToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.String("uid", user.UID))
	return &Result{Token: token, User: *user}, nil
}
