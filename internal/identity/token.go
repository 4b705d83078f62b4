package identity

import (
	"time"

	"github.com/omercangizik/AniKutusu1/internal/domain"
	appErrors "github.com/omercangizik/AniKutusu1/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
)

// JWTIssuer mints HS256 bearer tokens for authenticated users. The secret is
// the Supabase project's JWT secret, so issued tokens are also accepted by the
// gateway's own endpoints.
type JWTIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewJWTIssuer creates a token issuer.
func NewJWTIssuer(secret, issuer string, ttl time.Duration) *JWTIssuer {
	return &JWTIssuer{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// Claims are the JWT claims carried by issued tokens.
type Claims struct {
	Email        string                 `json:"email"`
	Role         string                 `json:"role"`
	UserMetadata map[string]interface{} `json:"user_metadata,omitempty"`
	jwt.RegisteredClaims
}

// IssueToken mints a fresh bearer token for the user.
func (i *JWTIssuer) IssueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: user.Email,
		Role:  "authenticated",
		UserMetadata: map[string]interface{}{
			"display_name": user.DisplayName,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UID,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", appErrors.NewInternal("failed to sign token", err)
	}
	return signed, nil
}
