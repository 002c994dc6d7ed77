package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService defines the contract for issuing and validating vendor tokens.
type TokenService interface {
	// GenerateTokens creates a short-lived access token and a long-lived
	// session token for the given identity.
	GenerateTokens(identityID uuid.UUID, roles []string) (accessToken string, sessionToken string, err error)

	// ValidateToken checks a token string against the given secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// HashToken produces the storable hash of a raw session token.
	HashToken(token string) string

	// SessionDuration returns the configured session lifetime.
	SessionDuration() time.Duration
}
