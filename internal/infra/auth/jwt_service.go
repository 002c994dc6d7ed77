package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"meatly/config"
	"meatly/internal/domain/service"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultSessionTTL = 7 * 24 * time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string
	sessionSecret string
	accessTTL     time.Duration
	sessionTTL    time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL := defaultAccessTTL
	sessionTTL := defaultSessionTTL
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.SessionTTL > 0 {
			sessionTTL = cfg.Auth.SessionTTL
		}
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		sessionSecret: cfg.SecretKey.Refresh,
		accessTTL:     accessTTL,
		sessionTTL:    sessionTTL,
	}, nil
}

// GenerateTokens creates a new access token and session token for a given identity and roles.
func (s *jwtService) GenerateTokens(identityID uuid.UUID, roles []string) (accessToken string, sessionToken string, err error) {
	accessToken, err = s.generateToken(identityID, roles, s.accessTTL, s.accessSecret, "access")
	if err != nil {
		return "", "", err
	}

	sessionToken, err = s.generateToken(identityID, nil, s.sessionTTL, s.sessionSecret, "session")
	if err != nil {
		return "", "", err
	}

	return accessToken, sessionToken, nil
}

// ValidateToken checks the validity of a token string against a secret.
func (s *jwtService) ValidateToken(tokenString string, secret string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
}

// HashToken produces the SHA-256 hex digest stored in the sessions table.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// SessionDuration returns the configured session lifetime.
func (s *jwtService) SessionDuration() time.Duration {
	return s.sessionTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(identityID uuid.UUID, roles []string, ttl time.Duration, secret, tokenType string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  identityID,                 // Subject (who the token is for)
		"iat":  time.Now().Unix(),          // Issued At
		"exp":  time.Now().Add(ttl).Unix(), // Expiration Time
		"type": tokenType,                  // Type of token (access or session)
	}
	// Only add roles to the access token for stateless authorization.
	if roles != nil {
		claims["roles"] = roles
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}
