package auth

import (
	"testing"
	"time"

	"meatly/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_session_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	cfg := testConfig()

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	identityID := uuid.New()
	roles := []string{"vendor"}

	accessToken, sessionToken, err := jwtService.GenerateTokens(identityID, roles)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, sessionToken)

	// Validate access token with the access secret
	parsed, err := jwtService.ValidateToken(accessToken, cfg.SecretKey.Access)
	assert.NoError(t, err)
	assert.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, identityID.String(), claims["sub"])
	assert.Equal(t, "access", claims["type"])
	assert.NotNil(t, claims["roles"])

	// Validate session token with the session secret
	parsed, err = jwtService.ValidateToken(sessionToken, cfg.SecretKey.Refresh)
	assert.NoError(t, err)
	assert.True(t, parsed.Valid)

	claims, ok = parsed.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, "session", claims["type"])
	// Session tokens carry no roles
	_, hasRoles := claims["roles"]
	assert.False(t, hasRoles)
}

func TestJWTService_ValidateWithWrongSecret(t *testing.T) {
	cfg := testConfig()

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	identityID := uuid.New()
	accessToken, _, err := jwtService.GenerateTokens(identityID, []string{"vendor"})
	assert.NoError(t, err)

	_, err = jwtService.ValidateToken(accessToken, "a_completely_different_secret")
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := testConfig()

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	_, err = jwtService.ValidateToken("clearly-not-a-jwt-token-format", cfg.SecretKey.Access)
	assert.Error(t, err)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_HashToken(t *testing.T) {
	cfg := testConfig()

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	hash := jwtService.HashToken("some-session-token")
	assert.Len(t, hash, 64) // hex-encoded SHA-256
	assert.Equal(t, hash, jwtService.HashToken("some-session-token"))
	assert.NotEqual(t, hash, jwtService.HashToken("another-session-token"))
}

func TestJWTService_SessionDuration(t *testing.T) {
	cfg := testConfig()
	cfg.Auth = &config.AuthConfig{SessionTTL: 48 * time.Hour}

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)
	assert.Equal(t, 48*time.Hour, jwtService.SessionDuration())
}
