package repository

import (
	"context"
	"errors"

	"meatly/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is a domain-specific error returned when a session is not found.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines persistence operations for vendor sessions.
type SessionRepository interface {
	// Create persists a new session record.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves a non-expired session by its token hash.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByTokenHash removes a single session (sign-out).
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteByIdentityID removes all sessions for an identity. Used by orphan
	// repair and account deactivation.
	DeleteByIdentityID(ctx context.Context, identityID uuid.UUID) error
}
