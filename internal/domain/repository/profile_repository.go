package repository

import (
	"context"
	"errors"

	"meatly/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is a domain-specific error returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines persistence operations for the denormalized
// identity projection.
type ProfileRepository interface {
	// FindByIdentityID retrieves the profile mirroring the given identity.
	FindByIdentityID(ctx context.Context, identityID uuid.UUID) (*entity.Profile, error)

	// FindByPhone retrieves a profile by phone number. Diagnostics classifies
	// orphan states by comparing this lookup against the identity lookup.
	FindByPhone(ctx context.Context, phone string) (*entity.Profile, error)

	// Create persists a new profile row.
	Create(ctx context.Context, profile *entity.Profile) error

	// Delete removes a profile row. Used by compensation and orphan repair.
	Delete(ctx context.Context, identityID uuid.UUID) error
}
