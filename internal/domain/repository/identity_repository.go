// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"meatly/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrIdentityNotFound is a domain-specific error returned when an identity is not found.
var ErrIdentityNotFound = errors.New("identity not found")

// IdentityRepository defines the standard operations for vendor account persistence.
// The application layer depends on this interface, not the concrete implementation.
type IdentityRepository interface {
	// FindByID retrieves a single identity by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)

	// FindByPhone retrieves a single identity by its phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.Identity, error)

	// FindByPhoneOrEmail retrieves the first identity matching either contact
	// field. Registration uses it for the duplicate pre-check; shop lookup uses
	// it as the fallback owner resolution.
	FindByPhoneOrEmail(ctx context.Context, phone, email string) (*entity.Identity, error)

	// Create persists a new identity. The storage layer enforces phone/email
	// uniqueness with unique indexes; a violation surfaces as a conflict error.
	Create(ctx context.Context, identity *entity.Identity) error

	// Update modifies an existing identity.
	Update(ctx context.Context, identity *entity.Identity) error

	// Delete removes an identity row. Used only by compensating rollback.
	Delete(ctx context.Context, id uuid.UUID) error
}
