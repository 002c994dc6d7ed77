package repository

import (
	"context"
	"errors"

	"meatly/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrShopNotFound is a domain-specific error returned when a shop is not found.
var ErrShopNotFound = errors.New("shop not found")

// ShopRepository defines persistence operations for storefront records.
type ShopRepository interface {
	// FindByID retrieves a shop regardless of visibility flags.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// FindByOwnerID retrieves the shop linked to an identity.
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error)

	// FindByContact retrieves a shop by phone or email. The materializer uses
	// it to upsert-by-uniqueness instead of inserting duplicates.
	FindByContact(ctx context.Context, phone, email string) (*entity.Shop, error)

	// Create persists a new shop row.
	Create(ctx context.Context, shop *entity.Shop) error

	// Update modifies an existing shop row.
	Update(ctx context.Context, shop *entity.Shop) error

	// FindVisibleByID retrieves a shop only when active AND approved are both
	// set; anything else reports ErrShopNotFound.
	FindVisibleByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// ListVisible retrieves all shops with active AND approved set.
	ListVisible(ctx context.Context) ([]*entity.Shop, error)

	// DeleteByOwnerID removes shops linked to an identity. Used by orphan repair.
	DeleteByOwnerID(ctx context.Context, ownerID uuid.UUID) error
}
