package usecase

import (
	"context"

	"github.com/google/uuid"
)

// VendorDetails is the owner sub-object embedded in catalog responses.
type VendorDetails struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// VisibleShop is the public projection of a shop plus optional distance
// enrichment when the caller supplied coordinates.
type VisibleShop struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	FullAddress string        `json:"full_address"`
	Area        string        `json:"area,omitempty"`
	City        string        `json:"city,omitempty"`
	Latitude    float64       `json:"latitude"`
	Longitude   float64       `json:"longitude"`
	WorkingDays []string      `json:"working_days"`
	OpenTime    string        `json:"open_time"`
	CloseTime   string        `json:"close_time"`
	Photos      []string      `json:"photos"`
	Vendor      VendorDetails `json:"vendor"`

	// DistanceMeters is negative when no caller location was supplied or the
	// shop's coordinates are fallback values.
	DistanceMeters    float64 `json:"-"`
	FormattedDistance string  `json:"distance,omitempty"`
}

// ListShopsInput carries the optional caller location for distance enrichment.
type ListShopsInput struct {
	Latitude  *float64
	Longitude *float64
}

// CatalogUsecase defines the public read surface. Only shops passing the
// visibility gate (active AND approved) ever leave this interface.
type CatalogUsecase interface {
	// ListShops returns all visible shops. With a caller location the result
	// carries formatted distances and is sorted nearest first; shops without
	// trustworthy coordinates sort last.
	ListShops(ctx context.Context, input ListShopsInput) ([]*VisibleShop, error)

	// GetShop returns one visible shop. Hidden and missing shops are
	// indistinguishable: both report not found.
	GetShop(ctx context.Context, id uuid.UUID) (*VisibleShop, error)
}
