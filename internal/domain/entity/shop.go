package entity

import (
	"time"

	"github.com/google/uuid"
)

// Shop is the public-facing storefront entity. It is created by the shop
// materializer after the owning Identity exists, and is exposed to the catalog
// only when both Active and Approved are set by the approval workflow.
type Shop struct {
	ID        uuid.UUID // Opaque ID generated at creation time, never reused.
	OwnerID   uuid.UUID // The owning Identity's ID.
	Name      string    // The storefront name.
	OwnerName string    // The vendor's display name.

	// Structured address parts as captured by the registration wizard.
	Plot        string
	Floor       string
	Building    string
	AddressLine string
	Area        string
	City        string
	Pincode     string

	// FullAddress is derived from the present parts; never entered directly.
	FullAddress string

	// Coordinates are never null. When the wizard supplies none,
	// a fixed fallback location is substituted and NeedsGeocoding is set so
	// approval review can correct it.
	Latitude       float64
	Longitude      float64
	NeedsGeocoding bool

	Phone string
	Email string

	WorkingDays []string // e.g. ["monday", "tuesday"].
	OpenTime    string   // "HH:MM", shop-wide; no per-day schedule at this layer.
	CloseTime   string

	Documents Documents // Verification document references, keyed by kind.
	Photos    []string  // Ordered storefront photo references.

	Active   bool // Default false until admin review.
	Approved bool // Default false; flipped only by the approval workflow.

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Visible reports whether the shop may appear in the public catalog.
// A shop failing either flag is indistinguishable from a non-existent one.
func (s *Shop) Visible() bool {
	return s.Active && s.Approved
}
