// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"meatly/internal/domain/entity"
)

// --- Input DTOs ---

// DocumentUpload is a single wizard document carried through registration.
// Data is the raw bytes when the client submitted a file; Ref is set instead
// when the client already holds a reference (resubmission, remote URL).
type DocumentUpload struct {
	Kind        entity.DocumentKind `json:"kind"`
	FileName    string              `json:"file_name"`
	ContentType string              `json:"content_type"`
	Data        []byte              `json:"data,omitempty"`
	Ref         string              `json:"ref,omitempty"`
}

// DayHours is one day's opening window as captured by the wizard.
type DayHours struct {
	Day       string `json:"day"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

// PhotoUpload is a storefront photo carried through registration. Order matters.
type PhotoUpload struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data,omitempty"`
	Ref         string `json:"ref,omitempty"`
}

// RegisterVendorInput is the flat record submitted by the registration wizard.
// Everything a vendor enters across the wizard steps arrives here at once.
type RegisterVendorInput struct {
	OwnerName string `json:"owner_name" validate:"required"`
	Phone     string `json:"phone" validate:"required,min=10"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`

	ShopName string `json:"shop_name" validate:"required"`

	Plot        string `json:"plot" validate:"required"`
	Floor       string `json:"floor,omitempty"`
	Building    string `json:"building" validate:"required"`
	AddressLine string `json:"address_line,omitempty"`
	Area        string `json:"area,omitempty"`
	City        string `json:"city,omitempty"`
	Pincode     string `json:"pincode" validate:"required,len=6,numeric"`

	// Latitude/Longitude are nil when the wizard captured no location.
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	WorkingDays []string `json:"working_days"`

	// OpenTime/CloseTime are the common shop-wide hours. When the wizard
	// collected per-day hours instead, they arrive in DayHours and the first
	// selected day's times win.
	OpenTime  string     `json:"open_time,omitempty"`
	CloseTime string     `json:"close_time,omitempty"`
	DayHours  []DayHours `json:"day_hours,omitempty"`

	Documents []DocumentUpload `json:"documents"`
	Photos    []PhotoUpload    `json:"photos,omitempty"`
}

// --- Output DTOs ---

// RegisterVendorOutput returns the created records. UploadDegraded is set when
// one or more assets fell back to local handles because storage failed.
type RegisterVendorOutput struct {
	Identity       *entity.Identity
	Shop           *entity.Shop
	UploadDegraded bool
}

// RegistrationUsecase defines the vendor onboarding pipeline entrypoint.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type RegistrationUsecase interface {
	// RegisterVendor runs the full pipeline: duplicate check, identity and
	// profile provisioning, document and photo ingestion, and shop
	// materialization. The created shop is never publicly visible.
	RegisterVendor(ctx context.Context, input RegisterVendorInput) (*RegisterVendorOutput, error)
}
