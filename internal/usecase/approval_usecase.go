package usecase

import (
	"context"

	"meatly/internal/domain/entity"

	"github.com/google/uuid"
)

// ApprovalOutput returns the updated shop and, on approval, the storefront QR
// code handed to the vendor. QRCode may be nil when generation failed; the
// approval itself still stands.
type ApprovalOutput struct {
	Shop   *entity.Shop
	QRCode []byte
}

// ApprovalUsecase defines the admin review operations that flip a shop's
// visibility flags. These are the only writers of Active and Approved.
type ApprovalUsecase interface {
	// Approve marks the shop approved and active, making it publicly visible.
	Approve(ctx context.Context, shopID uuid.UUID) (*ApprovalOutput, error)

	// Reject clears both flags, hiding the shop from the catalog.
	Reject(ctx context.Context, shopID uuid.UUID, reason string) (*entity.Shop, error)
}
