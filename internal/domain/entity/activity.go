package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLog records a single pipeline action (registration, approval,
// diagnostics repair) for audit purposes. Appends are best effort and never
// block the operation they describe.
type ActivityLog struct {
	ID        uuid.UUID
	ActorID   uuid.UUID // The Identity the action concerns.
	Action    string    // e.g. "vendor.registered", "shop.approved".
	Detail    string
	CreatedAt time.Time
}

// Well-known activity actions.
const (
	ActionVendorRegistered = "vendor.registered"
	ActionShopApproved     = "shop.approved"
	ActionShopRejected     = "shop.rejected"
	ActionOrphanRepaired   = "orphan.repaired"
)
