package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the denormalized projection of an Identity consumed by downstream
// systems (catalog, support tooling). It is created immediately after the
// Identity; its absence alongside a live Identity is the orphaned-identity
// state repaired by the diagnostics tooling.
type Profile struct {
	IdentityID uuid.UUID // Mirrors the owning Identity's ID; also the primary key.
	Name       string
	Phone      string
	Email      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ProjectProfile builds the Profile projection from an Identity's fields.
// Diagnostics uses the same construction when re-synthesizing a missing row.
func ProjectProfile(identity *Identity) *Profile {
	return &Profile{
		IdentityID: identity.ID,
		Name:       identity.Name,
		Phone:      identity.Phone,
		Email:      identity.Email,
	}
}
