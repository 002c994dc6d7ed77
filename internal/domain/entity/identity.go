// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the durable vendor account record. It is created exactly once per
// registration; uniqueness is enforced on the phone number and, when present,
// the email address.
type Identity struct {
	ID           uuid.UUID // The Global Unique Identifier for the vendor account.
	Name         string    // The owner's display name.
	Phone        string    // The unique contact phone number, used as the primary lookup key.
	Email        string    // Optional contact email; unique when non-empty.
	PasswordHash string    // The bcrypt-hashed credential. The raw value is never stored.
	Active       bool      // Whether the account may sign in.
	Verified     bool      // Flipped by the admin approval workflow, never at creation.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// Session represents a signed-in vendor device. It backs the refresh flow:
// the raw token is returned to the client once, only its SHA-256 hash is kept.
type Session struct {
	ID         uuid.UUID // The unique ID for this session record.
	IdentityID uuid.UUID // Links this session to the Identity it belongs to.
	TokenHash  string    // SHA-256 hash of the raw session token.
	ExpiresAt  time.Time // The exact time when this session becomes invalid.
	CreatedAt  time.Time // Timestamp of when the vendor signed in.
}
