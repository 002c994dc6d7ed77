// Package constants holds shared constant values used across layers.
package constants

// Pub/Sub provider names accepted by the event publisher configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Role names carried in access-token claims.
const (
	RoleVendor = "vendor"
	RoleAdmin  = "admin"
)
