package service

import (
	"context"
)

// VendorEvent represents a pipeline event consumed by downstream systems
// (admin dashboard feed, notification workers).
type VendorEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	EventID    string `json:"event_id"`
	Type       string `json:"type"` // e.g. "vendor.registered", "shop.approved"
	IdentityID string `json:"identity_id"`
	ShopID     string `json:"shop_id,omitempty"`
	ShopName   string `json:"shop_name,omitempty"`
	City       string `json:"city,omitempty"`
}

// Vendor event types.
const (
	EventVendorRegistered = "vendor.registered"
	EventShopApproved     = "shop.approved"
	EventShopRejected     = "shop.rejected"
)

// EventPublisher defines the interface for publishing vendor events to a message queue.
type EventPublisher interface {
	// PublishVendorEvent publishes a vendor event for async processing.
	PublishVendorEvent(ctx context.Context, event *VendorEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
