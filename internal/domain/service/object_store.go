package service

import "context"

// ObjectStore defines the contract for the blob storage used by document and
// photo ingestion. Whether the store is actually configured is decided once at
// startup: an unconfigured deployment receives an explicit implementation
// whose Upload always fails with a sentinel error, never a duck-typed probe.
type ObjectStore interface {
	// Upload writes the object under key and returns its public URL.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// IsRemote reports whether ref is already a stored URL for this store,
	// in which case ingestion passes it through without re-uploading.
	IsRemote(ref string) bool
}
