// Package lifecycle holds shared timeouts for startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds individual lifecycle operations (DB ping, HTTP shutdown).
const DefaultTimeout = 10 * time.Second
