// Package cache provides the TTL key/value stores behind location and lookup caching.
package cache

import (
	"context"
	"time"
)

// Store caches JSON-serialisable values with a per-entry TTL.
type Store interface {
	// Get decodes the cached value for key into dst. It reports false on a miss or an expired entry.
	Get(ctx context.Context, key string, dst any) (bool, error)
	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Delete drops key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
