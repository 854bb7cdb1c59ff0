package common

import "time"

// CacheInterface is the contract shared by the in-memory and Redis caches.
// The channel manager uses it for short-TTL read-side caching: sync-stats
// aggregates and exported availability snapshots.
type CacheInterface interface {
	// Set stores a value in cache with the given key and duration
	Set(key string, value interface{}, duration time.Duration)

	// GetInto decodes the cached value for key into dest, which must be a
	// non-nil pointer. Returns false when the key is absent or the stored
	// value cannot be decoded into dest. Both backends go through the same
	// JSON codec so a value cached by one instance decodes identically on
	// another.
	GetInto(key string, dest any) bool

	// Delete removes a value from cache by key
	Delete(key string)

	// Close closes any underlying connections (for Redis, etc.)
	Close() error
}
