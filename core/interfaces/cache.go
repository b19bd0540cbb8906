// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for key-value operations.
// Implementations can be Redis, SQLite, in-memory, or any other store.
// The panel uses it as its durable store, always with a TTL of 0.
//
// Example usage:
//
//	store := someCache // implements Cache interface
//
//	// Store a value with no expiration
//	err := store.Set(ctx, "savedPoints", data, 0)
//
//	// Retrieve a value
//	data, err := store.Get(ctx, "savedPoints")
//	if err != nil {
//		// handle error or missing key
//	}
//
//	// Delete a value
//	err = store.Delete(ctx, "savedPoints")
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte or an error if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
