// Package cache provides a small read-through cache used by the services
// layer for single-item reads. Two backends exist: Redis for production and
// an in-process map for tests and single-node deployments.
package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrKeyNotFound is returned on cache miss.
	ErrKeyNotFound = errors.New("cache: key not found")
	// ErrCacheUnavailable is returned when the backend cannot be reached.
	ErrCacheUnavailable = errors.New("cache: backend unavailable")
)

// Cache is the generic cache interface for all implementations.
type Cache interface {
	// Get retrieves a value from cache by key
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in cache with TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from cache by key
	Delete(ctx context.Context, key string) error

	// Close closes the cache connection
	Close() error
}
