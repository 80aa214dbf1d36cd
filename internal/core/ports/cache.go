package ports

import (
	"context"
	"time"
)

// Key prefixes shared by readers that fill the cache and writers that
// invalidate it.
const (
	CacheKeyOrders  = "orders:"
	CacheKeyReports = "reports:"

	CacheKeyActiveOrders = CacheKeyOrders + "active"
)

// Cache stores serialized values for a limited time.
//
// Example:
//
//	var summary []Row
//	if ok, _ := cache.Get(ctx, key, &summary); !ok {
//	    summary = load()
//	    _ = cache.Set(ctx, key, summary, time.Minute)
//	}
type Cache interface {
	// Get decodes the value stored under key into dest.
	// Reports false when the key is missing or expired.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Invalidate removes every key starting with prefix.
	Invalidate(ctx context.Context, prefix string) error
}
