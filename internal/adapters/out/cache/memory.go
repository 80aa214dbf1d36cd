package cache

import (
	"context"
	"strings"
	"time"

	"laundry/internal/core/ports"

	goCache "github.com/patrickmn/go-cache"
)

// DefaultCleanupInterval is how often expired items are removed from memory.
const DefaultCleanupInterval = 10 * time.Minute

var _ ports.Cache = (*MemoryCache)(nil)

// MemoryCache keeps entries in the process. It suits a single instance; with
// several instances each one invalidates only its own copy.
type MemoryCache struct {
	cache *goCache.Cache
}

func NewMemoryCache(cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{cache: goCache.New(goCache.NoExpiration, cleanupInterval)}
}

func (c *MemoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	item, ok := c.cache.Get(key)
	if !ok {
		return false, nil
	}

	if err := decode(item.([]byte), dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores value for ttl. A non-positive ttl keeps the entry until it is
// invalidated.
func (c *MemoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := encode(value)
	if err != nil {
		return err
	}

	if ttl <= 0 {
		ttl = goCache.NoExpiration
	}
	c.cache.Set(key, data, ttl)
	return nil
}

func (c *MemoryCache) Invalidate(_ context.Context, prefix string) error {
	for key := range c.cache.Items() {
		if strings.HasPrefix(key, prefix) {
			c.cache.Delete(key)
		}
	}
	return nil
}
