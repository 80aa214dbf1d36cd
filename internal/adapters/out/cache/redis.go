package cache

import (
	"context"
	"errors"
	"strings"
	"time"

	"laundry/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// scanBatch is the COUNT hint used while scanning keys to invalidate.
const scanBatch = 100

var _ ports.Cache = (*RedisCache)(nil)

// RedisCache shares entries between every instance of the service. Keys are
// stored under namespace so several deployments can use one Redis database.
type RedisCache struct {
	client    redis.UniversalClient
	namespace string
}

func NewRedisCache(client redis.UniversalClient, namespace string) *RedisCache {
	return &RedisCache{client: client, namespace: namespace}
}

func (c *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, c.namespace+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err = decode(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores value for ttl. A non-positive ttl keeps the entry until it is
// invalidated.
func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := encode(value)
	if err != nil {
		return err
	}

	if ttl < 0 {
		ttl = 0
	}
	return c.client.Set(ctx, c.namespace+key, data, ttl).Err()
}

// Invalidate deletes every key starting with prefix. It scans incrementally
// and never blocks Redis with KEYS.
func (c *RedisCache) Invalidate(ctx context.Context, prefix string) error {
	pattern := escapePattern(c.namespace+prefix) + "*"

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return err
		}

		if len(keys) > 0 {
			if err = c.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}

		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// Ping checks the connection.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func escapePattern(s string) string {
	return strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`).Replace(s)
}
