// Package queries contains read-only operations built directly on SQL and the
// pure domain services. Results that are expensive to build are cached through
// ports.Cache; the write commands invalidate them.
package queries

import (
	"context"
	"log/slog"
	"time"

	"laundry/internal/core/ports"
)

// readThrough returns the cached value under key, or calls load and caches
// its result for ttl. Cache failures are logged and never fail the read.
func readThrough[T any](
	ctx context.Context,
	cache ports.Cache,
	logger *slog.Logger,
	key string,
	ttl time.Duration,
	load func(ctx context.Context) (T, error),
) (T, error) {
	var value T

	if cache != nil {
		hit, err := cache.Get(ctx, key, &value)
		if err != nil {
			logger.WarnContext(ctx, "Cache read failed", "key", key, "error", err)
		} else if hit {
			return value, nil
		}
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if cache != nil {
		if err = cache.Set(ctx, key, value, ttl); err != nil {
			logger.WarnContext(ctx, "Cache write failed", "key", key, "error", err)
		}
	}

	return value, nil
}
