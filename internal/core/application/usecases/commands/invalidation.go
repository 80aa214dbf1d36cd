package commands

import (
	"context"
	"log/slog"
)

// invalidate drops cached read models under every prefix. The write it
// follows is already committed, so failures are logged and not returned.
func invalidate(ctx context.Context, cache CacheInvalidator, logger *slog.Logger, prefixes ...string) {
	for _, prefix := range prefixes {
		if err := cache.Invalidate(ctx, prefix); err != nil {
			logger.WarnContext(ctx, "Cache invalidation failed", "prefix", prefix, "error", err)
		}
	}
}
