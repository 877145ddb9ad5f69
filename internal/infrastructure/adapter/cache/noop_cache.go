package cache

import (
	"context"
	"time"

	"github.com/Vergil4828/KinoService/internal/domain/port/core"
)

// NoopCache satisfies core.Cache without storing anything. Used when redis is
// disabled; every read misses and writes succeed silently.
type NoopCache struct{}

// NewNoopCache creates a cache that does nothing
func NewNoopCache() core.Cache {
	return &NoopCache{}
}

func (c *NoopCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	return false, nil
}

func (c *NoopCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return nil
}

func (c *NoopCache) Invalidate(ctx context.Context, keys ...string) error {
	return nil
}
