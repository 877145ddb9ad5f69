package core

import (
	"context"
	"time"
)

// Cache is the collaborator receiving wallet snapshot reads/writes and
// invalidation signals after balance- or subscription-affecting commits.
// Implementations are best-effort: a failed signal must never roll back the
// underlying database transaction.
type Cache interface {
	// Get loads the value stored under key into dest, reporting whether it was present
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Set stores value under key with the given TTL
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Invalidate drops the given keys
	Invalidate(ctx context.Context, keys ...string) error
}
