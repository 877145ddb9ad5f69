package persistence

import (
	"context"

	"github.com/Vergil4828/KinoService/internal/domain/entity"
)

// SubscriptionHistoryRepository defines persistence operations on the
// append-only subscription period log
type SubscriptionHistoryRepository interface {
	// Create saves a new history row and backfills its generated ID
	Create(ctx context.Context, history *entity.SubscriptionHistory) error

	// ListByUser returns a user's history rows, newest first
	ListByUser(ctx context.Context, userID uint64) ([]*entity.SubscriptionHistory, error)
}
