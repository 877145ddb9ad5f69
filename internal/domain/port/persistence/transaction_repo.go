package persistence

import (
	"context"

	"github.com/Vergil4828/KinoService/internal/domain/entity"
)

// TransactionRepository defines persistence operations on the financial ledger.
// Entries are append-only; there is no update or delete.
type TransactionRepository interface {
	// Create saves a new ledger entry and backfills its generated ID
	//
	// Possible errors:
	// - ErrConstraintViolation: if the referenced user does not exist
	// - ErrTransientConflict: if the database reports a write conflict
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByReference retrieves an entry by its external reference
	//
	// Possible errors:
	// - ErrTransactionNotFound: if no entry with the given reference exists
	GetByReference(ctx context.Context, reference string) (*entity.Transaction, error)

	// ListRecentByUser returns the newest entries for a user, up to limit
	ListRecentByUser(ctx context.Context, userID uint64, limit int) ([]*entity.Transaction, error)
}
