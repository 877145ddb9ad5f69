package persistence

import (
	"context"
)

// UnitOfWork coordinates multi-repository writes inside one database
// transaction so composed operations commit or roll back as a whole
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetPlanRepository returns a plan repository bound to the current transaction
	GetPlanRepository(ctx context.Context) PlanRepository

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetSubscriptionHistoryRepository returns a history repository bound to the current transaction
	GetSubscriptionHistoryRepository(ctx context.Context) SubscriptionHistoryRepository
}
