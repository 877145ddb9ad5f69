package persistence

import (
	"context"
	"time"

	"github.com/Vergil4828/KinoService/internal/domain/entity"
)

// UserRepository defines persistence operations on the user aggregate.
// Balance mutation goes through AdjustBalance only: a single conditional
// update, never read-modify-write.
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the given ID exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByIDForUpdate retrieves a user and takes a row lock, serializing
	// concurrent wallet mutations for the same user. Only valid inside a
	// unit-of-work transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user
	//
	// Possible errors:
	// - ErrDuplicateUser: if a user with the same email exists
	Create(ctx context.Context, user *entity.User) error

	// AdjustBalance applies a signed delta to the wallet balance in one
	// conditional update and returns the resulting balance in cents.
	//
	// Possible errors:
	// - ErrUserNotFound: if the user doesn't exist
	// - ErrInsufficientFunds: if the delta would drive the balance negative
	// - ErrTransientConflict: if the database reports a write conflict
	AdjustBalance(ctx context.Context, userID uint64, deltaInCents int64) (int64, error)

	// UpdateCurrentSubscription overwrites the embedded subscription snapshot wholesale
	UpdateCurrentSubscription(ctx context.Context, userID uint64, sub *entity.CurrentSubscription) error

	// FindWithExpiredSubscriptions returns users whose current subscription has an
	// end date at or before now and is still marked active. Users without an end
	// date (non-expiring free tier) are never matched.
	FindWithExpiredSubscriptions(ctx context.Context, now time.Time) ([]*entity.User, error)

	// CountByCurrentPlan counts users whose current subscription references the plan
	CountByCurrentPlan(ctx context.Context, planID uint64) (int64, error)
}
