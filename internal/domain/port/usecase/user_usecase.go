package usecase

import (
	"context"

	"github.com/Vergil4828/KinoService/internal/domain/entity"
)

// UserUseCase exposes account operations needed by the wallet/subscription core
type UserUseCase interface {
	// Register creates a user with a zero-balance wallet and the free plan assigned
	Register(ctx context.Context, email, username, passwordHash string) (*entity.User, error)

	// GetByID returns a user by ID
	GetByID(ctx context.Context, userID uint64) (*entity.User, error)

	// UserExists reports whether a user with the given ID exists
	UserExists(ctx context.Context, userID uint64) (bool, error)
}
