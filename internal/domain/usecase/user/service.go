// Package user implements account operations the wallet/subscription core
// depends on: registration with the free plan assigned, and lookups.
package user

import (
	"context"
	"errors"

	"github.com/Vergil4828/KinoService/internal/domain/entity"
	errs "github.com/Vergil4828/KinoService/internal/domain/error"
	coreport "github.com/Vergil4828/KinoService/internal/domain/port/core"
	"github.com/Vergil4828/KinoService/internal/domain/usecase/txrunner"
)

// Service implements usecase.UserUseCase
type Service struct {
	runner       *txrunner.Runner
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates the user service
func NewService(runner *txrunner.Runner, timeProvider coreport.TimeProvider, logger coreport.Logger) *Service {
	return &Service{
		runner:       runner,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register creates a user with a zero-balance wallet and the free plan as the
// current subscription, in one transaction.
func (s *Service) Register(ctx context.Context, email, username, passwordHash string) (*entity.User, error) {
	var created *entity.User

	err := s.runner.Execute(ctx, "user.register", func(txCtx context.Context) error {
		uow := s.runner.UnitOfWork()
		users := uow.GetUserRepository(txCtx)
		plans := uow.GetPlanRepository(txCtx)

		now := s.timeProvider.Now()
		u, err := entity.NewUser(email, username, passwordHash, now)
		if err != nil {
			return err
		}

		freePlan, err := plans.GetFreePlan(txCtx)
		if err != nil {
			return err
		}
		u.AssignSubscription(entity.NewPlanSubscription(freePlan, now), now)

		if err := users.Create(txCtx, u); err != nil {
			return err
		}
		created = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"user_id":  created.ID,
		"username": created.Username,
	})
	return created, nil
}

// GetByID returns a user by ID
func (s *Service) GetByID(ctx context.Context, userID uint64) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	users := s.runner.UnitOfWork().GetUserRepository(ctx)
	return users.GetByID(ctx, userID)
}

// UserExists reports whether a user with the given ID exists
func (s *Service) UserExists(ctx context.Context, userID uint64) (bool, error) {
	_, err := s.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
