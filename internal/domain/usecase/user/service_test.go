package user

import (
	"context"
	"testing"
	"time"

	"github.com/Vergil4828/KinoService/internal/domain/entity"
	errs "github.com/Vergil4828/KinoService/internal/domain/error"
	"github.com/Vergil4828/KinoService/internal/domain/usecase/txrunner"
	mcore "github.com/Vergil4828/KinoService/mocks/port/core"
	mpers "github.com/Vergil4828/KinoService/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

type userFixture struct {
	uow          *mpers.MockUnitOfWork
	users        *mpers.MockUserRepository
	plans        *mpers.MockPlanRepository
	timeProvider *mcore.MockTimeProvider
	logger       *mcore.MockLogger
	service      *Service
	txCtx        context.Context
}

func newUserFixture(ctx context.Context) *userFixture {
	f := &userFixture{
		uow:          new(mpers.MockUnitOfWork),
		users:        new(mpers.MockUserRepository),
		plans:        new(mpers.MockPlanRepository),
		timeProvider: new(mcore.MockTimeProvider),
		logger:       new(mcore.MockLogger),
	}
	f.txCtx = context.WithValue(ctx, txKey, "mockTransaction")

	f.logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	f.logger.On("Info", mock.Anything, mock.Anything).Maybe()
	f.logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	f.logger.On("Error", mock.Anything, mock.Anything).Maybe()

	runner := txrunner.New(f.uow, f.timeProvider, f.logger, txrunner.Config{
		MaxAttempts:  1,
		BaseBackoff:  time.Millisecond,
		MaxBackoff:   time.Millisecond,
		JitterFactor: 0,
	})
	f.service = NewService(runner, f.timeProvider, f.logger)
	return f
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Registers with zero balance and the free plan", func(t *testing.T) {
		f := newUserFixture(ctx)

		f.uow.On("Begin", ctx).Return(f.txCtx, nil)
		f.uow.On("Commit", f.txCtx).Return(nil)
		f.uow.On("GetUserRepository", f.txCtx).Return(f.users)
		f.uow.On("GetPlanRepository", f.txCtx).Return(f.plans)
		f.timeProvider.On("Now").Return(now)

		freePlan, err := entity.NewSubscriptionPlan("Базовый", 0, 30, nil)
		require.NoError(t, err)
		freePlan.ID = 1
		f.plans.On("GetFreePlan", f.txCtx).Return(freePlan, nil)

		f.users.On("Create", f.txCtx, mock.AnythingOfType("*entity.User")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*entity.User).ID = 42
			}).Return(nil)

		created, err := f.service.Register(ctx, "user@example.com", "moviefan", "hashed")
		require.NoError(t, err)

		assert.Equal(t, uint64(42), created.ID)
		assert.Equal(t, int64(0), created.Balance())
		require.NotNil(t, created.CurrentSubscription)
		require.NotNil(t, created.CurrentSubscription.PlanID)
		assert.Equal(t, uint64(1), *created.CurrentSubscription.PlanID)
		assert.Nil(t, created.CurrentSubscription.EndDate)
		assert.True(t, created.CurrentSubscription.IsActive)
	})

	t.Run("Duplicate email propagates", func(t *testing.T) {
		f := newUserFixture(ctx)

		f.uow.On("Begin", ctx).Return(f.txCtx, nil)
		f.uow.On("Rollback", f.txCtx).Return(nil)
		f.uow.On("GetUserRepository", f.txCtx).Return(f.users)
		f.uow.On("GetPlanRepository", f.txCtx).Return(f.plans)
		f.timeProvider.On("Now").Return(now)

		freePlan, _ := entity.NewSubscriptionPlan("Базовый", 0, 30, nil)
		f.plans.On("GetFreePlan", f.txCtx).Return(freePlan, nil)
		f.users.On("Create", f.txCtx, mock.Anything).Return(errs.ErrDuplicateUser)

		_, err := f.service.Register(ctx, "user@example.com", "moviefan", "hashed")
		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
	})

	t.Run("Missing free plan aborts registration", func(t *testing.T) {
		f := newUserFixture(ctx)

		f.uow.On("Begin", ctx).Return(f.txCtx, nil)
		f.uow.On("Rollback", f.txCtx).Return(nil)
		f.uow.On("GetUserRepository", f.txCtx).Return(f.users)
		f.uow.On("GetPlanRepository", f.txCtx).Return(f.plans)
		f.timeProvider.On("Now").Return(now)

		f.plans.On("GetFreePlan", f.txCtx).Return(nil, errs.ErrNoBasicPlan)

		_, err := f.service.Register(ctx, "user@example.com", "moviefan", "hashed")
		assert.ErrorIs(t, err, errs.ErrNoBasicPlan)
		f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the user", func(t *testing.T) {
		f := newUserFixture(ctx)

		user, _ := entity.NewUser("user@example.com", "moviefan", "hashed", time.Now())
		user.ID = 42
		f.uow.On("GetUserRepository", ctx).Return(f.users)
		f.users.On("GetByID", ctx, uint64(42)).Return(user, nil)

		got, err := f.service.GetByID(ctx, 42)
		require.NoError(t, err)
		assert.Same(t, user, got)
	})

	t.Run("Zero ID rejected", func(t *testing.T) {
		f := newUserFixture(ctx)

		_, err := f.service.GetByID(ctx, 0)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestUserExists(t *testing.T) {
	ctx := context.Background()

	t.Run("Existing user", func(t *testing.T) {
		f := newUserFixture(ctx)

		user, _ := entity.NewUser("user@example.com", "moviefan", "hashed", time.Now())
		f.uow.On("GetUserRepository", ctx).Return(f.users)
		f.users.On("GetByID", ctx, uint64(42)).Return(user, nil)

		exists, err := f.service.UserExists(ctx, 42)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Missing user is not an error", func(t *testing.T) {
		f := newUserFixture(ctx)

		f.uow.On("GetUserRepository", ctx).Return(f.users)
		f.users.On("GetByID", ctx, uint64(99)).Return(nil, errs.ErrUserNotFound)

		exists, err := f.service.UserExists(ctx, 99)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Database errors propagate", func(t *testing.T) {
		f := newUserFixture(ctx)

		f.uow.On("GetUserRepository", ctx).Return(f.users)
		f.users.On("GetByID", ctx, uint64(42)).Return(nil, errs.ErrDatabaseConnection)

		_, err := f.service.UserExists(ctx, 42)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
