package wallet

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Vergil4828/KinoService/internal/domain/entity"
	errs "github.com/Vergil4828/KinoService/internal/domain/error"
	portuse "github.com/Vergil4828/KinoService/internal/domain/port/usecase"
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

type walletFixture struct {
	uow          *mpers.MockUnitOfWork
	users        *mpers.MockUserRepository
	transactions *mpers.MockTransactionRepository
	cache        *mcore.MockCache
	timeProvider *mcore.MockTimeProvider
	logger       *mcore.MockLogger
	service      *Service
	txCtx        context.Context
}

func newWalletFixture(ctx context.Context) *walletFixture {
	f := &walletFixture{
		uow:          new(mpers.MockUnitOfWork),
		users:        new(mpers.MockUserRepository),
		transactions: new(mpers.MockTransactionRepository),
		cache:        new(mcore.MockCache),
		timeProvider: new(mcore.MockTimeProvider),
		logger:       new(mcore.MockLogger),
	}
	f.txCtx = context.WithValue(ctx, txKey, "mockTransaction")

	f.logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	f.logger.On("Info", mock.Anything, mock.Anything).Maybe()
	f.logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	f.logger.On("Error", mock.Anything, mock.Anything).Maybe()

	runner := txrunner.New(f.uow, f.timeProvider, f.logger, txrunner.Config{
		MaxAttempts:  3,
		BaseBackoff:  time.Millisecond,
		MaxBackoff:   time.Millisecond,
		JitterFactor: 0,
	})
	f.service = NewService(runner, f.cache, f.timeProvider, f.logger, Policy{
		MinDepositInCents: 1000,
		HistoryLimit:      50,
		SnapshotTTL:       time.Hour,
	})
	return f
}

func TestDeposit(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	userID := uint64(42)

	t.Run("Successful deposit appends ledger entry and credits balance", func(t *testing.T) {
		f := newWalletFixture(ctx)

		f.uow.On("Begin", ctx).Return(f.txCtx, nil)
		f.uow.On("Commit", f.txCtx).Return(nil)
		f.uow.On("GetUserRepository", f.txCtx).Return(f.users)
		f.uow.On("GetTransactionRepository", f.txCtx).Return(f.transactions)
		f.timeProvider.On("Now").Return(now)

		var created *entity.Transaction
		f.transactions.On("Create", f.txCtx, mock.AnythingOfType("*entity.Transaction")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*entity.Transaction)
			}).Return(nil)
		f.users.On("AdjustBalance", f.txCtx, userID, int64(99902)).Return(int64(159902), nil)
		f.cache.On("Invalidate", ctx, "wallet_data:42", "user_data:42").Return(nil)

		result, err := f.service.Deposit(ctx, userID, "999.02", "card")
		require.NoError(t, err)

		assert.Equal(t, "1599.02", result.NewBalance)
		assert.Equal(t, int64(159902), result.NewBalanceInCents)
		require.NotNil(t, created)
		assert.Equal(t, int64(99902), created.AmountInCents)
		assert.Equal(t, entity.TypeDeposit, created.Type)
		assert.Equal(t, entity.StatusCompleted, created.Status)
		assert.Equal(t, "card", created.PaymentMethod)
		assert.NotEmpty(t, created.Reference)
	})

	t.Run("Empty payment method defaults to manual", func(t *testing.T) {
		f := newWalletFixture(ctx)

		f.uow.On("Begin", ctx).Return(f.txCtx, nil)
		f.uow.On("Commit", f.txCtx).Return(nil)
		f.uow.On("GetUserRepository", f.txCtx).Return(f.users)
		f.uow.On("GetTransactionRepository", f.txCtx).Return(f.transactions)
		f.timeProvider.On("Now").Return(now)

		var created *entity.Transaction
		f.transactions.On("Create", f.txCtx, mock.AnythingOfType("*entity.Transaction")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*entity.Transaction)
			}).Return(nil)
		f.users.On("AdjustBalance", f.txCtx, userID, int64(1000)).Return(int64(1000), nil)
		f.cache.On("Invalidate", ctx, mock.Anything, mock.Anything).Return(nil)

		_, err := f.service.Deposit(ctx, userID, "10.00", "")
		require.NoError(t, err)
		assert.Equal(t, "manual", created.PaymentMethod)
	})

	t.Run("Below minimum never touches the database", func(t *testing.T) {
		f := newWalletFixture(ctx)

		_, err := f.service.Deposit(ctx, userID, "9.99", "card")
		assert.ErrorIs(t, err, errs.ErrAmountBelowMinimum)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("Zero user ID rejected", func(t *testing.T) {
		f := newWalletFixture(ctx)

		_, err := f.service.Deposit(ctx, 0, "10.00", "card")
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Transient conflict is retried to success", func(t *testing.T) {
		f := newWalletFixture(ctx)

		f.uow.On("Begin", ctx).Return(f.txCtx, nil)
		f.uow.On("Commit", f.txCtx).Return(nil)
		f.uow.On("Rollback", f.txCtx).Return(nil)
		f.uow.On("GetUserRepository", f.txCtx).Return(f.users)
		f.uow.On("GetTransactionRepository", f.txCtx).Return(f.transactions)
		f.timeProvider.On("Now").Return(now)
		f.timeProvider.On("Sleep", mock.AnythingOfType("time.Duration")).Return()

		f.transactions.On("Create", f.txCtx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
		f.users.On("AdjustBalance", f.txCtx, userID, int64(1000)).Return(int64(0), errs.ErrTransientConflict).Once()
		f.users.On("AdjustBalance", f.txCtx, userID, int64(1000)).Return(int64(2000), nil).Once()
		f.cache.On("Invalidate", ctx, mock.Anything, mock.Anything).Return(nil)

		result, err := f.service.Deposit(ctx, userID, "10.00", "card")
		require.NoError(t, err)
		assert.Equal(t, "20.00", result.NewBalance)
		f.users.AssertNumberOfCalls(t, "AdjustBalance", 2)
	})

	t.Run("Concurrent deposits all land on the balance", func(t *testing.T) {
		f := newWalletFixture(ctx)

		f.uow.On("Begin", ctx).Return(f.txCtx, nil)
		f.uow.On("Commit", f.txCtx).Return(nil)
		f.uow.On("GetUserRepository", f.txCtx).Return(f.users)
		f.uow.On("GetTransactionRepository", f.txCtx).Return(f.transactions)
		f.timeProvider.On("Now").Return(now)
		f.transactions.On("Create", f.txCtx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
		f.cache.On("Invalidate", ctx, mock.Anything, mock.Anything).Return(nil)

		var mu sync.Mutex
		var balance int64
		f.users.On("AdjustBalance", f.txCtx, userID, mock.AnythingOfType("int64")).Return(
			func(_ context.Context, _ uint64, deltaInCents int64) (int64, error) {
				mu.Lock()
				defer mu.Unlock()
				balance += deltaInCents
				return balance, nil
			})

		amounts := []string{"15", "30", "500", "999.02", "55"}
		var wg sync.WaitGroup
		for _, amount := range amounts {
			wg.Add(1)
			go func(amount string) {
				defer wg.Done()
				_, err := f.service.Deposit(ctx, userID, amount, "card")
				assert.NoError(t, err)
			}(amount)
		}
		wg.Wait()

		assert.Equal(t, int64(159902), balance)
		f.users.AssertNumberOfCalls(t, "AdjustBalance", 5)
		f.transactions.AssertNumberOfCalls(t, "Create", 5)
	})

	t.Run("Cache invalidation failure does not fail the deposit", func(t *testing.T) {
		f := newWalletFixture(ctx)

		f.uow.On("Begin", ctx).Return(f.txCtx, nil)
		f.uow.On("Commit", f.txCtx).Return(nil)
		f.uow.On("GetUserRepository", f.txCtx).Return(f.users)
		f.uow.On("GetTransactionRepository", f.txCtx).Return(f.transactions)
		f.timeProvider.On("Now").Return(now)

		f.transactions.On("Create", f.txCtx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
		f.users.On("AdjustBalance", f.txCtx, userID, int64(1000)).Return(int64(1000), nil)
		f.cache.On("Invalidate", ctx, mock.Anything, mock.Anything).Return(errors.New("redis down"))

		result, err := f.service.Deposit(ctx, userID, "10.00", "card")
		require.NoError(t, err)
		assert.Equal(t, "10.00", result.NewBalance)
	})
}

func TestWithdraw(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	userID := uint64(42)

	t.Run("Successful withdrawal debits the balance", func(t *testing.T) {
		f := newWalletFixture(ctx)

		f.uow.On("Begin", ctx).Return(f.txCtx, nil)
		f.uow.On("Commit", f.txCtx).Return(nil)
		f.uow.On("GetUserRepository", f.txCtx).Return(f.users)
		f.uow.On("GetTransactionRepository", f.txCtx).Return(f.transactions)
		f.timeProvider.On("Now").Return(now)

		var created *entity.Transaction
		f.transactions.On("Create", f.txCtx, mock.AnythingOfType("*entity.Transaction")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*entity.Transaction)
			}).Return(nil)
		f.users.On("AdjustBalance", f.txCtx, userID, int64(-500)).Return(int64(1500), nil)
		f.cache.On("Invalidate", ctx, mock.Anything, mock.Anything).Return(nil)

		result, err := f.service.Withdraw(ctx, userID, "5.00", "payout")
		require.NoError(t, err)

		assert.Equal(t, "15.00", result.NewBalance)
		require.NotNil(t, created)
		assert.Equal(t, int64(-500), created.AmountInCents)
		assert.Equal(t, entity.TypeWithdrawal, created.Type)
		assert.Equal(t, "payout", created.Description)
	})

	t.Run("Insufficient funds returns detailed error without retrying", func(t *testing.T) {
		f := newWalletFixture(ctx)

		f.uow.On("Begin", ctx).Return(f.txCtx, nil)
		f.uow.On("Rollback", f.txCtx).Return(nil)
		f.uow.On("GetUserRepository", f.txCtx).Return(f.users)
		f.uow.On("GetTransactionRepository", f.txCtx).Return(f.transactions)
		f.timeProvider.On("Now").Return(now)

		f.transactions.On("Create", f.txCtx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
		f.users.On("AdjustBalance", f.txCtx, userID, int64(-89900)).Return(int64(0), errs.ErrInsufficientFunds)

		user, _ := entity.NewUser("user@example.com", "moviefan", "hashed", now)
		user.SetBalance(5000, now)
		f.users.On("GetByID", f.txCtx, userID).Return(user, nil)

		_, err := f.service.Withdraw(ctx, userID, "899.00", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)

		var detailed *errs.InsufficientFundsError
		require.ErrorAs(t, err, &detailed)
		assert.Equal(t, userID, detailed.UserID)
		assert.Equal(t, "899.00", detailed.Amount)
		assert.Equal(t, "50.00", detailed.CurrentBalance)

		f.users.AssertNumberOfCalls(t, "AdjustBalance", 1)
		f.cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Invalid amount rejected before the transaction", func(t *testing.T) {
		f := newWalletFixture(ctx)

		_, err := f.service.Withdraw(ctx, userID, "-5.00", "")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})
}

func TestGetTransaction(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	userID := uint64(42)

	t.Run("Returns the owner's ledger entry", func(t *testing.T) {
		f := newWalletFixture(ctx)

		f.uow.On("GetTransactionRepository", ctx).Return(f.transactions)
		txn, _ := entity.NewTransaction("ref-1", userID, 99902, entity.TypeDeposit, now)
		f.transactions.On("GetByReference", ctx, "ref-1").Return(txn, nil)

		got, err := f.service.GetTransaction(ctx, userID, "ref-1")
		require.NoError(t, err)
		assert.Equal(t, "ref-1", got.Reference)
		assert.Equal(t, int64(99902), got.AmountInCents)
	})

	t.Run("Another user's entry reads as not found", func(t *testing.T) {
		f := newWalletFixture(ctx)

		f.uow.On("GetTransactionRepository", ctx).Return(f.transactions)
		txn, _ := entity.NewTransaction("ref-1", uint64(7), 99902, entity.TypeDeposit, now)
		f.transactions.On("GetByReference", ctx, "ref-1").Return(txn, nil)

		_, err := f.service.GetTransaction(ctx, userID, "ref-1")
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})

	t.Run("Unknown reference propagates not found", func(t *testing.T) {
		f := newWalletFixture(ctx)

		f.uow.On("GetTransactionRepository", ctx).Return(f.transactions)
		f.transactions.On("GetByReference", ctx, "ref-missing").Return(nil, errs.ErrTransactionNotFound)

		_, err := f.service.GetTransaction(ctx, userID, "ref-missing")
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})

	t.Run("Empty reference rejected before the database", func(t *testing.T) {
		f := newWalletFixture(ctx)

		_, err := f.service.GetTransaction(ctx, userID, "")
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		f.transactions.AssertNotCalled(t, "GetByReference", mock.Anything, mock.Anything)
	})

	t.Run("Zero user ID rejected", func(t *testing.T) {
		f := newWalletFixture(ctx)

		_, err := f.service.GetTransaction(ctx, 0, "ref-1")
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestGetWallet(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	userID := uint64(42)

	t.Run("Cache hit skips the database", func(t *testing.T) {
		f := newWalletFixture(ctx)

		f.cache.On("Get", ctx, "wallet_data:42", mock.AnythingOfType("*usecase.WalletView")).
			Run(func(args mock.Arguments) {
				view := args.Get(2).(*portuse.WalletView)
				view.Balance = "42.00"
				view.BalanceInCents = 4200
			}).Return(true, nil)

		view, err := f.service.GetWallet(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "42.00", view.Balance)
		f.uow.AssertNotCalled(t, "GetUserRepository", mock.Anything)
	})

	t.Run("Cache miss reads the database and stores the snapshot", func(t *testing.T) {
		f := newWalletFixture(ctx)

		f.cache.On("Get", ctx, "wallet_data:42", mock.Anything).Return(false, nil)
		f.uow.On("GetUserRepository", ctx).Return(f.users)
		f.uow.On("GetTransactionRepository", ctx).Return(f.transactions)

		user, _ := entity.NewUser("user@example.com", "moviefan", "hashed", now)
		user.SetBalance(159902, now)
		f.users.On("GetByID", ctx, userID).Return(user, nil)

		txn, _ := entity.NewTransaction("ref-1", userID, 99902, entity.TypeDeposit, now)
		f.transactions.On("ListRecentByUser", ctx, userID, 50).Return([]*entity.Transaction{txn}, nil)
		f.cache.On("Set", ctx, "wallet_data:42", mock.AnythingOfType("*usecase.WalletView"), time.Hour).Return(nil)

		view, err := f.service.GetWallet(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "1599.02", view.Balance)
		assert.Equal(t, int64(159902), view.BalanceInCents)
		assert.Len(t, view.Transactions, 1)
	})

	t.Run("Cache read failure degrades to the database", func(t *testing.T) {
		f := newWalletFixture(ctx)

		f.cache.On("Get", ctx, "wallet_data:42", mock.Anything).Return(false, errors.New("redis down"))
		f.uow.On("GetUserRepository", ctx).Return(f.users)
		f.uow.On("GetTransactionRepository", ctx).Return(f.transactions)

		user, _ := entity.NewUser("user@example.com", "moviefan", "hashed", now)
		user.SetBalance(100, now)
		f.users.On("GetByID", ctx, userID).Return(user, nil)
		f.transactions.On("ListRecentByUser", ctx, userID, 50).Return(nil, nil)
		f.cache.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		view, err := f.service.GetWallet(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "1.00", view.Balance)
	})

	t.Run("Unknown user propagates not found", func(t *testing.T) {
		f := newWalletFixture(ctx)

		f.cache.On("Get", ctx, mock.Anything, mock.Anything).Return(false, nil)
		f.uow.On("GetUserRepository", ctx).Return(f.users)
		f.uow.On("GetTransactionRepository", ctx).Return(f.transactions)
		f.users.On("GetByID", ctx, userID).Return(nil, errs.ErrUserNotFound)

		_, err := f.service.GetWallet(ctx, userID)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Zero user ID rejected", func(t *testing.T) {
		f := newWalletFixture(ctx)

		_, err := f.service.GetWallet(ctx, 0)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}
