package txrunner

import (
	"context"
	"errors"
	"testing"
	"time"

	errs "github.com/Vergil4828/KinoService/internal/domain/error"
	mcore "github.com/Vergil4828/KinoService/mocks/port/core"
	mpers "github.com/Vergil4828/KinoService/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

func newTestRunner(uow *mpers.MockUnitOfWork, timeProvider *mcore.MockTimeProvider, logger *mcore.MockLogger) *Runner {
	return New(uow, timeProvider, logger, Config{
		MaxAttempts:  3,
		BaseBackoff:  10 * time.Millisecond,
		MaxBackoff:   50 * time.Millisecond,
		JitterFactor: 0,
	})
}

func TestExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("Commits on success", func(t *testing.T) {
		uow := new(mpers.MockUnitOfWork)
		timeProvider := new(mcore.MockTimeProvider)
		logger := new(mcore.MockLogger)

		txCtx := context.WithValue(ctx, txKey, "mockTransaction")
		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Commit", txCtx).Return(nil)

		runner := newTestRunner(uow, timeProvider, logger)

		called := false
		err := runner.Execute(ctx, "test.op", func(got context.Context) error {
			called = true
			assert.Equal(t, txCtx, got)
			return nil
		})

		assert.NoError(t, err)
		assert.True(t, called)
		uow.AssertNotCalled(t, "Rollback", mock.Anything)
	})

	t.Run("Rolls back when fn fails", func(t *testing.T) {
		uow := new(mpers.MockUnitOfWork)
		timeProvider := new(mcore.MockTimeProvider)
		logger := new(mcore.MockLogger)

		txCtx := context.WithValue(ctx, txKey, "mockTransaction")
		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Rollback", txCtx).Return(nil)

		runner := newTestRunner(uow, timeProvider, logger)

		fnErr := errors.New("boom")
		err := runner.Execute(ctx, "test.op", func(context.Context) error {
			return fnErr
		})

		assert.ErrorIs(t, err, fnErr)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("Begin failure short-circuits", func(t *testing.T) {
		uow := new(mpers.MockUnitOfWork)
		timeProvider := new(mcore.MockTimeProvider)
		logger := new(mcore.MockLogger)

		uow.On("Begin", ctx).Return(nil, errs.ErrNotInitialized)

		runner := newTestRunner(uow, timeProvider, logger)

		err := runner.Execute(ctx, "test.op", func(context.Context) error {
			t.Fatal("fn must not run when Begin fails")
			return nil
		})

		assert.ErrorIs(t, err, errs.ErrNotInitialized)
	})

	t.Run("Commit failure surfaces and rolls back", func(t *testing.T) {
		uow := new(mpers.MockUnitOfWork)
		timeProvider := new(mcore.MockTimeProvider)
		logger := new(mcore.MockLogger)

		txCtx := context.WithValue(ctx, txKey, "mockTransaction")
		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Commit", txCtx).Return(errs.ErrTransientConflict)
		uow.On("Rollback", txCtx).Return(nil)

		runner := newTestRunner(uow, timeProvider, logger)

		err := runner.Execute(ctx, "test.op", func(context.Context) error {
			return nil
		})

		assert.ErrorIs(t, err, errs.ErrTransientConflict)
	})
}

func TestExecuteWithRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("Retries transient conflicts until success", func(t *testing.T) {
		uow := new(mpers.MockUnitOfWork)
		timeProvider := new(mcore.MockTimeProvider)
		logger := new(mcore.MockLogger)

		txCtx := context.WithValue(ctx, txKey, "mockTransaction")
		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Commit", txCtx).Return(nil)
		uow.On("Rollback", txCtx).Return(nil).Maybe()
		timeProvider.On("Sleep", mock.AnythingOfType("time.Duration")).Return()
		logger.On("Warn", mock.Anything, mock.Anything).Maybe()

		runner := newTestRunner(uow, timeProvider, logger)

		attempts := 0
		err := runner.ExecuteWithRetry(ctx, "test.op", func(context.Context) error {
			attempts++
			if attempts < 3 {
				return errs.ErrTransientConflict
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, attempts)
		timeProvider.AssertNumberOfCalls(t, "Sleep", 2)
	})

	t.Run("Non-transient errors propagate immediately", func(t *testing.T) {
		uow := new(mpers.MockUnitOfWork)
		timeProvider := new(mcore.MockTimeProvider)
		logger := new(mcore.MockLogger)

		txCtx := context.WithValue(ctx, txKey, "mockTransaction")
		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Rollback", txCtx).Return(nil)

		runner := newTestRunner(uow, timeProvider, logger)

		attempts := 0
		err := runner.ExecuteWithRetry(ctx, "test.op", func(context.Context) error {
			attempts++
			return errs.ErrInsufficientFunds
		})

		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		assert.Equal(t, 1, attempts)
		timeProvider.AssertNotCalled(t, "Sleep", mock.Anything)
	})

	t.Run("Gives up after max attempts", func(t *testing.T) {
		uow := new(mpers.MockUnitOfWork)
		timeProvider := new(mcore.MockTimeProvider)
		logger := new(mcore.MockLogger)

		txCtx := context.WithValue(ctx, txKey, "mockTransaction")
		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Rollback", txCtx).Return(nil)
		timeProvider.On("Sleep", mock.AnythingOfType("time.Duration")).Return()
		logger.On("Warn", mock.Anything, mock.Anything).Maybe()
		logger.On("Error", mock.Anything, mock.Anything).Maybe()

		runner := newTestRunner(uow, timeProvider, logger)

		attempts := 0
		err := runner.ExecuteWithRetry(ctx, "test.op", func(context.Context) error {
			attempts++
			return errs.ErrTransientConflict
		})

		assert.ErrorIs(t, err, errs.ErrTransientConflict)
		assert.Equal(t, 3, attempts)
	})

	t.Run("Cancelled context stops the retry loop", func(t *testing.T) {
		uow := new(mpers.MockUnitOfWork)
		timeProvider := new(mcore.MockTimeProvider)
		logger := new(mcore.MockLogger)

		cancelCtx, cancel := context.WithCancel(ctx)
		txCtx := context.WithValue(cancelCtx, txKey, "mockTransaction")
		uow.On("Begin", cancelCtx).Return(txCtx, nil)
		uow.On("Rollback", txCtx).Return(nil)
		logger.On("Warn", mock.Anything, mock.Anything).Maybe()

		runner := newTestRunner(uow, timeProvider, logger)

		err := runner.ExecuteWithRetry(cancelCtx, "test.op", func(context.Context) error {
			cancel()
			return errs.ErrTransientConflict
		})

		assert.ErrorIs(t, err, context.Canceled)
		timeProvider.AssertNotCalled(t, "Sleep", mock.Anything)
	})

	t.Run("Cancellation during backoff is observed immediately", func(t *testing.T) {
		uow := new(mpers.MockUnitOfWork)
		timeProvider := new(mcore.MockTimeProvider)
		logger := new(mcore.MockLogger)

		cancelCtx, cancel := context.WithCancel(ctx)
		txCtx := context.WithValue(cancelCtx, txKey, "mockTransaction")
		uow.On("Begin", cancelCtx).Return(txCtx, nil)
		uow.On("Rollback", txCtx).Return(nil)
		logger.On("Warn", mock.Anything, mock.Anything).Maybe()

		sleeping := make(chan struct{})
		release := make(chan struct{})
		timeProvider.On("Sleep", mock.AnythingOfType("time.Duration")).
			Run(func(mock.Arguments) {
				close(sleeping)
				<-release
			}).Once()

		runner := newTestRunner(uow, timeProvider, logger)

		done := make(chan error, 1)
		go func() {
			done <- runner.ExecuteWithRetry(cancelCtx, "test.op", func(context.Context) error {
				return errs.ErrTransientConflict
			})
		}()

		<-sleeping
		cancel()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			t.Fatal("retry loop did not observe cancellation during backoff")
		}
		close(release)
	})
}

func TestBackoff(t *testing.T) {
	runner := New(new(mpers.MockUnitOfWork), new(mcore.MockTimeProvider), new(mcore.MockLogger), Config{
		MaxAttempts:  5,
		BaseBackoff:  50 * time.Millisecond,
		MaxBackoff:   200 * time.Millisecond,
		JitterFactor: 0,
	})

	assert.Equal(t, 50*time.Millisecond, runner.backoff(0))
	assert.Equal(t, 100*time.Millisecond, runner.backoff(1))
	assert.Equal(t, 200*time.Millisecond, runner.backoff(2))
	// Capped at MaxBackoff
	assert.Equal(t, 200*time.Millisecond, runner.backoff(3))
}

func TestNewClampsMaxAttempts(t *testing.T) {
	runner := New(new(mpers.MockUnitOfWork), new(mcore.MockTimeProvider), new(mcore.MockLogger), Config{MaxAttempts: 0})
	assert.Equal(t, 1, runner.config.MaxAttempts)
}
