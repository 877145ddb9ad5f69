// Package txrunner wraps unit-of-work transactions with a single retry policy
// so every wallet- and subscription-mutating operation handles transient
// database conflicts the same way.
package txrunner

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	errs "github.com/Vergil4828/KinoService/internal/domain/error"
	coreport "github.com/Vergil4828/KinoService/internal/domain/port/core"
	"github.com/Vergil4828/KinoService/internal/domain/port/persistence"
)

// Config holds the retry policy for transient conflicts
type Config struct {
	MaxAttempts  int
	BaseBackoff  time.Duration
	MaxBackoff   time.Duration
	JitterFactor float64 // 0.0-1.0
}

// DefaultConfig returns the default retry policy
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  5,
		BaseBackoff:  50 * time.Millisecond,
		MaxBackoff:   1 * time.Second,
		JitterFactor: 0.2,
	}
}

// Runner executes functions inside a unit-of-work transaction
type Runner struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       Config
}

// New creates a Runner with the given retry policy
func New(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger, config Config) *Runner {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 1
	}
	return &Runner{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
	}
}

// UnitOfWork returns the runner's unit of work, for repository access outside transactions
func (r *Runner) UnitOfWork() persistence.UnitOfWork {
	return r.uow
}

// Execute runs fn inside one transaction: commit on nil, rollback on error.
// The context passed to fn carries the transaction; repositories obtained from
// the unit of work with that context join it.
func (r *Runner) Execute(ctx context.Context, operation string, fn func(txCtx context.Context) error) error {
	txCtx, err := r.uow.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", operation, err)
	}

	if err := fn(txCtx); err != nil {
		if rbErr := r.uow.Rollback(txCtx); rbErr != nil {
			r.logger.Error("Rollback failed", map[string]any{
				"operation": operation,
				"error":     rbErr.Error(),
			})
		}
		return err
	}

	if err := r.uow.Commit(txCtx); err != nil {
		// A failed commit leaves nothing persisted; roll back to release resources.
		if rbErr := r.uow.Rollback(txCtx); rbErr != nil {
			r.logger.Error("Rollback after failed commit failed", map[string]any{
				"operation": operation,
				"error":     rbErr.Error(),
			})
		}
		return fmt.Errorf("%s: commit: %w", operation, err)
	}

	return nil
}

// ExecuteWithRetry runs fn like Execute, retrying the whole transaction on
// transient conflict errors with exponential backoff. Non-transient errors
// propagate immediately and the caller never observes intermediate attempts.
func (r *Runner) ExecuteWithRetry(ctx context.Context, operation string, fn func(txCtx context.Context) error) error {
	var err error

	for attempt := 0; attempt < r.config.MaxAttempts; attempt++ {
		err = r.Execute(ctx, operation, fn)
		if err == nil {
			return nil
		}
		if !errs.IsTransient(err) {
			return err
		}
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		backoff := r.backoff(attempt)
		r.logger.Warn("Transient conflict, retrying transaction", map[string]any{
			"operation":    operation,
			"attempt":      attempt + 1,
			"max_attempts": r.config.MaxAttempts,
			"retry_after":  backoff.String(),
			"error":        err.Error(),
		})

		if err := r.waitBackoff(ctx, backoff); err != nil {
			return err
		}
	}

	r.logger.Error("All retry attempts exhausted", map[string]any{
		"operation":    operation,
		"max_attempts": r.config.MaxAttempts,
		"error":        err.Error(),
	})
	return err
}

// waitBackoff sleeps for the backoff delay, returning early with ctx.Err() if
// the context is cancelled before or while waiting
func (r *Runner) waitBackoff(ctx context.Context, backoff time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	slept := make(chan struct{})
	go func() {
		r.timeProvider.Sleep(backoff)
		close(slept)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-slept:
		return nil
	}
}

// backoff computes the delay before the next attempt: exponential with jitter
func (r *Runner) backoff(attempt int) time.Duration {
	backoff := r.config.BaseBackoff * (1 << uint(attempt))
	if r.config.MaxBackoff > 0 && backoff > r.config.MaxBackoff {
		backoff = r.config.MaxBackoff
	}
	if r.config.JitterFactor > 0 {
		jitter := float64(backoff) * r.config.JitterFactor * rand.Float64()
		backoff += time.Duration(jitter)
	}
	return backoff
}
