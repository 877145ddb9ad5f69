package scheduler

import (
	"context"
	"sync"
	"time"

	coreport "github.com/Vergil4828/KinoService/internal/domain/port/core"
	"github.com/Vergil4828/KinoService/internal/domain/port/usecase"
)

// ReconcileJob periodically demotes users with expired subscriptions to the
// free plan. One owned goroutine, single-flight: a slow tick delays the next
// one instead of overlapping with it.
type ReconcileJob struct {
	subscriptions usecase.SubscriptionUseCase
	logger        coreport.Logger
	interval      time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// NewReconcileJob creates a reconcile job with the given tick interval
func NewReconcileJob(subscriptions usecase.SubscriptionUseCase, logger coreport.Logger, interval time.Duration) *ReconcileJob {
	return &ReconcileJob{
		subscriptions: subscriptions,
		logger:        logger,
		interval:      interval,
	}
}

// Start launches the ticker loop. Calling Start on a running job is a no-op.
func (j *ReconcileJob) Start() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.running {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel
	j.done = make(chan struct{})
	j.running = true

	j.logger.Info("Starting subscription reconcile job", map[string]any{
		"interval": j.interval.String(),
	})

	go j.run(ctx)
}

// Stop halts the loop and waits for an in-flight tick to finish
func (j *ReconcileJob) Stop() {
	j.mu.Lock()
	if !j.running {
		j.mu.Unlock()
		return
	}
	cancel := j.cancel
	done := j.done
	j.running = false
	j.mu.Unlock()

	cancel()
	<-done
	j.logger.Info("Subscription reconcile job stopped", nil)
}

func (j *ReconcileJob) run(ctx context.Context) {
	defer close(j.done)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	// Run once at startup so a restart does not delay overdue demotions
	j.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.tick(ctx)
		}
	}
}

func (j *ReconcileJob) tick(ctx context.Context) {
	demoted, err := j.subscriptions.ReconcileExpired(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		j.logger.Error("Subscription reconciliation failed", map[string]any{
			"error": err.Error(),
		})
		return
	}
	if demoted > 0 {
		j.logger.Info("Expired subscriptions reconciled", map[string]any{
			"demoted": demoted,
		})
	}
}
