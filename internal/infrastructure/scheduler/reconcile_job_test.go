package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	mcore "github.com/Vergil4828/KinoService/mocks/port/core"
	muse "github.com/Vergil4828/KinoService/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newJobLogger() *mcore.MockLogger {
	logger := new(mcore.MockLogger)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestReconcileJobRunsImmediatelyOnStart(t *testing.T) {
	subscriptions := new(muse.MockSubscriptionUseCase)
	ticked := make(chan struct{}, 1)
	subscriptions.On("ReconcileExpired", mock.Anything).
		Run(func(mock.Arguments) {
			select {
			case ticked <- struct{}{}:
			default:
			}
		}).Return(1, nil)

	job := NewReconcileJob(subscriptions, newJobLogger(), time.Hour)
	job.Start()
	defer job.Stop()

	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("expected an immediate reconciliation tick on start")
	}
}

func TestReconcileJobTicksOnInterval(t *testing.T) {
	subscriptions := new(muse.MockSubscriptionUseCase)
	var ticks atomic.Int32
	subscriptions.On("ReconcileExpired", mock.Anything).
		Run(func(mock.Arguments) {
			ticks.Add(1)
		}).Return(0, nil)

	job := NewReconcileJob(subscriptions, newJobLogger(), 20*time.Millisecond)
	job.Start()
	defer job.Stop()

	assert.Eventually(t, func() bool {
		return ticks.Load() >= 3
	}, 2*time.Second, 10*time.Millisecond)
}

func TestReconcileJobStartIsIdempotent(t *testing.T) {
	subscriptions := new(muse.MockSubscriptionUseCase)
	subscriptions.On("ReconcileExpired", mock.Anything).Return(0, nil)

	job := NewReconcileJob(subscriptions, newJobLogger(), time.Hour)
	job.Start()
	job.Start()
	job.Stop()
}

func TestReconcileJobStopWaitsForInFlightTick(t *testing.T) {
	subscriptions := new(muse.MockSubscriptionUseCase)
	started := make(chan struct{})
	release := make(chan struct{})
	var finished atomic.Bool

	subscriptions.On("ReconcileExpired", mock.Anything).
		Run(func(mock.Arguments) {
			close(started)
			<-release
			finished.Store(true)
		}).Return(0, nil).Once()
	subscriptions.On("ReconcileExpired", mock.Anything).Return(0, nil).Maybe()

	job := NewReconcileJob(subscriptions, newJobLogger(), time.Hour)
	job.Start()

	<-started
	go func() {
		time.Sleep(50 * time.Millisecond)
		close(release)
	}()
	job.Stop()

	assert.True(t, finished.Load(), "Stop must wait for the in-flight tick")
}

func TestReconcileJobStopTwiceIsSafe(t *testing.T) {
	subscriptions := new(muse.MockSubscriptionUseCase)
	subscriptions.On("ReconcileExpired", mock.Anything).Return(0, nil)

	job := NewReconcileJob(subscriptions, newJobLogger(), time.Hour)
	job.Start()
	job.Stop()
	job.Stop()
}

func TestReconcileJobSurvivesTickErrors(t *testing.T) {
	subscriptions := new(muse.MockSubscriptionUseCase)
	var ticks atomic.Int32
	subscriptions.On("ReconcileExpired", mock.Anything).
		Run(func(mock.Arguments) {
			ticks.Add(1)
		}).Return(0, errors.New("db down"))

	job := NewReconcileJob(subscriptions, newJobLogger(), 20*time.Millisecond)
	job.Start()
	defer job.Stop()

	// Failing ticks keep the loop alive
	assert.Eventually(t, func() bool {
		return ticks.Load() >= 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestReconcileJobStopWithoutStart(t *testing.T) {
	job := NewReconcileJob(new(muse.MockSubscriptionUseCase), newJobLogger(), time.Hour)
	// Stop on a never-started job must not block or panic
	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop on a never-started job blocked")
	}
}

func TestReconcileJobContextCancelledDuringTick(t *testing.T) {
	subscriptions := new(muse.MockSubscriptionUseCase)
	subscriptions.On("ReconcileExpired", mock.Anything).
		Return(0, context.Canceled).Maybe()

	job := NewReconcileJob(subscriptions, newJobLogger(), 10*time.Millisecond)
	job.Start()
	time.Sleep(30 * time.Millisecond)
	job.Stop()
}
