package subscription

import (
	"context"
	"testing"
	"time"

	"github.com/Vergil4828/KinoService/internal/domain/entity"
	errs "github.com/Vergil4828/KinoService/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func expiredUser(t *testing.T, id uint64, planID uint64, end time.Time, now time.Time) *entity.User {
	t.Helper()
	user, err := entity.NewUser("user@example.com", "moviefan", "hashed", now)
	require.NoError(t, err)
	user.ID = id
	pid := planID
	user.CurrentSubscription = &entity.CurrentSubscription{
		PlanID:    &pid,
		StartDate: end.AddDate(0, 0, -30),
		EndDate:   &end,
		IsActive:  true,
		AutoRenew: true,
	}
	return user
}

func TestReconcileExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expiredAt := now.Add(-time.Hour)

	t.Run("Demotes expired users to the free plan", func(t *testing.T) {
		f := newSubscriptionFixture(ctx)
		freePlan := makeFreePlan(t)

		f.expectTransaction(ctx)
		f.uow.On("Commit", f.txCtx).Return(nil)
		f.timeProvider.On("Now").Return(now)

		expired := []*entity.User{
			expiredUser(t, 7, 2, expiredAt, now),
			expiredUser(t, 9, 3, expiredAt, now),
		}
		f.users.On("FindWithExpiredSubscriptions", f.txCtx, now).Return(expired, nil)
		f.plans.On("GetFreePlan", f.txCtx).Return(freePlan, nil)

		var closedRows []*entity.SubscriptionHistory
		f.histories.On("Create", f.txCtx, mock.AnythingOfType("*entity.SubscriptionHistory")).
			Run(func(args mock.Arguments) {
				closedRows = append(closedRows, args.Get(1).(*entity.SubscriptionHistory))
			}).Return(nil)

		var demotedSubs []*entity.CurrentSubscription
		f.users.On("UpdateCurrentSubscription", f.txCtx, mock.AnythingOfType("uint64"), mock.AnythingOfType("*entity.CurrentSubscription")).
			Run(func(args mock.Arguments) {
				demotedSubs = append(demotedSubs, args.Get(2).(*entity.CurrentSubscription))
			}).Return(nil)
		f.cache.On("Invalidate", ctx, mock.Anything, mock.Anything).Return(nil)

		demoted, err := f.service.ReconcileExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, demoted)

		// Each expired period is closed in the history log
		require.Len(t, closedRows, 2)
		assert.Equal(t, uint64(2), closedRows[0].PlanID)
		assert.False(t, closedRows[0].IsActive)
		require.NotNil(t, closedRows[0].EndDate)
		assert.Equal(t, now, *closedRows[0].EndDate)

		// Demoted snapshots are non-expiring free tier, so a second run matches nothing
		require.Len(t, demotedSubs, 2)
		for _, sub := range demotedSubs {
			require.NotNil(t, sub.PlanID)
			assert.Equal(t, freePlan.ID, *sub.PlanID)
			assert.Nil(t, sub.EndDate)
			assert.True(t, sub.IsActive)
			assert.False(t, sub.AutoRenew)
		}

		f.cache.AssertNumberOfCalls(t, "Invalidate", 2)
	})

	t.Run("No expired users is a cheap no-op", func(t *testing.T) {
		f := newSubscriptionFixture(ctx)

		f.expectTransaction(ctx)
		f.uow.On("Commit", f.txCtx).Return(nil)
		f.timeProvider.On("Now").Return(now)

		f.users.On("FindWithExpiredSubscriptions", f.txCtx, now).Return(nil, nil)

		demoted, err := f.service.ReconcileExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, demoted)

		f.plans.AssertNotCalled(t, "GetFreePlan", mock.Anything)
		f.cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing free plan aborts the tick", func(t *testing.T) {
		f := newSubscriptionFixture(ctx)

		f.expectTransaction(ctx)
		f.uow.On("Rollback", f.txCtx).Return(nil)
		f.timeProvider.On("Now").Return(now)

		f.users.On("FindWithExpiredSubscriptions", f.txCtx, now).Return([]*entity.User{
			expiredUser(t, 7, 2, expiredAt, now),
		}, nil)
		f.plans.On("GetFreePlan", f.txCtx).Return(nil, errs.ErrNoBasicPlan)

		demoted, err := f.service.ReconcileExpired(ctx)
		assert.ErrorIs(t, err, errs.ErrNoBasicPlan)
		assert.Equal(t, 0, demoted)

		f.users.AssertNotCalled(t, "UpdateCurrentSubscription", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Write conflict discards the tick without invalidating caches", func(t *testing.T) {
		f := newSubscriptionFixture(ctx)

		f.expectTransaction(ctx)
		f.uow.On("Commit", f.txCtx).Return(errs.ErrTransientConflict)
		f.uow.On("Rollback", f.txCtx).Return(nil)
		f.timeProvider.On("Now").Return(now)

		f.users.On("FindWithExpiredSubscriptions", f.txCtx, now).Return([]*entity.User{
			expiredUser(t, 7, 2, expiredAt, now),
		}, nil)
		f.plans.On("GetFreePlan", f.txCtx).Return(makeFreePlan(t), nil)
		f.histories.On("Create", f.txCtx, mock.Anything).Return(nil)
		f.users.On("UpdateCurrentSubscription", f.txCtx, uint64(7), mock.Anything).Return(nil)

		demoted, err := f.service.ReconcileExpired(ctx)
		assert.ErrorIs(t, err, errs.ErrTransientConflict)
		assert.Equal(t, 0, demoted)

		// The batch is one transaction: nothing committed, nothing invalidated
		f.cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything, mock.Anything)
	})
}
