package subscription

import (
	"context"

	"github.com/Vergil4828/KinoService/internal/domain/entity"
	errs "github.com/Vergil4828/KinoService/internal/domain/error"
)

// ReconcileExpired demotes every user whose paid subscription has passed its
// end date to the free plan, in one transaction for the whole batch. A write
// conflict discards the tick; the next scheduled tick retries naturally, and a
// second run right after a successful one matches nothing because demoted
// users carry a nil end date.
func (s *Service) ReconcileExpired(ctx context.Context) (int, error) {
	now := s.timeProvider.Now()
	demoted := 0
	var demotedIDs []uint64

	err := s.runner.Execute(ctx, "subscription.reconcile", func(txCtx context.Context) error {
		uow := s.runner.UnitOfWork()
		users := uow.GetUserRepository(txCtx)
		plans := uow.GetPlanRepository(txCtx)
		histories := uow.GetSubscriptionHistoryRepository(txCtx)

		expired, err := users.FindWithExpiredSubscriptions(txCtx, now)
		if err != nil {
			return err
		}
		if len(expired) == 0 {
			return nil
		}

		basicPlan, err := plans.GetFreePlan(txCtx)
		if err != nil {
			// Missing free plan is a configuration error: abort this tick,
			// the process keeps running.
			return err
		}

		for _, user := range expired {
			sub := user.CurrentSubscription
			if sub != nil && sub.PlanID != nil {
				closedAt := now
				history := &entity.SubscriptionHistory{
					UserID:    user.ID,
					PlanID:    *sub.PlanID,
					StartDate: sub.StartDate,
					EndDate:   &closedAt,
					IsActive:  false,
					AutoRenew: sub.AutoRenew,
					CreatedAt: now,
				}
				if err := histories.Create(txCtx, history); err != nil {
					return err
				}
			}

			basic := entity.NewPlanSubscription(basicPlan, now)
			if err := users.UpdateCurrentSubscription(txCtx, user.ID, basic); err != nil {
				return err
			}
			demoted++
			demotedIDs = append(demotedIDs, user.ID)
		}
		return nil
	})
	if err != nil {
		if errs.IsTransient(err) {
			s.logger.Warn("Reconciliation tick aborted on write conflict, will retry next tick", map[string]any{
				"error": err.Error(),
			})
		} else {
			s.logger.Error("Reconciliation tick failed", map[string]any{
				"error": err.Error(),
			})
		}
		return 0, err
	}

	for _, id := range demotedIDs {
		s.invalidateSnapshots(ctx, id)
	}
	if demoted > 0 {
		s.logger.Info("Expired subscriptions demoted to free plan", map[string]any{
			"count": demoted,
		})
	}
	return demoted, nil
}
