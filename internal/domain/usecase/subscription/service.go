// Package subscription implements the subscription lifecycle: plan purchase,
// the period history log, admin overrides, and expiry reconciliation.
package subscription

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Vergil4828/KinoService/internal/domain/entity"
	errs "github.com/Vergil4828/KinoService/internal/domain/error"
	coreport "github.com/Vergil4828/KinoService/internal/domain/port/core"
	"github.com/Vergil4828/KinoService/internal/domain/port/usecase"
	"github.com/Vergil4828/KinoService/internal/domain/usecase/txrunner"
)

// errPaymentRequired aborts the purchase transaction when the balance is short.
// It never leaves the package: Purchase converts it into the structured
// payment-required result, because insufficient funds is a negotiated outcome,
// not an error.
var errPaymentRequired = fmt.Errorf("payment required")

// Service implements usecase.SubscriptionUseCase
type Service struct {
	runner       *txrunner.Runner
	cache        coreport.Cache
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates the subscription service
func NewService(
	runner *txrunner.Runner,
	cache coreport.Cache,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		runner:       runner,
		cache:        cache,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Purchase runs the purchase state machine. User and plan are loaded fresh
// inside the transaction; caller-supplied snapshots are never trusted for
// balance or price. The caller sees either full success, the structured
// payment-required outcome, or a full no-op with an error.
func (s *Service) Purchase(ctx context.Context, userID, planID uint64) (*usecase.PurchaseResult, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if planID == 0 {
		return nil, errs.ErrInvalidPlanID
	}

	var result *usecase.PurchaseResult

	err := s.runner.ExecuteWithRetry(ctx, "subscription.purchase", func(txCtx context.Context) error {
		uow := s.runner.UnitOfWork()
		users := uow.GetUserRepository(txCtx)
		plans := uow.GetPlanRepository(txCtx)
		transactions := uow.GetTransactionRepository(txCtx)
		histories := uow.GetSubscriptionHistoryRepository(txCtx)

		user, err := users.GetByIDForUpdate(txCtx, userID)
		if err != nil {
			return err
		}
		plan, err := plans.GetByID(txCtx, planID)
		if err != nil {
			return err
		}

		now := s.timeProvider.Now()

		if plan.IsFree() {
			// The free tier is not a financial event: no ledger entry, no
			// history row, just the snapshot swap.
			sub := entity.NewPlanSubscription(plan, now)
			if err := users.UpdateCurrentSubscription(txCtx, userID, sub); err != nil {
				return err
			}
			result = &usecase.PurchaseResult{
				Success:           true,
				PaymentRequired:   false,
				NewBalance:        user.GetBalance(),
				NewBalanceInCents: user.Balance(),
				Subscription:      sub,
				Transaction:       nil,
			}
			return nil
		}

		if !user.CanDebit(plan.PriceInCents) {
			result = &usecase.PurchaseResult{
				Success:           false,
				PaymentRequired:   true,
				RequiredAmount:    entity.FormatCents(user.ShortfallFor(plan.PriceInCents)),
				NewBalance:        user.GetBalance(),
				NewBalanceInCents: user.Balance(),
			}
			return errPaymentRequired
		}

		txn, err := entity.NewTransaction(uuid.NewString(), userID, -plan.PriceInCents, entity.TypeSubscription, now)
		if err != nil {
			return err
		}
		txn.Description = fmt.Sprintf("Subscription payment for plan %s", plan.Name)
		txn.PaymentMethod = "balance"
		txn.Metadata["planId"] = fmt.Sprintf("%d", plan.ID)
		txn.Metadata["planName"] = plan.Name
		txn.Complete()

		if err := transactions.Create(txCtx, txn); err != nil {
			return err
		}

		newBalance, err := users.AdjustBalance(txCtx, userID, -plan.PriceInCents)
		if err != nil {
			return err
		}

		sub := entity.NewPlanSubscription(plan, now)
		history := &entity.SubscriptionHistory{
			UserID:    userID,
			PlanID:    plan.ID,
			StartDate: now,
			EndDate:   sub.EndDate,
			IsActive:  true,
			AutoRenew: true,
			AdminNote: "Purchased via wallet balance",
			CreatedAt: now,
		}
		if err := histories.Create(txCtx, history); err != nil {
			return err
		}

		if err := users.UpdateCurrentSubscription(txCtx, userID, sub); err != nil {
			return err
		}

		result = &usecase.PurchaseResult{
			Success:           true,
			PaymentRequired:   false,
			NewBalance:        entity.FormatCents(newBalance),
			NewBalanceInCents: newBalance,
			Subscription:      sub,
			Transaction:       txn,
		}
		return nil
	})

	if err != nil {
		if err == errPaymentRequired {
			s.logger.Info("Purchase requires additional funds", map[string]any{
				"user_id":         userID,
				"plan_id":         planID,
				"required_amount": result.RequiredAmount,
			})
			return result, nil
		}
		return nil, err
	}

	s.invalidateSnapshots(ctx, userID)
	s.logger.Info("Subscription purchased", map[string]any{
		"user_id":     userID,
		"plan_id":     planID,
		"new_balance": result.NewBalance,
		"free_plan":   result.Transaction == nil,
	})
	return result, nil
}

// History returns the user's subscription period log, newest first
func (s *Service) History(ctx context.Context, userID uint64) ([]*entity.SubscriptionHistory, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	histories := s.runner.UnitOfWork().GetSubscriptionHistoryRepository(ctx)
	return histories.ListByUser(ctx, userID)
}

// ApplyAdminOverride applies a tagged update command to a user's current
// subscription and logs the change as admin-driven. Unset fields keep their
// previous values; illegal partial states are unrepresentable by construction.
func (s *Service) ApplyAdminOverride(ctx context.Context, userID uint64, cmd usecase.SubscriptionUpdateCommand) (*entity.CurrentSubscription, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	var updated *entity.CurrentSubscription

	err := s.runner.ExecuteWithRetry(ctx, "subscription.admin_override", func(txCtx context.Context) error {
		uow := s.runner.UnitOfWork()
		users := uow.GetUserRepository(txCtx)
		plans := uow.GetPlanRepository(txCtx)
		histories := uow.GetSubscriptionHistoryRepository(txCtx)

		user, err := users.GetByIDForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		now := s.timeProvider.Now()
		sub := user.CurrentSubscription
		if sub == nil {
			sub = &entity.CurrentSubscription{StartDate: now, IsActive: true}
		} else {
			copied := *sub
			sub = &copied
		}

		if cmd.PlanID != nil {
			// The plan must exist at assignment time.
			plan, err := plans.GetByID(txCtx, *cmd.PlanID)
			if err != nil {
				return err
			}
			planID := plan.ID
			sub.PlanID = &planID
		}
		if cmd.StartDate != nil {
			sub.StartDate = *cmd.StartDate
		}
		if cmd.ClearEndDate {
			sub.EndDate = nil
		} else if cmd.EndDate != nil {
			end := *cmd.EndDate
			sub.EndDate = &end
		}
		if cmd.IsActive != nil {
			sub.IsActive = *cmd.IsActive
		}
		if cmd.AutoRenew != nil {
			sub.AutoRenew = *cmd.AutoRenew
		}

		if sub.PlanID != nil {
			history := &entity.SubscriptionHistory{
				UserID:         userID,
				PlanID:         *sub.PlanID,
				StartDate:      sub.StartDate,
				EndDate:        sub.EndDate,
				IsActive:       sub.IsActive,
				AutoRenew:      sub.AutoRenew,
				ChangedByAdmin: true,
				AdminNote:      cmd.AdminNote,
				CreatedAt:      now,
			}
			if err := histories.Create(txCtx, history); err != nil {
				return err
			}
		}

		if err := users.UpdateCurrentSubscription(txCtx, userID, sub); err != nil {
			return err
		}
		updated = sub
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateSnapshots(ctx, userID)
	return updated, nil
}

// invalidateSnapshots emits the post-commit cache invalidation signal, best-effort
func (s *Service) invalidateSnapshots(ctx context.Context, userID uint64) {
	keys := []string{
		fmt.Sprintf("wallet_data:%d", userID),
		fmt.Sprintf("user_data:%d", userID),
	}
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		s.logger.Warn("Cache invalidation failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}
