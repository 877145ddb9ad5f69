// Package plan implements the subscription plan catalog: listing, admin
// create/delete with free-plan protection, and the bootstrap seed step.
package plan

import (
	"context"

	"github.com/Vergil4828/KinoService/internal/domain/entity"
	errs "github.com/Vergil4828/KinoService/internal/domain/error"
	coreport "github.com/Vergil4828/KinoService/internal/domain/port/core"
	"github.com/Vergil4828/KinoService/internal/domain/port/usecase"
	"github.com/Vergil4828/KinoService/internal/domain/usecase/txrunner"
)

// seedPlan mirrors the catalog the original deployment ships with
type seedPlan struct {
	name         string
	priceInCents int64
	renewalDays  int
	features     []string
}

// defaultSeedPlans is the bootstrap catalog; exactly one entry is free
var defaultSeedPlans = []seedPlan{
	{
		name:         "Базовый",
		priceInCents: 0,
		renewalDays:  30,
		features:     []string{"Full HD качество", "1 устройство", "С рекламой"},
	},
	{
		name:         "Популярный",
		priceInCents: 89900,
		renewalDays:  30,
		features:     []string{"4K Ultra HD + HDR", "До 5 устройств", "Без рекламы", "Оффлайн просмотр"},
	},
	{
		name:         "Премиум+",
		priceInCents: 119900,
		renewalDays:  30,
		features:     []string{"4K Ultra HD + HDR + Dolby Vision", "До 7 устройств", "Без рекламы + ранний доступ", "Оффлайн-просмотр + эксклюзивы"},
	},
}

// Service implements usecase.PlanUseCase
type Service struct {
	runner *txrunner.Runner
	logger coreport.Logger
}

// NewService creates the plan catalog service
func NewService(runner *txrunner.Runner, logger coreport.Logger) *Service {
	return &Service{runner: runner, logger: logger}
}

// List returns all plans ordered by price ascending
func (s *Service) List(ctx context.Context) ([]*entity.SubscriptionPlan, error) {
	plans := s.runner.UnitOfWork().GetPlanRepository(ctx)
	return plans.List(ctx)
}

// GetByID returns a single plan
func (s *Service) GetByID(ctx context.Context, id uint64) (*entity.SubscriptionPlan, error) {
	if id == 0 {
		return nil, errs.ErrInvalidPlanID
	}
	plans := s.runner.UnitOfWork().GetPlanRepository(ctx)
	return plans.GetByID(ctx, id)
}

// Create adds a plan to the catalog
func (s *Service) Create(ctx context.Context, req usecase.CreatePlanRequest) (*entity.SubscriptionPlan, error) {
	priceInCents, err := entity.ParseAmount(req.Price)
	if err != nil {
		return nil, err
	}
	newPlan, err := entity.NewSubscriptionPlan(req.Name, priceInCents, req.RenewalPeriodDays, req.Features)
	if err != nil {
		return nil, err
	}

	err = s.runner.Execute(ctx, "plan.create", func(txCtx context.Context) error {
		return s.runner.UnitOfWork().GetPlanRepository(txCtx).Create(txCtx, newPlan)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Subscription plan created", map[string]any{
		"plan_id": newPlan.ID,
		"name":    newPlan.Name,
		"price":   newPlan.Price(),
	})
	return newPlan, nil
}

// Delete removes a plan. It refuses to delete a free plan (the demotion target
// must always exist) and any plan currently assigned to a user.
func (s *Service) Delete(ctx context.Context, id uint64) error {
	if id == 0 {
		return errs.ErrInvalidPlanID
	}

	return s.runner.Execute(ctx, "plan.delete", func(txCtx context.Context) error {
		uow := s.runner.UnitOfWork()
		plans := uow.GetPlanRepository(txCtx)
		users := uow.GetUserRepository(txCtx)

		plan, err := plans.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if plan.IsFree() {
			return errs.ErrFreePlanProtected
		}

		inUse, err := users.CountByCurrentPlan(txCtx, id)
		if err != nil {
			return err
		}
		if inUse > 0 {
			return errs.ErrPlanInUse
		}

		return plans.Delete(txCtx, id)
	})
}

// SeedDefaultPlans inserts the seed catalog in one transaction when the plans
// collection is empty. Guarantees a free plan exists before the purchase and
// reconciliation paths run.
func (s *Service) SeedDefaultPlans(ctx context.Context) error {
	return s.runner.Execute(ctx, "plan.seed", func(txCtx context.Context) error {
		plans := s.runner.UnitOfWork().GetPlanRepository(txCtx)

		count, err := plans.Count(txCtx)
		if err != nil {
			return err
		}
		if count > 0 {
			s.logger.Debug("Subscription plans already seeded", map[string]any{
				"count": count,
			})
			return nil
		}

		for _, seed := range defaultSeedPlans {
			p, err := entity.NewSubscriptionPlan(seed.name, seed.priceInCents, seed.renewalDays, seed.features)
			if err != nil {
				return err
			}
			if err := plans.Create(txCtx, p); err != nil {
				return err
			}
		}

		s.logger.Info("Seeded default subscription plans", map[string]any{
			"count": len(defaultSeedPlans),
		})
		return nil
	})
}
