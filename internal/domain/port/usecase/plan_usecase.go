package usecase

import (
	"context"

	"github.com/Vergil4828/KinoService/internal/domain/entity"
)

// CreatePlanRequest carries the fields for a new catalog entry. Price is a
// decimal string, validated and converted at the usecase boundary.
type CreatePlanRequest struct {
	Name              string
	Price             string
	RenewalPeriodDays int
	Features          []string
}

// PlanUseCase exposes the subscription plan catalog
type PlanUseCase interface {
	// List returns all plans ordered by price
	List(ctx context.Context) ([]*entity.SubscriptionPlan, error)

	// GetByID returns a single plan
	GetByID(ctx context.Context, id uint64) (*entity.SubscriptionPlan, error)

	// Create adds a plan to the catalog (admin)
	Create(ctx context.Context, req CreatePlanRequest) (*entity.SubscriptionPlan, error)

	// Delete removes a plan, refusing free plans and plans in use (admin)
	Delete(ctx context.Context, id uint64) error

	// SeedDefaultPlans inserts the seed catalog when no plans exist yet
	SeedDefaultPlans(ctx context.Context) error
}
