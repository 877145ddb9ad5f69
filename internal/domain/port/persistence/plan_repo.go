package persistence

import (
	"context"

	"github.com/Vergil4828/KinoService/internal/domain/entity"
)

// PlanRepository defines persistence operations on the subscription plan catalog
type PlanRepository interface {
	// GetByID retrieves a plan by ID
	//
	// Possible errors:
	// - ErrPlanNotFound: if no plan with the given ID exists
	GetByID(ctx context.Context, id uint64) (*entity.SubscriptionPlan, error)

	// GetFreePlan retrieves the price-zero plan
	//
	// Possible errors:
	// - ErrNoBasicPlan: if no free plan exists (configuration error)
	GetFreePlan(ctx context.Context) (*entity.SubscriptionPlan, error)

	// List returns all plans ordered by price ascending
	List(ctx context.Context) ([]*entity.SubscriptionPlan, error)

	// Count returns the number of plans in the catalog
	Count(ctx context.Context) (int64, error)

	// Create persists a new plan
	//
	// Possible errors:
	// - ErrDuplicatePlan: if a plan with the same name exists
	Create(ctx context.Context, plan *entity.SubscriptionPlan) error

	// Delete removes a plan by ID
	//
	// Possible errors:
	// - ErrPlanNotFound: if no plan with the given ID exists
	Delete(ctx context.Context, id uint64) error
}
