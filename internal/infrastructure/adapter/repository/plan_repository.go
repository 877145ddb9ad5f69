package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Vergil4828/KinoService/internal/domain/entity"
	errs "github.com/Vergil4828/KinoService/internal/domain/error"
	coreport "github.com/Vergil4828/KinoService/internal/domain/port/core"
	"github.com/Vergil4828/KinoService/internal/infrastructure/adapter/model"
)

// PlanRepository implements persistence.PlanRepository using GORM
type PlanRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPlanRepository creates a new PlanRepository instance
func NewPlanRepository(db *gorm.DB, logger coreport.Logger) *PlanRepository {
	return &PlanRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *PlanRepository) modelToEntity(planModel *model.SubscriptionPlan) (*entity.SubscriptionPlan, error) {
	var features []string
	if planModel.Features != "" {
		if err := json.Unmarshal([]byte(planModel.Features), &features); err != nil {
			return nil, fmt.Errorf("%w: malformed plan features: %s", errs.ErrInternalServer, err.Error())
		}
	}

	return &entity.SubscriptionPlan{
		ID:                planModel.ID,
		Name:              planModel.Name,
		PriceInCents:      planModel.PriceInCents,
		RenewalPeriodDays: planModel.RenewalPeriodDays,
		Features:          features,
		CreatedAt:         planModel.CreatedAt,
		UpdatedAt:         planModel.UpdatedAt,
	}, nil
}

func (r *PlanRepository) entityToModel(plan *entity.SubscriptionPlan) (*model.SubscriptionPlan, error) {
	features := "[]"
	if len(plan.Features) > 0 {
		encoded, err := json.Marshal(plan.Features)
		if err != nil {
			return nil, fmt.Errorf("%w: encoding plan features: %s", errs.ErrInternalServer, err.Error())
		}
		features = string(encoded)
	}

	return &model.SubscriptionPlan{
		ID:                plan.ID,
		Name:              plan.Name,
		PriceInCents:      plan.PriceInCents,
		RenewalPeriodDays: plan.RenewalPeriod(),
		Features:          features,
		CreatedAt:         plan.CreatedAt,
		UpdatedAt:         plan.UpdatedAt,
	}, nil
}

func (r *PlanRepository) handleDatabaseError(operation string, err error, planID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrPlanNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"plan_id": planID,
		"error":   err.Error(),
	})

	switch {
	case r.errorClassifier.IsDuplicateKeyError(err):
		return errs.ErrDuplicatePlan
	case r.errorClassifier.IsConflictError(err):
		return fmt.Errorf("%w: %s", errs.ErrTransientConflict, err.Error())
	case r.errorClassifier.IsConnectionError(err):
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	default:
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
}

// GetByID retrieves a plan by ID
func (r *PlanRepository) GetByID(ctx context.Context, id uint64) (*entity.SubscriptionPlan, error) {
	var planModel model.SubscriptionPlan
	result := r.db.WithContext(ctx).First(&planModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting plan", result.Error, id)
	}
	return r.modelToEntity(&planModel)
}

// GetFreePlan returns the zero-price catalog entry, ErrNoBasicPlan when absent
func (r *PlanRepository) GetFreePlan(ctx context.Context) (*entity.SubscriptionPlan, error) {
	var planModel model.SubscriptionPlan
	result := r.db.WithContext(ctx).
		Where("price_in_cents = ?", 0).
		Order("id ASC").
		First(&planModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNoBasicPlan
		}
		return nil, r.handleDatabaseError("getting free plan", result.Error, 0)
	}
	return r.modelToEntity(&planModel)
}

// List retrieves all plans ordered by price ascending
func (r *PlanRepository) List(ctx context.Context) ([]*entity.SubscriptionPlan, error) {
	var planModels []model.SubscriptionPlan
	result := r.db.WithContext(ctx).Order("price_in_cents ASC, id ASC").Find(&planModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing plans", result.Error, 0)
	}

	plans := make([]*entity.SubscriptionPlan, 0, len(planModels))
	for i := range planModels {
		plan, err := r.modelToEntity(&planModels[i])
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

// Count returns the number of catalog entries
func (r *PlanRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.SubscriptionPlan{}).Count(&count)
	if result.Error != nil {
		return 0, r.handleDatabaseError("counting plans", result.Error, 0)
	}
	return count, nil
}

// Create persists a new plan and backfills the generated ID
func (r *PlanRepository) Create(ctx context.Context, plan *entity.SubscriptionPlan) error {
	planModel, err := r.entityToModel(plan)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Create(planModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating plan", result.Error, plan.ID)
	}

	plan.ID = planModel.ID
	r.logger.Info("Plan created", map[string]any{
		"plan_id": plan.ID,
		"name":    plan.Name,
		"price":   plan.Price(),
	})
	return nil
}

// Delete removes a plan by ID
func (r *PlanRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.SubscriptionPlan{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting plan", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrPlanNotFound
	}
	return nil
}
