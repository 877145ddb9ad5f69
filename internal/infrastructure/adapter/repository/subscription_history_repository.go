package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Vergil4828/KinoService/internal/domain/entity"
	errs "github.com/Vergil4828/KinoService/internal/domain/error"
	coreport "github.com/Vergil4828/KinoService/internal/domain/port/core"
	"github.com/Vergil4828/KinoService/internal/infrastructure/adapter/model"
)

// SubscriptionHistoryRepository implements persistence.SubscriptionHistoryRepository using GORM
type SubscriptionHistoryRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewSubscriptionHistoryRepository creates a new SubscriptionHistoryRepository instance
func NewSubscriptionHistoryRepository(db *gorm.DB, logger coreport.Logger) *SubscriptionHistoryRepository {
	return &SubscriptionHistoryRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *SubscriptionHistoryRepository) modelToEntity(historyModel *model.SubscriptionHistory) *entity.SubscriptionHistory {
	return &entity.SubscriptionHistory{
		ID:             historyModel.ID,
		UserID:         historyModel.UserID,
		PlanID:         historyModel.PlanID,
		StartDate:      historyModel.StartDate,
		EndDate:        historyModel.EndDate,
		IsActive:       historyModel.IsActive,
		AutoRenew:      historyModel.AutoRenew,
		ChangedByAdmin: historyModel.ChangedByAdmin,
		AdminNote:      historyModel.AdminNote,
		CreatedAt:      historyModel.CreatedAt,
	}
}

func (r *SubscriptionHistoryRepository) handleDatabaseError(operation string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	switch {
	case r.errorClassifier.IsConflictError(err):
		return fmt.Errorf("%w: %s", errs.ErrTransientConflict, err.Error())
	case r.errorClassifier.IsConstraintError(err):
		return errs.ErrConstraintViolation
	case r.errorClassifier.IsConnectionError(err):
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	default:
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
}

// Create saves a new history row and backfills the generated ID
func (r *SubscriptionHistoryRepository) Create(ctx context.Context, history *entity.SubscriptionHistory) error {
	historyModel := &model.SubscriptionHistory{
		UserID:         history.UserID,
		PlanID:         history.PlanID,
		StartDate:      history.StartDate,
		EndDate:        history.EndDate,
		IsActive:       history.IsActive,
		AutoRenew:      history.AutoRenew,
		ChangedByAdmin: history.ChangedByAdmin,
		AdminNote:      history.AdminNote,
		CreatedAt:      history.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(historyModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating subscription history", result.Error)
	}

	history.ID = historyModel.ID
	return nil
}

// ListByUser returns a user's history rows, newest first
func (r *SubscriptionHistoryRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.SubscriptionHistory, error) {
	var historyModels []model.SubscriptionHistory
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&historyModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing subscription history", result.Error)
	}

	rows := make([]*entity.SubscriptionHistory, 0, len(historyModels))
	for i := range historyModels {
		rows = append(rows, r.modelToEntity(&historyModels[i]))
	}
	return rows, nil
}
