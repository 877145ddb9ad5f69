package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Vergil4828/KinoService/internal/domain/entity"
	errs "github.com/Vergil4828/KinoService/internal/domain/error"
	coreport "github.com/Vergil4828/KinoService/internal/domain/port/core"
	"github.com/Vergil4828/KinoService/internal/infrastructure/adapter/model"
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to a domain entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	user := &entity.User{
		ID:           userModel.ID,
		Email:        userModel.Email,
		Username:     userModel.Username,
		PasswordHash: userModel.PasswordHash,
		Role:         userModel.Role,
		CreatedAt:    userModel.CreatedAt,
		UpdatedAt:    userModel.UpdatedAt,
	}
	user.SetBalance(userModel.Balance, userModel.UpdatedAt)

	if userModel.SubPlanID != nil || userModel.SubStartDate != nil {
		sub := &entity.CurrentSubscription{
			PlanID:    userModel.SubPlanID,
			EndDate:   userModel.SubEndDate,
			IsActive:  userModel.SubIsActive,
			AutoRenew: userModel.SubAutoRenew,
		}
		if userModel.SubStartDate != nil {
			sub.StartDate = *userModel.SubStartDate
		}
		user.CurrentSubscription = sub
	}
	return user
}

// entityToModel converts a domain entity to a user model
func (r *UserRepository) entityToModel(user *entity.User) *model.User {
	userModel := &model.User{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		Balance:      user.Balance(),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	if sub := user.CurrentSubscription; sub != nil {
		start := sub.StartDate
		userModel.SubPlanID = sub.PlanID
		userModel.SubStartDate = &start
		userModel.SubEndDate = sub.EndDate
		userModel.SubIsActive = sub.IsActive
		userModel.SubAutoRenew = sub.AutoRenew
	}
	return userModel
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id":   userID,
			"operation": operation,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	switch {
	case r.errorClassifier.IsDuplicateKeyError(err):
		return errs.ErrDuplicateUser
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

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}
	return r.modelToEntity(&userModel), nil
}

// GetByIDForUpdate retrieves a user and takes a FOR UPDATE row lock so
// concurrent wallet mutations for the same user serialize on it
func (r *UserRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&userModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("locking user", result.Error, id)
	}
	return r.modelToEntity(&userModel), nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by email", result.Error, 0)
	}
	return r.modelToEntity(&userModel), nil
}

// Create persists a new user and backfills the generated ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := r.entityToModel(user)

	result := r.db.WithContext(ctx).Create(userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, user.ID)
	}

	user.ID = userModel.ID
	r.logger.Info("User created", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return nil
}

// AdjustBalance applies a signed delta with one conditional update. The
// balance >= 0 guard sits in the WHERE clause, so a concurrent debit can
// never observe a stale balance and drive the wallet negative.
func (r *UserRepository) AdjustBalance(ctx context.Context, userID uint64, deltaInCents int64) (int64, error) {
	now := r.timeProvider.Now()

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND balance + ? >= 0", userID, deltaInCents).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", deltaInCents),
			"updated_at": now,
		})
	if result.Error != nil {
		return 0, r.handleDatabaseError("adjusting balance", result.Error, userID)
	}

	if result.RowsAffected == 0 {
		// Either the user is missing or the delta would overdraw the wallet.
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
			return 0, r.handleDatabaseError("checking user existence", err, userID)
		}
		if count == 0 {
			return 0, errs.ErrUserNotFound
		}
		r.logger.Warn("Balance adjustment rejected, insufficient funds", map[string]any{
			"user_id": userID,
			"delta":   entity.FormatCents(deltaInCents),
		})
		return 0, errs.ErrInsufficientFunds
	}

	var balance int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Pluck("balance", &balance).Error; err != nil {
		return 0, r.handleDatabaseError("reading balance", err, userID)
	}

	r.logger.Debug("Balance adjusted", map[string]any{
		"user_id":     userID,
		"delta":       entity.FormatCents(deltaInCents),
		"new_balance": entity.FormatCents(balance),
	})
	return balance, nil
}

// UpdateCurrentSubscription overwrites the embedded subscription snapshot wholesale
func (r *UserRepository) UpdateCurrentSubscription(ctx context.Context, userID uint64, sub *entity.CurrentSubscription) error {
	now := r.timeProvider.Now()

	updates := map[string]interface{}{
		"sub_plan_id":    nil,
		"sub_start_date": nil,
		"sub_end_date":   nil,
		"sub_is_active":  false,
		"sub_auto_renew": false,
		"updated_at":     now,
	}
	if sub != nil {
		start := sub.StartDate
		updates["sub_plan_id"] = sub.PlanID
		updates["sub_start_date"] = &start
		updates["sub_end_date"] = sub.EndDate
		updates["sub_is_active"] = sub.IsActive
		updates["sub_auto_renew"] = sub.AutoRenew
	}

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(updates)
	if result.Error != nil {
		return r.handleDatabaseError("updating current subscription", result.Error, userID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// FindWithExpiredSubscriptions returns users whose current subscription end
// date has passed and is still marked active. NULL end dates never match.
func (r *UserRepository) FindWithExpiredSubscriptions(ctx context.Context, now time.Time) ([]*entity.User, error) {
	var userModels []model.User
	result := r.db.WithContext(ctx).
		Where("sub_end_date IS NOT NULL AND sub_end_date <= ? AND sub_is_active = ?", now, true).
		Find(&userModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("finding expired subscriptions", result.Error, 0)
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, r.modelToEntity(&userModels[i]))
	}
	return users, nil
}

// CountByCurrentPlan counts users whose current subscription references the plan
func (r *UserRepository) CountByCurrentPlan(ctx context.Context, planID uint64) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("sub_plan_id = ?", planID).
		Count(&count)
	if result.Error != nil {
		return 0, r.handleDatabaseError("counting plan users", result.Error, 0)
	}
	return count, nil
}
