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

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *TransactionRepository) modelToEntity(txModel *model.Transaction) (*entity.Transaction, error) {
	metadata := map[string]string{}
	if txModel.Metadata != "" {
		if err := json.Unmarshal([]byte(txModel.Metadata), &metadata); err != nil {
			return nil, fmt.Errorf("%w: malformed transaction metadata: %s", errs.ErrInternalServer, err.Error())
		}
	}

	return &entity.Transaction{
		ID:            txModel.ID,
		Reference:     txModel.Reference,
		UserID:        txModel.UserID,
		AmountInCents: txModel.AmountInCents,
		Type:          entity.TransactionType(txModel.Type),
		Status:        entity.TransactionStatus(txModel.Status),
		Currency:      txModel.Currency,
		Description:   txModel.Description,
		PaymentMethod: txModel.PaymentMethod,
		Metadata:      metadata,
		CreatedAt:     txModel.CreatedAt,
	}, nil
}

func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) (*model.Transaction, error) {
	metadata := "{}"
	if len(transaction.Metadata) > 0 {
		encoded, err := json.Marshal(transaction.Metadata)
		if err != nil {
			return nil, fmt.Errorf("%w: encoding transaction metadata: %s", errs.ErrInternalServer, err.Error())
		}
		metadata = string(encoded)
	}

	return &model.Transaction{
		ID:            transaction.ID,
		Reference:     transaction.Reference,
		UserID:        transaction.UserID,
		AmountInCents: transaction.AmountInCents,
		Type:          string(transaction.Type),
		Status:        string(transaction.Status),
		Currency:      transaction.Currency,
		Description:   transaction.Description,
		PaymentMethod: transaction.PaymentMethod,
		Metadata:      metadata,
		CreatedAt:     transaction.CreatedAt,
	}, nil
}

func (r *TransactionRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrTransactionNotFound
	}

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

// Create saves a new ledger entry and backfills the generated ID
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	txModel, err := r.entityToModel(transaction)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Create(txModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating transaction", result.Error)
	}

	transaction.ID = txModel.ID
	r.logger.Debug("Transaction recorded", map[string]any{
		"transaction_id": transaction.ID,
		"reference":      transaction.Reference,
		"user_id":        transaction.UserID,
		"type":           string(transaction.Type),
		"amount":         transaction.Amount(),
	})
	return nil
}

// GetByReference retrieves a ledger entry by its external reference
func (r *TransactionRepository) GetByReference(ctx context.Context, reference string) (*entity.Transaction, error) {
	var txModel model.Transaction
	result := r.db.WithContext(ctx).Where("reference = ?", reference).First(&txModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting transaction", result.Error)
	}
	return r.modelToEntity(&txModel)
}

// ListRecentByUser returns the newest ledger entries for a user, up to limit
func (r *TransactionRepository) ListRecentByUser(ctx context.Context, userID uint64, limit int) ([]*entity.Transaction, error) {
	var txModels []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&txModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing transactions", result.Error)
	}

	transactions := make([]*entity.Transaction, 0, len(txModels))
	for i := range txModels {
		transaction, err := r.modelToEntity(&txModels[i])
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}
