package dto

import (
	"time"

	"github.com/Vergil4828/KinoService/internal/domain/entity"
)

// DepositRequest represents the API request for crediting a wallet
type DepositRequest struct {
	Amount        string `json:"amount" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// WithdrawRequest represents the API request for debiting a wallet
type WithdrawRequest struct {
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description"`
}

// WalletOperationResponse represents the API response for a wallet mutation
type WalletOperationResponse struct {
	UserID      uint64           `json:"userId"`
	Balance     string           `json:"balance"`
	Transaction *TransactionView `json:"transaction"`
}

// TransactionView is the API shape of one ledger entry
type TransactionView struct {
	Reference     string            `json:"reference"`
	Amount        string            `json:"amount"`
	Type          string            `json:"type"`
	Status        string            `json:"status"`
	Currency      string            `json:"currency"`
	Description   string            `json:"description,omitempty"`
	PaymentMethod string            `json:"paymentMethod,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// WalletResponse represents the API response for the wallet read model
type WalletResponse struct {
	UserID       uint64             `json:"userId"`
	Balance      string             `json:"balance"`
	Transactions []*TransactionView `json:"transactions"`
}

// NewTransactionView maps a ledger entry to its API shape
func NewTransactionView(t *entity.Transaction) *TransactionView {
	if t == nil {
		return nil
	}
	return &TransactionView{
		Reference:     t.Reference,
		Amount:        t.Amount(),
		Type:          string(t.Type),
		Status:        string(t.Status),
		Currency:      t.Currency,
		Description:   t.Description,
		PaymentMethod: t.PaymentMethod,
		Metadata:      t.Metadata,
		CreatedAt:     t.CreatedAt,
	}
}

// NewTransactionViews maps a slice of ledger entries to their API shape
func NewTransactionViews(transactions []*entity.Transaction) []*TransactionView {
	views := make([]*TransactionView, 0, len(transactions))
	for _, t := range transactions {
		views = append(views, NewTransactionView(t))
	}
	return views
}
