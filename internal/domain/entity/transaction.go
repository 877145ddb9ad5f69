package entity

import (
	"time"

	errs "github.com/Vergil4828/KinoService/internal/domain/error"
)

// TransactionType identifies the financial operation a ledger entry records
type TransactionType string

const (
	// TypeDeposit credits the wallet from an external payment method
	TypeDeposit TransactionType = "deposit"
	// TypeWithdrawal debits the wallet back to the user
	TypeWithdrawal TransactionType = "withdrawal"
	// TypeSubscription debits the wallet to pay for a subscription plan
	TypeSubscription TransactionType = "subscription"
)

// TransactionStatus is the lifecycle state of a ledger entry
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// DefaultCurrency is used when no currency is configured
const DefaultCurrency = "RUB"

// IsValidTransactionType reports whether t is one of the known ledger entry types
func IsValidTransactionType(t TransactionType) bool {
	switch t {
	case TypeDeposit, TypeWithdrawal, TypeSubscription:
		return true
	}
	return false
}

// Transaction is an append-only financial ledger entry. Positive amounts are
// credits, negative amounts are debits. Immutable once inserted.
type Transaction struct {
	ID            uint64
	Reference     string // external-facing unique reference
	UserID        uint64
	AmountInCents int64 // signed; never zero
	Type          TransactionType
	Status        TransactionStatus
	Currency      string
	Description   string
	PaymentMethod string
	Metadata      map[string]string
	CreatedAt     time.Time
}

// NewTransaction creates a validated ledger entry. A zero amount is rejected:
// it records no financial event and would only pollute the ledger.
func NewTransaction(
	reference string,
	userID uint64,
	amountInCents int64,
	txType TransactionType,
	now time.Time,
) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if amountInCents == 0 {
		return nil, errs.ErrZeroAmount
	}
	if !IsValidTransactionType(txType) {
		return nil, errs.ErrInvalidRequest
	}

	return &Transaction{
		Reference:     reference,
		UserID:        userID,
		AmountInCents: amountInCents,
		Type:          txType,
		Status:        StatusPending,
		Currency:      DefaultCurrency,
		Metadata:      map[string]string{},
		CreatedAt:     now,
	}, nil
}

// Amount returns the signed amount as a decimal string
func (t *Transaction) Amount() string {
	return FormatCents(t.AmountInCents)
}

// IsCredit reports whether the entry increases the wallet balance
func (t *Transaction) IsCredit() bool {
	return t.AmountInCents > 0
}

// Complete marks the entry as completed
func (t *Transaction) Complete() {
	t.Status = StatusCompleted
}
