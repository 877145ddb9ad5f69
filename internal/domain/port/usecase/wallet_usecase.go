package usecase

import (
	"context"

	"github.com/Vergil4828/KinoService/internal/domain/entity"
)

// WalletOperationResult is returned by balance-mutating wallet operations
type WalletOperationResult struct {
	NewBalance        string
	NewBalanceInCents int64
	Transaction       *entity.Transaction
}

// WalletView is the read model served by GetWallet: the balance plus the most
// recent ledger entries
type WalletView struct {
	Balance        string
	BalanceInCents int64
	Transactions   []*entity.Transaction
}

// WalletUseCase exposes the wallet ledger operations
type WalletUseCase interface {
	// Deposit credits the wallet from an external payment method
	Deposit(ctx context.Context, userID uint64, amount, paymentMethod string) (*WalletOperationResult, error)

	// Withdraw debits the wallet back to the user
	Withdraw(ctx context.Context, userID uint64, amount, description string) (*WalletOperationResult, error)

	// GetWallet returns the balance and recent transactions, cache-first
	GetWallet(ctx context.Context, userID uint64) (*WalletView, error)

	// GetTransaction returns one ledger entry by its external reference,
	// scoped to the owning user
	GetTransaction(ctx context.Context, userID uint64, reference string) (*entity.Transaction, error)
}
