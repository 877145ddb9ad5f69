// Package wallet implements the wallet ledger operations: deposits and
// withdrawals that mutate the balance and append a transaction record inside
// one database transaction.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Vergil4828/KinoService/internal/domain/entity"
	errs "github.com/Vergil4828/KinoService/internal/domain/error"
	coreport "github.com/Vergil4828/KinoService/internal/domain/port/core"
	"github.com/Vergil4828/KinoService/internal/domain/port/usecase"
	"github.com/Vergil4828/KinoService/internal/domain/usecase/txrunner"
)

// Policy holds the wallet business configuration
type Policy struct {
	MinDepositInCents int64
	HistoryLimit      int
	SnapshotTTL       time.Duration
}

// DefaultPolicy returns the default wallet policy: 10.00 minimum deposit,
// 50 ledger entries per wallet view, one hour snapshot TTL.
func DefaultPolicy() Policy {
	return Policy{
		MinDepositInCents: 1000,
		HistoryLimit:      50,
		SnapshotTTL:       time.Hour,
	}
}

// Service implements usecase.WalletUseCase
type Service struct {
	runner       *txrunner.Runner
	cache        coreport.Cache
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	validator    *AmountValidator
	policy       Policy
}

// NewService creates the wallet service
func NewService(
	runner *txrunner.Runner,
	cache coreport.Cache,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	policy Policy,
) *Service {
	if policy.HistoryLimit <= 0 {
		policy.HistoryLimit = DefaultPolicy().HistoryLimit
	}
	if policy.SnapshotTTL <= 0 {
		policy.SnapshotTTL = DefaultPolicy().SnapshotTTL
	}
	return &Service{
		runner:       runner,
		cache:        cache,
		timeProvider: timeProvider,
		logger:       logger,
		validator:    NewAmountValidator(policy.MinDepositInCents),
		policy:       policy,
	}
}

// walletSnapshotKey is the cache key for a user's wallet view
func walletSnapshotKey(userID uint64) string {
	return fmt.Sprintf("wallet_data:%d", userID)
}

// userSnapshotKey is the cache key for a user's profile snapshot, owned by the
// auth layer but invalidated here because wallet writes change it
func userSnapshotKey(userID uint64) string {
	return fmt.Sprintf("user_data:%d", userID)
}

// Deposit credits the wallet. Inside one transaction it appends a completed
// deposit ledger entry and increments the balance with a single conditional
// update. Transient conflicts are retried automatically; the caller only sees
// the final outcome.
func (s *Service) Deposit(ctx context.Context, userID uint64, amount, paymentMethod string) (*usecase.WalletOperationResult, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	cents, err := s.validator.ValidateDeposit(amount)
	if err != nil {
		return nil, err
	}
	if paymentMethod == "" {
		paymentMethod = "manual"
	}

	result, err := s.applyLedgerOperation(ctx, "wallet.deposit", userID, cents, entity.TypeDeposit,
		fmt.Sprintf("Deposit of %s %s", entity.FormatCents(cents), entity.DefaultCurrency), paymentMethod)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Wallet deposit completed", map[string]any{
		"user_id":     userID,
		"amount":      amount,
		"new_balance": result.NewBalance,
	})
	return result, nil
}

// Withdraw debits the wallet. The balance check happens inside the transaction
// via the conditional update, so a stale in-memory balance can never drive the
// wallet negative. Insufficient funds abort without writing anything.
func (s *Service) Withdraw(ctx context.Context, userID uint64, amount, description string) (*usecase.WalletOperationResult, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	cents, err := s.validator.ValidateWithdrawal(amount)
	if err != nil {
		return nil, err
	}
	if description == "" {
		description = fmt.Sprintf("Withdrawal of %s %s", entity.FormatCents(cents), entity.DefaultCurrency)
	}

	result, err := s.applyLedgerOperation(ctx, "wallet.withdraw", userID, -cents, entity.TypeWithdrawal, description, "")
	if err != nil {
		return nil, err
	}

	s.logger.Info("Wallet withdrawal completed", map[string]any{
		"user_id":     userID,
		"amount":      amount,
		"new_balance": result.NewBalance,
	})
	return result, nil
}

// applyLedgerOperation runs the shared deposit/withdraw transaction body:
// insert the ledger entry, then adjust the balance conditionally. The whole
// transaction is retried on transient conflicts, uniformly for both paths.
func (s *Service) applyLedgerOperation(
	ctx context.Context,
	operation string,
	userID uint64,
	deltaInCents int64,
	txType entity.TransactionType,
	description string,
	paymentMethod string,
) (*usecase.WalletOperationResult, error) {
	var result *usecase.WalletOperationResult

	err := s.runner.ExecuteWithRetry(ctx, operation, func(txCtx context.Context) error {
		users := s.runner.UnitOfWork().GetUserRepository(txCtx)
		transactions := s.runner.UnitOfWork().GetTransactionRepository(txCtx)

		txn, err := entity.NewTransaction(uuid.NewString(), userID, deltaInCents, txType, s.timeProvider.Now())
		if err != nil {
			return err
		}
		txn.Description = description
		txn.PaymentMethod = paymentMethod
		txn.Complete()

		if err := transactions.Create(txCtx, txn); err != nil {
			return err
		}

		newBalance, err := users.AdjustBalance(txCtx, userID, deltaInCents)
		if err != nil {
			if errors.Is(err, errs.ErrInsufficientFunds) {
				current := ""
				if user, getErr := users.GetByID(txCtx, userID); getErr == nil {
					current = user.GetBalance()
				}
				return errs.NewInsufficientFundsError(userID, entity.FormatCents(-deltaInCents), current)
			}
			return err
		}

		result = &usecase.WalletOperationResult{
			NewBalance:        entity.FormatCents(newBalance),
			NewBalanceInCents: newBalance,
			Transaction:       txn,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateSnapshots(ctx, userID)
	return result, nil
}

// GetWallet serves the wallet view, cache-first. Cache failures degrade to the
// database read; they are logged, never surfaced.
func (s *Service) GetWallet(ctx context.Context, userID uint64) (*usecase.WalletView, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	key := walletSnapshotKey(userID)
	var cached usecase.WalletView
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.logger.Warn("Wallet snapshot read failed, falling back to database", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	} else if found {
		return &cached, nil
	}

	users := s.runner.UnitOfWork().GetUserRepository(ctx)
	transactions := s.runner.UnitOfWork().GetTransactionRepository(ctx)

	user, err := users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	recent, err := transactions.ListRecentByUser(ctx, userID, s.policy.HistoryLimit)
	if err != nil {
		return nil, err
	}

	view := &usecase.WalletView{
		Balance:        user.GetBalance(),
		BalanceInCents: user.Balance(),
		Transactions:   recent,
	}

	if err := s.cache.Set(ctx, key, view, s.policy.SnapshotTTL); err != nil {
		s.logger.Warn("Wallet snapshot write failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
	return view, nil
}

// GetTransaction looks up one ledger entry by its external reference. Entries
// belonging to another user read as not found so references cannot be probed
// across wallets.
func (s *Service) GetTransaction(ctx context.Context, userID uint64, reference string) (*entity.Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if reference == "" {
		return nil, errs.ErrInvalidRequest
	}

	transactions := s.runner.UnitOfWork().GetTransactionRepository(ctx)
	txn, err := transactions.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if txn.UserID != userID {
		return nil, errs.ErrTransactionNotFound
	}
	return txn, nil
}

// invalidateSnapshots emits the post-commit cache invalidation signal.
// Best-effort: the transaction is already committed, a cache failure must not
// undo it.
func (s *Service) invalidateSnapshots(ctx context.Context, userID uint64) {
	if err := s.cache.Invalidate(ctx, walletSnapshotKey(userID), userSnapshotKey(userID)); err != nil {
		s.logger.Warn("Cache invalidation failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}
