package usecase

import (
	"context"
	"time"

	"github.com/Vergil4828/KinoService/internal/domain/entity"
)

// PurchaseResult is the discriminated outcome of a purchase attempt. Callers
// must branch on Success and PaymentRequired: insufficient funds is a normal
// negotiated outcome, not an error.
type PurchaseResult struct {
	Success           bool
	PaymentRequired   bool
	RequiredAmount    string
	NewBalance        string
	NewBalanceInCents int64
	Subscription      *entity.CurrentSubscription
	Transaction       *entity.Transaction
}

// SubscriptionUpdateCommand is the tagged admin override: each field that is
// set replaces the corresponding part of the user's current subscription.
// ClearEndDate distinguishes "make non-expiring" from "leave unchanged",
// which a bare nil pointer cannot express.
type SubscriptionUpdateCommand struct {
	PlanID       *uint64
	StartDate    *time.Time
	EndDate      *time.Time
	ClearEndDate bool
	IsActive     *bool
	AutoRenew    *bool
	AdminNote    string
}

// SubscriptionUseCase exposes the subscription lifecycle operations
type SubscriptionUseCase interface {
	// Purchase runs the purchase state machine for the given user and plan
	Purchase(ctx context.Context, userID, planID uint64) (*PurchaseResult, error)

	// History returns the user's subscription period log, newest first
	History(ctx context.Context, userID uint64) ([]*entity.SubscriptionHistory, error)

	// ApplyAdminOverride applies a tagged update command on behalf of an admin
	ApplyAdminOverride(ctx context.Context, userID uint64, cmd SubscriptionUpdateCommand) (*entity.CurrentSubscription, error)

	// ReconcileExpired demotes users with expired subscriptions to the free plan,
	// returning how many users were demoted
	ReconcileExpired(ctx context.Context) (int, error)
}
