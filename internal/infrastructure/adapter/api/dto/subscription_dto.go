package dto

import (
	"time"

	"github.com/Vergil4828/KinoService/internal/domain/entity"
)

// PurchaseRequest represents the API request for buying a plan
type PurchaseRequest struct {
	PlanID uint64 `json:"planId" binding:"required"`
}

// SubscriptionView is the API shape of the current subscription snapshot
type SubscriptionView struct {
	PlanID    *uint64    `json:"planId"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	IsActive  bool       `json:"isActive"`
	AutoRenew bool       `json:"autoRenew"`
}

// PurchaseResponse represents the discriminated purchase outcome. When the
// wallet cannot cover the price, success is false, paymentRequired is true
// and requiredAmount carries the shortfall.
type PurchaseResponse struct {
	Success         bool              `json:"success"`
	PaymentRequired bool              `json:"paymentRequired"`
	RequiredAmount  string            `json:"requiredAmount,omitempty"`
	Balance         string            `json:"balance,omitempty"`
	Subscription    *SubscriptionView `json:"subscription,omitempty"`
	Transaction     *TransactionView  `json:"transaction,omitempty"`
}

// HistoryEntryView is the API shape of one subscription period log row
type HistoryEntryView struct {
	PlanID         uint64     `json:"planId"`
	StartDate      time.Time  `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	IsActive       bool       `json:"isActive"`
	AutoRenew      bool       `json:"autoRenew"`
	ChangedByAdmin bool       `json:"changedByAdmin"`
	AdminNote      string     `json:"adminNote,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// HistoryResponse represents the API response for the subscription period log
type HistoryResponse struct {
	UserID  uint64              `json:"userId"`
	Entries []*HistoryEntryView `json:"entries"`
}

// AdminOverrideRequest represents the tagged admin update. Only the fields
// present in the JSON body are applied; clearEndDate makes the subscription
// non-expiring, which a missing endDate alone cannot express.
type AdminOverrideRequest struct {
	PlanID       *uint64    `json:"planId"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	ClearEndDate bool       `json:"clearEndDate"`
	IsActive     *bool      `json:"isActive"`
	AutoRenew    *bool      `json:"autoRenew"`
	AdminNote    string     `json:"adminNote"`
}

// NewSubscriptionView maps a subscription snapshot to its API shape
func NewSubscriptionView(sub *entity.CurrentSubscription) *SubscriptionView {
	if sub == nil {
		return nil
	}
	return &SubscriptionView{
		PlanID:    sub.PlanID,
		StartDate: sub.StartDate,
		EndDate:   sub.EndDate,
		IsActive:  sub.IsActive,
		AutoRenew: sub.AutoRenew,
	}
}

// NewHistoryEntryViews maps history rows to their API shape
func NewHistoryEntryViews(rows []*entity.SubscriptionHistory) []*HistoryEntryView {
	views := make([]*HistoryEntryView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &HistoryEntryView{
			PlanID:         row.PlanID,
			StartDate:      row.StartDate,
			EndDate:        row.EndDate,
			IsActive:       row.IsActive,
			AutoRenew:      row.AutoRenew,
			ChangedByAdmin: row.ChangedByAdmin,
			AdminNote:      row.AdminNote,
			CreatedAt:      row.CreatedAt,
		})
	}
	return views
}
