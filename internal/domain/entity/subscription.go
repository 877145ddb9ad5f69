package entity

import "time"

// CurrentSubscription is the single subscription snapshot embedded in a user.
// A nil EndDate means the subscription never expires (the free tier).
// Transitioning plans replaces the snapshot wholesale, never merges.
type CurrentSubscription struct {
	PlanID    *uint64
	StartDate time.Time
	EndDate   *time.Time
	IsActive  bool
	AutoRenew bool
}

// Expired reports whether the subscription has an end date in the past.
// Non-expiring subscriptions (nil EndDate) never expire.
func (s *CurrentSubscription) Expired(now time.Time) bool {
	if s == nil || s.EndDate == nil {
		return false
	}
	return s.IsActive && !s.EndDate.After(now)
}

// NewPlanSubscription builds the snapshot for a freshly assigned plan
func NewPlanSubscription(plan *SubscriptionPlan, start time.Time) *CurrentSubscription {
	planID := plan.ID
	return &CurrentSubscription{
		PlanID:    &planID,
		StartDate: start,
		EndDate:   plan.PeriodEnd(start),
		IsActive:  true,
		AutoRenew: !plan.IsFree(),
	}
}

// SubscriptionHistory is an append-only log row, one per subscription period.
// Rows are never mutated after insert; a period is conceptually closed by a
// later row plus a current-subscription swap.
type SubscriptionHistory struct {
	ID             uint64
	UserID         uint64
	PlanID         uint64
	StartDate      time.Time
	EndDate        *time.Time
	IsActive       bool
	AutoRenew      bool
	ChangedByAdmin bool
	AdminNote      string
	CreatedAt      time.Time
}
