package entity

import (
	"time"

	errs "github.com/Vergil4828/KinoService/internal/domain/error"
)

// DefaultRenewalPeriodDays is applied when a plan has no renewal period set
const DefaultRenewalPeriodDays = 30

// SubscriptionPlan is a near-immutable catalog entry. A price of zero marks the
// free plan: non-expiring subscriptions, exactly one such plan must exist.
type SubscriptionPlan struct {
	ID                uint64
	Name              string
	PriceInCents      int64
	RenewalPeriodDays int
	Features          []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewSubscriptionPlan creates a validated catalog entry
func NewSubscriptionPlan(name string, priceInCents int64, renewalPeriodDays int, features []string) (*SubscriptionPlan, error) {
	if name == "" {
		return nil, errs.ErrInvalidRequest
	}
	if priceInCents < 0 {
		return nil, errs.ErrInvalidAmount
	}
	if renewalPeriodDays <= 0 {
		renewalPeriodDays = DefaultRenewalPeriodDays
	}

	return &SubscriptionPlan{
		Name:              name,
		PriceInCents:      priceInCents,
		RenewalPeriodDays: renewalPeriodDays,
		Features:          features,
	}, nil
}

// IsFree reports whether the plan is the non-expiring zero-price tier
func (p *SubscriptionPlan) IsFree() bool {
	return p.PriceInCents == 0
}

// Price returns the plan price as a decimal string
func (p *SubscriptionPlan) Price() string {
	return FormatCents(p.PriceInCents)
}

// RenewalPeriod returns the renewal period in days, defaulting to 30
func (p *SubscriptionPlan) RenewalPeriod() int {
	if p.RenewalPeriodDays <= 0 {
		return DefaultRenewalPeriodDays
	}
	return p.RenewalPeriodDays
}

// PeriodEnd computes the end of a subscription period starting at start.
// Free plans never expire, so their period end is nil.
func (p *SubscriptionPlan) PeriodEnd(start time.Time) *time.Time {
	if p.IsFree() {
		return nil
	}
	end := start.AddDate(0, 0, p.RenewalPeriod())
	return &end
}
