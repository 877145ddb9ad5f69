package model

import (
	"time"
)

// SubscriptionPlan is the database model for catalog entries. Features are
// stored as a JSON-encoded string list.
type SubscriptionPlan struct {
	ID                uint64 `gorm:"primaryKey;autoIncrement"`
	Name              string `gorm:"uniqueIndex;size:100;not null"`
	PriceInCents      int64  `gorm:"not null;index"`
	RenewalPeriodDays int    `gorm:"not null;default:30"`
	Features          string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for SubscriptionPlan
func (SubscriptionPlan) TableName() string {
	return "subscription_plans"
}
