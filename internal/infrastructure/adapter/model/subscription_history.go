package model

import (
	"time"
)

// SubscriptionHistory is the database model for the append-only period log
type SubscriptionHistory struct {
	ID             uint64     `gorm:"primaryKey;autoIncrement"`
	UserID         uint64     `gorm:"not null;index"`
	PlanID         uint64     `gorm:"not null;index"`
	StartDate      time.Time  `gorm:"not null"`
	EndDate        *time.Time
	IsActive       bool   `gorm:"not null;default:false"`
	AutoRenew      bool   `gorm:"not null;default:false"`
	ChangedByAdmin bool   `gorm:"not null;default:false"`
	AdminNote      string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null"`

	User User             `gorm:"foreignKey:UserID;references:ID"`
	Plan SubscriptionPlan `gorm:"foreignKey:PlanID;references:ID"`
}

// TableName specifies the table name for SubscriptionHistory
func (SubscriptionHistory) TableName() string {
	return "subscription_histories"
}
