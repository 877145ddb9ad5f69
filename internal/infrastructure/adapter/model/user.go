package model

import (
	"time"
)

// User is the database model for the user aggregate. The wallet balance and
// the current subscription snapshot are embedded columns; transaction history
// hangs off transactions.user_id instead of an id list.
type User struct {
	ID           uint64 `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	Username     string `gorm:"size:100;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:20;not null;default:user"`

	// Balance in cents
	Balance int64 `gorm:"not null;default:0"`

	// Current subscription snapshot; a NULL SubEndDate means non-expiring
	SubPlanID    *uint64 `gorm:"index"`
	SubStartDate *time.Time
	SubEndDate   *time.Time `gorm:"index"`
	SubIsActive  bool       `gorm:"not null;default:false"`
	SubAutoRenew bool       `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
