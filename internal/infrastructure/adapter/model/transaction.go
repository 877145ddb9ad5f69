package model

import (
	"time"
)

// Transaction is the database model for ledger entries. Rows are append-only.
type Transaction struct {
	ID            uint64 `gorm:"primaryKey;autoIncrement"`
	Reference     string `gorm:"uniqueIndex;not null;size:64"`
	UserID        uint64 `gorm:"not null;index:idx_transactions_user_created,priority:1"`
	AmountInCents int64  `gorm:"not null"`
	Type          string `gorm:"not null;size:20;index"`
	Status        string `gorm:"not null;size:20"`
	Currency      string `gorm:"not null;size:10"`
	Description   string `gorm:"type:text"`
	PaymentMethod string `gorm:"size:50"`
	Metadata      string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null;index:idx_transactions_user_created,priority:2,sort:desc"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
