package models

import (
	"time"

	"gorm.io/gorm"
)

// WalletTransaction is the append-only wallet history. AmountCents is a
// positive magnitude; Type decides whether it credited or debited the balance.
type WalletTransaction struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"not null;index" json:"user_id"`
	Type         string         `gorm:"size:20;not null;index" json:"type"` // DEPOSIT, WITHDRAWAL, PRIZE, ENTRY_FEE, REFUND
	AmountCents  int64          `gorm:"not null" json:"amount_cents"`
	BalanceAfter int64          `gorm:"not null" json:"balance_after_cents"`
	Status       string         `gorm:"size:20;not null;default:'COMPLETED';index" json:"status"`
	Reference    string         `gorm:"size:128;index" json:"reference"` // e.g. tournament_id, withdrawal order_id
	Details      string         `gorm:"size:255" json:"details,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (WalletTransaction) TableName() string {
	return "wallet_transactions"
}
