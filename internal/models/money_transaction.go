package models

import (
	"time"

	"github.com/google/uuid"
)

// MoneyTransaction is the append-only currency ledger. CurrentMoney is the
// balance snapshot taken when the row was written, not a derived value.
type MoneyTransaction struct {
	TxID         string    `gorm:"type:char(36);primaryKey" json:"tx_id"`
	UserID       uuid.UUID `gorm:"type:char(36);not null;index" json:"user_id"`
	Amount       int64     `gorm:"not null" json:"amount"` // signed: positive = in, negative = out
	Direction    string    `gorm:"size:3;not null" json:"direction"`
	Source       string    `gorm:"size:20;not null" json:"source"`
	CurrentMoney int64     `gorm:"not null" json:"current_money"`
	CreatedAt    time.Time `json:"created_at"`
}

func (MoneyTransaction) TableName() string {
	return "money_transactions"
}
