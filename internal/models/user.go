package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an anonymous device session owner. Money is only ever mutated
// through ledger transactions.
type User struct {
	UserID    uuid.UUID `gorm:"type:char(36);primaryKey" json:"user_id"`
	Money     int64     `gorm:"not null;default:0" json:"money"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
