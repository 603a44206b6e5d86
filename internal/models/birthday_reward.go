package models

import (
	"time"

	"github.com/google/uuid"
)

// BirthdayReward records a granted birthday reward; at most one per
// (user, animal, calendar day).
type BirthdayReward struct {
	RewardID uint      `gorm:"primaryKey" json:"reward_id"`
	Date     time.Time `gorm:"type:date;not null;uniqueIndex:idx_birthday_user_slot_date" json:"date"`
	UserID   uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_birthday_user_slot_date" json:"user_id"`
	Slot     int       `gorm:"not null;uniqueIndex:idx_birthday_user_slot_date" json:"animal_id"`
}

func (BirthdayReward) TableName() string {
	return "birthday_rewards"
}
