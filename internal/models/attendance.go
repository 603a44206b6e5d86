package models

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceReward is the static 7-day reward board.
type AttendanceReward struct {
	AttendanceRewardID int    `gorm:"primaryKey" json:"attendance_reward_id"`
	RewardAmount       int64  `gorm:"not null" json:"reward_amount"`
	RewardType         string `gorm:"size:20;default:'money'" json:"reward_type"`
}

func (AttendanceReward) TableName() string {
	return "attendance_rewards"
}

// AttendanceLog records one check-in per user per calendar day.
type AttendanceLog struct {
	AttendanceID       uint      `gorm:"primaryKey" json:"attendance_id"`
	Date               time.Time `gorm:"type:date;not null;uniqueIndex:idx_attendance_user_date" json:"date"`
	UserID             uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_attendance_user_date" json:"user_id"`
	AttendanceRewardID int       `gorm:"not null" json:"attendance_reward_id"`
}

func (AttendanceLog) TableName() string {
	return "attendance_logs"
}
