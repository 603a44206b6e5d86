package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CareLog is the append-only fact table of applied care actions. Rows are
// never updated; they are deleted only on full account reset.
type CareLog struct {
	LogID             uint            `gorm:"primaryKey" json:"log_id"`
	UserID            uuid.UUID       `gorm:"type:char(36);not null;index" json:"user_id"`
	Slot              int             `gorm:"not null" json:"animal_id"`
	ActionID          uint            `gorm:"not null" json:"action_id"`
	EmotionBefore     decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"emotion_before"`
	EmotionAfter      decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"emotion_after"`
	PredictedDelta    decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"predicted_delta"`
	ActualDelta       decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"actual_delta"`
	UserPatternBias   decimal.Decimal `gorm:"type:decimal(5,4);not null" json:"user_pattern_bias"`
	DaysSinceLastCare int             `gorm:"not null" json:"days_since_last_care"`
	PerformedAt       time.Time       `gorm:"not null;index" json:"performed_at"`

	Action Action `gorm:"foreignKey:ActionID" json:"-"`
}

func (CareLog) TableName() string {
	return "care_logs"
}
