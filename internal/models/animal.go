package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Animal is identified by (user, slot). The slot fixes the species, so a
// fetch by composite key is also an ownership check.
type Animal struct {
	UserID            uuid.UUID       `gorm:"type:char(36);primaryKey" json:"user_id"`
	Slot              int             `gorm:"primaryKey" json:"animal_id"`
	Name              string          `gorm:"size:10;not null" json:"name"`
	IsRunaway         bool            `gorm:"not null;default:false" json:"is_runaway"`
	EvolutionStage    int             `gorm:"not null;default:1" json:"evolution_stage"`
	CurrentEmotion    decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"current_emotion"`
	Birthday          time.Time       `gorm:"type:date;not null" json:"birthday"`
	UserPatternBias   decimal.Decimal `gorm:"type:decimal(5,4);not null" json:"user_pattern_bias"`
	DaysSinceLastCare int             `gorm:"not null;default:0" json:"days_since_last_care"`
	RunawayCount      int             `gorm:"not null;default:0" json:"runaway_count"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Animal) TableName() string {
	return "animals"
}
