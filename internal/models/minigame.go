package models

import (
	"time"

	"github.com/google/uuid"
)

// Minigame is a static catalog row describing a playable game and its daily
// play limit.
type Minigame struct {
	MinigameID  uint      `gorm:"primaryKey" json:"minigame_id"`
	Name        string    `gorm:"size:30;not null" json:"name"`
	Description string    `gorm:"size:50" json:"description"`
	MaxPlay     int       `gorm:"not null;default:3" json:"max_play"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Minigame) TableName() string {
	return "minigames"
}

// MinigameAttempt records a single play: started on Start, completed with
// score/reward on Finish.
type MinigameAttempt struct {
	AttemptID   uint       `gorm:"primaryKey" json:"attempt_id"`
	UserID      uuid.UUID  `gorm:"type:char(36);not null;index" json:"user_id"`
	MinigameID  uint       `gorm:"not null" json:"minigame_id"`
	StartedAt   time.Time  `gorm:"not null" json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	Score       *int       `json:"score"`
	TimeSpent   *int       `json:"time_spent"`
	Money       *int64     `json:"money"`
}

func (MinigameAttempt) TableName() string {
	return "minigame_attempts"
}

// UserMinigamePlay tracks how many times a user started a game on a given day.
type UserMinigamePlay struct {
	PlayID     uint      `gorm:"primaryKey" json:"play_id"`
	UserID     uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_play_user_game_date" json:"user_id"`
	MinigameID uint      `gorm:"not null;uniqueIndex:idx_play_user_game_date" json:"minigame_id"`
	PlayDate   time.Time `gorm:"type:date;not null;uniqueIndex:idx_play_user_game_date" json:"play_date"`
	PlayCount  int       `gorm:"not null;default:0" json:"play_count"`
}

func (UserMinigamePlay) TableName() string {
	return "user_minigame_plays"
}
