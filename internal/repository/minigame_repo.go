package repository

import (
	"time"

	"tamapet/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MinigameRepository struct {
	db *gorm.DB
}

func NewMinigameRepository(db *gorm.DB) *MinigameRepository {
	return &MinigameRepository{db: db}
}

func (r *MinigameRepository) WithTx(tx *gorm.DB) *MinigameRepository {
	return &MinigameRepository{db: tx}
}

func (r *MinigameRepository) GetGame(id uint) (*models.Minigame, error) {
	var g models.Minigame
	if err := r.db.First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// GetPlayForUpdate returns the user's play counter for (game, day), locked
// against concurrent starts. Nil when the user has not played today.
func (r *MinigameRepository) GetPlayForUpdate(userID uuid.UUID, gameID uint, day time.Time) (*models.UserMinigamePlay, error) {
	var p models.UserMinigamePlay
	err := forUpdate(r.db).
		Where("user_id = ? AND minigame_id = ? AND play_date = ?", userID, gameID, day).
		First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *MinigameRepository) CreatePlay(p *models.UserMinigamePlay) error {
	return r.db.Create(p).Error
}

func (r *MinigameRepository) UpdatePlayCount(playID uint, count int) error {
	return r.db.Model(&models.UserMinigamePlay{}).
		Where("play_id = ?", playID).
		Update("play_count", count).Error
}

func (r *MinigameRepository) CreateAttempt(a *models.MinigameAttempt) error {
	return r.db.Create(a).Error
}

func (r *MinigameRepository) GetAttempt(id uint) (*models.MinigameAttempt, error) {
	var a models.MinigameAttempt
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *MinigameRepository) CompleteAttempt(id uint, completedAt time.Time, score, timeSpent int, money int64) error {
	return r.db.Model(&models.MinigameAttempt{}).
		Where("attempt_id = ?", id).
		Updates(map[string]any{
			"completed_at": completedAt,
			"score":        score,
			"time_spent":   timeSpent,
			"money":        money,
		}).Error
}

func (r *MinigameRepository) DeleteByUser(userID uuid.UUID) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&models.MinigameAttempt{}).Error; err != nil {
		return err
	}
	return r.db.Where("user_id = ?", userID).Delete(&models.UserMinigamePlay{}).Error
}
