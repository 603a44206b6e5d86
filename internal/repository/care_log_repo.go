package repository

import (
	"time"

	"tamapet/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CareLogRepository struct {
	db *gorm.DB
}

func NewCareLogRepository(db *gorm.DB) *CareLogRepository {
	return &CareLogRepository{db: db}
}

func (r *CareLogRepository) WithTx(tx *gorm.DB) *CareLogRepository {
	return &CareLogRepository{db: tx}
}

func (r *CareLogRepository) Create(l *models.CareLog) error {
	return r.db.Create(l).Error
}

// Latest returns the most recent care log for the animal, or nil if it has
// never been cared for.
func (r *CareLogRepository) Latest(userID uuid.UUID, slot int) (*models.CareLog, error) {
	var l models.CareLog
	err := r.db.Where("user_id = ? AND slot = ?", userID, slot).
		Order("performed_at DESC").First(&l).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

// CountCategorySince counts the animal's care actions of one category
// performed at or after the given instant (local midnight for the same-day
// feature count).
func (r *CareLogRepository) CountCategorySince(userID uuid.UUID, slot int, category string, since time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&models.CareLog{}).
		Joins("JOIN actions ON actions.action_id = care_logs.action_id").
		Where("care_logs.user_id = ? AND care_logs.slot = ? AND actions.category = ? AND care_logs.performed_at >= ?",
			userID, slot, category, since).
		Count(&n).Error
	return n, err
}

func (r *CareLogRepository) ListByUser(userID uuid.UUID, limit int) ([]models.CareLog, error) {
	var list []models.CareLog
	err := r.db.Where("user_id = ?", userID).
		Order("performed_at DESC").Limit(limit).Find(&list).Error
	return list, err
}

func (r *CareLogRepository) DeleteByUser(userID uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.CareLog{}).Error
}
