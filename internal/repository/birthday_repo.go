package repository

import (
	"time"

	"tamapet/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BirthdayRepository struct {
	db *gorm.DB
}

func NewBirthdayRepository(db *gorm.DB) *BirthdayRepository {
	return &BirthdayRepository{db: db}
}

func (r *BirthdayRepository) WithTx(tx *gorm.DB) *BirthdayRepository {
	return &BirthdayRepository{db: tx}
}

// Exists reports whether a reward was already granted for (user, slot, day).
func (r *BirthdayRepository) Exists(userID uuid.UUID, slot int, day time.Time) (bool, error) {
	var n int64
	err := r.db.Model(&models.BirthdayReward{}).
		Where("user_id = ? AND slot = ? AND date = ?", userID, slot, day).
		Count(&n).Error
	return n > 0, err
}

func (r *BirthdayRepository) Create(b *models.BirthdayReward) error {
	return r.db.Create(b).Error
}

func (r *BirthdayRepository) DeleteByUser(userID uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.BirthdayReward{}).Error
}
