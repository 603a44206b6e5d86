package repository

import (
	"time"

	"tamapet/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) WithTx(tx *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: tx}
}

func (r *AttendanceRepository) ListByUser(userID uuid.UUID) ([]models.AttendanceLog, error) {
	var list []models.AttendanceLog
	err := r.db.Where("user_id = ?", userID).Order("date").Find(&list).Error
	return list, err
}

func (r *AttendanceRepository) CountByUser(userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.Model(&models.AttendanceLog{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

// GetForDate returns the user's check-in for the given calendar day, or nil.
func (r *AttendanceRepository) GetForDate(userID uuid.UUID, day time.Time) (*models.AttendanceLog, error) {
	var l models.AttendanceLog
	err := r.db.Where("user_id = ? AND date = ?", userID, day).First(&l).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *AttendanceRepository) CreateLog(l *models.AttendanceLog) error {
	return r.db.Create(l).Error
}

func (r *AttendanceRepository) ListRewards() ([]models.AttendanceReward, error) {
	var list []models.AttendanceReward
	err := r.db.Order("attendance_reward_id").Find(&list).Error
	return list, err
}

func (r *AttendanceRepository) GetReward(index int) (*models.AttendanceReward, error) {
	var rw models.AttendanceReward
	if err := r.db.First(&rw, index).Error; err != nil {
		return nil, err
	}
	return &rw, nil
}

func (r *AttendanceRepository) DeleteByUser(userID uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.AttendanceLog{}).Error
}
