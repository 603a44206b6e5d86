package repository

import (
	"tamapet/internal/domain"
	"tamapet/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) WithTx(tx *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: tx}
}

func (r *TransactionRepository) Create(t *models.MoneyTransaction) error {
	return r.db.Create(t).Error
}

func (r *TransactionRepository) ListByUser(userID uuid.UUID, limit int) ([]models.MoneyTransaction, error) {
	var list []models.MoneyTransaction
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Find(&list).Error
	return list, err
}

// SumByUser returns the running sum of all signed amounts for the user. At
// rest it must equal the stored balance.
func (r *TransactionRepository) SumByUser(userID uuid.UUID) (int64, error) {
	var sum int64
	err := r.db.Model(&models.MoneyTransaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ?", userID).
		Scan(&sum).Error
	return sum, err
}

// TotalSpent returns the total of outgoing amounts as a positive number.
func (r *TransactionRepository) TotalSpent(userID uuid.UUID) (int64, error) {
	var sum int64
	err := r.db.Model(&models.MoneyTransaction{}).
		Select("COALESCE(SUM(-amount), 0)").
		Where("user_id = ? AND direction = ?", userID, domain.DirectionOut).
		Scan(&sum).Error
	return sum, err
}

func (r *TransactionRepository) DeleteByUser(userID uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.MoneyTransaction{}).Error
}
