package repository

import (
	"tamapet/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository {
	return &UserRepository{db: tx}
}

func (r *UserRepository) Create(u *models.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var u models.User
	if err := r.db.Where("user_id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByIDForUpdate locks the user row until the surrounding transaction
// commits. Every balance check-and-update must go through this lock.
func (r *UserRepository) GetByIDForUpdate(id uuid.UUID) (*models.User, error) {
	var u models.User
	if err := forUpdate(r.db).Where("user_id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateMoney sets the stored balance. Callers are responsible for having the
// row locked and for never passing a negative amount.
func (r *UserRepository) UpdateMoney(id uuid.UUID, money int64) error {
	return r.db.Model(&models.User{}).Where("user_id = ?", id).Update("money", money).Error
}

func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Where("user_id = ?", id).Delete(&models.User{}).Error
}
