package repository

import (
	"tamapet/internal/models"

	"gorm.io/gorm"
)

type ActionRepository struct {
	db *gorm.DB
}

func NewActionRepository(db *gorm.DB) *ActionRepository {
	return &ActionRepository{db: db}
}

func (r *ActionRepository) WithTx(tx *gorm.DB) *ActionRepository {
	return &ActionRepository{db: tx}
}

func (r *ActionRepository) GetByID(id uint) (*models.Action, error) {
	var a models.Action
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ActionRepository) ListByCategoryAndStage(category string, stage int) ([]models.Action, error) {
	var list []models.Action
	err := r.db.Where("category = ? AND evolution_stage = ?", category, stage).
		Order("action_level").Find(&list).Error
	return list, err
}

func (r *ActionRepository) PricesByCategory(category string) ([]models.AnimalPrice, error) {
	var list []models.AnimalPrice
	err := r.db.Where("category = ?", category).Order("base_price").Find(&list).Error
	return list, err
}

func (r *ActionRepository) MessageByCategoryAndLevel(category string, level int) (*models.EmotionMessage, error) {
	var m models.EmotionMessage
	err := r.db.Where("category = ? AND level = ?", category, level).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}
