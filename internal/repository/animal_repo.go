package repository

import (
	"tamapet/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AnimalRepository struct {
	db *gorm.DB
}

func NewAnimalRepository(db *gorm.DB) *AnimalRepository {
	return &AnimalRepository{db: db}
}

func (r *AnimalRepository) WithTx(tx *gorm.DB) *AnimalRepository {
	return &AnimalRepository{db: tx}
}

func (r *AnimalRepository) Create(a *models.Animal) error {
	return r.db.Create(a).Error
}

// GetBySlot fetches by the (user, slot) composite key. A miss means either
// the animal does not exist or it belongs to another user; callers cannot
// tell the two apart, which is intended.
func (r *AnimalRepository) GetBySlot(userID uuid.UUID, slot int) (*models.Animal, error) {
	var a models.Animal
	if err := r.db.Where("user_id = ? AND slot = ?", userID, slot).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// GetBySlotForUpdate locks the animal row for the surrounding transaction.
// Care actions treat this row as the unit of mutual exclusion.
func (r *AnimalRepository) GetBySlotForUpdate(userID uuid.UUID, slot int) (*models.Animal, error) {
	var a models.Animal
	if err := forUpdate(r.db).Where("user_id = ? AND slot = ?", userID, slot).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AnimalRepository) ListByUser(userID uuid.UUID) ([]models.Animal, error) {
	var list []models.Animal
	err := r.db.Where("user_id = ?", userID).Order("slot").Find(&list).Error
	return list, err
}

// CareUpdate is the set of animal columns a care action may change. Using a
// fixed struct keeps every mutation path inside the invariant-checked engine.
type CareUpdate struct {
	CurrentEmotion    decimal.Decimal
	EvolutionStage    int
	IsRunaway         bool
	RunawayCount      int
	DaysSinceLastCare int
}

func (r *AnimalRepository) ApplyCareUpdate(userID uuid.UUID, slot int, u CareUpdate) error {
	return r.db.Model(&models.Animal{}).
		Where("user_id = ? AND slot = ?", userID, slot).
		Updates(map[string]any{
			"current_emotion":      u.CurrentEmotion,
			"evolution_stage":      u.EvolutionStage,
			"is_runaway":           u.IsRunaway,
			"runaway_count":        u.RunawayCount,
			"days_since_last_care": u.DaysSinceLastCare,
		}).Error
}

func (r *AnimalRepository) UpdateBias(userID uuid.UUID, slot int, bias decimal.Decimal) error {
	return r.db.Model(&models.Animal{}).
		Where("user_id = ? AND slot = ?", userID, slot).
		Update("user_pattern_bias", bias).Error
}

// ReturnFromRunaway clears the runaway flag and restores the post-return
// emotion in one statement.
func (r *AnimalRepository) ReturnFromRunaway(userID uuid.UUID, slot int, emotion decimal.Decimal, stage int) error {
	return r.db.Model(&models.Animal{}).
		Where("user_id = ? AND slot = ?", userID, slot).
		Updates(map[string]any{
			"is_runaway":      false,
			"current_emotion": emotion,
			"evolution_stage": stage,
		}).Error
}

// IncrementAllElapsedDays bumps every animal's days-since-care counter by one.
// Run at most once per calendar day; there is no internal date guard.
func (r *AnimalRepository) IncrementAllElapsedDays() (int64, error) {
	// A deliberate whole-table update; gorm refuses it without the session flag.
	res := r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Model(&models.Animal{}).
		Update("days_since_last_care", gorm.Expr("days_since_last_care + 1"))
	return res.RowsAffected, res.Error
}

// CountAtMaxEmotion returns how many of the user's animals sit at the emotion
// ceiling.
func (r *AnimalRepository) CountAtMaxEmotion(userID uuid.UUID, max decimal.Decimal) (int64, error) {
	var n int64
	err := r.db.Model(&models.Animal{}).
		Where("user_id = ? AND current_emotion >= ?", userID, max).
		Count(&n).Error
	return n, err
}

func (r *AnimalRepository) DeleteByUser(userID uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Animal{}).Error
}
