package service

import (
	"tamapet/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Redistribute shifts pattern bias toward the target animal: every sibling
// gives up bias×rate, the target gains the sum. Results are rounded to four
// decimal places and are deliberately not renormalized, so the biases drift
// away from the initial even split over time.
//
// No-op when the user has no animals or the target slot is absent.
func (s *CareService) Redistribute(tx *gorm.DB, userID uuid.UUID, targetSlot int, rate decimal.Decimal) error {
	animals := s.animals.WithTx(tx)

	list, err := animals.ListByUser(userID)
	if err != nil {
		return err
	}
	var target *models.Animal
	for i := range list {
		if list[i].Slot == targetSlot {
			target = &list[i]
			break
		}
	}
	if target == nil {
		return nil
	}

	keep := decimal.NewFromInt(1).Sub(rate)
	transferred := decimal.Zero
	for i := range list {
		other := &list[i]
		if other.Slot == targetSlot {
			continue
		}
		transferred = transferred.Add(other.UserPatternBias.Mul(rate))
		if err := animals.UpdateBias(userID, other.Slot, other.UserPatternBias.Mul(keep).Round(4)); err != nil {
			return err
		}
	}
	return animals.UpdateBias(userID, targetSlot, target.UserPatternBias.Add(transferred).Round(4))
}
