package service

import (
	"context"
	"errors"

	"tamapet/internal/domain"
	"tamapet/internal/models"
	"tamapet/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// initialBias is the even three-way split every animal starts with.
var initialBias = decimal.NewFromInt(1).Div(decimal.NewFromInt(3)).Round(4)

var initialEmotion = decimal.NewFromInt(50)

// returnEmotion is where a returned runaway restarts.
var returnEmotion = decimal.NewFromInt(20)

// PetService owns animal lifecycle: naming/creation, status, runaway return
// and the stage-dependent price sheet.
type PetService struct {
	db         *gorm.DB
	animals    *repository.AnimalRepository
	actions    *repository.ActionRepository
	users      *repository.UserRepository
	ledger     *LedgerService
	returnCost int64
}

func NewPetService(
	db *gorm.DB,
	animals *repository.AnimalRepository,
	actions *repository.ActionRepository,
	users *repository.UserRepository,
	ledger *LedgerService,
	returnCost int64,
) *PetService {
	return &PetService{
		db:         db,
		animals:    animals,
		actions:    actions,
		users:      users,
		ledger:     ledger,
		returnCost: returnCost,
	}
}

// Nickname pairs an animal slot with its chosen name.
type Nickname struct {
	Slot int    `json:"animal_id" binding:"required,min=1,max=3"`
	Name string `json:"name" binding:"required,max=10"`
}

// RegisterNicknames names all three animals at once, creating them with
// their fixed species, birthdays, starting emotion and an even bias split.
func (s *PetService) RegisterNicknames(ctx context.Context, userID uuid.UUID, names []Nickname) (map[string]string, error) {
	if len(names) != 3 {
		return nil, domain.InvalidState("all three animal names are required")
	}

	result := make(map[string]string, 3)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		animals := s.animals.WithTx(tx)
		for _, n := range names {
			species, ok := domain.SpeciesForSlot[n.Slot]
			if !ok {
				return domain.InvalidState("invalid animal id %d", n.Slot)
			}
			if existing, err := animals.GetBySlot(userID, n.Slot); err == nil && existing != nil {
				return domain.Conflict("animal %d already exists", n.Slot)
			} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			a := &models.Animal{
				UserID:          userID,
				Slot:            n.Slot,
				Name:            n.Name,
				EvolutionStage:  1,
				CurrentEmotion:  initialEmotion,
				Birthday:        domain.BirthdayForSlot[n.Slot],
				UserPatternBias: initialBias,
			}
			if err := animals.Create(a); err != nil {
				return err
			}
			result[species] = n.Name
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *PetService) GetAnimal(ctx context.Context, userID uuid.UUID, slot int) (*models.Animal, error) {
	a, err := s.animals.GetBySlot(userID, slot)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("animal not found")
		}
		return nil, err
	}
	return a, nil
}

// ReturnResult reports a completed runaway return.
type ReturnResult struct {
	Animal  *models.Animal `json:"animal"`
	Balance int64          `json:"balance"`
}

// ReturnRunaway brings a runaway animal back: only legal while the animal is
// running away at emotion 0; charges the return cost and restarts the animal
// at the return emotion, one transaction.
func (s *PetService) ReturnRunaway(ctx context.Context, userID uuid.UUID, slot int) (*ReturnResult, error) {
	var result ReturnResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		animals := s.animals.WithTx(tx)

		animal, err := animals.GetBySlotForUpdate(userID, slot)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFound("animal not found")
			}
			return err
		}
		if !animal.IsRunaway {
			return domain.InvalidState("animal is not running away")
		}
		if !animal.CurrentEmotion.IsZero() {
			return domain.InvalidState("animal can only be returned at emotion 0")
		}

		record, err := s.ledger.Apply(tx, userID, -s.returnCost, domain.SourceReturn)
		if err != nil {
			return err
		}

		stage := domain.EvolutionStageFor(returnEmotion.IntPart())
		if err := animals.ReturnFromRunaway(userID, slot, returnEmotion, stage); err != nil {
			return err
		}

		animal.IsRunaway = false
		animal.CurrentEmotion = returnEmotion
		animal.EvolutionStage = stage
		result = ReturnResult{Animal: animal, Balance: record.CurrentMoney}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// PriceList returns the tier prices of a category at the animal's current
// evolution stage.
func (s *PetService) PriceList(ctx context.Context, userID uuid.UUID, slot int, category string) (map[string]int64, int, error) {
	if !validCategory(category) {
		return nil, 0, domain.InvalidState("unknown category %q", category)
	}
	animal, err := s.GetAnimal(ctx, userID, slot)
	if err != nil {
		return nil, 0, err
	}
	rows, err := s.actions.PricesByCategory(category)
	if err != nil {
		return nil, 0, err
	}

	prices := make(map[string]int64, len(rows))
	for _, row := range rows {
		price := row.BasePrice
		if animal.EvolutionStage >= 2 {
			price += row.Stage2Increment
		}
		if animal.EvolutionStage >= 3 {
			price += row.Stage3Increment
		}
		prices[row.Tier] = price
	}
	return prices, animal.EvolutionStage, nil
}
