package service

import (
	"context"
	"errors"
	"time"

	"tamapet/internal/domain"
	"tamapet/internal/models"
	"tamapet/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BirthdayService grants the fixed birthday reward: the animal's species
// birthday (month and day, year ignored) must match today, at most once per
// (user, animal, calendar day).
type BirthdayService struct {
	db        *gorm.DB
	loc       *time.Location
	animals   *repository.AnimalRepository
	birthdays *repository.BirthdayRepository
	ledger    *LedgerService
	amount    int64
}

func NewBirthdayService(
	db *gorm.DB,
	loc *time.Location,
	animals *repository.AnimalRepository,
	birthdays *repository.BirthdayRepository,
	ledger *LedgerService,
	amount int64,
) *BirthdayService {
	return &BirthdayService{db: db, loc: loc, animals: animals, birthdays: birthdays, ledger: ledger, amount: amount}
}

// BirthdayResult reports a granted reward.
type BirthdayResult struct {
	Amount  int64 `json:"amount"`
	Balance int64 `json:"balance"`
}

func (s *BirthdayService) GiveReward(ctx context.Context, userID uuid.UUID, slot int, now time.Time) (*BirthdayResult, error) {
	var result BirthdayResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		animal, err := s.animals.WithTx(tx).GetBySlot(userID, slot)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFound("animal not found")
			}
			return err
		}

		local := now.In(s.loc)
		if animal.Birthday.Month() != local.Month() || animal.Birthday.Day() != local.Day() {
			return domain.InvalidState("today is not this animal's birthday")
		}

		birthdays := s.birthdays.WithTx(tx)
		today := dayStart(local, s.loc)
		granted, err := birthdays.Exists(userID, slot, today)
		if err != nil {
			return err
		}
		if granted {
			return domain.Conflict("birthday reward already granted today")
		}

		if err := birthdays.Create(&models.BirthdayReward{
			Date:   today,
			UserID: userID,
			Slot:   slot,
		}); err != nil {
			return err
		}

		record, err := s.ledger.Apply(tx, userID, s.amount, domain.SourceBirthday)
		if err != nil {
			return err
		}
		result = BirthdayResult{Amount: s.amount, Balance: record.CurrentMoney}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
