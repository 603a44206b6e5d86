package service

import (
	"context"
	"time"

	"tamapet/internal/domain"
	"tamapet/internal/models"
	"tamapet/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EndingService handles the full account reset and the end-of-game summary.
type EndingService struct {
	db  *gorm.DB
	loc *time.Location

	users      *repository.UserRepository
	animals    *repository.AnimalRepository
	logs       *repository.CareLogRepository
	txs        *repository.TransactionRepository
	attendance *repository.AttendanceRepository
	birthdays  *repository.BirthdayRepository
	games      *repository.MinigameRepository
}

func NewEndingService(
	db *gorm.DB,
	loc *time.Location,
	users *repository.UserRepository,
	animals *repository.AnimalRepository,
	logs *repository.CareLogRepository,
	txs *repository.TransactionRepository,
	attendance *repository.AttendanceRepository,
	birthdays *repository.BirthdayRepository,
	games *repository.MinigameRepository,
) *EndingService {
	return &EndingService{
		db:         db,
		loc:        loc,
		users:      users,
		animals:    animals,
		logs:       logs,
		txs:        txs,
		attendance: attendance,
		birthdays:  birthdays,
		games:      games,
	}
}

// Reset wipes every record the user owns. The deletes run as one
// transaction; a failure leaves the account untouched.
func (s *EndingService) Reset(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.users.GetByID(userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.NotFound("user not found")
		}
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.logs.WithTx(tx).DeleteByUser(userID); err != nil {
			return err
		}
		if err := s.txs.WithTx(tx).DeleteByUser(userID); err != nil {
			return err
		}
		if err := s.attendance.WithTx(tx).DeleteByUser(userID); err != nil {
			return err
		}
		if err := s.birthdays.WithTx(tx).DeleteByUser(userID); err != nil {
			return err
		}
		if err := s.games.WithTx(tx).DeleteByUser(userID); err != nil {
			return err
		}
		if err := s.animals.WithTx(tx).DeleteByUser(userID); err != nil {
			return err
		}
		return s.users.WithTx(tx).Delete(userID)
	})
}

// Summary is the end-of-game report, available once all three animals reach
// the emotion ceiling.
type Summary struct {
	TotalPlayDays  int             `json:"total_play_days"`
	TotalUsedMoney int64           `json:"total_used_money"`
	Animals        []models.Animal `json:"animals"`
}

func (s *EndingService) Summary(ctx context.Context, userID uuid.UUID) (*Summary, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.NotFound("user not found")
		}
		return nil, err
	}

	atMax, err := s.animals.CountAtMaxEmotion(userID, emotionMax)
	if err != nil {
		return nil, err
	}
	if atMax < 3 {
		return nil, domain.InvalidState("all animals must reach maximum emotion")
	}

	spent, err := s.txs.TotalSpent(userID)
	if err != nil {
		return nil, err
	}
	animals, err := s.animals.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	return &Summary{
		TotalPlayDays:  daysBetween(user.CreatedAt, time.Now(), s.loc) + 1,
		TotalUsedMoney: spent,
		Animals:        animals,
	}, nil
}
