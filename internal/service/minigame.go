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

// MinigameService gates plays by the per-game daily limit and pays out
// score-based rewards through the ledger.
type MinigameService struct {
	db        *gorm.DB
	loc       *time.Location
	games     *repository.MinigameRepository
	users     *repository.UserRepository
	ledger    *LedgerService
	scoreRate int64
}

func NewMinigameService(
	db *gorm.DB,
	loc *time.Location,
	games *repository.MinigameRepository,
	users *repository.UserRepository,
	ledger *LedgerService,
	scoreRate int64,
) *MinigameService {
	return &MinigameService{db: db, loc: loc, games: games, users: users, ledger: ledger, scoreRate: scoreRate}
}

// StartResult reports a started attempt and the plays left today.
type StartResult struct {
	AttemptID      uint `json:"attempt_id"`
	RemainingPlays int  `json:"remaining_plays"`
}

func (s *MinigameService) Start(ctx context.Context, userID uuid.UUID, gameID uint) (*StartResult, error) {
	var result StartResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.users.WithTx(tx).GetByID(userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFound("user not found")
			}
			return err
		}
		games := s.games.WithTx(tx)
		game, err := games.GetGame(gameID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFound("minigame not found")
			}
			return err
		}

		now := time.Now().In(s.loc)
		today := dayStart(now, s.loc)
		play, err := games.GetPlayForUpdate(userID, gameID, today)
		if err != nil {
			return err
		}
		if play == nil {
			play = &models.UserMinigamePlay{
				UserID:     userID,
				MinigameID: gameID,
				PlayDate:   today,
				PlayCount:  0,
			}
			if err := games.CreatePlay(play); err != nil {
				return err
			}
		}
		if play.PlayCount >= game.MaxPlay {
			return domain.Forbidden("no plays remaining for this game today")
		}

		if err := games.UpdatePlayCount(play.PlayID, play.PlayCount+1); err != nil {
			return err
		}
		attempt := &models.MinigameAttempt{
			UserID:     userID,
			MinigameID: gameID,
			StartedAt:  now,
		}
		if err := games.CreateAttempt(attempt); err != nil {
			return err
		}

		result = StartResult{
			AttemptID:      attempt.AttemptID,
			RemainingPlays: game.MaxPlay - play.PlayCount - 1,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// FinishResult reports a completed attempt and the credited reward.
type FinishResult struct {
	Money   int64 `json:"money"`
	Balance int64 `json:"balance"`
}

func (s *MinigameService) Finish(ctx context.Context, userID uuid.UUID, attemptID uint, score, timeSpent int) (*FinishResult, error) {
	if score < 0 || timeSpent < 0 {
		return nil, domain.InvalidState("score and time spent must not be negative")
	}

	var result FinishResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		games := s.games.WithTx(tx)

		attempt, err := games.GetAttempt(attemptID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFound("attempt not found")
			}
			return err
		}
		if attempt.UserID != userID {
			return domain.NotFound("attempt not found")
		}
		if attempt.CompletedAt != nil {
			return domain.Conflict("attempt already completed")
		}

		now := time.Now().In(s.loc)
		money := int64(score) * s.scoreRate
		if err := games.CompleteAttempt(attemptID, now, score, timeSpent, money); err != nil {
			return err
		}

		result.Money = money
		if money > 0 {
			record, err := s.ledger.Apply(tx, userID, money, domain.SourceMinigame)
			if err != nil {
				return err
			}
			result.Balance = record.CurrentMoney
		} else {
			user, err := s.users.WithTx(tx).GetByID(userID)
			if err != nil {
				return err
			}
			result.Balance = user.Money
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
