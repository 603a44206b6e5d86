package service

import (
	"context"
	"errors"
	"time"

	"tamapet/internal/domain"
	"tamapet/internal/models"
	"tamapet/internal/repository"
	"tamapet/pkg/emotion"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CareService is the care-action state machine. A single care action debits
// the user, asks the emotion model for a delta, applies it with rounding and
// clamping, handles the runaway transition, redistributes pattern bias,
// resets the elapsed-care-day counter and appends the care log, all in one
// transaction.
type CareService struct {
	db           *gorm.DB
	loc          *time.Location
	transferRate decimal.Decimal

	animals   *repository.AnimalRepository
	actions   *repository.ActionRepository
	logs      *repository.CareLogRepository
	ledger    *LedgerService
	predictor emotion.Predictor
}

func NewCareService(
	db *gorm.DB,
	loc *time.Location,
	transferRate float64,
	animals *repository.AnimalRepository,
	actions *repository.ActionRepository,
	logs *repository.CareLogRepository,
	ledger *LedgerService,
	predictor emotion.Predictor,
) *CareService {
	return &CareService{
		db:           db,
		loc:          loc,
		transferRate: decimal.NewFromFloat(transferRate),
		animals:      animals,
		actions:      actions,
		logs:         logs,
		ledger:       ledger,
		predictor:    predictor,
	}
}

// CareResult is what a successful care action reports back to the client.
type CareResult struct {
	PredictedDelta  float64 `json:"predicted_delta"`
	PreviousEmotion float64 `json:"previous_emotion"`
	NewEmotion      float64 `json:"new_emotion"`
	ActionName      string  `json:"action_name"`
}

// PerformCareAction runs one care action for the user's animal in the given
// slot. Validation failures surface before any write; once the charge has
// happened, any later failure rolls the whole transaction back, charge
// included.
func (s *CareService) PerformCareAction(ctx context.Context, userID uuid.UUID, slot int, actionID uint) (*CareResult, error) {
	var result *CareResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		animals := s.animals.WithTx(tx)
		logs := s.logs.WithTx(tx)

		// Load. The composite-key fetch doubles as the ownership check: an
		// animal owned by someone else is indistinguishable from a missing one.
		animal, err := animals.GetBySlotForUpdate(userID, slot)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFound("animal not found")
			}
			return err
		}
		action, err := s.actions.WithTx(tx).GetByID(actionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFound("action not found")
			}
			return err
		}

		// Validate.
		if animal.IsRunaway {
			return domain.InvalidState("cannot act while running away")
		}
		if action.EvolutionStage != animal.EvolutionStage {
			return domain.InvalidState("action does not match evolution stage")
		}
		if animal.CurrentEmotion.GreaterThanOrEqual(emotionMax) {
			return domain.InvalidState("already at maximum")
		}

		// Charge.
		if action.Price > 0 {
			if _, err := s.ledger.Apply(tx, userID, -action.Price, domain.SourceCare); err != nil {
				return err
			}
		}

		// Snapshot pre-action state.
		now := time.Now().In(s.loc)
		prevEmotion := animal.CurrentEmotion
		prevBias := animal.UserPatternBias
		daysSince, err := s.daysSinceLastCare(logs, userID, slot, now)
		if err != nil {
			return err
		}

		// Feature vector: the same-day action count is scoped to the action's
		// category, counted from local midnight.
		count, err := logs.CountCategorySince(userID, slot, action.Category, dayStart(now, s.loc))
		if err != nil {
			return err
		}
		features := emotion.FeatureVector{
			CurrentEmotion:    int(prevEmotion.IntPart()),
			ActionCount:       int(count),
			UserPatternBias:   prevBias.InexactFloat64(),
			DaysSinceLastCare: daysSince,
		}
		features.SetSpecies(domain.SpeciesForSlot[slot])
		features.SetAction(action.Category, action.ActionLevel)

		delta, err := s.predictor.Predict(ctx, features)
		if err != nil {
			log.WithError(err).Error("emotion prediction failed")
			return domain.Unavailable("emotion model unavailable")
		}

		// Apply the delta: round in the direction of the movement (ceiling
		// for a non-negative delta, floor for a negative one), then clamp.
		newEmotion := applyDelta(prevEmotion, delta)

		isRunaway := animal.IsRunaway
		runawayCount := animal.RunawayCount
		if newEmotion.Equal(emotionMin) {
			isRunaway = true
			runawayCount++
		}

		update := repository.CareUpdate{
			CurrentEmotion:    newEmotion,
			EvolutionStage:    domain.EvolutionStageFor(newEmotion.IntPart()),
			IsRunaway:         isRunaway,
			RunawayCount:      runawayCount,
			DaysSinceLastCare: 0,
		}
		if err := animals.ApplyCareUpdate(userID, slot, update); err != nil {
			return err
		}

		if err := s.Redistribute(tx, userID, slot, s.transferRate); err != nil {
			return err
		}

		predicted := decimal.NewFromFloat(delta).Round(2)
		entry := &models.CareLog{
			UserID:            userID,
			Slot:              slot,
			ActionID:          action.ActionID,
			EmotionBefore:     prevEmotion,
			EmotionAfter:      newEmotion,
			PredictedDelta:    predicted,
			ActualDelta:       newEmotion.Sub(prevEmotion),
			UserPatternBias:   prevBias,
			DaysSinceLastCare: daysSince,
			PerformedAt:       now,
		}
		if err := logs.Create(entry); err != nil {
			return err
		}

		result = &CareResult{
			PredictedDelta:  predicted.InexactFloat64(),
			PreviousEmotion: prevEmotion.InexactFloat64(),
			NewEmotion:      newEmotion.InexactFloat64(),
			ActionName:      action.Name,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// applyDelta adds the predicted delta to the previous emotion, rounds toward
// the movement direction and clamps to the emotion bounds.
func applyDelta(prev decimal.Decimal, delta float64) decimal.Decimal {
	raw := prev.Add(decimal.NewFromFloat(delta))
	var rounded decimal.Decimal
	if delta < 0 {
		rounded = raw.Floor()
	} else {
		rounded = raw.Ceil()
	}
	if rounded.LessThan(emotionMin) {
		return emotionMin
	}
	if rounded.GreaterThan(emotionMax) {
		return emotionMax
	}
	return rounded
}

// daysSinceLastCare derives the elapsed-care-days snapshot from the most
// recent care log, 0 when the animal has never been cared for.
func (s *CareService) daysSinceLastCare(logs *repository.CareLogRepository, userID uuid.UUID, slot int, now time.Time) (int, error) {
	latest, err := logs.Latest(userID, slot)
	if err != nil {
		return 0, err
	}
	if latest == nil {
		return 0, nil
	}
	return daysBetween(latest.PerformedAt, now, s.loc), nil
}

// ListActions returns the catalog rows for a category and evolution stage.
func (s *CareService) ListActions(ctx context.Context, category string, stage int) ([]models.Action, error) {
	if !validCategory(category) {
		return nil, domain.InvalidState("unknown category %q", category)
	}
	return s.actions.ListByCategoryAndStage(category, stage)
}

// ResultMessage picks the animal's reaction line for a predicted delta:
// level 1 below zero, level 2 up to +5, level 3 above.
func (s *CareService) ResultMessage(ctx context.Context, category string, predictedDelta float64) (string, error) {
	if !validCategory(category) {
		return "", domain.InvalidState("unknown category %q", category)
	}
	level := 2
	switch {
	case predictedDelta < 0:
		level = 1
	case predictedDelta > 5:
		level = 3
	}
	msg, err := s.actions.MessageByCategoryAndLevel(category, level)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.NotFound("no message for category %q level %d", category, level)
		}
		return "", err
	}
	return msg.Message, nil
}

func validCategory(category string) bool {
	for _, c := range domain.Categories {
		if c == category {
			return true
		}
	}
	return false
}
