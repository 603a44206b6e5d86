package service

import (
	"context"

	"tamapet/internal/repository"

	log "github.com/sirupsen/logrus"
)

// DailyService is the once-per-day batch that ages every animal's
// elapsed-care-day counter. There is no internal date guard; the scheduler
// owns the once-daily contract and the job must not be retried blindly.
type DailyService struct {
	animals *repository.AnimalRepository
}

func NewDailyService(animals *repository.AnimalRepository) *DailyService {
	return &DailyService{animals: animals}
}

func (s *DailyService) IncrementAllElapsedDays(ctx context.Context) (int64, error) {
	n, err := s.animals.IncrementAllElapsedDays()
	if err != nil {
		log.WithError(err).Error("elapsed-day increment failed")
		return 0, err
	}
	log.WithField("animals", n).Info("elapsed-care-day counters incremented")
	return n, nil
}
