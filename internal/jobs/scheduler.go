// Package jobs runs the scheduled batch work: the midnight job that ages
// every animal's elapsed-care-day counter.
package jobs

import (
	"context"
	"time"

	"tamapet/internal/service"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Scheduler owns the cron runner. Jobs fire in the game timezone, so the
// midnight batch lands at the same wall-clock moment the attendance day
// rolls over.
type Scheduler struct {
	cron  *cron.Cron
	daily *service.DailyService
}

func NewScheduler(loc *time.Location, daily *service.DailyService) *Scheduler {
	return &Scheduler{
		cron:  cron.New(cron.WithLocation(loc)),
		daily: daily,
	}
}

// Start registers the jobs and launches the runner. It returns an error only
// when a cron expression fails to parse.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 0 * * *", s.runDaily); err != nil {
		return err
	}
	s.cron.Start()
	log.Info("scheduler started")
	return nil
}

// Stop halts scheduling and waits for any running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("scheduler stopped")
}

func (s *Scheduler) runDaily() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := s.daily.IncrementAllElapsedDays(ctx); err != nil {
		log.WithError(err).Error("daily batch failed")
	}
}
