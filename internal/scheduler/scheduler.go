package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"stayhaven-backend/internal/jobs"
	"stayhaven-backend/internal/logger"
)

// Scheduler drives the periodic maintenance jobs.
type Scheduler struct {
	cron   *cron.Cron
	runner *jobs.JobRunner
}

func New(runner *jobs.JobRunner) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC), cron.WithSeconds()),
		runner: runner,
	}
}

// Start registers the cron entries and launches the scheduler loop.
func (s *Scheduler) Start() error {
	spec := s.runner.Config().Scheduler.CompletePastBookings
	if _, err := s.cron.AddFunc(spec, s.runner.CompletePastBookings); err != nil {
		return err
	}

	s.cron.Start()
	logger.Info("scheduler started", "complete_past_bookings", spec)
	return nil
}

// Stop halts the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("scheduler stopped")
}
