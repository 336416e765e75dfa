package jobs

import (
	"database/sql"

	"stayhaven-backend/internal/config"
	"stayhaven-backend/internal/logger"
)

// JobRunner executes scheduled maintenance jobs against the database.
type JobRunner struct {
	db  *sql.DB
	cfg *config.Config
}

func NewJobRunner(db *sql.DB, cfg *config.Config) *JobRunner {
	return &JobRunner{db: db, cfg: cfg}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.cfg
}

// runWithRecovery shields the cron loop from a panicking job.
func runWithRecovery(name string, job func() error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("job panicked", "job", name, "panic", r)
		}
	}()

	logger.Info("job started", "job", name)
	if err := job(); err != nil {
		logger.Error("job failed", "job", name, "error", err)
		return
	}
	logger.Info("job finished", "job", name)
}
