package jobs

import (
	"thesishub-backend/internal/config"
	"thesishub-backend/internal/logger"
	"thesishub-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	access service.AccessService
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(access service.AccessService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		access: access,
		config: cfg,
	}
}

// Config exposes the runner's configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllSweeps runs both access sweeps (for manual execution)
func (jr *JobRunner) RunAllSweeps() {
	jr.SweepExpirations()
	jr.SweepExpiringSoon()
}
