package jobs

import (
	"fmt"
	"time"

	"bike-rental-billing/internal/config"
	"bike-rental-billing/internal/logger"
	"bike-rental-billing/internal/repository"
	"bike-rental-billing/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	repo    repository.PricingRepository
	catalog *service.RateCatalog
	config  *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(repo repository.PricingRepository, catalog *service.RateCatalog, cfg *config.Config) *JobRunner {
	return &JobRunner{
		repo:    repo,
		catalog: catalog,
		config:  cfg,
	}
}

// Config returns the configuration the jobs were built with
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery runs a job, turning a panic into a failed run, and logs
// the outcome
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func() error) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job panicked: %v", r)
		}
		logger.JobFinished(jobName, time.Since(start), err)
	}()

	logger.Info("Starting job", "job", jobName)
	return jobFunc()
}
