package scheduler

import (
	"testing"

	"bike-rental-billing/internal/config"
	"bike-rental-billing/internal/jobs"
	"bike-rental-billing/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobRunner(t *testing.T, schedule string) *jobs.JobRunner {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.Scheduler.RefreshRateTable = schedule
	rates, err := service.BuildRates(cfg.Pricing.Plans, cfg.Pricing.Discounts)
	require.NoError(t, err)
	return jobs.NewJobRunner(nil, service.NewRateCatalog(rates), cfg)
}

func TestNewScheduler(t *testing.T) {
	t.Run("Registers refresh job", func(t *testing.T) {
		s, err := NewScheduler(newJobRunner(t, "0 */15 * * * *"))
		require.NoError(t, err)
		assert.True(t, s.IsRunning())

		s.Start()
		s.Stop()
	})

	t.Run("Invalid schedule", func(t *testing.T) {
		s, err := NewScheduler(newJobRunner(t, "every now and then"))
		assert.Error(t, err)
		assert.Nil(t, s)
	})
}
