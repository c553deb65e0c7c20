package jobs

import (
	"context"
	"fmt"
	"time"

	"bike-rental-billing/internal/logger"
)

const refreshTimeout = 30 * time.Second

// RefreshRateTable reloads plans and discount tiers from the database. A
// failed run keeps the current rates.
func (jr *JobRunner) RefreshRateTable() {
	_ = jr.runWithRecovery("RefreshRateTable", func() error {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		return jr.RefreshRates(ctx)
	})
}

// RefreshRates loads the rate table and swaps it into the catalog. An empty
// plans table falls back to the configured plans.
func (jr *JobRunner) RefreshRates(ctx context.Context) error {
	plans, err := jr.repo.ListPlans(ctx)
	if err != nil {
		return fmt.Errorf("failed to list plans: %w", err)
	}
	if len(plans) == 0 {
		logger.Warn("No active plans in database, using configured plans")
		plans = jr.config.Pricing.Plans
	}

	tiers, err := jr.repo.ListDiscountTiers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list discount tiers: %w", err)
	}

	if err := jr.catalog.Replace(plans, tiers); err != nil {
		return fmt.Errorf("rejected rate table: %w", err)
	}

	logger.Info("Rate table refreshed", "plans", len(plans), "discount_tiers", len(tiers))
	return nil
}
