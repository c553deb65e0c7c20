package service

import (
	"sync/atomic"
	"time"

	"bike-rental-billing/internal/billing"
	"bike-rental-billing/internal/domain"
)

// Rates is an immutable snapshot of the rate table and discount policy.
type Rates struct {
	Table     billing.RateTable
	Discounts billing.DiscountPolicy
}

// BuildRates converts config or database records into a validated snapshot.
// Nil plans or tiers select the standard ones; an empty, non-nil tier list
// disables group discounts.
func BuildRates(plans []domain.PricingPlan, tiers []domain.DiscountTier) (*Rates, error) {
	rates := &Rates{
		Table:     billing.StandardRates(),
		Discounts: billing.StandardDiscounts(),
	}

	if len(plans) > 0 {
		billingPlans := make([]billing.Plan, 0, len(plans))
		for _, p := range plans {
			billingPlans = append(billingPlans, billing.NewPlan(p.Name, p.UnitPrice, time.Duration(p.UnitDurationSeconds)*time.Second))
		}
		table, err := billing.NewRateTable(billingPlans...)
		if err != nil {
			return nil, err
		}
		rates.Table = table
	}

	if tiers != nil {
		billingTiers := make([]billing.DiscountTier, 0, len(tiers))
		for _, t := range tiers {
			billingTiers = append(billingTiers, billing.DiscountTier{MinSize: t.MinSize, MaxSize: t.MaxSize, Percent: t.Percent})
		}
		policy, err := billing.NewDiscountPolicy(billingTiers...)
		if err != nil {
			return nil, err
		}
		rates.Discounts = policy
	}

	return rates, nil
}

// RateCatalog holds the current Rates. Snapshots are swapped, never mutated.
type RateCatalog struct {
	current atomic.Pointer[Rates]
}

func NewRateCatalog(rates *Rates) *RateCatalog {
	c := &RateCatalog{}
	c.current.Store(rates)
	return c
}

func (c *RateCatalog) Current() *Rates {
	return c.current.Load()
}

// Replace validates the records and swaps them in. The current snapshot is
// kept when validation fails.
func (c *RateCatalog) Replace(plans []domain.PricingPlan, tiers []domain.DiscountTier) error {
	rates, err := BuildRates(plans, tiers)
	if err != nil {
		return err
	}
	c.current.Store(rates)
	return nil
}
