package repository

import (
	"context"

	"bike-rental-billing/internal/domain"
)

type PricingRepository interface {
	ListPlans(ctx context.Context) ([]domain.PricingPlan, error)
	ListDiscountTiers(ctx context.Context) ([]domain.DiscountTier, error)
}
