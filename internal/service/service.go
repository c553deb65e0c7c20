package service

import (
	"context"

	"bike-rental-billing/internal/domain"
)

type PricingService interface {
	ListPlans(ctx context.Context) ([]domain.PricingPlan, error)
	PlanCost(ctx context.Context, planName string, durationSeconds int64) (*domain.Quote, error)
	SingleRentalBestPrice(ctx context.Context, durationSeconds int64) (*domain.Quote, error)
	GroupRentalBestPrice(ctx context.Context, durationsSeconds []int64) (*domain.Quote, error)
}
