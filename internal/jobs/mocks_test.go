package jobs

import (
	"context"

	"bike-rental-billing/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockPricingRepo
type MockPricingRepo struct {
	mock.Mock
}

func (m *MockPricingRepo) ListPlans(ctx context.Context) ([]domain.PricingPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PricingPlan), args.Error(1)
}

func (m *MockPricingRepo) ListDiscountTiers(ctx context.Context) ([]domain.DiscountTier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DiscountTier), args.Error(1)
}
