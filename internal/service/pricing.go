package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"bike-rental-billing/internal/billing"
	"bike-rental-billing/internal/domain"
	"bike-rental-billing/internal/logger"

	"github.com/google/uuid"
)

var (
	ErrUnknownPlan        = errors.New("unknown pricing plan")
	ErrDurationOutOfRange = errors.New("duration out of range")
)

const maxDurationSeconds = math.MaxInt64 / int64(time.Second)

type pricingService struct {
	catalog *RateCatalog
	now     func() time.Time
}

func NewPricingService(catalog *RateCatalog) PricingService {
	return &pricingService{
		catalog: catalog,
		now:     time.Now,
	}
}

// toDuration checks the sign before scaling to nanoseconds.
func toDuration(seconds int64) (time.Duration, error) {
	if seconds <= 0 {
		return 0, fmt.Errorf("duration=%ds is not legal: %w", seconds, billing.ErrInvalidDuration)
	}
	if seconds > maxDurationSeconds {
		return 0, fmt.Errorf("%w: %d seconds", ErrDurationOutOfRange, seconds)
	}
	return time.Duration(seconds) * time.Second, nil
}

func (s *pricingService) newQuote(kind domain.QuoteKind) *domain.Quote {
	return &domain.Quote{
		ID:              uuid.New().String(),
		Kind:            kind,
		DiscountPercent: 100,
		CreatedOn:       s.now().UTC(),
	}
}

func (s *pricingService) ListPlans(ctx context.Context) ([]domain.PricingPlan, error) {
	plans := s.catalog.Current().Table.Plans()
	out := make([]domain.PricingPlan, 0, len(plans))
	for _, p := range plans {
		out = append(out, domain.PricingPlan{
			Name:                p.Name(),
			UnitPrice:           p.UnitPrice(),
			UnitDurationSeconds: int64(p.UnitDuration() / time.Second),
		})
	}
	return out, nil
}

func (s *pricingService) PlanCost(ctx context.Context, planName string, durationSeconds int64) (*domain.Quote, error) {
	logger.EnterMethod("pricingService.PlanCost", "plan", planName, "durationSeconds", durationSeconds)

	plan, ok := s.catalog.Current().Table.Plan(planName)
	if !ok {
		err := fmt.Errorf("%w: %q", ErrUnknownPlan, planName)
		logger.ExitMethodWithError("pricingService.PlanCost", err)
		return nil, err
	}

	d, err := toDuration(durationSeconds)
	if err != nil {
		logger.ExitMethodWithError("pricingService.PlanCost", err)
		return nil, err
	}

	cost, err := plan.Cost(d)
	if err != nil {
		logger.ExitMethodWithError("pricingService.PlanCost", err)
		return nil, err
	}

	quote := s.newQuote(domain.QuoteKindPlan)
	quote.Items = []domain.QuoteItem{{DurationSeconds: durationSeconds, PlanName: plan.Name(), Price: cost}}
	quote.RawTotal = cost
	quote.Total = float64(cost)

	logger.ExitMethod("pricingService.PlanCost", "quoteID", quote.ID, "total", quote.Total)
	return quote, nil
}

func (s *pricingService) SingleRentalBestPrice(ctx context.Context, durationSeconds int64) (*domain.Quote, error) {
	logger.EnterMethod("pricingService.SingleRentalBestPrice", "durationSeconds", durationSeconds)

	rental, err := s.rent(s.catalog.Current().Table, durationSeconds)
	if err != nil {
		logger.ExitMethodWithError("pricingService.SingleRentalBestPrice", err)
		return nil, err
	}

	quote := s.newQuote(domain.QuoteKindSingle)
	quote.Items = []domain.QuoteItem{itemFor(rental, durationSeconds)}
	quote.RawTotal = rental.Price()
	quote.Total = rental.BestPrice()

	logger.ExitMethod("pricingService.SingleRentalBestPrice", "quoteID", quote.ID, "total", quote.Total)
	return quote, nil
}

func (s *pricingService) GroupRentalBestPrice(ctx context.Context, durationsSeconds []int64) (*domain.Quote, error) {
	logger.EnterMethod("pricingService.GroupRentalBestPrice", "rentals", len(durationsSeconds))

	// One snapshot for the whole group so a concurrent refresh cannot mix tables.
	rates := s.catalog.Current()

	rentals := make([]billing.SingleRental, 0, len(durationsSeconds))
	items := make([]domain.QuoteItem, 0, len(durationsSeconds))
	for i, seconds := range durationsSeconds {
		rental, err := s.rent(rates.Table, seconds)
		if err != nil {
			err = fmt.Errorf("rental %d: %w", i, err)
			logger.ExitMethodWithError("pricingService.GroupRentalBestPrice", err)
			return nil, err
		}
		rentals = append(rentals, rental)
		items = append(items, itemFor(rental, seconds))
	}

	group := rates.Discounts.Group(rentals...)

	quote := s.newQuote(domain.QuoteKindGroup)
	quote.Items = items
	quote.RawTotal = group.RawTotal()
	quote.DiscountPercent = group.DiscountPercent()
	quote.Total = group.BestPrice()

	logger.ExitMethod("pricingService.GroupRentalBestPrice", "quoteID", quote.ID, "total", quote.Total)
	return quote, nil
}

func (s *pricingService) rent(table billing.RateTable, seconds int64) (billing.SingleRental, error) {
	d, err := toDuration(seconds)
	if err != nil {
		return billing.SingleRental{}, err
	}
	return table.Rent(d)
}

func itemFor(rental billing.SingleRental, seconds int64) domain.QuoteItem {
	item := domain.QuoteItem{DurationSeconds: seconds, Price: rental.Price()}
	if plan, ok := rental.Plan(); ok {
		item.PlanName = plan.Name()
	}
	return item
}
