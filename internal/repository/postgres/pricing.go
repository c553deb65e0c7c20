package postgres

import (
	"context"
	"database/sql"

	"bike-rental-billing/internal/domain"
	"bike-rental-billing/internal/logger"
	"bike-rental-billing/internal/repository"
)

type pricingRepository struct {
	db *sql.DB
}

func NewPricingRepository(db *sql.DB) repository.PricingRepository {
	return &pricingRepository{db: db}
}

func (r *pricingRepository) ListPlans(ctx context.Context) ([]domain.PricingPlan, error) {
	query := `SELECT name, unit_price, unit_duration_seconds FROM pricing_plans WHERE active = true ORDER BY position, name`
	logger.DatabaseCall("ListPlans", query)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("ListPlans", 0, err)
		return nil, err
	}
	defer rows.Close()

	var plans []domain.PricingPlan
	for rows.Next() {
		var p domain.PricingPlan
		if err := rows.Scan(&p.Name, &p.UnitPrice, &p.UnitDurationSeconds); err != nil {
			logger.DatabaseResult("ListPlans", 0, err)
			return nil, err
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		logger.DatabaseResult("ListPlans", 0, err)
		return nil, err
	}

	logger.DatabaseResult("ListPlans", len(plans), nil)
	return plans, nil
}

func (r *pricingRepository) ListDiscountTiers(ctx context.Context) ([]domain.DiscountTier, error) {
	query := `SELECT min_size, max_size, percent FROM pricing_discounts ORDER BY min_size`
	logger.DatabaseCall("ListDiscountTiers", query)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("ListDiscountTiers", 0, err)
		return nil, err
	}
	defer rows.Close()

	tiers := []domain.DiscountTier{}
	for rows.Next() {
		var t domain.DiscountTier
		if err := rows.Scan(&t.MinSize, &t.MaxSize, &t.Percent); err != nil {
			logger.DatabaseResult("ListDiscountTiers", 0, err)
			return nil, err
		}
		tiers = append(tiers, t)
	}
	if err := rows.Err(); err != nil {
		logger.DatabaseResult("ListDiscountTiers", 0, err)
		return nil, err
	}

	logger.DatabaseResult("ListDiscountTiers", len(tiers), nil)
	return tiers, nil
}
