package billing

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDuration is returned for zero or negative rental durations.
var ErrInvalidDuration = errors.New("invalid duration")

// ValidateDuration reports whether d can be billed.
func ValidateDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration=%s is not legal: %w", d, ErrInvalidDuration)
	}
	return nil
}

// Plan is a pricing rule: a price charged for every started unit of time.
type Plan struct {
	name         string
	unitPrice    int64
	unitDuration time.Duration
}

// Standard plans
var (
	ByHour = NewPlan("ByHour", 5, time.Hour)
	ByDay  = NewPlan("ByDay", 20, 24*time.Hour)
	ByWeek = NewPlan("ByWeek", 60, 7*24*time.Hour)
)

// NewPlan creates a plan. Use RateTable validation to reject unusable plans.
func NewPlan(name string, unitPrice int64, unitDuration time.Duration) Plan {
	return Plan{name: name, unitPrice: unitPrice, unitDuration: unitDuration}
}

func (p Plan) Name() string { return p.name }
func (p Plan) UnitPrice() int64 { return p.unitPrice }
func (p Plan) UnitDuration() time.Duration { return p.unitDuration }

// Units returns the number of billable units in d, rounding any partial unit up.
func (p Plan) Units(d time.Duration) (int64, error) {
	if err := ValidateDuration(d); err != nil {
		return 0, err
	}
	if p.unitDuration <= 0 {
		return 0, fmt.Errorf("%w: plan %q has non-positive unit duration", ErrInvalidRateTable, p.name)
	}
	units := int64(d / p.unitDuration)
	if d%p.unitDuration > 0 {
		units++
	}
	return units, nil
}

// Cost returns the price of renting for d under this plan.
func (p Plan) Cost(d time.Duration) (int64, error) {
	units, err := p.Units(d)
	if err != nil {
		return 0, err
	}
	return units * p.unitPrice, nil
}

func (p Plan) String() string {
	return fmt.Sprintf("%s(%d per %s)", p.name, p.unitPrice, p.unitDuration)
}
