package billing

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRateTable is returned when a rate table cannot price durations.
var ErrInvalidRateTable = errors.New("invalid rate table")

var standardPlans = []Plan{ByHour, ByDay, ByWeek}

// RateTable is an ordered, immutable set of plans. The zero value is the
// standard ByHour/ByDay/ByWeek table.
type RateTable struct {
	plans []Plan
}

// StandardRates returns the standard rate table.
func StandardRates() RateTable {
	return RateTable{}
}

// NewRateTable validates plans and returns a table holding a copy of them.
func NewRateTable(plans ...Plan) (RateTable, error) {
	if len(plans) == 0 {
		return RateTable{}, fmt.Errorf("%w: at least one plan is required", ErrInvalidRateTable)
	}

	seen := make(map[string]bool, len(plans))
	for _, p := range plans {
		if p.name == "" {
			return RateTable{}, fmt.Errorf("%w: plan name is required", ErrInvalidRateTable)
		}
		if seen[p.name] {
			return RateTable{}, fmt.Errorf("%w: duplicate plan %q", ErrInvalidRateTable, p.name)
		}
		if p.unitDuration <= 0 {
			return RateTable{}, fmt.Errorf("%w: plan %q has non-positive unit duration", ErrInvalidRateTable, p.name)
		}
		if p.unitPrice < 0 {
			return RateTable{}, fmt.Errorf("%w: plan %q has negative unit price", ErrInvalidRateTable, p.name)
		}
		seen[p.name] = true
	}

	return RateTable{plans: append([]Plan(nil), plans...)}, nil
}

func (t RateTable) list() []Plan {
	if len(t.plans) == 0 {
		return standardPlans
	}
	return t.plans
}

// Plans returns the table's plans in evaluation order.
func (t RateTable) Plans() []Plan {
	return append([]Plan(nil), t.list()...)
}

// Plan looks up a plan by name.
func (t RateTable) Plan(name string) (Plan, bool) {
	for _, p := range t.list() {
		if p.name == name {
			return p, true
		}
	}
	return Plan{}, false
}

// BestPlanFor returns the cheapest plan for d and its cost. Ties go to the
// plan listed first.
func (t RateTable) BestPlanFor(d time.Duration) (Plan, int64, error) {
	var (
		best     Plan
		bestCost int64
	)
	for i, p := range t.list() {
		cost, err := p.Cost(d)
		if err != nil {
			return Plan{}, 0, err
		}
		if i == 0 || cost < bestCost {
			best, bestCost = p, cost
		}
	}
	return best, bestCost, nil
}

// BestPriceFor returns the minimum cost of d across all plans.
func (t RateTable) BestPriceFor(d time.Duration) (int64, error) {
	_, cost, err := t.BestPlanFor(d)
	return cost, err
}

// Rent validates d and returns a single rental priced by this table. The
// best plan is fixed at this point.
func (t RateTable) Rent(d time.Duration) (SingleRental, error) {
	plan, cost, err := t.BestPlanFor(d)
	if err != nil {
		return SingleRental{}, err
	}
	return SingleRental{duration: d, plan: plan, price: cost}, nil
}
