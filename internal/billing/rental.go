package billing

import (
	"fmt"
	"time"
)

// Rental is anything that can be priced.
type Rental interface {
	BestPrice() float64
}

var (
	_ Rental = SingleRental{}
	_ Rental = GroupRental{}
)

// SingleRental is one bike rented for a fixed duration.
type SingleRental struct {
	duration time.Duration
	plan     Plan
	price    int64
}

// NewSingleRental returns a rental priced by the standard rate table.
func NewSingleRental(d time.Duration) (SingleRental, error) {
	return StandardRates().Rent(d)
}

func (r SingleRental) Duration() time.Duration { return r.duration }

// Price returns the cheapest cost for the rental across the table it was
// rented from. The zero SingleRental prices at 0.
func (r SingleRental) Price() int64 { return r.price }

// Plan returns the plan that yields Price. It reports false for the zero
// SingleRental.
func (r SingleRental) Plan() (Plan, bool) {
	return r.plan, r.duration > 0
}

func (r SingleRental) BestPrice() float64 {
	return float64(r.Price())
}

func (r SingleRental) String() string {
	return fmt.Sprintf("SingleRental(duration=%s)", r.duration)
}

// GroupRental is several bikes rented together.
type GroupRental struct {
	rentals   []SingleRental
	discounts DiscountPolicy
}

// NewGroupRental groups rentals under the standard discount policy.
func NewGroupRental(rentals ...SingleRental) GroupRental {
	return StandardDiscounts().Group(rentals...)
}

func (g GroupRental) Len() int { return len(g.rentals) }

// Rentals returns a copy of the grouped rentals in order.
func (g GroupRental) Rentals() []SingleRental {
	return append([]SingleRental(nil), g.rentals...)
}

// RawTotal is the undiscounted sum of member prices.
func (g GroupRental) RawTotal() int64 {
	var total int64
	for _, r := range g.rentals {
		total += r.Price()
	}
	return total
}

// DiscountPercent is the share of RawTotal charged for this group's size.
func (g GroupRental) DiscountPercent() int64 {
	return g.discounts.PercentFor(len(g.rentals))
}

// BestPrice returns RawTotal scaled by the group discount.
func (g GroupRental) BestPrice() float64 {
	return float64(g.RawTotal()*g.DiscountPercent()) / 100
}

func (g GroupRental) String() string {
	return fmt.Sprintf("GroupRental(rentals=%d)", len(g.rentals))
}
