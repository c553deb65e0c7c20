package billing

import (
	"errors"
	"fmt"
)

// ErrInvalidDiscount is returned for malformed discount tiers.
var ErrInvalidDiscount = errors.New("invalid discount")

const fullPricePercent = 100

// DiscountTier charges Percent of the raw total for groups whose size is
// within [MinSize, MaxSize].
type DiscountTier struct {
	MinSize int
	MaxSize int
	Percent int64
}

func (t DiscountTier) contains(size int) bool {
	return size >= t.MinSize && size <= t.MaxSize
}

var standardTiers = []DiscountTier{{MinSize: 3, MaxSize: 5, Percent: 70}}

// DiscountPolicy maps a group size to the percent of the raw total charged.
// The zero value is the standard policy: 70% for groups of 3 to 5.
type DiscountPolicy struct {
	tiers []DiscountTier
}

// StandardDiscounts returns the standard discount policy.
func StandardDiscounts() DiscountPolicy {
	return DiscountPolicy{}
}

// NewDiscountPolicy validates tiers. An empty tier list disables discounts.
func NewDiscountPolicy(tiers ...DiscountTier) (DiscountPolicy, error) {
	for i, t := range tiers {
		if t.MinSize < 1 || t.MaxSize < t.MinSize {
			return DiscountPolicy{}, fmt.Errorf("%w: tier %d has size range [%d, %d]", ErrInvalidDiscount, i, t.MinSize, t.MaxSize)
		}
		if t.Percent <= 0 || t.Percent > fullPricePercent {
			return DiscountPolicy{}, fmt.Errorf("%w: tier %d has percent %d", ErrInvalidDiscount, i, t.Percent)
		}
		for j := 0; j < i; j++ {
			if t.MinSize <= tiers[j].MaxSize && tiers[j].MinSize <= t.MaxSize {
				return DiscountPolicy{}, fmt.Errorf("%w: tiers %d and %d overlap", ErrInvalidDiscount, j, i)
			}
		}
	}

	if len(tiers) == 0 {
		return DiscountPolicy{tiers: []DiscountTier{}}, nil
	}
	return DiscountPolicy{tiers: append([]DiscountTier(nil), tiers...)}, nil
}

func (p DiscountPolicy) list() []DiscountTier {
	if p.tiers == nil {
		return standardTiers
	}
	return p.tiers
}

// Tiers returns a copy of the policy's tiers.
func (p DiscountPolicy) Tiers() []DiscountTier {
	return append([]DiscountTier(nil), p.list()...)
}

// PercentFor returns the percent charged for a group of the given size.
func (p DiscountPolicy) PercentFor(size int) int64 {
	for _, t := range p.list() {
		if t.contains(size) {
			return t.Percent
		}
	}
	return fullPricePercent
}

// Group returns a group rental priced under this policy.
func (p DiscountPolicy) Group(rentals ...SingleRental) GroupRental {
	return GroupRental{
		rentals:   append([]SingleRental(nil), rentals...),
		discounts: p,
	}
}
