package domain

type PricingPlan struct {
	Name                string `json:"name" yaml:"name"`
	UnitPrice           int64  `json:"unit_price" yaml:"unit_price"`
	UnitDurationSeconds int64  `json:"unit_duration_seconds" yaml:"unit_duration_seconds"`
}

// DiscountTier charges Percent of the raw total for group sizes in [MinSize, MaxSize].
type DiscountTier struct {
	MinSize int   `json:"min_size" yaml:"min_size"`
	MaxSize int   `json:"max_size" yaml:"max_size"`
	Percent int64 `json:"percent" yaml:"percent"`
}
