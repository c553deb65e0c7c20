package domain

import "time"

type QuoteKind string

const (
	QuoteKindPlan   QuoteKind = "PLAN"
	QuoteKindSingle QuoteKind = "SINGLE"
	QuoteKindGroup  QuoteKind = "GROUP"
)

type QuoteItem struct {
	DurationSeconds int64  `json:"duration_seconds"`
	PlanName        string `json:"plan_name"`
	Price           int64  `json:"price"`
}

// Quote is the priced answer to a pricing request. Quotes are not stored.
type Quote struct {
	ID              string      `json:"id"`
	Kind            QuoteKind   `json:"kind"`
	Items           []QuoteItem `json:"items"`
	RawTotal        int64       `json:"raw_total"`
	DiscountPercent int64       `json:"discount_percent"`
	Total           float64     `json:"total"`
	CreatedOn       time.Time   `json:"created_on"`
}
