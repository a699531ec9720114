package domain

import (
	"github.com/shopspring/decimal"
)

// CategoryTotal is the summed spend for one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// SpendingSummary is the aggregated view of a transaction list: total
// expense spend plus the per-category breakdown sorted by total descending
// (ties keep first-seen order). Recomputed on every request, never cached.
type SpendingSummary struct {
	TotalSpent     decimal.Decimal
	CategoryTotals []CategoryTotal
	TopCategory    string
	TopAmount      decimal.Decimal
}

// Empty reports whether the summary covers no expenses at all. This is a
// valid terminal state for the analysis flow, not an error.
func (s SpendingSummary) Empty() bool {
	return len(s.CategoryTotals) == 0
}

// Insight is the /analyze_finance response body: one short observation and
// a list of concrete suggested actions.
type Insight struct {
	Insight string   `json:"insight"`
	Actions []string `json:"actions"`
}
