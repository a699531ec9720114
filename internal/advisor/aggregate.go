package advisor

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/smartlife/ai-backend/internal/domain"
)

// noExpensesInsight is returned when the caller has no expense records at
// all. It must short-circuit before any model work happens.
var noExpensesInsight = domain.Insight{
	Insight: "You have no recorded expenses yet.",
	Actions: []string{"Record your first expense to get started!"},
}

// AggregateSpending reduces raw transactions to a per-category breakdown.
// Only expense rows count; income rows are skipped. The breakdown is sorted
// by total descending with ties keeping first-seen category order, so the
// result is fully deterministic for a given input order.
func AggregateSpending(txs []domain.Transaction) (domain.SpendingSummary, error) {
	var summary domain.SpendingSummary

	totals := make(map[string]decimal.Decimal, len(txs))
	var order []string

	for i, tx := range txs {
		if tx.Amount.IsNegative() {
			return domain.SpendingSummary{}, aggregationErrorf("transaction %d: negative amount %s", i, tx.Amount)
		}
		switch tx.Kind {
		case domain.KindIncome:
			continue
		case domain.KindExpense:
			// counted below
		default:
			return domain.SpendingSummary{}, aggregationErrorf("transaction %d: unknown type %q", i, tx.Kind)
		}

		if _, seen := totals[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
		summary.TotalSpent = summary.TotalSpent.Add(tx.Amount)
	}

	if len(order) == 0 {
		// No expenses: valid terminal state, the caller serves the sentinel.
		return summary, nil
	}

	summary.CategoryTotals = make([]domain.CategoryTotal, 0, len(order))
	for _, cat := range order {
		summary.CategoryTotals = append(summary.CategoryTotals, domain.CategoryTotal{
			Category: cat,
			Total:    totals[cat],
		})
	}
	sort.SliceStable(summary.CategoryTotals, func(i, j int) bool {
		return summary.CategoryTotals[i].Total.GreaterThan(summary.CategoryTotals[j].Total)
	})

	summary.TopCategory = summary.CategoryTotals[0].Category
	summary.TopAmount = summary.CategoryTotals[0].Total

	return summary, nil
}
