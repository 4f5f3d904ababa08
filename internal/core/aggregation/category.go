package aggregation

import (
	"sort"

	"github.com/SscSPs/budget_tracker/internal/core/domain"
	"github.com/SscSPs/budget_tracker/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

type categoryOptions struct {
	category        *string
	sortByMagnitude bool
}

// CategoryOption configures GroupByCategory.
type CategoryOption func(*categoryOptions)

// WithCategory restricts grouping to transactions whose category equals label.
func WithCategory(label string) CategoryOption {
	return func(o *categoryOptions) {
		o.category = &label
	}
}

// SortByMagnitude orders the result by absolute net total, largest first. Ties keep
// first-occurrence order.
func SortByMagnitude() CategoryOption {
	return func(o *categoryOptions) {
		o.sortByMagnitude = true
	}
}

// GroupByCategory nets transactions per category (income positive, expense negative)
// in order of first occurrence, and sums a grand total over every included transaction.
func GroupByCategory(transactions []domain.Transaction, opts ...CategoryOption) domain.CategoryBreakdown {
	var o categoryOptions
	for _, opt := range opts {
		opt(&o)
	}

	totals := make([]domain.CategoryTotal, 0)
	index := make(map[string]int)
	grand := decimal.Zero

	for _, txn := range transactions {
		if o.category != nil && txn.Category != *o.category {
			continue
		}
		signed, err := accounting.CalculateSignedAmount(txn)
		if err != nil {
			continue
		}

		i, ok := index[txn.Category]
		if !ok {
			i = len(totals)
			index[txn.Category] = i
			totals = append(totals, domain.CategoryTotal{Category: txn.Category, Net: decimal.Zero})
		}
		totals[i].Net = totals[i].Net.Add(signed)
		totals[i].TransactionCount++
		grand = grand.Add(signed)
	}

	if o.sortByMagnitude {
		sort.SliceStable(totals, func(a, b int) bool {
			return totals[a].Net.Abs().GreaterThan(totals[b].Net.Abs())
		})
	}

	return domain.CategoryBreakdown{Categories: totals, GrandTotal: grand}
}
