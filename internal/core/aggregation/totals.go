package aggregation

import (
	"fmt"

	"github.com/SscSPs/budget_tracker/internal/apperrors"
	"github.com/SscSPs/budget_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultAdvisoryThreshold is the utilization percent from which spending is flagged.
var DefaultAdvisoryThreshold = decimal.NewFromInt(50)

var hundred = decimal.NewFromInt(100)

// AggregateTotals sums amounts per kind. Balance is always Income - Expense.
func AggregateTotals(transactions []domain.Transaction) domain.Totals {
	income := decimal.Zero
	expense := decimal.Zero
	for _, txn := range transactions {
		switch txn.Kind {
		case domain.Income:
			income = income.Add(txn.Amount)
		case domain.Expense:
			expense = expense.Add(txn.Amount)
		}
	}
	return domain.Totals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// ComputeUtilization returns totalExpense / budgetCeiling * 100. The value is not
// clamped; anything above 100 means the budget is exceeded.
func ComputeUtilization(totalExpense, budgetCeiling decimal.Decimal) (decimal.Decimal, error) {
	if !budgetCeiling.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: budget ceiling must be positive, got %s", apperrors.ErrInvalidConfig, budgetCeiling)
	}
	return totalExpense.Mul(hundred).Div(budgetCeiling), nil
}

// Advise maps a utilization percent to the dashboard hint. The percent is rounded to
// a whole number first, matching how it is displayed. A zero threshold means
// DefaultAdvisoryThreshold.
func Advise(utilizationPercent, threshold decimal.Decimal) domain.Advisory {
	if threshold.IsZero() {
		threshold = DefaultAdvisoryThreshold
	}
	if utilizationPercent.Round(0).GreaterThanOrEqual(threshold) {
		return domain.AdvisoryCareful
	}
	return domain.AdvisoryLooksGood
}
