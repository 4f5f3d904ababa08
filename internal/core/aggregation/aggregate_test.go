package aggregation_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/SscSPs/budget_tracker/internal/apperrors"
	"github.com/SscSPs/budget_tracker/internal/core/aggregation"
	"github.com/SscSPs/budget_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var anchor = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) // a Friday

func txn(kind domain.TransactionKind, category string, amount string, at time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID: category + "-" + amount,
		OwnerID:       "owner_1",
		Kind:          kind,
		Title:         category,
		Category:      category,
		Amount:        decimal.RequireFromString(amount),
		OccurredAt:    at,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]any{"want %s got %s", want, got.String()}, msgAndArgs...)...)
}

func TestAggregate_EmptyTransactions(t *testing.T) {
	for _, period := range []domain.Period{domain.Daily, domain.Weekly, domain.Monthly, domain.Yearly} {
		t.Run(string(period), func(t *testing.T) {
			result, err := aggregation.Aggregate(nil, domain.ReportConfig{
				Period:        period,
				Anchor:        anchor,
				BudgetCeiling: dec("20000"),
			})
			require.NoError(t, err)

			assert.True(t, result.Income.IsZero())
			assert.True(t, result.Expense.IsZero())
			assert.True(t, result.Balance.IsZero())
			assert.True(t, result.UtilizationPercent.IsZero())
			assert.Equal(t, domain.AdvisoryLooksGood, result.Advisory)
			assert.Len(t, result.Series.Buckets, aggregation.DefaultSeriesDays)
			assert.True(t, result.Series.MaxValue.IsZero())
			assert.Empty(t, result.ByCategory.Categories)
			assert.True(t, result.ByCategory.GrandTotal.IsZero())
		})
	}
}

func TestAggregate_DashboardScenario(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.Expense, "Food", "100", anchor.Add(-time.Hour)),
		txn(domain.Income, "Salary", "4000", anchor.AddDate(0, 0, -3)),
	}

	result, err := aggregation.Aggregate(txns, domain.ReportConfig{
		Period:        domain.Monthly,
		Anchor:        anchor,
		BudgetCeiling: dec("20000"),
	})
	require.NoError(t, err)

	assertDecimal(t, "4000", result.Income)
	assertDecimal(t, "100", result.Expense)
	assertDecimal(t, "3900", result.Balance)
	assertDecimal(t, "0.5", result.UtilizationPercent)
	assertDecimal(t, "20000", result.BudgetCeiling)
	assertDecimal(t, "50", result.AdvisoryThreshold)
	assert.Equal(t, domain.AdvisoryLooksGood, result.Advisory)

	require.Len(t, result.Series.Buckets, 7)
	assertDecimal(t, "4000", result.Series.Buckets[3].Income)
	assertDecimal(t, "100", result.Series.Buckets[6].Expense)
	assertDecimal(t, "4000", result.Series.MaxValue)

	byCategory := result.ByCategory.AsMap()
	assertDecimal(t, "-100", byCategory["Food"])
	assertDecimal(t, "4000", byCategory["Salary"])
	assertDecimal(t, "3900", result.ByCategory.GrandTotal)
}

func TestAggregate_DailyWindowExcludesEarlierDays(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.Expense, "Food", "100", anchor.Add(-time.Hour)),
		txn(domain.Income, "Salary", "4000", anchor.AddDate(0, 0, -3)),
	}

	result, err := aggregation.Aggregate(txns, domain.ReportConfig{
		Period:        domain.Daily,
		Anchor:        anchor,
		BudgetCeiling: dec("20000"),
	})
	require.NoError(t, err)

	assert.True(t, result.Income.IsZero())
	assertDecimal(t, "100", result.Expense)
	assertDecimal(t, "-100", result.Balance)
	// The series still covers the trailing week.
	assertDecimal(t, "4000", result.Series.Buckets[3].Income)
}

func TestAggregate_CategoryFilterAndSort(t *testing.T) {
	food := "Food"
	txns := []domain.Transaction{
		txn(domain.Expense, "Food", "26", anchor.Add(-2*time.Hour)),
		txn(domain.Expense, "Rent", "900", anchor.Add(-3*time.Hour)),
		txn(domain.Income, "Food", "10", anchor.Add(-4*time.Hour)),
	}

	filtered, err := aggregation.Aggregate(txns, domain.ReportConfig{
		Period:         domain.Weekly,
		Anchor:         anchor,
		BudgetCeiling:  dec("20000"),
		CategoryFilter: &food,
	})
	require.NoError(t, err)
	require.Len(t, filtered.ByCategory.Categories, 1)
	assertDecimal(t, "-16", filtered.ByCategory.Categories[0].Net)
	// Totals are not affected by the category filter.
	assertDecimal(t, "926", filtered.Expense)

	sorted, err := aggregation.Aggregate(txns, domain.ReportConfig{
		Period:         domain.Weekly,
		Anchor:         anchor,
		BudgetCeiling:  dec("20000"),
		SortCategories: true,
	})
	require.NoError(t, err)
	require.Len(t, sorted.ByCategory.Categories, 2)
	assert.Equal(t, "Rent", sorted.ByCategory.Categories[0].Category)
	assert.Equal(t, "Food", sorted.ByCategory.Categories[1].Category)
}

func TestAggregate_OverBudget(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.Expense, "Rent", "30000", anchor.Add(-time.Minute)),
	}

	result, err := aggregation.Aggregate(txns, domain.ReportConfig{
		Period:        domain.Yearly,
		Anchor:        anchor,
		BudgetCeiling: dec("20000"),
	})
	require.NoError(t, err)

	assertDecimal(t, "150", result.UtilizationPercent)
	assert.Equal(t, domain.AdvisoryCareful, result.Advisory)
}

func TestAggregate_CustomThreshold(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.Expense, "Food", "6000", anchor.Add(-time.Minute)),
	}

	result, err := aggregation.Aggregate(txns, domain.ReportConfig{
		Period:            domain.Monthly,
		Anchor:            anchor,
		BudgetCeiling:     dec("20000"),
		AdvisoryThreshold: dec("25"),
	})
	require.NoError(t, err)

	assertDecimal(t, "30", result.UtilizationPercent)
	assert.Equal(t, domain.AdvisoryCareful, result.Advisory)
}

func TestAggregate_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  domain.ReportConfig
	}{
		{name: "zero ceiling", cfg: domain.ReportConfig{Period: domain.Monthly, Anchor: anchor, BudgetCeiling: decimal.Zero}},
		{name: "negative ceiling", cfg: domain.ReportConfig{Period: domain.Monthly, Anchor: anchor, BudgetCeiling: dec("-1")}},
		{name: "unknown period", cfg: domain.ReportConfig{Period: "fortnightly", Anchor: anchor, BudgetCeiling: dec("100")}},
		{name: "negative series length", cfg: domain.ReportConfig{Period: domain.Daily, Anchor: anchor, BudgetCeiling: dec("100"), SeriesDays: -1}},
		{name: "oversized series length", cfg: domain.ReportConfig{Period: domain.Daily, Anchor: anchor, BudgetCeiling: dec("100"), SeriesDays: 1 << 50}},
		{name: "bad week start", cfg: domain.ReportConfig{Period: domain.Weekly, Anchor: anchor, BudgetCeiling: dec("100"), WeekStart: time.Weekday(9)}},
		{name: "negative threshold", cfg: domain.ReportConfig{Period: domain.Daily, Anchor: anchor, BudgetCeiling: dec("100"), AdvisoryThreshold: dec("-5")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := aggregation.Aggregate(nil, tt.cfg)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, apperrors.ErrInvalidConfig)
		})
	}
}
