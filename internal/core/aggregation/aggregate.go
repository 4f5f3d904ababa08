package aggregation

import (
	"fmt"

	"github.com/SscSPs/budget_tracker/internal/apperrors"
	"github.com/SscSPs/budget_tracker/internal/core/domain"
)

// Aggregate computes the full AggregationResult for cfg.
//
// Totals, utilization and the category breakdown cover the transactions inside the
// period window. The daily series covers the trailing SeriesDays regardless of the
// period so the chart is always populated.
func Aggregate(transactions []domain.Transaction, cfg domain.ReportConfig) (*domain.AggregationResult, error) {
	if !cfg.Period.IsValid() {
		return nil, fmt.Errorf("%w: unknown period %q", apperrors.ErrInvalidConfig, cfg.Period)
	}
	if cfg.SeriesDays < 0 {
		return nil, fmt.Errorf("%w: series length must not be negative, got %d", apperrors.ErrInvalidConfig, cfg.SeriesDays)
	}
	if cfg.SeriesDays > MaxSeriesDays {
		return nil, fmt.Errorf("%w: series length must be at most %d, got %d", apperrors.ErrInvalidConfig, MaxSeriesDays, cfg.SeriesDays)
	}
	if cfg.AdvisoryThreshold.IsNegative() {
		return nil, fmt.Errorf("%w: advisory threshold must not be negative", apperrors.ErrInvalidConfig)
	}

	seriesDays := cfg.SeriesDays
	if seriesDays == 0 {
		seriesDays = DefaultSeriesDays
	}
	threshold := cfg.AdvisoryThreshold
	if threshold.IsZero() {
		threshold = DefaultAdvisoryThreshold
	}

	window, err := WindowBounds(cfg.Period, cfg.Anchor, cfg.WeekStart)
	if err != nil {
		return nil, err
	}

	inWindow := FilterByWindow(transactions, window)
	totals := AggregateTotals(inWindow)

	utilization, err := ComputeUtilization(totals.Expense, cfg.BudgetCeiling)
	if err != nil {
		return nil, err
	}

	series, err := BuildDailySeries(transactions, cfg.Anchor, seriesDays)
	if err != nil {
		return nil, err
	}

	var categoryOpts []CategoryOption
	if cfg.CategoryFilter != nil {
		categoryOpts = append(categoryOpts, WithCategory(*cfg.CategoryFilter))
	}
	if cfg.SortCategories {
		categoryOpts = append(categoryOpts, SortByMagnitude())
	}

	return &domain.AggregationResult{
		Period:             cfg.Period,
		Window:             window,
		Totals:             totals,
		BudgetCeiling:      cfg.BudgetCeiling,
		UtilizationPercent: utilization,
		AdvisoryThreshold:  threshold,
		Advisory:           Advise(utilization, threshold),
		Series:             series,
		ByCategory:         GroupByCategory(inWindow, categoryOpts...),
	}, nil
}
