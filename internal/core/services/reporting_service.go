package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/budget_tracker/internal/core/aggregation"
	"github.com/SscSPs/budget_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_tracker/internal/core/ports/services"
	"github.com/SscSPs/budget_tracker/internal/dto"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	transactionRepo   portsrepo.TransactionReader
	budgetSvc         portssvc.BudgetSvc
	weekStart         time.Weekday
	seriesDays        int
	advisoryThreshold decimal.Decimal
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithWeekStart sets the first day of a Weekly window.
func WithWeekStart(day time.Weekday) ReportingServiceOption {
	return func(s *reportingService) {
		s.weekStart = day
	}
}

// WithSeriesDays sets the default length of the daily series.
func WithSeriesDays(days int) ReportingServiceOption {
	return func(s *reportingService) {
		s.seriesDays = days
	}
}

// WithAdvisoryThreshold sets the utilization percent at which the advisory turns to caution.
func WithAdvisoryThreshold(threshold decimal.Decimal) ReportingServiceOption {
	return func(s *reportingService) {
		s.advisoryThreshold = threshold
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.TransactionReader, budgetSvc portssvc.BudgetSvc, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		transactionRepo:   repo,
		budgetSvc:         budgetSvc,
		weekStart:         time.Sunday,
		seriesDays:        aggregation.DefaultSeriesDays,
		advisoryThreshold: aggregation.DefaultAdvisoryThreshold,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// Summary returns totals, utilization, advisory, daily series and category breakdown.
func (s *reportingService) Summary(ctx context.Context, ownerID string, params dto.ReportParams) (*domain.AggregationResult, error) {
	if err := s.RequireOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	days := s.days(params)
	window, err := aggregation.WindowBounds(params.Period, params.Anchor, s.weekStart)
	if err != nil {
		return nil, err
	}
	since := earliest(window.Start, aggregation.SeriesStart(params.Anchor, days))

	var (
		ceiling decimal.Decimal
		txns    []domain.Transaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ceiling, err = s.resolveCeiling(gctx, ownerID, params.BudgetCeiling)
		return err
	})
	g.Go(func() error {
		var err error
		txns, err = s.loadSince(gctx, ownerID, since)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load report inputs",
			slog.String("owner_id", ownerID),
			slog.String("period", string(params.Period)))
		return nil, fmt.Errorf("failed to load report inputs: %w", err)
	}

	result, err := aggregation.Aggregate(txns, domain.ReportConfig{
		Period:            params.Period,
		Anchor:            params.Anchor,
		BudgetCeiling:     ceiling,
		WeekStart:         s.weekStart,
		SeriesDays:        days,
		CategoryFilter:    params.Category,
		SortCategories:    params.SortCategories,
		AdvisoryThreshold: s.advisoryThreshold,
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Summary report generated",
		slog.String("period", string(params.Period)),
		slog.String("window_start", window.Start.Format(time.RFC3339)),
		slog.Int("transaction_count", len(txns)),
		slog.String("utilization_percent", result.UtilizationPercent.StringFixed(2)))
	return result, nil
}

// DailySeries returns the trailing daily income/expense buckets ending at the anchor's day.
func (s *reportingService) DailySeries(ctx context.Context, ownerID string, params dto.ReportParams) (*domain.Series, error) {
	if err := s.RequireOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	days := s.days(params)
	txns, err := s.loadSince(ctx, ownerID, aggregation.SeriesStart(params.Anchor, days))
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for daily series", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to load daily series: %w", err)
	}

	series, err := aggregation.BuildDailySeries(txns, params.Anchor, days)
	if err != nil {
		return nil, err
	}

	s.LogDebug(ctx, "Daily series generated", slog.Int("days", days), slog.Int("transaction_count", len(txns)))
	return &series, nil
}

// CategoryReport returns net totals per category for the period window.
func (s *reportingService) CategoryReport(ctx context.Context, ownerID string, params dto.ReportParams) (*domain.CategoryBreakdown, error) {
	if err := s.RequireOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	window, err := aggregation.WindowBounds(params.Period, params.Anchor, s.weekStart)
	if err != nil {
		return nil, err
	}

	txns, err := s.loadSince(ctx, ownerID, window.Start)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for category report", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to load category report: %w", err)
	}

	var opts []aggregation.CategoryOption
	if params.Category != nil {
		opts = append(opts, aggregation.WithCategory(*params.Category))
	}
	if params.SortCategories {
		opts = append(opts, aggregation.SortByMagnitude())
	}
	breakdown := aggregation.GroupByCategory(aggregation.FilterByWindow(txns, window), opts...)

	s.LogDebug(ctx, "Category report generated", slog.Int("category_count", len(breakdown.Categories)))
	return &breakdown, nil
}

// CategoryDetail returns every transaction of one category and its net total.
func (s *reportingService) CategoryDetail(ctx context.Context, ownerID string, category string) (*domain.CategoryDetail, error) {
	if err := s.RequireOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	txns, _, err := s.transactionRepo.FindTransactionsForOwner(ctx, ownerID, domain.TransactionFilter{Category: &category})
	if err != nil {
		s.LogError(ctx, err, "Failed to load category transactions", slog.String("category", category))
		return nil, fmt.Errorf("failed to load category %s: %w", category, err)
	}

	breakdown := aggregation.GroupByCategory(txns, aggregation.WithCategory(category))
	net, _ := breakdown.Net(category)

	return &domain.CategoryDetail{
		Category:     category,
		Transactions: txns,
		Net:          net,
	}, nil
}

func (s *reportingService) resolveCeiling(ctx context.Context, ownerID string, override *decimal.Decimal) (decimal.Decimal, error) {
	if override != nil {
		return *override, nil
	}
	budget, err := s.budgetSvc.GetBudget(ctx, ownerID)
	if err != nil {
		return decimal.Zero, err
	}
	return budget.Ceiling, nil
}

func (s *reportingService) loadSince(ctx context.Context, ownerID string, since time.Time) ([]domain.Transaction, error) {
	txns, _, err := s.transactionRepo.FindTransactionsForOwner(ctx, ownerID, domain.TransactionFilter{Since: &since})
	return txns, err
}

func (s *reportingService) days(params dto.ReportParams) int {
	if params.SeriesDays > 0 {
		return params.SeriesDays
	}
	return s.seriesDays
}

func earliest(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
