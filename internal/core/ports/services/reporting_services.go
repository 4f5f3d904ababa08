package services

import (
	"context"

	"github.com/SscSPs/budget_tracker/internal/core/domain"
	"github.com/SscSPs/budget_tracker/internal/dto"
)

// ReportingService defines the dashboard reports computed over an owner's transactions
type ReportingService interface {
	// Summary returns totals, utilization, advisory, daily series and category breakdown.
	Summary(ctx context.Context, ownerID string, params dto.ReportParams) (*domain.AggregationResult, error)

	// DailySeries returns the trailing daily income/expense buckets ending at the anchor's day.
	DailySeries(ctx context.Context, ownerID string, params dto.ReportParams) (*domain.Series, error)

	// CategoryReport returns net totals per category for the period window.
	CategoryReport(ctx context.Context, ownerID string, params dto.ReportParams) (*domain.CategoryBreakdown, error)

	// CategoryDetail returns every transaction of one category and its net total.
	CategoryDetail(ctx context.Context, ownerID string, category string) (*domain.CategoryDetail, error)
}
