package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/budget_tracker/internal/apperrors"
	"github.com/SscSPs/budget_tracker/internal/core/aggregation"
	"github.com/SscSPs/budget_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// ReportQuery holds the raw query parameters shared by the report endpoints.
type ReportQuery struct {
	Period        string `form:"period,default=monthly"`
	Anchor        string `form:"anchor"` // RFC3339 instant or YYYY-MM-DD (end of that day)
	TZ            string `form:"tz"`     // IANA zone name
	Category      string `form:"category"`
	BudgetCeiling string `form:"budgetCeiling"`
	Sort          bool   `form:"sort"`
	Days          int    `form:"days"`
}

// ReportParams is a ReportQuery after parsing and validation.
type ReportParams struct {
	Period         domain.Period
	Anchor         time.Time // already converted to the report location
	Category       *string
	BudgetCeiling  *decimal.Decimal // nil means "use the owner's budget"
	SortCategories bool
	SeriesDays     int
}

// ToParams parses the query. now and defaultLoc are used when anchor or tz are omitted.
func (q ReportQuery) ToParams(now time.Time, defaultLoc *time.Location) (ReportParams, error) {
	var params ReportParams

	period, err := domain.ParsePeriod(q.Period)
	if err != nil {
		return params, err
	}
	params.Period = period

	loc := defaultLoc
	if loc == nil {
		loc = time.UTC
	}
	if q.TZ != "" {
		loc, err = time.LoadLocation(q.TZ)
		if err != nil {
			return params, fmt.Errorf("%w: unknown time zone %q", apperrors.ErrInvalidConfig, q.TZ)
		}
	}

	params.Anchor, err = parseAnchor(q.Anchor, now, loc)
	if err != nil {
		return params, err
	}

	if c := strings.TrimSpace(q.Category); c != "" {
		params.Category = &c
	}

	if q.BudgetCeiling != "" {
		ceiling, err := decimal.NewFromString(q.BudgetCeiling)
		if err != nil {
			return params, fmt.Errorf("%w: budgetCeiling must be a decimal number", apperrors.ErrValidation)
		}
		if !ceiling.IsPositive() {
			return params, fmt.Errorf("%w: budgetCeiling must be positive", apperrors.ErrInvalidConfig)
		}
		params.BudgetCeiling = &ceiling
	}

	if q.Days < 0 {
		return params, fmt.Errorf("%w: days must be positive", apperrors.ErrInvalidConfig)
	}
	if q.Days > aggregation.MaxSeriesDays {
		return params, fmt.Errorf("%w: days must be at most %d", apperrors.ErrInvalidConfig, aggregation.MaxSeriesDays)
	}
	params.SeriesDays = q.Days
	params.SortCategories = q.Sort

	return params, nil
}

func parseAnchor(raw string, now time.Time, loc *time.Location) (time.Time, error) {
	if raw == "" {
		return now.In(loc), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.In(loc), nil
	}
	day, err := time.ParseInLocation(dateLayout, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: anchor must be RFC3339 or YYYY-MM-DD", apperrors.ErrValidation)
	}
	// A bare date reports on the whole of that day.
	return day.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
}

// SeriesBucketResponse is one day of the daily series.
type SeriesBucketResponse struct {
	Label   string          `json:"label"`
	Date    string          `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// DailySeriesResponse represents the daily income/expense bars.
type DailySeriesResponse struct {
	Buckets        []SeriesBucketResponse `json:"buckets"`
	MaxSeriesValue decimal.Decimal        `json:"maxSeriesValue"`
}

// CategoryTotalResponse is the net total of one category.
type CategoryTotalResponse struct {
	Category         string          `json:"category"`
	Net              decimal.Decimal `json:"net"`
	TransactionCount int             `json:"transactionCount"`
}

// CategoryBreakdownResponse represents the per-category report.
type CategoryBreakdownResponse struct {
	Categories []CategoryTotalResponse `json:"categories"`
	GrandTotal decimal.Decimal         `json:"grandTotal"`
}

// ReportSummaryResponse represents the dashboard summary.
type ReportSummaryResponse struct {
	Period             string                    `json:"period"`
	WindowStart        time.Time                 `json:"windowStart"`
	WindowEnd          time.Time                 `json:"windowEnd"`
	TotalIncome        decimal.Decimal           `json:"totalIncome"`
	TotalExpense       decimal.Decimal           `json:"totalExpense"`
	Balance            decimal.Decimal           `json:"balance"`
	BudgetCeiling      decimal.Decimal           `json:"budgetCeiling"`
	UtilizationPercent float64                   `json:"utilizationPercent"`
	AdvisoryThreshold  float64                   `json:"advisoryThreshold"`
	Advisory           string                    `json:"advisory"`
	Series             DailySeriesResponse       `json:"series"`
	ByCategory         CategoryBreakdownResponse `json:"byCategory"`
}

// ErrorWithResultResponse is returned when the store fails: the error is surfaced next to an empty result.
type ErrorWithResultResponse struct {
	Error  string `json:"error"`
	Result any    `json:"result"`
}

// ToDailySeriesResponse converts a domain.Series to its DTO.
func ToDailySeriesResponse(s domain.Series) DailySeriesResponse {
	resp := DailySeriesResponse{
		Buckets:        make([]SeriesBucketResponse, len(s.Buckets)),
		MaxSeriesValue: s.MaxValue,
	}
	for i, b := range s.Buckets {
		resp.Buckets[i] = SeriesBucketResponse{
			Label:   b.Label,
			Date:    b.Date.Format(dateLayout),
			Income:  b.Income,
			Expense: b.Expense,
		}
	}
	return resp
}

// ToCategoryBreakdownResponse converts a domain.CategoryBreakdown to its DTO.
func ToCategoryBreakdownResponse(b domain.CategoryBreakdown) CategoryBreakdownResponse {
	resp := CategoryBreakdownResponse{
		Categories: make([]CategoryTotalResponse, len(b.Categories)),
		GrandTotal: b.GrandTotal,
	}
	for i, c := range b.Categories {
		resp.Categories[i] = CategoryTotalResponse{
			Category:         c.Category,
			Net:              c.Net,
			TransactionCount: c.TransactionCount,
		}
	}
	return resp
}

// ToReportSummaryResponse converts an aggregation result to the summary DTO.
func ToReportSummaryResponse(r *domain.AggregationResult) ReportSummaryResponse {
	return ReportSummaryResponse{
		Period:             string(r.Period),
		WindowStart:        r.Window.Start,
		WindowEnd:          r.Window.End,
		TotalIncome:        r.Income,
		TotalExpense:       r.Expense,
		Balance:            r.Balance,
		BudgetCeiling:      r.BudgetCeiling,
		UtilizationPercent: r.UtilizationPercent.InexactFloat64(),
		AdvisoryThreshold:  r.AdvisoryThreshold.InexactFloat64(),
		Advisory:           string(r.Advisory),
		Series:             ToDailySeriesResponse(r.Series),
		ByCategory:         ToCategoryBreakdownResponse(r.ByCategory),
	}
}

// EmptyReportSummaryResponse is the zero-valued summary shown when data cannot be loaded.
func EmptyReportSummaryResponse(period domain.Period) ReportSummaryResponse {
	return ReportSummaryResponse{
		Period:     string(period),
		Advisory:   string(domain.AdvisoryLooksGood),
		Series:     DailySeriesResponse{Buckets: []SeriesBucketResponse{}},
		ByCategory: CategoryBreakdownResponse{Categories: []CategoryTotalResponse{}},
	}
}
