package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/budget_tracker/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Period is the reporting granularity used to bound aggregation windows.
type Period string

const (
	Daily   Period = "daily"
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
	Yearly  Period = "yearly"
)

// IsValid reports whether p is one of the known periods.
func (p Period) IsValid() bool {
	switch p {
	case Daily, Weekly, Monthly, Yearly:
		return true
	}
	return false
}

// ParsePeriod accepts the period names case-insensitively. "year" is accepted as an
// alias for Yearly since clients label the tab that way.
func ParsePeriod(s string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	if p == "year" {
		p = Yearly
	}
	if !p.IsValid() {
		return "", fmt.Errorf("%w: unknown period %q", apperrors.ErrInvalidConfig, s)
	}
	return p, nil
}

// ReportConfig is the caller-built configuration for one aggregation.
type ReportConfig struct {
	Period        Period
	Anchor        time.Time       // "now" for the report; its Location defines calendar days
	BudgetCeiling decimal.Decimal // must be positive

	WeekStart         time.Weekday    // first day of a week, Sunday by default
	SeriesDays        int             // trailing days in the daily series, 7 when zero
	CategoryFilter    *string         // restrict ByCategory to one label
	SortCategories    bool            // order ByCategory by magnitude instead of first occurrence
	AdvisoryThreshold decimal.Decimal // utilization percent at which to advise caution, 50 when zero
}

// Window is a half-open [Start, End) interval.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls within the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Totals holds income, expense and their difference.
type Totals struct {
	Income  decimal.Decimal `json:"totalIncome"`
	Expense decimal.Decimal `json:"totalExpense"`
	Balance decimal.Decimal `json:"balance"`
}

// SeriesBucket is one calendar day of a daily series.
type SeriesBucket struct {
	Label   string          `json:"label"`
	Date    time.Time       `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Series is an ordered (oldest first) run of buckets plus the largest single value,
// which callers use to scale bars. A zero MaxValue means "draw empty bars".
type Series struct {
	Buckets  []SeriesBucket  `json:"buckets"`
	MaxValue decimal.Decimal `json:"maxSeriesValue"`
}

// CategoryTotal is the net signed total for one category label.
type CategoryTotal struct {
	Category         string          `json:"category"`
	Net              decimal.Decimal `json:"net"`
	TransactionCount int             `json:"transactionCount"`
}

// CategoryBreakdown groups net totals per category.
type CategoryBreakdown struct {
	Categories []CategoryTotal `json:"categories"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
}

// Net returns the net total for category and whether it was present.
func (b CategoryBreakdown) Net(category string) (decimal.Decimal, bool) {
	for _, c := range b.Categories {
		if c.Category == category {
			return c.Net, true
		}
	}
	return decimal.Zero, false
}

// AsMap returns the breakdown keyed by category label.
func (b CategoryBreakdown) AsMap() map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(b.Categories))
	for _, c := range b.Categories {
		m[c.Category] = c.Net
	}
	return m
}

// Advisory is the spending hint shown next to budget utilization.
type Advisory string

const (
	AdvisoryLooksGood Advisory = "looks_good"
	AdvisoryCareful   Advisory = "be_careful"
)

// AggregationResult is the derived, never persisted, view over a transaction set.
type AggregationResult struct {
	Period             Period            `json:"period"`
	Window             Window            `json:"window"`
	Totals                               // totalIncome, totalExpense, balance
	BudgetCeiling      decimal.Decimal   `json:"budgetCeiling"`
	UtilizationPercent decimal.Decimal   `json:"utilizationPercent"`
	AdvisoryThreshold  decimal.Decimal   `json:"advisoryThreshold"`
	Advisory           Advisory          `json:"advisory"`
	Series             Series            `json:"series"`
	ByCategory         CategoryBreakdown `json:"byCategory"`
}

// CategoryDetail lists an owner's transactions for one label together with their net total.
type CategoryDetail struct {
	Category     string          `json:"category"`
	Transactions []Transaction   `json:"transactions"`
	Net          decimal.Decimal `json:"net"`
}
