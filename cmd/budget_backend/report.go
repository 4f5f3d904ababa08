package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/SscSPs/budget_tracker/internal/apperrors"
	"github.com/SscSPs/budget_tracker/internal/core/aggregation"
	"github.com/SscSPs/budget_tracker/internal/core/domain"
	"github.com/SscSPs/budget_tracker/internal/core/services"
	"github.com/SscSPs/budget_tracker/internal/dto"
	"github.com/SscSPs/budget_tracker/internal/platform/config"
	"github.com/SscSPs/budget_tracker/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type reportOptions struct {
	file      string
	query     dto.ReportQuery
	weekStart string
	threshold string
}

func newReportCmd() *cobra.Command {
	opts := reportOptions{}

	cmd := &cobra.Command{
		Use:     "report",
		Short:   "Summarize a JSON export of transactions without a database",
		Example: `  budget_backend report --file export.json --period weekly --anchor 2024-03-15 --ceiling 1500`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.OutOrStdout(), opts, time.Now())
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "JSON array of transactions (required)")
	cmd.Flags().StringVar(&opts.query.Period, "period", string(domain.Monthly), "daily, weekly, monthly or yearly")
	cmd.Flags().StringVar(&opts.query.Anchor, "anchor", "", "RFC3339 instant or YYYY-MM-DD, defaults to now")
	cmd.Flags().StringVar(&opts.query.TZ, "tz", "", "IANA time zone for calendar days, defaults to UTC")
	cmd.Flags().StringVar(&opts.query.BudgetCeiling, "ceiling", services.DefaultBudgetCeiling.String(), "budget ceiling")
	cmd.Flags().StringVar(&opts.query.Category, "category", "", "restrict the category breakdown to one label")
	cmd.Flags().BoolVar(&opts.query.Sort, "sort", false, "sort categories by magnitude")
	cmd.Flags().IntVar(&opts.query.Days, "days", aggregation.DefaultSeriesDays, "daily series length")
	cmd.Flags().StringVar(&opts.weekStart, "week-start", "sunday", "first day of the week")
	cmd.Flags().StringVar(&opts.threshold, "threshold", aggregation.DefaultAdvisoryThreshold.String(), "utilization percent that triggers the advisory")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runReport(out io.Writer, opts reportOptions, now time.Time) error {
	raw, err := os.ReadFile(opts.file)
	if err != nil {
		return fmt.Errorf("read transactions: %w", err)
	}

	transactions, err := decodeTransactions(raw)
	if err != nil {
		return err
	}

	cfg, err := buildReportConfig(opts, now)
	if err != nil {
		return err
	}

	result, err := aggregation.Aggregate(transactions, cfg)
	if err != nil {
		return err
	}

	return printReport(out, result)
}

// decodeTransactions parses and validates an export, as written by GET /transactions.
func decodeTransactions(raw []byte) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	if err := json.Unmarshal(raw, &transactions); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}
	for i := range transactions {
		// Exports carry no owner; one file is one person.
		if transactions[i].OwnerID == "" {
			transactions[i].OwnerID = "local"
		}
		if err := transactions[i].Validate(); err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
	}
	return transactions, nil
}

func buildReportConfig(opts reportOptions, now time.Time) (domain.ReportConfig, error) {
	params, err := opts.query.ToParams(now, time.UTC)
	if err != nil {
		return domain.ReportConfig{}, err
	}

	weekStart, err := config.ParseWeekday(opts.weekStart)
	if err != nil {
		return domain.ReportConfig{}, err
	}

	threshold, err := decimal.NewFromString(opts.threshold)
	if err != nil {
		return domain.ReportConfig{}, fmt.Errorf("%w: threshold must be a decimal number", apperrors.ErrInvalidConfig)
	}

	cfg := domain.ReportConfig{
		Period:            params.Period,
		Anchor:            params.Anchor,
		BudgetCeiling:     services.DefaultBudgetCeiling,
		WeekStart:         weekStart,
		SeriesDays:        params.SeriesDays,
		CategoryFilter:    params.Category,
		SortCategories:    params.SortCategories,
		AdvisoryThreshold: threshold,
	}
	if params.BudgetCeiling != nil {
		cfg.BudgetCeiling = *params.BudgetCeiling
	}
	return cfg, nil
}

func printReport(out io.Writer, r *domain.AggregationResult) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "Period\t%s\t%s .. %s\n", r.Period,
		r.Window.Start.Format(time.DateOnly), r.Window.End.Add(-time.Nanosecond).Format(time.DateOnly))
	fmt.Fprintf(w, "Income\t%s\n", utils.FormatAmount(r.Income))
	fmt.Fprintf(w, "Expense\t%s\n", utils.FormatAmount(r.Expense))
	fmt.Fprintf(w, "Balance\t%s\n", utils.FormatAmount(r.Balance))
	fmt.Fprintf(w, "Budget\t%s\t%s used\n", utils.FormatAmount(r.BudgetCeiling), utils.FormatPercent(r.UtilizationPercent))
	fmt.Fprintf(w, "Advisory\t%s\n", r.Advisory)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Day\tDate\tIncome\tExpense")
	for _, b := range r.Series.Buckets {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", b.Label, b.Date.Format(time.DateOnly),
			utils.FormatAmount(b.Income), utils.FormatAmount(b.Expense))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Category\tNet\tCount")
	for _, c := range r.ByCategory.Categories {
		fmt.Fprintf(w, "%s\t%s\t%d\n", c.Category, utils.FormatAmount(c.Net), c.TransactionCount)
	}
	fmt.Fprintf(w, "Total\t%s\n", utils.FormatAmount(r.ByCategory.GrandTotal))

	return w.Flush()
}
