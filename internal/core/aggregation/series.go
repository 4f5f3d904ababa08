package aggregation

import (
	"fmt"
	"time"

	"github.com/SscSPs/budget_tracker/internal/apperrors"
	"github.com/SscSPs/budget_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultSeriesDays is the length of the trailing daily series.
const DefaultSeriesDays = 7

// MaxSeriesDays bounds the daily series to one (leap) year of buckets.
const MaxSeriesDays = 366

const dayKeyLayout = "2006-01-02"

// BuildDailySeries returns one bucket per calendar day for the days ending with the
// anchor's day, oldest first. Days are computed in the anchor's location and labelled
// with the short weekday name. All buckets are present even when empty.
func BuildDailySeries(transactions []domain.Transaction, anchor time.Time, days int) (domain.Series, error) {
	if days < 1 {
		return domain.Series{}, fmt.Errorf("%w: series length must be positive, got %d", apperrors.ErrInvalidConfig, days)
	}
	if days > MaxSeriesDays {
		return domain.Series{}, fmt.Errorf("%w: series length must be at most %d, got %d", apperrors.ErrInvalidConfig, MaxSeriesDays, days)
	}

	loc := anchor.Location()
	today := startOfDay(anchor)
	buckets := make([]domain.SeriesBucket, days)
	index := make(map[string]int, days)
	for i := range buckets {
		// AddDate keeps midnight across DST changes where adding 24h would not.
		day := today.AddDate(0, 0, i-(days-1))
		buckets[i] = domain.SeriesBucket{
			Label:   day.Format("Mon"),
			Date:    day,
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
		index[day.Format(dayKeyLayout)] = i
	}

	for _, txn := range transactions {
		i, ok := index[txn.OccurredAt.In(loc).Format(dayKeyLayout)]
		if !ok {
			continue
		}
		switch txn.Kind {
		case domain.Income:
			buckets[i].Income = buckets[i].Income.Add(txn.Amount)
		case domain.Expense:
			buckets[i].Expense = buckets[i].Expense.Add(txn.Amount)
		}
	}

	return domain.Series{Buckets: buckets, MaxValue: maxSeriesValue(buckets)}, nil
}

func maxSeriesValue(buckets []domain.SeriesBucket) decimal.Decimal {
	highest := decimal.Zero
	for _, b := range buckets {
		highest = decimal.Max(highest, b.Income, b.Expense)
	}
	return highest
}

// SeriesStart returns midnight of the oldest day a series of length days covers.
func SeriesStart(anchor time.Time, days int) time.Time {
	if days < 1 {
		days = DefaultSeriesDays
	}
	if days > MaxSeriesDays {
		days = MaxSeriesDays
	}
	return startOfDay(anchor).AddDate(0, 0, -(days - 1))
}
