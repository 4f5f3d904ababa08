package aggregation

import (
	"fmt"
	"time"

	"github.com/SscSPs/budget_tracker/internal/apperrors"
	"github.com/SscSPs/budget_tracker/internal/core/domain"
)

// WindowBounds returns the elapsed part of the period containing anchor: Start is the
// beginning of the anchor's calendar day, week, month or year (in anchor's location)
// and End is the instant immediately after anchor.
func WindowBounds(period domain.Period, anchor time.Time, weekStart time.Weekday) (domain.Window, error) {
	if weekStart < time.Sunday || weekStart > time.Saturday {
		return domain.Window{}, fmt.Errorf("%w: invalid week start %d", apperrors.ErrInvalidConfig, weekStart)
	}

	loc := anchor.Location()
	y, m, d := anchor.Date()

	var start time.Time
	switch period {
	case domain.Daily:
		start = time.Date(y, m, d, 0, 0, 0, 0, loc)
	case domain.Weekly:
		offset := (int(anchor.Weekday()) - int(weekStart) + 7) % 7
		start = time.Date(y, m, d-offset, 0, 0, 0, 0, loc)
	case domain.Monthly:
		start = time.Date(y, m, 1, 0, 0, 0, 0, loc)
	case domain.Yearly:
		start = time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	default:
		return domain.Window{}, fmt.Errorf("%w: unknown period %q", apperrors.ErrInvalidConfig, period)
	}

	return domain.Window{Start: start, End: anchor.Add(time.Nanosecond)}, nil
}

// FilterByWindow returns the transactions with start <= OccurredAt < end, keeping input order.
func FilterByWindow(transactions []domain.Transaction, window domain.Window) []domain.Transaction {
	filtered := make([]domain.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if window.Contains(txn.OccurredAt) {
			filtered = append(filtered, txn)
		}
	}
	return filtered
}

// startOfDay is midnight of t's calendar day in t's location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
