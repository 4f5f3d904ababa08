package repositories

import (
	"context"

	"github.com/SscSPs/budget_tracker/internal/core/domain"
)

// BudgetRepository defines persistence operations for per-owner budget ceilings.
type BudgetRepository interface {
	// FindBudgetByOwner returns apperrors.ErrNotFound when the owner never stored a ceiling.
	FindBudgetByOwner(ctx context.Context, ownerID string) (*domain.Budget, error)
	UpsertBudget(ctx context.Context, budget domain.Budget) error
}
