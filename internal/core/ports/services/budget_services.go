package services

import (
	"context"

	"github.com/SscSPs/budget_tracker/internal/core/domain"
	"github.com/SscSPs/budget_tracker/internal/dto"
)

// BudgetSvc manages the per-owner budget ceiling
type BudgetSvc interface {
	// GetBudget returns the owner's stored ceiling, or the configured default marked IsDefault.
	GetBudget(ctx context.Context, ownerID string) (*domain.Budget, error)

	// SetBudget stores a new ceiling for the owner.
	SetBudget(ctx context.Context, ownerID string, req dto.SetBudgetRequest) (*domain.Budget, error)
}
