package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/budget_tracker/internal/apperrors"
	"github.com/SscSPs/budget_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_tracker/internal/core/ports/services"
	"github.com/SscSPs/budget_tracker/internal/dto"
	"github.com/shopspring/decimal"
)

// DefaultBudgetCeiling is used for owners that never stored a ceiling.
var DefaultBudgetCeiling = decimal.NewFromInt(20000)

type budgetService struct {
	BaseService
	budgetRepo     portsrepo.BudgetRepository
	defaultCeiling decimal.Decimal
	now            func() time.Time
}

// BudgetServiceOption is a functional option for configuring the budget service
type BudgetServiceOption func(*budgetService)

// WithDefaultCeiling overrides DefaultBudgetCeiling. Non-positive values are ignored.
func WithDefaultCeiling(ceiling decimal.Decimal) BudgetServiceOption {
	return func(s *budgetService) {
		if ceiling.IsPositive() {
			s.defaultCeiling = ceiling
		}
	}
}

// WithBudgetClock overrides the clock used for UpdatedAt.
func WithBudgetClock(now func() time.Time) BudgetServiceOption {
	return func(s *budgetService) {
		s.now = now
	}
}

// NewBudgetService creates a new budget service with the provided options
func NewBudgetService(repo portsrepo.BudgetRepository, options ...BudgetServiceOption) portssvc.BudgetSvc {
	svc := &budgetService{
		budgetRepo:     repo,
		defaultCeiling: DefaultBudgetCeiling,
		now:            time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BudgetSvc = (*budgetService)(nil)

// GetBudget returns the owner's stored ceiling, or the configured default marked IsDefault.
func (s *budgetService) GetBudget(ctx context.Context, ownerID string) (*domain.Budget, error) {
	if err := s.RequireOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	budget, err := s.budgetRepo.FindBudgetByOwner(ctx, ownerID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return &domain.Budget{OwnerID: ownerID, Ceiling: s.defaultCeiling, IsDefault: true}, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to load budget", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to load budget: %w", err)
	}
	return budget, nil
}

// SetBudget stores a new ceiling for the owner.
func (s *budgetService) SetBudget(ctx context.Context, ownerID string, req dto.SetBudgetRequest) (*domain.Budget, error) {
	if err := s.RequireOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	if !req.Ceiling.IsPositive() {
		return nil, fmt.Errorf("%w: ceiling must be greater than zero", apperrors.ErrValidation)
	}

	budget := domain.Budget{
		OwnerID:   ownerID,
		Ceiling:   req.Ceiling,
		UpdatedAt: s.now().UTC(),
	}
	if err := s.budgetRepo.UpsertBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to store budget", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to store budget: %w", err)
	}

	s.LogInfo(ctx, "Budget ceiling updated", slog.String("ceiling", budget.Ceiling.String()))
	return &budget, nil
}
