package dto

import (
	"time"

	"github.com/SscSPs/budget_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetBudgetRequest sets the owner's spending ceiling.
type SetBudgetRequest struct {
	Ceiling decimal.Decimal `json:"ceiling"` // must be > 0
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	Ceiling   decimal.Decimal `json:"ceiling"`
	IsDefault bool            `json:"isDefault"`
	UpdatedAt *time.Time      `json:"updatedAt,omitempty"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse DTO.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	resp := BudgetResponse{Ceiling: b.Ceiling, IsDefault: b.IsDefault}
	if !b.UpdatedAt.IsZero() {
		updatedAt := b.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
