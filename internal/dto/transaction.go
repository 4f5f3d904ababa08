package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/budget_tracker/internal/apperrors"
	"github.com/SscSPs/budget_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record an income or expense.
type CreateTransactionRequest struct {
	Kind       string          `json:"kind" binding:"required,txkind"`
	Title      string          `json:"title" binding:"max=200"`
	Category   string          `json:"category" binding:"required,max=64"`
	Amount     decimal.Decimal `json:"amount"`     // must be > 0, checked by the service
	OccurredAt *time.Time      `json:"occurredAt"` // Optional, defaults to now
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Kind          string          `json:"kind"`
	Title         string          `json:"title"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	OccurredAt    time.Time       `json:"occurredAt"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Category  string `form:"category"`
	Since     string `form:"since"` // RFC3339
	Limit     int    `form:"limit,default=50" binding:"min=1,max=500"`
	NextToken string `form:"nextToken"`
}

// ListTransactionsResponse wraps one page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToFilter converts query parameters into a store filter.
func (p ListTransactionsParams) ToFilter() (domain.TransactionFilter, error) {
	filter := domain.TransactionFilter{
		Limit:     p.Limit,
		NextToken: p.NextToken,
	}
	if c := strings.TrimSpace(p.Category); c != "" {
		filter.Category = &c
	}
	if p.Since != "" {
		since, err := time.Parse(time.RFC3339, p.Since)
		if err != nil {
			return domain.TransactionFilter{}, fmt.Errorf("%w: since must be RFC3339: %v", apperrors.ErrValidation, err)
		}
		filter.Since = &since
	}
	return filter, nil
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Kind:          string(txn.Kind),
		Title:         txn.Title,
		Category:      txn.Category,
		Amount:        txn.Amount,
		OccurredAt:    txn.OccurredAt,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain transactions, never returning nil.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return out
}

// CategoryListResponse lists the suggested category labels.
type CategoryListResponse struct {
	Kind       string   `json:"kind,omitempty"`
	Categories []string `json:"categories"`
}

// CategoryDetailResponse is the category screen: its transactions and their net total.
type CategoryDetailResponse struct {
	Category     string                `json:"category"`
	Net          decimal.Decimal       `json:"net"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ToCategoryDetailResponse converts a domain.CategoryDetail to its DTO.
func ToCategoryDetailResponse(d *domain.CategoryDetail) CategoryDetailResponse {
	return CategoryDetailResponse{
		Category:     d.Category,
		Net:          d.Net,
		Transactions: ToTransactionResponses(d.Transactions),
	}
}
