package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/budget_tracker/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionKind tags a transaction as money coming in or going out.
type TransactionKind string

const (
	Income  TransactionKind = "income"
	Expense TransactionKind = "expense"
)

// IsValid reports whether k is one of the known kinds.
func (k TransactionKind) IsValid() bool {
	return k == Income || k == Expense
}

// ParseTransactionKind converts a user supplied string into a TransactionKind.
func ParseTransactionKind(s string) (TransactionKind, error) {
	k := TransactionKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", fmt.Errorf("%w: unknown transaction kind %q", apperrors.ErrValidation, s)
	}
	return k, nil
}

// Transaction is a single income or expense record belonging to exactly one owner.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	OwnerID       string          `json:"ownerID"`       // Owning user (Not Null)
	Kind          TransactionKind `json:"kind"`          // income or expense
	Title         string          `json:"title"`
	Category      string          `json:"category"`   // Open vocabulary
	Amount        decimal.Decimal `json:"amount"`     // Non-negative magnitude; sign comes from Kind
	OccurredAt    time.Time       `json:"occurredAt"` // Effective date, immutable
	CreatedAt     time.Time       `json:"createdAt"`
}

// Validate checks the invariants every stored transaction must hold.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.OwnerID) == "" {
		return fmt.Errorf("%w: owner ID is required", apperrors.ErrValidation)
	}
	if !t.Kind.IsValid() {
		return fmt.Errorf("%w: unknown transaction kind %q", apperrors.ErrValidation, t.Kind)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	if strings.TrimSpace(t.Category) == "" {
		return fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}
	if t.OccurredAt.IsZero() {
		return fmt.Errorf("%w: occurredAt is required", apperrors.ErrValidation)
	}
	return nil
}

// TransactionFilter narrows a store query for a single owner.
type TransactionFilter struct {
	Since     *time.Time // inclusive lower bound on OccurredAt
	Category  *string
	Limit     int    // 0 means no limit
	NextToken string // opaque cursor returned by a previous page
}

// TransactionEventType names the lifecycle events published for transactions.
type TransactionEventType string

const (
	TransactionCreated TransactionEventType = "transaction.created"
	TransactionDeleted TransactionEventType = "transaction.deleted"
)

// TransactionEvent is emitted after a transaction is written or removed.
type TransactionEvent struct {
	Type        TransactionEventType `json:"type"`
	Transaction Transaction          `json:"transaction"`
	OccurredAt  time.Time            `json:"occurredAt"`
}
