package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind mirrors the CHECK constraint on transactions.kind.
type TransactionKind string

const (
	Income  TransactionKind = "income"
	Expense TransactionKind = "expense"
)

// Transaction is the row shape of the transactions table.
type Transaction struct {
	TransactionID string          `db:"id"`
	OwnerID       string          `db:"owner_id"`
	Kind          TransactionKind `db:"kind"`
	Title         string          `db:"title"`
	Category      string          `db:"category"`
	Amount        decimal.Decimal `db:"amount"` // numeric(20,4), never negative
	OccurredAt    time.Time       `db:"occurred_at"`
	CreatedAt     time.Time       `db:"created_at"`
}
