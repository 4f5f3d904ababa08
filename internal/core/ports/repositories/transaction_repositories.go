package repositories

import (
	"context"

	"github.com/SscSPs/budget_tracker/internal/core/domain"
)

// TransactionReader defines read operations for transaction data.
// Every method is scoped to a single owner; rows belonging to other owners are never returned.
type TransactionReader interface {
	// FindTransactionByID retrieves one transaction of ownerID. Returns apperrors.ErrNotFound when absent.
	FindTransactionByID(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error)

	// FindTransactionsForOwner retrieves the owner's transactions ordered by occurred_at DESC.
	// It returns the transactions, a token for the next page (nil when exhausted), and an error.
	FindTransactionsForOwner(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction inserts a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes one transaction of ownerID. Returns apperrors.ErrNotFound when absent.
	DeleteTransaction(ctx context.Context, ownerID, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
