package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/budget_tracker/internal/apperrors"
	"github.com/SscSPs/budget_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/budget_tracker/internal/models"
	"github.com/SscSPs/budget_tracker/internal/utils/mapping"
	"github.com/SscSPs/budget_tracker/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `id, owner_id, kind, title, category, amount, occurred_at, created_at`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// SaveTransaction inserts a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.OwnerID,
		m.Kind,
		m.Title,
		m.Category,
		m.Amount,
		m.OccurredAt,
		m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewStoreError("failed to insert transaction "+m.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves one transaction of ownerID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error) {
	if _, err := uuid.Parse(transactionID); err != nil {
		return nil, apperrors.ErrNotFound
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE owner_id = $1 AND id = $2::uuid;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, ownerID, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStoreError("failed to find transaction "+transactionID, err)
	}

	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// FindTransactionsForOwner retrieves the owner's transactions ordered by occurred_at DESC, id DESC.
// It returns the transactions, a token for the next page, and an error.
func (r *PgxTransactionRepository) FindTransactionsForOwner(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, *string, error) {
	query, args, err := buildOwnerTransactionsQuery(ownerID, filter)
	if err != nil {
		return nil, nil, err
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewStoreError("failed to query transactions for owner "+ownerID, err)
	}
	defer rows.Close()

	ms := make([]models.Transaction, 0)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, apperrors.NewStoreError("failed to scan transaction row for owner "+ownerID, err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewStoreError("error iterating transaction rows for owner "+ownerID, err)
	}

	var nextToken *string
	if filter.Limit > 0 && len(ms) > filter.Limit {
		ms = ms[:filter.Limit]
		last := ms[len(ms)-1]
		token := pagination.EncodeToken(last.OccurredAt, last.TransactionID)
		nextToken = &token
	}

	return mapping.ToDomainTransactionSlice(ms), nextToken, nil
}

// DeleteTransaction removes one transaction of ownerID.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, ownerID, transactionID string) error {
	if _, err := uuid.Parse(transactionID); err != nil {
		return apperrors.ErrNotFound
	}

	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE owner_id = $1 AND id = $2::uuid;`, ownerID, transactionID)
	if err != nil {
		return apperrors.NewStoreError("failed to delete transaction "+transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// buildOwnerTransactionsQuery renders the owner-scoped list query. One extra row is requested
// when a limit is set so the caller can tell whether another page exists.
func buildOwnerTransactionsQuery(ownerID string, filter domain.TransactionFilter) (string, []any, error) {
	var sb strings.Builder
	args := []any{ownerID}
	placeholder := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	sb.WriteString(`SELECT ` + transactionColumns + ` FROM transactions WHERE owner_id = $1`)
	if filter.Since != nil {
		sb.WriteString(` AND occurred_at >= ` + placeholder(*filter.Since))
	}
	if filter.Category != nil {
		sb.WriteString(` AND category = ` + placeholder(*filter.Category))
	}
	if filter.NextToken != "" {
		lastOccurredAt, lastID, err := pagination.DecodeToken(filter.NextToken)
		if err != nil {
			return "", nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", fmt.Errorf("%w: %w", apperrors.ErrValidation, err))
		}
		if _, err := uuid.Parse(lastID); err != nil {
			return "", nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", fmt.Errorf("%w: cursor id: %w", apperrors.ErrValidation, err))
		}
		// Row comparison keeps pages stable when several rows share occurred_at.
		sb.WriteString(` AND (occurred_at, id) < (` + placeholder(lastOccurredAt) + `, ` + placeholder(lastID) + `::uuid)`)
	}
	sb.WriteString(` ORDER BY occurred_at DESC, id DESC`)
	if filter.Limit > 0 {
		sb.WriteString(` LIMIT ` + placeholder(filter.Limit+1))
	}

	return sb.String() + ";", args, nil
}

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.OwnerID,
		&m.Kind,
		&m.Title,
		&m.Category,
		&m.Amount,
		&m.OccurredAt,
		&m.CreatedAt,
	)
	return m, err
}
