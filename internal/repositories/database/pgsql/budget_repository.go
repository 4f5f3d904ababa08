package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/budget_tracker/internal/apperrors"
	"github.com/SscSPs/budget_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/budget_tracker/internal/models"
	"github.com/SscSPs/budget_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

// FindBudgetByOwner returns the stored ceiling for ownerID.
func (r *PgxBudgetRepository) FindBudgetByOwner(ctx context.Context, ownerID string) (*domain.Budget, error) {
	var m models.Budget
	err := r.Pool.QueryRow(ctx,
		`SELECT owner_id, ceiling, updated_at FROM budgets WHERE owner_id = $1;`,
		ownerID,
	).Scan(&m.OwnerID, &m.Ceiling, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStoreError("failed to find budget for owner "+ownerID, err)
	}

	budget := mapping.ToDomainBudget(m)
	return &budget, nil
}

// UpsertBudget inserts or replaces the owner's ceiling.
func (r *PgxBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	query := `
		INSERT INTO budgets (owner_id, ceiling, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (owner_id) DO UPDATE
		SET ceiling = EXCLUDED.ceiling, updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.Pool.Exec(ctx, query, m.OwnerID, m.Ceiling, m.UpdatedAt); err != nil {
		return apperrors.NewStoreError("failed to upsert budget for owner "+m.OwnerID, err)
	}
	return nil
}
