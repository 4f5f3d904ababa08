package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is the row shape of the budgets table, one row per owner.
type Budget struct {
	OwnerID   string          `db:"owner_id"`
	Ceiling   decimal.Decimal `db:"ceiling"`
	UpdatedAt time.Time       `db:"updated_at"`
}
