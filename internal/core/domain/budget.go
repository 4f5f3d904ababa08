package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is the spending ceiling an owner measures utilization against.
type Budget struct {
	OwnerID   string          `json:"ownerID"`
	Ceiling   decimal.Decimal `json:"ceiling"`
	UpdatedAt time.Time       `json:"updatedAt"`
	IsDefault bool            `json:"isDefault"` // true when no owner specific value is stored
}
