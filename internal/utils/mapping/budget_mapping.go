package mapping

import (
	"github.com/SscSPs/budget_tracker/internal/core/domain"
	"github.com/SscSPs/budget_tracker/internal/models"
)

// ToModelBudget converts a domain Budget to a model Budget
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		OwnerID:   d.OwnerID,
		Ceiling:   d.Ceiling,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToDomainBudget converts a model Budget to a domain Budget
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		OwnerID:   m.OwnerID,
		Ceiling:   m.Ceiling,
		UpdatedAt: m.UpdatedAt,
	}
}
