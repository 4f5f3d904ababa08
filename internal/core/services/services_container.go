package services

import (
	portsmsg "github.com/SscSPs/budget_tracker/internal/core/ports/messaging"
	portsrepo "github.com/SscSPs/budget_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_tracker/internal/core/ports/services"
	"github.com/SscSPs/budget_tracker/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher portsmsg.TransactionEventPublisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Budget = NewBudgetService(
		repos.BudgetRepo,
		WithDefaultCeiling(cfg.DefaultBudgetCeiling),
	)

	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		WithEventPublisher(publisher),
		WithStrictCategories(cfg.StrictCategories),
	)

	// Reporting resolves ceilings through the budget service so the default is applied in one place.
	container.Reporting = NewReportingService(
		repos.TransactionRepo,
		container.Budget,
		WithWeekStart(cfg.WeekStart),
		WithSeriesDays(cfg.SeriesDays),
		WithAdvisoryThreshold(cfg.AdvisoryThreshold),
	)

	return container
}
