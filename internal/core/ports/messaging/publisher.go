package messaging

import (
	"context"

	"github.com/SscSPs/budget_tracker/internal/core/domain"
)

// TransactionEventPublisher announces transaction lifecycle events to other systems.
type TransactionEventPublisher interface {
	PublishTransactionEvent(ctx context.Context, event domain.TransactionEvent) error
}
