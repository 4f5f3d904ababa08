package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/budget_tracker/internal/apperrors"
	"github.com/SscSPs/budget_tracker/internal/core/domain"
	portsmsg "github.com/SscSPs/budget_tracker/internal/core/ports/messaging"
	portsrepo "github.com/SscSPs/budget_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_tracker/internal/core/ports/services"
	"github.com/SscSPs/budget_tracker/internal/dto"
	"github.com/google/uuid"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	transactionRepo  portsrepo.TransactionRepositoryFacade
	publisher        portsmsg.TransactionEventPublisher
	strictCategories bool
	now              func() time.Time
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithEventPublisher sets the publisher notified after every write.
func WithEventPublisher(publisher portsmsg.TransactionEventPublisher) TransactionServiceOption {
	return func(s *transactionService) {
		s.publisher = publisher
	}
}

// WithStrictCategories rejects categories outside the suggested vocabulary.
func WithStrictCategories(strict bool) TransactionServiceOption {
	return func(s *transactionService) {
		s.strictCategories = strict
	}
}

// WithTransactionClock overrides the clock used for default dates and audit timestamps.
func WithTransactionClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		transactionRepo: repo,
		now:             time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates and records a new transaction for the owner.
func (s *transactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := s.RequireOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	kind, err := domain.ParseTransactionKind(req.Kind)
	if err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	category := strings.TrimSpace(req.Category)
	if s.strictCategories {
		canonical, ok := domain.CanonicalCategory(category)
		if !ok {
			return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, category)
		}
		category = canonical
	}

	now := s.now().UTC()
	occurredAt := now
	if req.OccurredAt != nil && !req.OccurredAt.IsZero() {
		occurredAt = *req.OccurredAt
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		OwnerID:       ownerID,
		Kind:          kind,
		Title:         strings.TrimSpace(req.Title),
		Category:      category,
		Amount:        req.Amount,
		OccurredAt:    occurredAt,
		CreatedAt:     now,
	}
	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("owner_id", ownerID),
			slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("kind", string(txn.Kind)),
		slog.String("category", txn.Category))
	s.publish(ctx, domain.TransactionCreated, txn)

	return &txn, nil
}

// GetTransactionByID retrieves one of the owner's transactions.
func (s *transactionService) GetTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error) {
	if err := s.RequireOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	txn, err := s.transactionRepo.FindTransactionByID(ctx, ownerID, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		}
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// ListTransactions retrieves a page of the owner's transactions, newest first.
func (s *transactionService) ListTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if err := s.RequireOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	filter, err := params.ToFilter()
	if err != nil {
		return nil, err
	}

	txns, nextToken, err := s.transactionRepo.FindTransactionsForOwner(ctx, ownerID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	s.LogDebug(ctx, "Transactions listed", slog.Int("count", len(txns)))
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

// DeleteTransaction removes one of the owner's transactions.
func (s *transactionService) DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error {
	if err := s.RequireOwner(ctx, ownerID); err != nil {
		return err
	}

	txn, err := s.transactionRepo.FindTransactionByID(ctx, ownerID, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}

	if err := s.transactionRepo.DeleteTransaction(ctx, ownerID, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	s.publish(ctx, domain.TransactionDeleted, *txn)
	return nil
}

func (s *transactionService) publish(ctx context.Context, eventType domain.TransactionEventType, txn domain.Transaction) {
	if s.publisher == nil {
		return
	}
	event := domain.TransactionEvent{Type: eventType, Transaction: txn, OccurredAt: s.now().UTC()}
	if err := s.publisher.PublishTransactionEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish transaction event",
			slog.String("event_type", string(eventType)),
			slog.String("transaction_id", txn.TransactionID))
	}
}
