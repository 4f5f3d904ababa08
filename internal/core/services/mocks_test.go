package services_test

import (
	"context"

	"github.com/SscSPs/budget_tracker/internal/core/domain"
	portsmsg "github.com/SscSPs/budget_tracker/internal/core/ports/messaging"
	portsrepo "github.com/SscSPs/budget_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_tracker/internal/core/ports/services"
	"github.com/SscSPs/budget_tracker/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsForOwner(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Transaction), returnedNextToken, args.Error(2)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, ownerID, transactionID string) error {
	args := m.Called(ctx, ownerID, transactionID)
	return args.Error(0)
}

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

var _ portsrepo.BudgetRepository = (*MockBudgetRepository)(nil)

func (m *MockBudgetRepository) FindBudgetByOwner(ctx context.Context, ownerID string) (*domain.Budget, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

// --- Mock BudgetSvc (as used by the reporting service) ---
type MockBudgetService struct {
	mock.Mock
}

var _ portssvc.BudgetSvc = (*MockBudgetService)(nil)

func (m *MockBudgetService) GetBudget(ctx context.Context, ownerID string) (*domain.Budget, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetService) SetBudget(ctx context.Context, ownerID string, req dto.SetBudgetRequest) (*domain.Budget, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

// --- Mock TransactionEventPublisher ---
type MockEventPublisher struct {
	mock.Mock
}

var _ portsmsg.TransactionEventPublisher = (*MockEventPublisher)(nil)

func (m *MockEventPublisher) PublishTransactionEvent(ctx context.Context, event domain.TransactionEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
