package transaction

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-tracker/internal/analytics"
	"github.com/carson-networks/expense-tracker/internal/filter"
	"github.com/carson-networks/expense-tracker/internal/model"
)

// mockTransactionService is a mock for every transaction handler dependency.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) QueryTransactions(ctx context.Context, userID string, f filter.Filter) ([]model.Transaction, error) {
	args := m.Called(ctx, userID, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *mockTransactionService) SummarizeTransactions(ctx context.Context, userID string, f filter.Filter) (analytics.Summary, error) {
	args := m.Called(ctx, userID, f)
	return args.Get(0).(analytics.Summary), args.Error(1)
}

func (m *mockTransactionService) GetTransaction(ctx context.Context, id uuid.UUID, owner *uuid.UUID) (*model.Transaction, error) {
	args := m.Called(ctx, id, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *mockTransactionService) AddTransaction(ctx context.Context, transaction model.Transaction) (uuid.UUID, error) {
	args := m.Called(ctx, transaction)
	if args.Get(0) == nil {
		return uuid.Nil, args.Error(1)
	}
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockTransactionService) EditTransaction(ctx context.Context, id uuid.UUID, owner *uuid.UUID, edit model.TransactionEdit) (int64, error) {
	args := m.Called(ctx, id, owner, edit)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID, owner *uuid.UUID) (int64, error) {
	args := m.Called(ctx, id, owner)
	return args.Get(0).(int64), args.Error(1)
}
