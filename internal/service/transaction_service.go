package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-tracker/internal/analytics"
	"github.com/carson-networks/expense-tracker/internal/filter"
	"github.com/carson-networks/expense-tracker/internal/model"
	"github.com/carson-networks/expense-tracker/internal/operator/actions"
	"github.com/carson-networks/expense-tracker/internal/storage"
	"github.com/carson-networks/expense-tracker/internal/storage/sqlconfig"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage   *storage.Storage
	processor ActionProcessor
	now       func() time.Time
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor ActionProcessor) *TransactionService {
	return &TransactionService{
		storage:   store,
		processor: processor,
		now:       time.Now,
	}
}

// QueryTransactions returns the user's transactions matching f, newest
// first. An invalid filter is rejected before storage is touched.
func (s *TransactionService) QueryTransactions(ctx context.Context, userID string, f filter.Filter) ([]model.Transaction, error) {
	predicate, err := filter.Build(userID, f, s.now())
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Transactions.List(ctx, predicate)
	if err != nil {
		return nil, storageError("list transactions", err)
	}

	transactions := make([]model.Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = transactionFromStorage(row)
	}
	SortNewestFirst(transactions)

	return transactions, nil
}

// SummarizeTransactions runs QueryTransactions and aggregates the result.
func (s *TransactionService) SummarizeTransactions(ctx context.Context, userID string, f filter.Filter) (analytics.Summary, error) {
	transactions, err := s.QueryTransactions(ctx, userID, f)
	if err != nil {
		return analytics.Summary{}, err
	}
	return analytics.Summarize(transactions), nil
}

// GetTransaction returns one transaction. When owner is set, a transaction
// of another user is reported as ErrNotFound.
func (s *TransactionService) GetTransaction(ctx context.Context, id uuid.UUID, owner *uuid.UUID) (*model.Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, id)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storageError("find transaction", err)
	}
	if owner != nil && row.UserID != *owner {
		return nil, ErrNotFound
	}

	transaction := transactionFromStorage(row)
	return &transaction, nil
}

// AddTransaction validates and stores a new transaction, returning its ID.
func (s *TransactionService) AddTransaction(ctx context.Context, transaction model.Transaction) (uuid.UUID, error) {
	if err := transaction.Validate(); err != nil {
		return uuid.Nil, err
	}

	action := &actions.AddTransaction{Transaction: transaction}
	err := s.processor.Process(ctx, action)
	if errors.Is(err, sqlconfig.ErrMissingReference) {
		return uuid.Nil, &model.ValidationError{Field: "userId", Message: "unknown userId"}
	}
	if err != nil {
		return uuid.Nil, storageError("insert transaction", err)
	}

	return action.CreatedID, nil
}

// EditTransaction replaces the editable fields of a transaction. Editing an
// unknown id succeeds without changing anything; the returned count tells
// the caller whether a row was touched.
func (s *TransactionService) EditTransaction(ctx context.Context, id uuid.UUID, owner *uuid.UUID, edit model.TransactionEdit) (int64, error) {
	if err := edit.Validate(); err != nil {
		return 0, err
	}

	action := &actions.EditTransaction{TransactionID: id, Owner: owner, Edit: edit}
	if err := s.processor.Process(ctx, action); err != nil {
		return 0, storageError("update transaction", err)
	}

	return action.RowsAffected, nil
}

// DeleteTransaction removes a transaction. Deleting an unknown id succeeds.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID, owner *uuid.UUID) (int64, error) {
	action := &actions.DeleteTransaction{TransactionID: id, Owner: owner}
	if err := s.processor.Process(ctx, action); err != nil {
		return 0, storageError("delete transaction", err)
	}

	return action.RowsAffected, nil
}

// SortNewestFirst orders transactions by date, most recent first. Equal
// dates keep their relative order.
func SortNewestFirst(transactions []model.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
}

func transactionFromStorage(row *sqlconfig.Transaction) model.Transaction {
	return model.Transaction{
		ID:          row.ID,
		UserID:      row.UserID,
		Amount:      row.Amount,
		Type:        row.Type,
		Category:    row.Category,
		Description: row.Description,
		Date:        model.TruncateDate(row.TransactionDate),
		CreatedAt:   row.CreatedAt,
	}
}
