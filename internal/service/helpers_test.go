package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-tracker/internal/filter"
	"github.com/carson-networks/expense-tracker/internal/operator"
	"github.com/carson-networks/expense-tracker/internal/storage"
	"github.com/carson-networks/expense-tracker/internal/storage/sqlconfig"
)

type noopTx struct{}

func (noopTx) Commit() error   { return nil }
func (noopTx) Rollback() error { return nil }

// tableWriters hands out Writers over fixed tables.
type tableWriters struct {
	transactions sqlconfig.ITransactionTable
	users        sqlconfig.IUserTable
}

func (w *tableWriters) Write(ctx context.Context) (*storage.Writer, error) {
	return storage.NewWriter(noopTx{}, w.transactions, w.users), nil
}

// newTestStorage wires tables into a Storage and a running OperatorDelegator.
func newTestStorage(t *testing.T, transactions sqlconfig.ITransactionTable, users sqlconfig.IUserTable) (*storage.Storage, ActionProcessor) {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	delegator := operator.NewOperatorDelegator(&tableWriters{transactions: transactions, users: users}, 1, logger)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	return &storage.Storage{Transactions: transactions, Users: users}, delegator
}

// memoryTable is an ITransactionTable that keeps rows in insertion order.
type memoryTable struct {
	mutex sync.Mutex
	rows  []*sqlconfig.Transaction
	clock time.Time
}

func newMemoryTable() *memoryTable {
	return &memoryTable{clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *memoryTable) FindByID(ctx context.Context, id uuid.UUID) (*sqlconfig.Transaction, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	for _, row := range m.rows {
		if row.ID == id {
			copied := *row
			return &copied, nil
		}
	}
	return nil, sqlconfig.ErrNotFound
}

func (m *memoryTable) Insert(ctx context.Context, create *sqlconfig.TransactionCreate) (uuid.UUID, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.clock = m.clock.Add(time.Second)
	row := &sqlconfig.Transaction{
		ID:              uuid.Must(uuid.NewV4()),
		UserID:          create.UserID,
		Amount:          create.Amount,
		Type:            create.Type,
		Category:        create.Category,
		Description:     create.Description,
		TransactionDate: create.TransactionDate,
		CreatedAt:       m.clock,
	}
	m.rows = append(m.rows, row)
	return row.ID, nil
}

func (m *memoryTable) List(ctx context.Context, predicate filter.Predicate) ([]*sqlconfig.Transaction, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	var out []*sqlconfig.Transaction
	for _, row := range m.rows {
		if predicate.Matches(transactionFromStorage(row)) {
			copied := *row
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *memoryTable) Update(ctx context.Context, id uuid.UUID, owner *uuid.UUID, update *sqlconfig.TransactionUpdate) (int64, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	row := m.find(id, owner)
	if row == nil {
		return 0, nil
	}
	if v, ok := update.Amount.Get(); ok {
		row.Amount = v
	}
	if v, ok := update.Type.Get(); ok {
		row.Type = v
	}
	if v, ok := update.Category.Get(); ok {
		row.Category = v
	}
	if v, ok := update.Description.Get(); ok {
		row.Description = v
	}
	if v, ok := update.TransactionDate.Get(); ok {
		row.TransactionDate = v
	}
	return 1, nil
}

func (m *memoryTable) Delete(ctx context.Context, id uuid.UUID, owner *uuid.UUID) (int64, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	for i, row := range m.rows {
		if row.ID == id && (owner == nil || row.UserID == *owner) {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memoryTable) find(id uuid.UUID, owner *uuid.UUID) *sqlconfig.Transaction {
	for _, row := range m.rows {
		if row.ID == id && (owner == nil || row.UserID == *owner) {
			return row
		}
	}
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
