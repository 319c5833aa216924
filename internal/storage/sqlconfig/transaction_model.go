package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-tracker/internal/filter"
	"github.com/carson-networks/expense-tracker/internal/model"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID              uuid.UUID             `db:"id"`
	UserID          uuid.UUID             `db:"user_id"`
	Amount          decimal.Decimal       `db:"amount"`
	Type            model.TransactionType `db:"type"`
	Category        model.Category        `db:"category"`
	Description     string                `db:"description"`
	TransactionDate time.Time             `db:"transaction_date"`
	CreatedAt       time.Time             `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID          uuid.UUID
	Amount          decimal.Decimal
	Type            model.TransactionType
	Category        model.Category
	Description     string
	TransactionDate time.Time
}

// TransactionUpdate lists the columns to overwrite. Unset fields are left
// untouched.
type TransactionUpdate struct {
	Amount          omit.Val[decimal.Decimal]
	Type            omit.Val[model.TransactionType]
	Category        omit.Val[model.Category]
	Description     omit.Val[string]
	TransactionDate omit.Val[time.Time]
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
// Update and Delete return the number of rows they touched. owner, when
// non-nil, restricts the mutation to that user's row.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	List(ctx context.Context, predicate filter.Predicate) ([]*Transaction, error)
	Update(ctx context.Context, id uuid.UUID, owner *uuid.UUID, update *TransactionUpdate) (int64, error)
	Delete(ctx context.Context, id uuid.UUID, owner *uuid.UUID) (int64, error)
}
