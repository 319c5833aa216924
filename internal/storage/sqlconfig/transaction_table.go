package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/expense-tracker/internal/filter"
)

const transactionsTableName = "transactions"

var transactionColumns = []any{
	"id", "user_id", "amount", "type", "category", "description", "transaction_date", "created_at",
}

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// FindByID retrieves a transaction by primary key. ErrNotFound is returned
// when no row has that id.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into(transactionsTableName, "user_id", "amount", "type", "category", "description", "transaction_date"),
		im.Values(psql.Arg(
			create.UserID,
			create.Amount,
			string(create.Type),
			string(create.Category),
			create.Description,
			create.TransactionDate,
		)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, translateInsertError(err)
	}
	return id, nil
}

// List returns the predicate's transactions, newest date first. Rows on the
// same date keep insertion order.
func (t *TransactionsTable) List(ctx context.Context, predicate filter.Predicate) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(predicate.UserID))),
	}
	if predicate.After != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("transaction_date").GT(psql.Arg(*predicate.After))))
	}
	if predicate.From != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(*predicate.From))))
	}
	if predicate.To != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("transaction_date").LTE(psql.Arg(*predicate.To))))
	}
	if predicate.Type != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("type").EQ(psql.Arg(string(*predicate.Type)))))
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("transaction_date")).Desc(),
		sm.OrderBy(psql.Quote("created_at")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Update overwrites the set fields of update on the row with the given id.
func (t *TransactionsTable) Update(ctx context.Context, id uuid.UUID, owner *uuid.UUID, update *TransactionUpdate) (int64, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{um.Table(transactionsTableName)}
	if v, ok := update.Amount.Get(); ok {
		queryMods = append(queryMods, um.SetCol("amount").ToArg(v))
	}
	if v, ok := update.Type.Get(); ok {
		queryMods = append(queryMods, um.SetCol("type").ToArg(string(v)))
	}
	if v, ok := update.Category.Get(); ok {
		queryMods = append(queryMods, um.SetCol("category").ToArg(string(v)))
	}
	if v, ok := update.Description.Get(); ok {
		queryMods = append(queryMods, um.SetCol("description").ToArg(v))
	}
	if v, ok := update.TransactionDate.Get(); ok {
		queryMods = append(queryMods, um.SetCol("transaction_date").ToArg(v))
	}
	if len(queryMods) == 1 {
		return 0, nil
	}

	queryMods = append(queryMods, um.Where(psql.Quote("id").EQ(psql.Arg(id))))
	if owner != nil {
		queryMods = append(queryMods, um.Where(psql.Quote("user_id").EQ(psql.Arg(*owner))))
	}

	result, err := bob.Exec(ctx, t.exec, psql.Update(queryMods...))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Delete removes the row with the given id.
func (t *TransactionsTable) Delete(ctx context.Context, id uuid.UUID, owner *uuid.UUID) (int64, error) {
	queryMods := []bob.Mod[*dialect.DeleteQuery]{
		dm.From(transactionsTableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	if owner != nil {
		queryMods = append(queryMods, dm.Where(psql.Quote("user_id").EQ(psql.Arg(*owner))))
	}

	result, err := bob.Exec(ctx, t.exec, psql.Delete(queryMods...))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
