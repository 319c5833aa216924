package storage

import (
	"github.com/carson-networks/expense-tracker/internal/storage/sqlconfig"
)

// Tx is the part of *sql.Tx a Writer needs to finish its work.
type Tx interface {
	Commit() error
	Rollback() error
}

type Writer struct {
	tx           Tx
	Transactions sqlconfig.ITransactionTable
	Users        sqlconfig.IUserTable
}

func NewWriter(tx Tx, transactions sqlconfig.ITransactionTable, users sqlconfig.IUserTable) *Writer {
	return &Writer{
		tx:           tx,
		Transactions: transactions,
		Users:        users,
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit()
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback()
}
