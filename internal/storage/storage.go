package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/expense-tracker/internal/config"
	"github.com/carson-networks/expense-tracker/internal/storage/sqlconfig"
)

type Storage struct {
	DB           *sql.DB
	Transactions sqlconfig.ITransactionTable
	Users        sqlconfig.IUserTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresConnectionString())
	if err != nil {
		return nil, err
	}

	return NewStorageFromDB(db), nil
}

// NewStorageFromDB wraps an open database handle.
func NewStorageFromDB(db *sql.DB) *Storage {
	exec := bob.NewDB(db)
	return &Storage{
		DB:           db,
		Transactions: sqlconfig.NewTransactionsTable(exec),
		Users:        sqlconfig.NewUsersTable(exec),
	}
}

// Write opens a transaction and returns a Writer whose tables run inside it.
// The caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	exec := bob.NewTx(tx)
	return NewWriter(tx, sqlconfig.NewTransactionsTable(exec), sqlconfig.NewUsersTable(exec)), nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
