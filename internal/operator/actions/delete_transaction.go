package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-tracker/internal/storage"
)

type DeleteTransaction struct {
	TransactionID uuid.UUID
	Owner         *uuid.UUID

	RowsAffected int64
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	rows, err := writer.Transactions.Delete(ctx, d.TransactionID, d.Owner)
	if err != nil {
		return err
	}

	d.RowsAffected = rows
	return nil
}
