package actions

import (
	"context"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-tracker/internal/model"
	"github.com/carson-networks/expense-tracker/internal/storage"
	"github.com/carson-networks/expense-tracker/internal/storage/sqlconfig"
)

// EditTransaction replaces every editable field of one transaction.
type EditTransaction struct {
	TransactionID uuid.UUID
	// Owner, when set, limits the edit to that user's transaction.
	Owner *uuid.UUID
	Edit  model.TransactionEdit

	RowsAffected int64
}

func (e *EditTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	update := &sqlconfig.TransactionUpdate{
		Amount:          omit.From(e.Edit.Amount),
		Type:            omit.From(e.Edit.Type),
		Category:        omit.From(e.Edit.Category),
		Description:     omit.From(e.Edit.Description),
		TransactionDate: omit.From(model.TruncateDate(e.Edit.Date)),
	}

	rows, err := writer.Transactions.Update(ctx, e.TransactionID, e.Owner, update)
	if err != nil {
		return err
	}

	e.RowsAffected = rows
	return nil
}
