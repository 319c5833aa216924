package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-tracker/internal/model"
	"github.com/carson-networks/expense-tracker/internal/storage"
	"github.com/carson-networks/expense-tracker/internal/storage/sqlconfig"
)

type AddTransaction struct {
	Transaction model.Transaction

	// CreatedID is set once Perform succeeds.
	CreatedID uuid.UUID
}

func (a *AddTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		UserID:          a.Transaction.UserID,
		Amount:          a.Transaction.Amount,
		Type:            a.Transaction.Type,
		Category:        a.Transaction.Category,
		Description:     a.Transaction.Description,
		TransactionDate: model.TruncateDate(a.Transaction.Date),
	})
	if err != nil {
		return err
	}

	a.CreatedID = id
	return nil
}
