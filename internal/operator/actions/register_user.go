package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-tracker/internal/storage"
	"github.com/carson-networks/expense-tracker/internal/storage/sqlconfig"
)

type RegisterUser struct {
	Name         string
	Email        string
	PasswordHash string

	CreatedID uuid.UUID
}

func (r *RegisterUser) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Users.Insert(ctx, &sqlconfig.UserCreate{
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
	})
	if err != nil {
		return err
	}

	r.CreatedID = id
	return nil
}
