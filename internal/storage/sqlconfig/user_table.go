package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const usersTableName = "users"

var userColumns = []any{"id", "name", "email", "password_hash", "created_at"}

// Ensure UsersTable implements IUserTable at compile time.
var _ IUserTable = (*UsersTable)(nil)

// UsersTable provides access to the users table.
type UsersTable struct {
	exec bob.Executor
}

func NewUsersTable(exec bob.Executor) *UsersTable {
	return &UsersTable{exec: exec}
}

func (t *UsersTable) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return t.findOne(ctx, psql.Quote("id").EQ(psql.Arg(id)))
}

// FindByEmail looks a user up by the normalized email address.
func (t *UsersTable) FindByEmail(ctx context.Context, email string) (*User, error) {
	return t.findOne(ctx, psql.Quote("email").EQ(psql.Arg(email)))
}

func (t *UsersTable) findOne(ctx context.Context, where bob.Expression) (*User, error) {
	q := psql.Select(
		sm.Columns(userColumns...),
		sm.From(usersTableName),
		sm.Where(where),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*User]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Insert creates a new user and returns its generated ID. ErrDuplicate is
// returned when the email is already registered.
func (t *UsersTable) Insert(ctx context.Context, create *UserCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into(usersTableName, "name", "email", "password_hash"),
		im.Values(psql.Arg(create.Name, create.Email, create.PasswordHash)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, translateInsertError(err)
	}
	return id, nil
}
