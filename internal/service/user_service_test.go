package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/carson-networks/expense-tracker/internal/model"
	"github.com/carson-networks/expense-tracker/internal/storage/sqlconfig"
)

func newTestUserService(t *testing.T) (*UserService, *sqlconfig.MockIUserTable) {
	t.Helper()
	mockTable := sqlconfig.NewMockIUserTable(t)
	store, processor := newTestStorage(t, nil, mockTable)
	svc := NewUserService(store, processor)
	svc.hashCost = bcrypt.MinCost
	return svc, mockTable
}

func TestRegister_Success(t *testing.T) {
	svc, mockTable := newTestUserService(t)
	expectedID := uuid.Must(uuid.NewV4())

	mockTable.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.UserCreate) bool {
		return c.Name == "Ada" &&
			c.Email == "ada@example.com" &&
			bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte("correct horse")) == nil
	})).Return(expectedID, nil)

	id, err := svc.Register(context.Background(), " Ada ", "Ada@Example.com", "correct horse")

	require.NoError(t, err)
	assert.Equal(t, expectedID, id)
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newTestUserService(t)

	cases := []struct {
		name, email, password string
		field                 string
	}{
		{"", "a@b.c", "password1", "name"},
		{"Ada", "", "password1", "email"},
		{"Ada", "a@b.c", "", "password"},
		{"Ada", "not-an-email", "password1", "email"},
		{"Ada", "a@b.c", "short", "password"},
	}

	for _, tc := range cases {
		_, err := svc.Register(context.Background(), tc.name, tc.email, tc.password)
		var validationErr *model.ValidationError
		require.ErrorAs(t, err, &validationErr, "case %+v", tc)
		assert.Equal(t, tc.field, validationErr.Field)
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, mockTable := newTestUserService(t)

	mockTable.EXPECT().Insert(mock.Anything, mock.Anything).Return(uuid.Nil, sqlconfig.ErrDuplicate)

	_, err := svc.Register(context.Background(), "Ada", "ada@example.com", "correct horse")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	svc, mockTable := newTestUserService(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	row := &sqlconfig.User{
		ID:           uuid.Must(uuid.NewV4()),
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: string(hash),
		CreatedAt:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	mockTable.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(row, nil)

	t.Run("success", func(t *testing.T) {
		user, err := svc.Login(context.Background(), "ADA@example.com ", "correct horse")
		require.NoError(t, err)
		assert.Equal(t, row.ID, user.ID)
		assert.Equal(t, "Ada", user.Name)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "ada@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, mockTable := newTestUserService(t)

	mockTable.EXPECT().FindByEmail(mock.Anything, "nobody@example.com").Return(nil, sqlconfig.ErrNotFound)

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_StorageError(t *testing.T) {
	svc, mockTable := newTestUserService(t)

	mockTable.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := svc.Login(context.Background(), "ada@example.com", "whatever")
	var storageErr *StorageError
	assert.ErrorAs(t, err, &storageErr)
}
