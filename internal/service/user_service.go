package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/carson-networks/expense-tracker/internal/model"
	"github.com/carson-networks/expense-tracker/internal/operator/actions"
	"github.com/carson-networks/expense-tracker/internal/storage"
	"github.com/carson-networks/expense-tracker/internal/storage/sqlconfig"
)

const minPasswordLength = 8

// UserService handles registration and login.
type UserService struct {
	storage   *storage.Storage
	processor ActionProcessor
	hashCost  int
}

// NewUserService creates a new UserService.
func NewUserService(store *storage.Storage, processor ActionProcessor) *UserService {
	return &UserService{
		storage:   store,
		processor: processor,
		hashCost:  bcrypt.DefaultCost,
	}
}

// Register creates an account and returns its ID.
func (s *UserService) Register(ctx context.Context, name, email, password string) (uuid.UUID, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	switch {
	case name == "":
		return uuid.Nil, &model.ValidationError{Field: "name", Message: "name is required"}
	case email == "":
		return uuid.Nil, &model.ValidationError{Field: "email", Message: "email is required"}
	case password == "":
		return uuid.Nil, &model.ValidationError{Field: "password", Message: "password is required"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return uuid.Nil, &model.ValidationError{Field: "email", Message: "invalid email"}
	}
	if len(password) < minPasswordLength {
		return uuid.Nil, &model.ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return uuid.Nil, err
	}

	action := &actions.RegisterUser{Name: name, Email: email, PasswordHash: string(hash)}
	err = s.processor.Process(ctx, action)
	if errors.Is(err, sqlconfig.ErrDuplicate) {
		return uuid.Nil, ErrEmailTaken
	}
	if err != nil {
		return uuid.Nil, storageError("insert user", err)
	}

	return action.CreatedID, nil
}

// Login checks the credentials and returns the user they belong to.
func (s *UserService) Login(ctx context.Context, email, password string) (*User, error) {
	row, err := s.storage.Users.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, storageError("find user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &User{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		CreatedAt: row.CreatedAt,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
