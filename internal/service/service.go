package service

import (
	"context"

	"github.com/carson-networks/expense-tracker/internal/operator/actions"
	"github.com/carson-networks/expense-tracker/internal/storage"
)

// ActionProcessor runs write actions. *operator.OperatorDelegator is the
// production implementation.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	User        *UserService
}

// NewService creates a new Service with the given storage. Reads go straight
// to storage, writes go through processor.
func NewService(store *storage.Storage, processor ActionProcessor) *Service {
	return &Service{
		Transaction: NewTransactionService(store, processor),
		User:        NewUserService(store, processor),
	}
}
