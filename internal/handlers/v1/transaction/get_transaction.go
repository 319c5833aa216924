package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-tracker/internal/model"
)

// GetTransactionBody is the request body for fetching one transaction.
type GetTransactionBody struct {
	TransactionID string `json:"transactionId,omitempty" doc:"Transaction UUID"`
	UserID        string `json:"userId,omitempty" doc:"Owner UUID; another user's transaction is reported as not found"`
}

// GetTransactionInput is the Huma input for fetching one transaction.
type GetTransactionInput struct {
	Body GetTransactionBody
}

// GetTransactionOutput is the Huma output for fetching one transaction.
type GetTransactionOutput struct {
	Body Transaction
}

type transactionGetter interface {
	GetTransaction(ctx context.Context, id uuid.UUID, owner *uuid.UUID) (*model.Transaction, error)
}

// GetTransactionHandler handles POST /transactions/get.
type GetTransactionHandler struct {
	TransactionService transactionGetter
}

// NewGetTransactionHandler creates a new GetTransactionHandler.
func NewGetTransactionHandler(svc transactionGetter) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc}
}

// Register registers the get transaction endpoint with the Huma API.
func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodPost,
		Path:        "/transactions/get",
		Summary:     "Get transaction",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	id, err := parseID(input.Body.TransactionID, "transactionId")
	if err != nil {
		return nil, err
	}
	owner, err := parseOwner(input.Body.UserID)
	if err != nil {
		return nil, err
	}

	tx, err := h.TransactionService.GetTransaction(ctx, id, owner)
	if err != nil {
		return nil, toHumaError(err, "failed to get transaction")
	}

	return &GetTransactionOutput{Body: newTransaction(*tx)}, nil
}
