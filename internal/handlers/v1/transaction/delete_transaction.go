package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-tracker/internal/logging"
)

// DeleteTransactionBody is the request body for deleting a transaction.
type DeleteTransactionBody struct {
	TransactionID string `json:"transactionId,omitempty" doc:"Transaction UUID"`
	UserID        string `json:"userId,omitempty" doc:"Owner UUID; when set only this user's transaction is deleted"`
}

// DeleteTransactionInput is the Huma input for deleting a transaction.
type DeleteTransactionInput struct {
	Body DeleteTransactionBody
}

// DeleteTransactionOutput is the Huma output for deleting a transaction.
type DeleteTransactionOutput struct {
	Body MutationResponse
}

type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, id uuid.UUID, owner *uuid.UUID) (int64, error)
}

// DeleteTransactionHandler handles POST /transactions/delete.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

// NewDeleteTransactionHandler creates a new DeleteTransactionHandler.
func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

// Register registers the delete transaction endpoint with the Huma API.
func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodPost,
		Path:        "/transactions/delete",
		Summary:     "Delete transaction",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := parseID(input.Body.TransactionID, "transactionId")
	if err != nil {
		return nil, err
	}
	owner, err := parseOwner(input.Body.UserID)
	if err != nil {
		return nil, err
	}

	if logData != nil {
		logData.AddData("transactionId", id.String())
	}
	rows, err := h.TransactionService.DeleteTransaction(ctx, id, owner)
	if err != nil {
		return nil, toHumaError(err, "failed to delete transaction")
	}

	if logData != nil {
		logData.AddData("rowsAffected", rows)
	}

	return &DeleteTransactionOutput{Body: MutationResponse{RowsAffected: rows}}, nil
}
