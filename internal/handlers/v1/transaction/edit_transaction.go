package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-tracker/internal/logging"
	"github.com/carson-networks/expense-tracker/internal/model"
)

// EditTransactionBody is the request body for editing a transaction.
type EditTransactionBody struct {
	TransactionID string            `json:"transactionId,omitempty" doc:"Transaction UUID"`
	UserID        string            `json:"userId,omitempty" doc:"Owner UUID; when set the edit only applies to this user's transaction"`
	Payload       TransactionFields `json:"payload,omitempty" doc:"Replacement values for every editable field"`
}

// EditTransactionInput is the Huma input for editing a transaction.
type EditTransactionInput struct {
	Body EditTransactionBody
}

// MutationResponse reports how many transactions a mutation touched. Zero
// means the id was unknown, which is not an error.
type MutationResponse struct {
	RowsAffected int64 `json:"rowsAffected"`
}

// EditTransactionOutput is the Huma output for editing a transaction.
type EditTransactionOutput struct {
	Body MutationResponse
}

type transactionEditor interface {
	EditTransaction(ctx context.Context, id uuid.UUID, owner *uuid.UUID, edit model.TransactionEdit) (int64, error)
}

// EditTransactionHandler handles POST /transactions/edit.
type EditTransactionHandler struct {
	TransactionService transactionEditor
}

// NewEditTransactionHandler creates a new EditTransactionHandler.
func NewEditTransactionHandler(svc transactionEditor) *EditTransactionHandler {
	return &EditTransactionHandler{TransactionService: svc}
}

// Register registers the edit transaction endpoint with the Huma API.
func (h *EditTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "edit-transaction",
		Method:      http.MethodPost,
		Path:        "/transactions/edit",
		Summary:     "Edit transaction",
		Description: "Replaces amount, type, category, description and date of a transaction." + amountNote,
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *EditTransactionHandler) handle(ctx context.Context, input *EditTransactionInput) (*EditTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := parseID(input.Body.TransactionID, "transactionId")
	if err != nil {
		return nil, err
	}
	owner, err := parseOwner(input.Body.UserID)
	if err != nil {
		return nil, err
	}
	edit, err := parseTransactionFields(input.Body.Payload)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		logData.AddData("transactionId", id.String())
		stopTimer = logData.AddTiming("editTransactionMs")
	}
	rows, err := h.TransactionService.EditTransaction(ctx, id, owner, edit)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, toHumaError(err, "failed to edit transaction")
	}

	if logData != nil {
		logData.AddData("rowsAffected", rows)
	}

	return &EditTransactionOutput{Body: MutationResponse{RowsAffected: rows}}, nil
}
