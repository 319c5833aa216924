package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-tracker/internal/logging"
	"github.com/carson-networks/expense-tracker/internal/model"
)

// AddTransactionBody is the request body for adding a transaction.
type AddTransactionBody struct {
	UserID *string `json:"userId,omitempty" doc:"Owner UUID"`
	TransactionFields
}

// AddTransactionInput is the Huma input for adding a transaction.
type AddTransactionInput struct {
	Body AddTransactionBody
}

// AddTransactionResponse is the response body for adding a transaction.
type AddTransactionResponse struct {
	ID string `json:"id" doc:"UUID of the new transaction"`
}

// AddTransactionOutput is the Huma output for adding a transaction.
type AddTransactionOutput struct {
	Body AddTransactionResponse
}

// transactionAdder is the interface for adding transactions.
type transactionAdder interface {
	AddTransaction(ctx context.Context, transaction model.Transaction) (uuid.UUID, error)
}

// AddTransactionHandler handles POST /transactions/add.
type AddTransactionHandler struct {
	TransactionService transactionAdder
}

// NewAddTransactionHandler creates a new AddTransactionHandler.
func NewAddTransactionHandler(svc transactionAdder) *AddTransactionHandler {
	return &AddTransactionHandler{TransactionService: svc}
}

// Register registers the add transaction endpoint with the Huma API.
func (h *AddTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "add-transaction",
		Method:        http.MethodPost,
		Path:          "/transactions/add",
		Summary:       "Add transaction",
		Description:   "Records a new income or expense transaction." + amountNote,
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseAddTransactionInput reports the first missing field in userId,
// amount, type, category, description, date order.
func parseAddTransactionInput(input *AddTransactionInput) (model.Transaction, error) {
	if input.Body.UserID == nil || *input.Body.UserID == "" {
		return model.Transaction{}, missing("userId")
	}
	userID, err := parseID(*input.Body.UserID, "userId")
	if err != nil {
		return model.Transaction{}, err
	}

	edit, err := parseTransactionFields(input.Body.TransactionFields)
	if err != nil {
		return model.Transaction{}, err
	}

	return model.Transaction{
		UserID:      userID,
		Amount:      edit.Amount,
		Type:        edit.Type,
		Category:    edit.Category,
		Description: edit.Description,
		Date:        edit.Date,
	}, nil
}

func (h *AddTransactionHandler) handle(ctx context.Context, input *AddTransactionInput) (*AddTransactionOutput, error) {
	logData := logging.GetLogData(ctx)
	transaction, err := parseAddTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("addTransactionMs")
	}
	id, err := h.TransactionService.AddTransaction(ctx, transaction)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, toHumaError(err, "failed to add transaction")
	}

	if logData != nil {
		logData.AddData("transactionId", id.String())
	}

	return &AddTransactionOutput{Body: AddTransactionResponse{ID: id.String()}}, nil
}
