package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-tracker/internal/filter"
	"github.com/carson-networks/expense-tracker/internal/logging"
	"github.com/carson-networks/expense-tracker/internal/model"
)

// FilterBody is the request body shared by the query and analytics endpoints.
type FilterBody struct {
	UserID    string   `json:"userId,omitempty" doc:"Owner UUID"`
	Frequency string   `json:"frequency,omitempty" doc:"7, 30, 365 or custom"`
	DateRange []string `json:"dateRange,omitempty" doc:"[start, end] dates, required when frequency is custom"`
	Type      string   `json:"type,omitempty" doc:"all, income or expense; defaults to all"`
}

func (b FilterBody) filter() filter.Filter {
	return filter.Filter{
		Frequency: filter.Frequency(b.Frequency),
		DateRange: b.DateRange,
		Type:      filter.TypeFilter(b.Type),
	}
}

// QueryTransactionsInput is the Huma input for querying transactions.
type QueryTransactionsInput struct {
	Body FilterBody
}

// QueryTransactionsOutput is the Huma output for querying transactions.
type QueryTransactionsOutput struct {
	Body []Transaction
}

// transactionQuerier is the interface for querying transactions.
type transactionQuerier interface {
	QueryTransactions(ctx context.Context, userID string, f filter.Filter) ([]model.Transaction, error)
}

// QueryTransactionsHandler handles POST /transactions/query.
type QueryTransactionsHandler struct {
	TransactionService transactionQuerier
}

// NewQueryTransactionsHandler creates a new QueryTransactionsHandler.
func NewQueryTransactionsHandler(svc transactionQuerier) *QueryTransactionsHandler {
	return &QueryTransactionsHandler{TransactionService: svc}
}

// Register registers the query transactions endpoint with the Huma API.
func (h *QueryTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "query-transactions",
		Method:      http.MethodPost,
		Path:        "/transactions/query",
		Summary:     "Query transactions",
		Description: "Returns the user's transactions matching the filter, newest first.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *QueryTransactionsHandler) handle(ctx context.Context, input *QueryTransactionsInput) (*QueryTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("frequency", input.Body.Frequency)
		logData.AddData("type", input.Body.Type)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("queryTransactionsMs")
	}
	transactions, err := h.TransactionService.QueryTransactions(ctx, input.Body.UserID, input.Body.filter())
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, toHumaError(err, "failed to query transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := make([]Transaction, len(transactions))
	for i, tx := range transactions {
		resp[i] = newTransaction(tx)
	}

	return &QueryTransactionsOutput{Body: resp}, nil
}
