package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-tracker/internal/analytics"
	"github.com/carson-networks/expense-tracker/internal/filter"
	"github.com/carson-networks/expense-tracker/internal/logging"
)

// Percent is a percentage with its display rounding.
type Percent struct {
	Value   string `json:"value" doc:"Unrounded percentage"`
	Rounded int64  `json:"rounded" doc:"Percentage rounded to the nearest integer"`
}

// CategoryShare is one row of a per-category breakdown.
type CategoryShare struct {
	Category string  `json:"category"`
	Amount   string  `json:"amount" doc:"Decimal turnover of the category"`
	Percent  Percent `json:"percent" doc:"Share of the type's turnover"`
}

// Summary is the API response model for transaction analytics.
type Summary struct {
	Total                  int             `json:"total"`
	IncomeCount            int             `json:"incomeCount"`
	ExpenseCount           int             `json:"expenseCount"`
	IncomePercent          Percent         `json:"incomePercent"`
	ExpensePercent         Percent         `json:"expensePercent"`
	Turnover               string          `json:"turnover"`
	IncomeTurnover         string          `json:"incomeTurnover"`
	ExpenseTurnover        string          `json:"expenseTurnover"`
	IncomeTurnoverPercent  Percent         `json:"incomeTurnoverPercent"`
	ExpenseTurnoverPercent Percent         `json:"expenseTurnoverPercent"`
	IncomeCategories       []CategoryShare `json:"incomeCategories"`
	ExpenseCategories      []CategoryShare `json:"expenseCategories"`
}

func newPercent(p analytics.Percent) Percent {
	return Percent{Value: p.Raw.String(), Rounded: p.Rounded}
}

func newCategoryShares(shares []analytics.CategoryShare) []CategoryShare {
	out := make([]CategoryShare, len(shares))
	for i, share := range shares {
		out[i] = CategoryShare{
			Category: share.Category.String(),
			Amount:   share.Amount.String(),
			Percent:  newPercent(share.Percent),
		}
	}
	return out
}

func newSummary(s analytics.Summary) Summary {
	return Summary{
		Total:                  s.Total,
		IncomeCount:            s.IncomeCount,
		ExpenseCount:           s.ExpenseCount,
		IncomePercent:          newPercent(s.IncomePercent),
		ExpensePercent:         newPercent(s.ExpensePercent),
		Turnover:               s.Turnover.String(),
		IncomeTurnover:         s.IncomeTurnover.String(),
		ExpenseTurnover:        s.ExpenseTurnover.String(),
		IncomeTurnoverPercent:  newPercent(s.IncomeTurnoverPercent),
		ExpenseTurnoverPercent: newPercent(s.ExpenseTurnoverPercent),
		IncomeCategories:       newCategoryShares(s.IncomeCategories),
		ExpenseCategories:      newCategoryShares(s.ExpenseCategories),
	}
}

// AnalyticsInput is the Huma input for transaction analytics.
type AnalyticsInput struct {
	Body FilterBody
}

// AnalyticsOutput is the Huma output for transaction analytics.
type AnalyticsOutput struct {
	Body Summary
}

type transactionSummarizer interface {
	SummarizeTransactions(ctx context.Context, userID string, f filter.Filter) (analytics.Summary, error)
}

// AnalyticsHandler handles POST /transactions/analytics.
type AnalyticsHandler struct {
	TransactionService transactionSummarizer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(svc transactionSummarizer) *AnalyticsHandler {
	return &AnalyticsHandler{TransactionService: svc}
}

// Register registers the analytics endpoint with the Huma API.
func (h *AnalyticsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transaction-analytics",
		Method:      http.MethodPost,
		Path:        "/transactions/analytics",
		Summary:     "Transaction analytics",
		Description: "Returns count and turnover percentages for the transactions matching the filter.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *AnalyticsHandler) handle(ctx context.Context, input *AnalyticsInput) (*AnalyticsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("summarizeTransactionsMs")
	}
	summary, err := h.TransactionService.SummarizeTransactions(ctx, input.Body.UserID, input.Body.filter())
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, toHumaError(err, "failed to summarize transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", summary.Total)
	}

	return &AnalyticsOutput{Body: newSummary(summary)}, nil
}
