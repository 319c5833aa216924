package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expense-tracker/internal/analytics"
	"github.com/carson-networks/expense-tracker/internal/filter"
	"github.com/carson-networks/expense-tracker/internal/model"
)

func newQueryTestAPI(t *testing.T, svc *mockTransactionService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewQueryTransactionsHandler(svc).Register(api)
	NewAnalyticsHandler(svc).Register(api)
	return api
}

func TestHTTP_QueryTransactions_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	tx := model.Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		UserID:      userID,
		Amount:      decimal.RequireFromString("99.90"),
		Type:        model.TransactionTypeExpense,
		Category:    model.CategoryBills,
		Description: "Power",
		Date:        time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC),
	}

	mockSvc := new(mockTransactionService)
	mockSvc.On("QueryTransactions", mock.Anything, userID.String(), filter.Filter{
		Frequency: filter.FrequencyCustom,
		DateRange: []string{"2025-06-01", "2025-06-30"},
		Type:      filter.TypeExpense,
	}).Return([]model.Transaction{tx}, nil)

	resp := newQueryTestAPI(t, mockSvc).Post("/transactions/query", FilterBody{
		UserID:    userID.String(),
		Frequency: "custom",
		DateRange: []string{"2025-06-01", "2025-06-30"},
		Type:      "expense",
	})

	require.Equal(t, http.StatusOK, resp.Code)
	var body []Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, Transaction{
		ID:          tx.ID.String(),
		UserID:      userID.String(),
		Amount:      "99.9",
		Type:        "expense",
		Category:    "bills",
		Description: "Power",
		Date:        "2025-06-03",
		CreatedAt:   "2025-06-03T08:00:00Z",
	}, body[0])
	mockSvc.AssertExpectations(t)
}

func TestHTTP_QueryTransactions_Empty(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("QueryTransactions", mock.Anything, mock.Anything, mock.Anything).Return([]model.Transaction{}, nil)

	resp := newQueryTestAPI(t, mockSvc).Post("/transactions/query", FilterBody{
		UserID:    uuid.Must(uuid.NewV4()).String(),
		Frequency: "7",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
}

func TestHTTP_QueryTransactions_InvalidFilter(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("QueryTransactions", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &filter.InvalidFilterError{Reason: "Invalid custom date range"})

	resp := newQueryTestAPI(t, mockSvc).Post("/transactions/query", FilterBody{
		UserID:    uuid.Must(uuid.NewV4()).String(),
		Frequency: "custom",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Invalid custom date range", decodeError(t, resp.Body.Bytes()).Detail)
}

func TestHTTP_QueryTransactions_StorageError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("QueryTransactions", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	resp := newQueryTestAPI(t, mockSvc).Post("/transactions/query", FilterBody{
		UserID:    uuid.Must(uuid.NewV4()).String(),
		Frequency: "30",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_Analytics_Success(t *testing.T) {
	summary := analytics.Summarize([]model.Transaction{
		{Amount: decimal.RequireFromString("100"), Type: model.TransactionTypeIncome, Category: model.CategorySalary},
		{Amount: decimal.RequireFromString("50"), Type: model.TransactionTypeExpense, Category: model.CategoryFood},
	})

	mockSvc := new(mockTransactionService)
	mockSvc.On("SummarizeTransactions", mock.Anything, mock.Anything, mock.Anything).Return(summary, nil)

	resp := newQueryTestAPI(t, mockSvc).Post("/transactions/analytics", FilterBody{
		UserID:    uuid.Must(uuid.NewV4()).String(),
		Frequency: "365",
	})

	require.Equal(t, http.StatusOK, resp.Code)
	var body Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.Total)
	assert.Equal(t, "150", body.Turnover)
	assert.Equal(t, int64(67), body.IncomeTurnoverPercent.Rounded)
	assert.Equal(t, int64(33), body.ExpenseTurnoverPercent.Rounded)
	require.Len(t, body.IncomeCategories, 1)
	assert.Equal(t, "salary", body.IncomeCategories[0].Category)
	assert.Equal(t, int64(100), body.IncomeCategories[0].Percent.Rounded)
}

func TestHTTP_Analytics_InvalidFilter(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("SummarizeTransactions", mock.Anything, mock.Anything, mock.Anything).
		Return(analytics.Summary{}, &filter.InvalidFilterError{Reason: "unknown frequency 14"})

	resp := newQueryTestAPI(t, mockSvc).Post("/transactions/analytics", FilterBody{
		UserID:    uuid.Must(uuid.NewV4()).String(),
		Frequency: "14",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
