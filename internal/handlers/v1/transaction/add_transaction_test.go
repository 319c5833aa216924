package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expense-tracker/internal/model"
	"github.com/carson-networks/expense-tracker/internal/service"
)

func newAddTestAPI(t *testing.T, svc transactionAdder) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewAddTransactionHandler(svc).Register(api)
	return api
}

func validAddBody(userID string) map[string]any {
	return map[string]any{
		"userId":      userID,
		"amount":      "12.50",
		"type":        "expense",
		"category":    "food",
		"description": "Coffee",
		"date":        "2025-06-01",
	}
}

func decodeError(t *testing.T, body []byte) huma.ErrorModel {
	t.Helper()
	var errModel huma.ErrorModel
	require.NoError(t, json.Unmarshal(body, &errModel))
	return errModel
}

// -- parseAddTransactionInput unit tests --

func strPtr(s string) *string { return &s }

func TestParseAddTransactionInput_ValidInput(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	input := &AddTransactionInput{Body: AddTransactionBody{
		UserID: strPtr(userID.String()),
		TransactionFields: TransactionFields{
			Amount:      strPtr("123.45"),
			Type:        strPtr("income"),
			Category:    strPtr("salary"),
			Description: strPtr("January salary"),
			Date:        strPtr("2025-01-15T23:30:00Z"),
		},
	}}

	tx, err := parseAddTransactionInput(input)
	require.NoError(t, err)
	assert.Equal(t, userID, tx.UserID)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("123.45")))
	assert.Equal(t, model.TransactionTypeIncome, tx.Type)
	assert.Equal(t, model.CategorySalary, tx.Category)
	assert.Equal(t, "January salary", tx.Description)
	assert.True(t, tx.Date.Equal(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)))
}

func TestParseAddTransactionInput_ZeroAmountAllowed(t *testing.T) {
	body := AddTransactionBody{
		UserID: strPtr(uuid.Must(uuid.NewV4()).String()),
		TransactionFields: TransactionFields{
			Amount:      strPtr("0"),
			Type:        strPtr("expense"),
			Category:    strPtr("other"),
			Description: strPtr("free sample"),
			Date:        strPtr("2025-01-15"),
		},
	}

	tx, err := parseAddTransactionInput(&AddTransactionInput{Body: body})
	require.NoError(t, err)
	assert.True(t, tx.Amount.IsZero())
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_AddTransaction_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionService)
	mockSvc.On("AddTransaction", mock.Anything, mock.MatchedBy(func(tx model.Transaction) bool {
		return tx.UserID == userID &&
			tx.Amount.Equal(decimal.RequireFromString("12.50")) &&
			tx.Type == model.TransactionTypeExpense &&
			tx.Category == model.CategoryFood &&
			tx.Description == "Coffee" &&
			tx.Date.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	})).Return(txID, nil)

	resp := newAddTestAPI(t, mockSvc).Post("/transactions/add", validAddBody(userID.String()))

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body AddTransactionResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, txID.String(), body.ID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_AddTransaction_MissingFields(t *testing.T) {
	userID := uuid.Must(uuid.NewV4()).String()

	for _, field := range []string{"userId", "amount", "type", "category", "description", "date"} {
		t.Run(field, func(t *testing.T) {
			mockSvc := new(mockTransactionService)
			body := validAddBody(userID)
			delete(body, field)

			resp := newAddTestAPI(t, mockSvc).Post("/transactions/add", body)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Equal(t, field+" is required", decodeError(t, resp.Body.Bytes()).Detail)
			mockSvc.AssertNotCalled(t, "AddTransaction")
		})
	}
}

func TestHTTP_AddTransaction_EmptyFieldsAreMissing(t *testing.T) {
	userID := uuid.Must(uuid.NewV4()).String()

	cases := map[string]struct {
		field string
		value string
	}{
		"empty description": {"description", ""},
		"blank description": {"description", "  "},
		"empty amount":      {"amount", ""},
		"empty date":        {"date", ""},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			mockSvc := new(mockTransactionService)
			body := validAddBody(userID)
			body[tc.field] = tc.value

			resp := newAddTestAPI(t, mockSvc).Post("/transactions/add", body)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Equal(t, tc.field+" is required", decodeError(t, resp.Body.Bytes()).Detail)
			mockSvc.AssertNotCalled(t, "AddTransaction")
		})
	}
}

func TestHTTP_AddTransaction_AmountOutsideColumnRange(t *testing.T) {
	userID := uuid.Must(uuid.NewV4()).String()

	for _, amount := range []string{"1.005", "1e15", "1000000000000"} {
		t.Run(amount, func(t *testing.T) {
			mockSvc := new(mockTransactionService)
			body := validAddBody(userID)
			body["amount"] = amount

			resp := newAddTestAPI(t, mockSvc).Post("/transactions/add", body)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Contains(t, decodeError(t, resp.Body.Bytes()).Detail, "amount must")
			mockSvc.AssertNotCalled(t, "AddTransaction")
		})
	}
}

func TestHTTP_AddTransaction_NumericAmountRejected(t *testing.T) {
	mockSvc := new(mockTransactionService)
	api := newAddTestAPI(t, mockSvc)
	body := validAddBody(uuid.Must(uuid.NewV4()).String())
	body["amount"] = 100

	resp := api.Post("/transactions/add", body)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "AddTransaction")

	op := api.OpenAPI().Paths["/transactions/add"].Post
	require.NotNil(t, op)
	assert.Contains(t, op.Description, "decimal JSON string")
}

func TestHTTP_AddTransaction_ReportsFirstMissingField(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newAddTestAPI(t, mockSvc).Post("/transactions/add", map[string]any{
		"userId":   uuid.Must(uuid.NewV4()).String(),
		"category": "food",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "amount is required", decodeError(t, resp.Body.Bytes()).Detail)
	mockSvc.AssertNotCalled(t, "AddTransaction")
}

func TestHTTP_AddTransaction_InvalidValues(t *testing.T) {
	userID := uuid.Must(uuid.NewV4()).String()

	cases := map[string]map[string]any{
		"negative amount":  {"amount": "-5"},
		"bad amount":       {"amount": "twelve"},
		"unknown type":     {"type": "refund"},
		"unknown category": {"category": "travel"},
		"bad date":         {"date": "01/06/2025"},
		"bad userId":       {"userId": "not-a-uuid"},
	}

	for name, override := range cases {
		t.Run(name, func(t *testing.T) {
			mockSvc := new(mockTransactionService)
			body := validAddBody(userID)
			for k, v := range override {
				body[k] = v
			}

			resp := newAddTestAPI(t, mockSvc).Post("/transactions/add", body)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			mockSvc.AssertNotCalled(t, "AddTransaction")
		})
	}
}

func TestHTTP_AddTransaction_UnknownUser(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("AddTransaction", mock.Anything, mock.Anything).
		Return(nil, &model.ValidationError{Field: "userId", Message: "unknown userId"})

	resp := newAddTestAPI(t, mockSvc).Post("/transactions/add", validAddBody(uuid.Must(uuid.NewV4()).String()))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "unknown userId", decodeError(t, resp.Body.Bytes()).Detail)
}

func TestHTTP_AddTransaction_StorageError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("AddTransaction", mock.Anything, mock.Anything).
		Return(nil, &service.StorageError{Op: "insert transaction", Err: errors.New("database unavailable")})

	resp := newAddTestAPI(t, mockSvc).Post("/transactions/add", validAddBody(uuid.Must(uuid.NewV4()).String()))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
