// Package client is a typed HTTP client for the expense tracker API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-tracker/internal/analytics"
	"github.com/carson-networks/expense-tracker/internal/filter"
	"github.com/carson-networks/expense-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/expense-tracker/internal/handlers/v1/user"
	"github.com/carson-networks/expense-tracker/internal/model"
)

// APIError is a non-2xx response.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Detail)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a Client for the server at baseURL. A nil httpClient gets a
// client with a 30 second timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		var errModel huma.ErrorModel
		if json.NewDecoder(resp.Body).Decode(&errModel) == nil {
			apiErr.Detail = errModel.Detail
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Register(ctx context.Context, name, email, password string) (string, error) {
	var resp user.RegisterResponse
	err := c.post(ctx, "/users/register", user.RegisterBody{Name: name, Email: email, Password: password}, &resp)
	return resp.ID, err
}

func (c *Client) Login(ctx context.Context, email, password string) (*user.User, error) {
	var resp user.User
	if err := c.post(ctx, "/users/login", user.LoginBody{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func filterBody(userID string, f filter.Filter) transaction.FilterBody {
	return transaction.FilterBody{
		UserID:    userID,
		Frequency: string(f.Frequency),
		DateRange: f.DateRange,
		Type:      string(f.Type),
	}
}

// Query returns the user's transactions matching f, newest first.
func (c *Client) Query(ctx context.Context, userID string, f filter.Filter) ([]model.Transaction, error) {
	var resp []transaction.Transaction
	if err := c.post(ctx, "/transactions/query", filterBody(userID, f), &resp); err != nil {
		return nil, err
	}

	out := make([]model.Transaction, len(resp))
	for i, tx := range resp {
		parsed, err := toModel(tx)
		if err != nil {
			return nil, err
		}
		out[i] = parsed
	}
	return out, nil
}

// Analytics returns the server-side summary of the user's transactions
// matching f.
func (c *Client) Analytics(ctx context.Context, userID string, f filter.Filter) (analytics.Summary, error) {
	var resp transaction.Summary
	if err := c.post(ctx, "/transactions/analytics", filterBody(userID, f), &resp); err != nil {
		return analytics.Summary{}, err
	}
	return toSummary(resp)
}

func (c *Client) Get(ctx context.Context, transactionID, userID string) (*model.Transaction, error) {
	var resp transaction.Transaction
	body := transaction.GetTransactionBody{TransactionID: transactionID, UserID: userID}
	if err := c.post(ctx, "/transactions/get", body, &resp); err != nil {
		return nil, err
	}
	tx, err := toModel(resp)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func fields(edit model.TransactionEdit) transaction.TransactionFields {
	amount := edit.Amount.String()
	txType := edit.Type.String()
	category := edit.Category.String()
	description := edit.Description
	date := edit.Date.Format(model.DateLayout)
	return transaction.TransactionFields{
		Amount:      &amount,
		Type:        &txType,
		Category:    &category,
		Description: &description,
		Date:        &date,
	}
}

// Add creates tx and returns the new id.
func (c *Client) Add(ctx context.Context, tx model.Transaction) (string, error) {
	userID := tx.UserID.String()
	body := transaction.AddTransactionBody{UserID: &userID, TransactionFields: fields(tx.Edit())}

	var resp transaction.AddTransactionResponse
	err := c.post(ctx, "/transactions/add", body, &resp)
	return resp.ID, err
}

func (c *Client) Edit(ctx context.Context, transactionID, userID string, edit model.TransactionEdit) (int64, error) {
	body := transaction.EditTransactionBody{TransactionID: transactionID, UserID: userID, Payload: fields(edit)}

	var resp transaction.MutationResponse
	err := c.post(ctx, "/transactions/edit", body, &resp)
	return resp.RowsAffected, err
}

func (c *Client) Delete(ctx context.Context, transactionID, userID string) (int64, error) {
	body := transaction.DeleteTransactionBody{TransactionID: transactionID, UserID: userID}

	var resp transaction.MutationResponse
	err := c.post(ctx, "/transactions/delete", body, &resp)
	return resp.RowsAffected, err
}

func toPercent(p transaction.Percent) (analytics.Percent, error) {
	raw, err := decimal.NewFromString(p.Value)
	if err != nil {
		return analytics.Percent{}, fmt.Errorf("percent: %w", err)
	}
	return analytics.Percent{Raw: raw, Rounded: p.Rounded}, nil
}

func toShares(shares []transaction.CategoryShare) ([]analytics.CategoryShare, error) {
	out := make([]analytics.CategoryShare, len(shares))
	for i, share := range shares {
		amount, err := decimal.NewFromString(share.Amount)
		if err != nil {
			return nil, fmt.Errorf("category %s amount: %w", share.Category, err)
		}
		percent, err := toPercent(share.Percent)
		if err != nil {
			return nil, err
		}
		out[i] = analytics.CategoryShare{Category: model.Category(share.Category), Amount: amount, Percent: percent}
	}
	return out, nil
}

func toSummary(s transaction.Summary) (analytics.Summary, error) {
	out := analytics.Summary{
		Total:        s.Total,
		IncomeCount:  s.IncomeCount,
		ExpenseCount: s.ExpenseCount,
	}

	amounts := []struct {
		raw string
		dst *decimal.Decimal
	}{
		{s.Turnover, &out.Turnover},
		{s.IncomeTurnover, &out.IncomeTurnover},
		{s.ExpenseTurnover, &out.ExpenseTurnover},
	}
	for _, a := range amounts {
		d, err := decimal.NewFromString(a.raw)
		if err != nil {
			return analytics.Summary{}, fmt.Errorf("turnover: %w", err)
		}
		*a.dst = d
	}

	percents := []struct {
		in  transaction.Percent
		dst *analytics.Percent
	}{
		{s.IncomePercent, &out.IncomePercent},
		{s.ExpensePercent, &out.ExpensePercent},
		{s.IncomeTurnoverPercent, &out.IncomeTurnoverPercent},
		{s.ExpenseTurnoverPercent, &out.ExpenseTurnoverPercent},
	}
	for _, p := range percents {
		converted, err := toPercent(p.in)
		if err != nil {
			return analytics.Summary{}, err
		}
		*p.dst = converted
	}

	var err error
	if out.IncomeCategories, err = toShares(s.IncomeCategories); err != nil {
		return analytics.Summary{}, err
	}
	if out.ExpenseCategories, err = toShares(s.ExpenseCategories); err != nil {
		return analytics.Summary{}, err
	}
	return out, nil
}

func toModel(tx transaction.Transaction) (model.Transaction, error) {
	id, err := uuid.FromString(tx.ID)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("transaction id: %w", err)
	}
	userID, err := uuid.FromString(tx.UserID)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("transaction userId: %w", err)
	}
	amount, err := decimal.NewFromString(tx.Amount)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("transaction amount: %w", err)
	}
	date, err := model.ParseDate(tx.Date)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("transaction date: %w", err)
	}
	createdAt, _ := time.Parse(time.RFC3339, tx.CreatedAt)

	return model.Transaction{
		ID:          id,
		UserID:      userID,
		Amount:      amount,
		Type:        model.TransactionType(tx.Type),
		Category:    model.Category(tx.Category),
		Description: tx.Description,
		Date:        date,
		CreatedAt:   createdAt,
	}, nil
}
