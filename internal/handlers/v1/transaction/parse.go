package transaction

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-tracker/internal/model"
)

func missing(field string) error {
	return huma.NewError(http.StatusBadRequest, field+" is required")
}

// parseTransactionFields checks the fields in amount, type, category,
// description, date order and reports the first one missing.
func parseTransactionFields(fields TransactionFields) (model.TransactionEdit, error) {
	var edit model.TransactionEdit

	if fields.Amount == nil || strings.TrimSpace(*fields.Amount) == "" {
		return edit, missing("amount")
	}
	if fields.Type == nil || *fields.Type == "" {
		return edit, missing("type")
	}
	if fields.Category == nil || *fields.Category == "" {
		return edit, missing("category")
	}
	if fields.Description == nil || strings.TrimSpace(*fields.Description) == "" {
		return edit, missing("description")
	}
	if fields.Date == nil || *fields.Date == "" {
		return edit, missing("date")
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(*fields.Amount))
	if err != nil {
		return edit, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	txType, err := model.ParseTransactionType(*fields.Type)
	if err != nil {
		return edit, huma.NewError(http.StatusBadRequest, err.Error())
	}
	category, err := model.ParseCategory(*fields.Category)
	if err != nil {
		return edit, huma.NewError(http.StatusBadRequest, err.Error())
	}
	date, err := model.ParseDate(*fields.Date)
	if err != nil {
		return edit, huma.NewError(http.StatusBadRequest, "invalid date", err)
	}

	edit = model.TransactionEdit{
		Amount:      amount,
		Type:        txType,
		Category:    category,
		Description: *fields.Description,
		Date:        date,
	}
	if err := edit.Validate(); err != nil {
		return edit, huma.NewError(http.StatusBadRequest, err.Error())
	}
	return edit, nil
}

func parseID(raw, field string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, missing(field)
	}
	id, err := uuid.FromString(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return id, nil
}

// parseOwner parses an optional userId.
func parseOwner(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	owner, err := parseID(raw, "userId")
	if err != nil {
		return nil, err
	}
	return &owner, nil
}
