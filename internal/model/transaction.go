package model

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used on the wire.
const DateLayout = "2006-01-02"

// Transaction is a single income or expense record owned by one user.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Type        TransactionType
	Category    Category
	Description string
	Date        time.Time
	CreatedAt   time.Time
}

// MaxAmount is the exclusive upper bound of an amount. Amounts carry at most
// AmountScale decimal places.
var MaxAmount = decimal.New(1, 12)

const AmountScale = 2

// TransactionEdit holds the editable fields of a transaction. An edit
// replaces all of them at once.
type TransactionEdit struct {
	Amount      decimal.Decimal
	Type        TransactionType
	Category    Category
	Description string
	Date        time.Time
}

// Validate checks the invariants shared by new and edited transactions.
func (e TransactionEdit) Validate() error {
	if e.Amount.IsNegative() {
		return &ValidationError{Field: "amount", Message: "amount must be non-negative"}
	}
	if !e.Amount.Equal(e.Amount.Truncate(AmountScale)) {
		return &ValidationError{Field: "amount", Message: "amount must have at most 2 decimal places"}
	}
	if e.Amount.GreaterThanOrEqual(MaxAmount) {
		return &ValidationError{Field: "amount", Message: "amount must be less than " + MaxAmount.String()}
	}
	if !e.Type.Valid() {
		return &ValidationError{Field: "type", Message: "unknown type " + string(e.Type)}
	}
	if !e.Category.Valid() {
		return &ValidationError{Field: "category", Message: "unknown category " + string(e.Category)}
	}
	if strings.TrimSpace(e.Description) == "" {
		return &ValidationError{Field: "description", Message: "description is required"}
	}
	if e.Date.IsZero() {
		return &ValidationError{Field: "date", Message: "date is required"}
	}
	return nil
}

// Edit returns the editable fields of t.
func (t Transaction) Edit() TransactionEdit {
	return TransactionEdit{
		Amount:      t.Amount,
		Type:        t.Type,
		Category:    t.Category,
		Description: t.Description,
		Date:        t.Date,
	}
}

// Validate checks a transaction before it is created.
func (t Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return &ValidationError{Field: "userId", Message: "userId is required"}
	}
	return t.Edit().Validate()
}

// TruncateDate drops the time of day, keeping the calendar date in UTC.
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts a YYYY-MM-DD date or an RFC3339 timestamp and returns
// the calendar date at UTC midnight.
func ParseDate(raw string) (time.Time, error) {
	if d, err := time.Parse(DateLayout, raw); err == nil {
		return d, nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "date", Message: "invalid date " + raw}
	}
	return TruncateDate(ts), nil
}
