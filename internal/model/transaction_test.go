package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEdit() TransactionEdit {
	return TransactionEdit{
		Amount:      decimal.RequireFromString("42.50"),
		Type:        TransactionTypeExpense,
		Category:    CategoryFood,
		Description: "Groceries",
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestTransactionEditValidate_Accepts(t *testing.T) {
	for _, amount := range []string{"0", "0.01", "1.500", "999999999999.99"} {
		t.Run(amount, func(t *testing.T) {
			edit := validEdit()
			edit.Amount = decimal.RequireFromString(amount)
			assert.NoError(t, edit.Validate())
		})
	}
}

func TestTransactionEditValidate_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*TransactionEdit)
		field  string
	}{
		{"negative amount", func(e *TransactionEdit) { e.Amount = decimal.RequireFromString("-1") }, "amount"},
		{"three decimal places", func(e *TransactionEdit) { e.Amount = decimal.RequireFromString("1.005") }, "amount"},
		{"amount at the bound", func(e *TransactionEdit) { e.Amount = MaxAmount }, "amount"},
		{"exponent amount", func(e *TransactionEdit) { e.Amount = decimal.RequireFromString("1e15") }, "amount"},
		{"unknown type", func(e *TransactionEdit) { e.Type = "refund" }, "type"},
		{"unknown category", func(e *TransactionEdit) { e.Category = "travel" }, "category"},
		{"empty description", func(e *TransactionEdit) { e.Description = "" }, "description"},
		{"blank description", func(e *TransactionEdit) { e.Description = "   " }, "description"},
		{"zero date", func(e *TransactionEdit) { e.Date = time.Time{} }, "date"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			edit := validEdit()
			tc.modify(&edit)

			err := edit.Validate()

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestTransactionTypeValid(t *testing.T) {
	for _, txType := range AllTransactionTypes {
		assert.True(t, txType.Valid(), string(txType))
	}
	assert.False(t, TransactionType("transfer").Valid())
	assert.False(t, TransactionType("").Valid())

	_, err := ParseTransactionType("Income")
	assert.Error(t, err)
}
