package transaction

import (
	"time"

	"github.com/carson-networks/expense-tracker/internal/model"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	UserID      string `json:"userId" doc:"Owner UUID"`
	Amount      string `json:"amount" doc:"Decimal amount"`
	Type        string `json:"type" enum:"income,expense" doc:"Transaction type"`
	Category    string `json:"category" doc:"Transaction category"`
	Description string `json:"description" doc:"Free text description"`
	Date        string `json:"date" doc:"Calendar date, YYYY-MM-DD"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
}

func newTransaction(tx model.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID.String(),
		UserID:      tx.UserID.String(),
		Amount:      tx.Amount.String(),
		Type:        tx.Type.String(),
		Category:    tx.Category.String(),
		Description: tx.Description,
		Date:        tx.Date.Format(model.DateLayout),
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
}

// amountNote is appended to the descriptions of operations taking an amount.
const amountNote = " The amount is a decimal JSON string such as \"12.50\"; a JSON number is rejected with 422."

// TransactionFields are the editable fields shared by the add and edit
// bodies. Every field is required; they are pointers so a missing field can
// be told apart from a zero value.
type TransactionFields struct {
	Amount      *string `json:"amount,omitempty" doc:"Non-negative decimal amount as a JSON string, at most 2 decimal places and below 1000000000000"`
	Type        *string `json:"type,omitempty" doc:"income or expense"`
	Category    *string `json:"category,omitempty" doc:"salary, tip, project, food, movie, bills, medical, fee, tax or other"`
	Description *string `json:"description,omitempty" doc:"Non-blank free text description"`
	Date        *string `json:"date,omitempty" doc:"YYYY-MM-DD or RFC3339 date"`
}
