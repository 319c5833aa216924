package model

// TransactionType says whether a transaction adds to or takes from the user's money.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// AllTransactionTypes lists every TransactionType.
var AllTransactionTypes = []TransactionType{
	TransactionTypeIncome,
	TransactionTypeExpense,
}

func (t TransactionType) Valid() bool {
	for _, known := range AllTransactionTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (t TransactionType) String() string {
	return string(t)
}

// ParseTransactionType converts raw input into a TransactionType.
func ParseTransactionType(raw string) (TransactionType, error) {
	t := TransactionType(raw)
	if !t.Valid() {
		return "", &ValidationError{Field: "type", Message: "unknown type " + raw}
	}
	return t, nil
}
