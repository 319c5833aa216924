// Package analytics reduces a list of transactions into the numbers shown on
// the analytics view.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-tracker/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Percent keeps the unrounded value next to the rounded display value.
type Percent struct {
	Raw     decimal.Decimal
	Rounded int64
}

// percentOf returns 100*part/whole. A zero whole yields 0%.
func percentOf(part, whole decimal.Decimal) Percent {
	if whole.IsZero() {
		return Percent{Raw: decimal.Zero}
	}
	raw := part.Mul(hundred).Div(whole)
	return Percent{Raw: raw, Rounded: raw.Round(0).IntPart()}
}

// CategoryShare is the turnover of one category within a transaction type.
type CategoryShare struct {
	Category model.Category
	Amount   decimal.Decimal
	Percent  Percent
}

// Summary holds the count and turnover breakdowns of a transaction list.
type Summary struct {
	Total        int
	IncomeCount  int
	ExpenseCount int

	IncomePercent  Percent
	ExpensePercent Percent

	Turnover        decimal.Decimal
	IncomeTurnover  decimal.Decimal
	ExpenseTurnover decimal.Decimal

	IncomeTurnoverPercent  Percent
	ExpenseTurnoverPercent Percent

	// Only categories with a positive amount are listed, in
	// model.AllCategories order.
	IncomeCategories  []CategoryShare
	ExpenseCategories []CategoryShare
}

// Summarize computes the Summary of transactions. It never fails; empty
// input gives zero counts, zero turnover and 0% everywhere.
func Summarize(transactions []model.Transaction) Summary {
	s := Summary{
		Total:           len(transactions),
		Turnover:        decimal.Zero,
		IncomeTurnover:  decimal.Zero,
		ExpenseTurnover: decimal.Zero,
	}

	incomeByCategory := make(map[model.Category]decimal.Decimal)
	expenseByCategory := make(map[model.Category]decimal.Decimal)

	for _, tx := range transactions {
		s.Turnover = s.Turnover.Add(tx.Amount)

		switch tx.Type {
		case model.TransactionTypeIncome:
			s.IncomeCount++
			s.IncomeTurnover = s.IncomeTurnover.Add(tx.Amount)
			incomeByCategory[tx.Category] = incomeByCategory[tx.Category].Add(tx.Amount)
		case model.TransactionTypeExpense:
			s.ExpenseCount++
			s.ExpenseTurnover = s.ExpenseTurnover.Add(tx.Amount)
			expenseByCategory[tx.Category] = expenseByCategory[tx.Category].Add(tx.Amount)
		}
	}

	total := decimal.NewFromInt(int64(s.Total))
	s.IncomePercent = percentOf(decimal.NewFromInt(int64(s.IncomeCount)), total)
	s.ExpensePercent = percentOf(decimal.NewFromInt(int64(s.ExpenseCount)), total)

	s.IncomeTurnoverPercent = percentOf(s.IncomeTurnover, s.Turnover)
	s.ExpenseTurnoverPercent = percentOf(s.ExpenseTurnover, s.Turnover)

	s.IncomeCategories = categoryShares(incomeByCategory, s.IncomeTurnover)
	s.ExpenseCategories = categoryShares(expenseByCategory, s.ExpenseTurnover)

	return s
}

func categoryShares(amounts map[model.Category]decimal.Decimal, turnover decimal.Decimal) []CategoryShare {
	var shares []CategoryShare
	for _, category := range model.AllCategories {
		amount, ok := amounts[category]
		if !ok || !amount.IsPositive() {
			continue
		}
		shares = append(shares, CategoryShare{
			Category: category,
			Amount:   amount,
			Percent:  percentOf(amount, turnover),
		})
	}
	return shares
}
