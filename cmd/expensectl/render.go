package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/carson-networks/expense-tracker/internal/analytics"
	"github.com/carson-networks/expense-tracker/internal/model"
	"github.com/carson-networks/expense-tracker/internal/preferences"
)

func printFilter(w io.Writer, p preferences.Preferences) {
	fmt.Fprintf(w, "frequency: %s\n", p.Frequency)
	if len(p.DateRange) == 2 {
		fmt.Fprintf(w, "range:     %s to %s\n", p.DateRange[0], p.DateRange[1])
	}
	fmt.Fprintf(w, "type:      %s\n", p.Type)
}

func printTransactions(w io.Writer, txs []model.Transaction) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTYPE\tCATEGORY\tAMOUNT\tDESCRIPTION\tID")
	for _, tx := range txs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			tx.Date.Format(model.DateLayout),
			tx.Type,
			tx.Category,
			tx.Amount.StringFixed(2),
			tx.Description,
			tx.ID,
		)
	}
	return tw.Flush()
}

func printSummary(w io.Writer, s analytics.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Transactions\t%d\n", s.Total)
	fmt.Fprintf(tw, "  income\t%d\t%d%%\n", s.IncomeCount, s.IncomePercent.Rounded)
	fmt.Fprintf(tw, "  expense\t%d\t%d%%\n", s.ExpenseCount, s.ExpensePercent.Rounded)
	fmt.Fprintf(tw, "Turnover\t%s\n", s.Turnover.StringFixed(2))
	fmt.Fprintf(tw, "  income\t%s\t%d%%\n", s.IncomeTurnover.StringFixed(2), s.IncomeTurnoverPercent.Rounded)
	fmt.Fprintf(tw, "  expense\t%s\t%d%%\n", s.ExpenseTurnover.StringFixed(2), s.ExpenseTurnoverPercent.Rounded)

	printShares(tw, "Income by category", s.IncomeCategories)
	printShares(tw, "Expense by category", s.ExpenseCategories)
	return tw.Flush()
}

func printShares(w io.Writer, title string, shares []analytics.CategoryShare) {
	if len(shares) == 0 {
		return
	}
	fmt.Fprintln(w, title)
	for _, share := range shares {
		fmt.Fprintf(w, "  %s\t%s\t%d%%\n", share.Category, share.Amount.StringFixed(2), share.Percent.Rounded)
	}
}
