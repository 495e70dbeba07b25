package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/matsen/trackers/internal/expense"
	"github.com/matsen/trackers/internal/storage"
)

// Column widths for the expense table.
const (
	minIDWidth          = 2
	minDescriptionWidth = 15
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	return writeJSON(os.Stdout, v)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// StatusResponse is the response for add, update and delete.
type StatusResponse struct {
	Status  string           `json:"status"`
	Expense *expense.Expense `json:"expense,omitempty"`
	ID      int              `json:"id,omitempty"`
}

// ListResponse is the response for the list command.
type ListResponse struct {
	Expenses []expense.Expense `json:"expenses"`
	Count    int               `json:"count"`
}

// SummaryResponse is the response for the summary command.
type SummaryResponse struct {
	Month  int                  `json:"month,omitempty"`
	Year   int                  `json:"year,omitempty"`
	Total  float64              `json:"total"`
	Months []storage.MonthTotal `json:"months,omitempty"`
}

// printExpenseTable prints expenses as an aligned table.
func printExpenseTable(w io.Writer, expenses []expense.Expense, symbol string) {
	if len(expenses) == 0 {
		fmt.Fprintln(w, "No expenses recorded yet.")
		return
	}

	idWidth, descWidth := minIDWidth, minDescriptionWidth
	for _, e := range expenses {
		idWidth = max(idWidth, len(strconv.Itoa(e.ID)))
		descWidth = max(descWidth, len([]rune(e.Description)))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-*s  %-10s  %-*s  %s\n", idWidth, "ID", "Date", descWidth, "Description", "Amount")
	fmt.Fprintf(w, "%-*s  %-10s  %-*s  %s\n", idWidth, "--", "----", descWidth, "-----------", "------")
	for _, e := range expenses {
		fmt.Fprintf(w, "%-*d  %-10s  %-*s  %s%s\n",
			idWidth, e.ID, e.Date, descWidth, e.Description, symbol, expense.FormatAmount(e.Amount))
	}
	fmt.Fprintln(w)
}

// printMonthlyTotals prints one line per month.
func printMonthlyTotals(w io.Writer, totals []storage.MonthTotal, symbol string) {
	if len(totals) == 0 {
		fmt.Fprintln(w, "No expenses recorded yet.")
		return
	}
	for _, mt := range totals {
		noun := "expenses"
		if mt.Count == 1 {
			noun = "expense"
		}
		fmt.Fprintf(w, "%s  %s%s  (%d %s)\n", mt.Month, symbol, mt.Total.String(), mt.Count, noun)
	}
}
