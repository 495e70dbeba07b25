package main

import (
	"fmt"
	"io"

	"github.com/matsen/trackers/internal/expense"
	"github.com/matsen/trackers/internal/record"
	"github.com/matsen/trackers/internal/storage"
	"github.com/spf13/cobra"
)

func init() {
	summaryCmd.Flags().StringP("month", "m", "", "Only count expenses in this month (1-12)")
	summaryCmd.Flags().IntP("year", "y", 0, "Only count expenses in this year")
	summaryCmd.Flags().Bool("by-month", false, "Break the total down per calendar month")
	rootCmd.AddCommand(summaryCmd)
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show total expenses",
	Long: `Show the total of all expenses, or of one month with --month.

Examples:
  expense-tracker summary
  expense-tracker summary --month 8
  expense-tracker summary --by-month --year 2026
  expense-tracker summary --by-month --month 12`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	monthArg, _ := cmd.Flags().GetString("month")
	year, _ := cmd.Flags().GetInt("year")
	byMonth, _ := cmd.Flags().GetBool("by-month")

	var month int
	if monthArg != "" {
		m, err := expense.ParseMonth(monthArg)
		if err != nil {
			return err
		}
		month = m
	}
	if year < 0 {
		return record.Invalid("year", "%d is not a valid year", year)
	}

	tracker, err := openTracker()
	if err != nil {
		return err
	}

	var preds []expense.Predicate
	if month != 0 {
		preds = append(preds, expense.InMonth(month))
	}
	if year != 0 {
		preds = append(preds, expense.InYear(year))
	}
	pred := expense.And(preds...)

	if byMonth {
		return runMonthlyBreakdown(cmd.OutOrStdout(), tracker.List(), year, month, pred)
	}

	total := tracker.Summarize(pred)

	if jsonOutput {
		return outputJSON(SummaryResponse{Month: month, Year: year, Total: total})
	}
	fmt.Fprintln(cmd.OutOrStdout(), summaryLine(month, year, total, currency()))
	return nil
}

// summaryLine renders the human-readable total.
func summaryLine(month, year int, total float64, symbol string) string {
	amount := symbol + expense.FormatAmount(total)
	switch {
	case month != 0 && year != 0:
		return fmt.Sprintf("Total expenses for month %d of %d: %s", month, year, amount)
	case month != 0:
		return fmt.Sprintf("Total expenses for month %d: %s", month, amount)
	case year != 0:
		return fmt.Sprintf("Total expenses for %d: %s", year, amount)
	default:
		return fmt.Sprintf("Total expenses: %s", amount)
	}
}

// runMonthlyBreakdown indexes the expenses in SQLite and groups them by month.
// pred selects the same expenses as the year and month filters.
func runMonthlyBreakdown(w io.Writer, expenses []expense.Expense, year, month int, pred expense.Predicate) error {
	db, err := storage.OpenMemory()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.RebuildExpenses(expenses); err != nil {
		return fmt.Errorf("indexing expenses: %w", err)
	}
	totals, err := db.MonthlyTotals(year, month)
	if err != nil {
		return err
	}

	if jsonOutput {
		total := expense.Summarize(expenses, pred)
		return outputJSON(SummaryResponse{Month: month, Year: year, Total: total, Months: totals})
	}
	printMonthlyTotals(w, totals, currency())
	return nil
}
