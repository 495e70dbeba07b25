package main

import (
	"fmt"

	"github.com/matsen/trackers/internal/expense"
	"github.com/spf13/cobra"
)

func init() {
	addCmd.Flags().StringP("description", "d", "", "What the money was spent on (required)")
	addCmd.Flags().StringP("amount", "a", "", "Positive amount (required)")
	addCmd.Flags().String("date", "", "Date as YYYY-MM-DD (default today)")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an expense",
	Long: `Add an expense with a description and a positive amount.

Example:
  expense-tracker add --description "Lunch" --amount 20`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	description, _ := cmd.Flags().GetString("description")
	amountArg, _ := cmd.Flags().GetString("amount")
	date, _ := cmd.Flags().GetString("date")

	amount, err := expense.ParseAmount(amountArg)
	if err != nil {
		return err
	}

	tracker, err := openTracker()
	if err != nil {
		return err
	}

	e, err := tracker.Add(expense.Draft{
		Description: description,
		Amount:      amount,
		Date:        date,
	})
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(StatusResponse{Status: "added", Expense: &e})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Expense added successfully (ID: %d)\n", e.ID)
	return nil
}
