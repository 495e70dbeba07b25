package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all expenses",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	tracker, err := openTracker()
	if err != nil {
		return err
	}
	expenses := tracker.List()

	if jsonOutput {
		return outputJSON(ListResponse{Expenses: expenses, Count: len(expenses)})
	}
	printExpenseTable(cmd.OutOrStdout(), expenses, currency())
	return nil
}
