package main

import (
	"fmt"

	"github.com/matsen/trackers/internal/expense"
	"github.com/spf13/cobra"
)

func init() {
	updateCmd.Flags().Int("id", 0, "Expense ID (required)")
	updateCmd.Flags().StringP("description", "d", "", "New description")
	updateCmd.Flags().StringP("amount", "a", "", "New positive amount")
	updateCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update an expense",
	Long: `Update the description and/or amount of an expense. Omitted fields
are left unchanged; an empty description or a non-positive amount is ignored.`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetInt("id")

	var patch expense.Patch
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		patch.Description = &description
	}
	if cmd.Flags().Changed("amount") {
		amountArg, _ := cmd.Flags().GetString("amount")
		if amount, err := expense.ParseAmount(amountArg); err == nil {
			patch.Amount = &amount
		} else {
			log.Warnf("ignoring amount: %v", err)
		}
	}

	tracker, err := openTracker()
	if err != nil {
		return err
	}

	e, err := tracker.Update(id, patch)
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(StatusResponse{Status: "updated", Expense: &e})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Expense %d updated successfully.\n", id)
	return nil
}
