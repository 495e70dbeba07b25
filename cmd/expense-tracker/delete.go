package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	deleteCmd.Flags().Int("id", 0, "Expense ID (required)")
	deleteCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an expense",
	Args:  cobra.NoArgs,
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetInt("id")

	tracker, err := openTracker()
	if err != nil {
		return err
	}
	if err := tracker.Delete(id); err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(StatusResponse{Status: "deleted", ID: id})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Expense %d deleted successfully.\n", id)
	return nil
}
