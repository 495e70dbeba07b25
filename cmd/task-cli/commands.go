package main

import (
	"fmt"

	"github.com/matsen/trackers/internal/task"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(newMarkCmd("mark-in-progress", task.StatusInProgress))
	rootCmd.AddCommand(newMarkCmd("mark-done", task.StatusDone))
	rootCmd.AddCommand(newMarkCmd("mark-todo", task.StatusTodo))
}

var addCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a new task",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	tracker, err := openTracker()
	if err != nil {
		return err
	}

	t, err := tracker.Add(task.Draft{Description: args[0]})
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(StatusResponse{Status: "added", Task: &t})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Task added successfully (ID: %d)\n", t.ID)
	return nil
}

var updateCmd = &cobra.Command{
	Use:   "update <id> <description>",
	Short: "Update a task's description",
	Args:  cobra.ExactArgs(2),
	RunE:  runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	tracker, err := openTracker()
	if err != nil {
		return err
	}

	description := args[1]
	t, err := tracker.Update(id, task.Patch{Description: &description})
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(StatusResponse{Status: "updated", Task: &t})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Task %d updated successfully.\n", id)
	return nil
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

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
	fmt.Fprintf(cmd.OutOrStdout(), "Task %d deleted successfully.\n", id)
	return nil
}

// newMarkCmd builds a command that moves a task to status.
func newMarkCmd(name string, status task.Status) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <id>",
		Short: fmt.Sprintf("Set a task's status to '%s'", status),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMark(cmd, args[0], status)
		},
	}
}

func runMark(cmd *cobra.Command, arg string, status task.Status) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	tracker, err := openTracker()
	if err != nil {
		return err
	}

	t, err := tracker.SetStatus(id, status)
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(StatusResponse{Status: string(status), Task: &t})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Task %d %s successfully.\n", id, statusAction(status))
	return nil
}
