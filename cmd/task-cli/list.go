package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matsen/trackers/internal/storage"
	"github.com/matsen/trackers/internal/task"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)

	searchCmd.Flags().StringP("status", "s", "", "Only match tasks with this status")
	rootCmd.AddCommand(searchCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [todo|in-progress|done]",
	Short: "List all tasks or filter by status",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	var filter *task.Status
	if len(args) == 1 {
		st, err := task.ParseStatus(args[0])
		if err != nil {
			return err
		}
		filter = &st
	}

	tracker, err := openTracker()
	if err != nil {
		return err
	}
	tasks := slices.Collect(tracker.List(filter))

	if jsonOutput {
		resp := ListResponse{Tasks: tasks, Count: len(tasks)}
		if filter != nil {
			resp.Filter = string(*filter)
		}
		if resp.Tasks == nil {
			resp.Tasks = []task.Task{}
		}
		return outputJSON(resp)
	}
	printTaskList(cmd.OutOrStdout(), listTitle(filter), tasks, useColor())
	return nil
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search task descriptions",
	Long: `Search task descriptions. Every word must match the start of a word
in the description; matching ignores case.

Example:
  task-cli search report --status todo`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	var filter *task.Status
	if s, _ := cmd.Flags().GetString("status"); s != "" {
		st, err := task.ParseStatus(s)
		if err != nil {
			return err
		}
		filter = &st
	}
	query := strings.Join(args, " ")

	tracker, err := openTracker()
	if err != nil {
		return err
	}
	tasks, err := searchTasks(tracker.All(), query, filter)
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(ListResponse{Tasks: tasks, Count: len(tasks)})
	}
	title := fmt.Sprintf("TASKS MATCHING %q", query)
	printTaskList(cmd.OutOrStdout(), title, tasks, useColor())
	return nil
}

// searchTasks indexes tasks in SQLite and returns the matches, best first.
func searchTasks(all []task.Task, query string, filter *task.Status) ([]task.Task, error) {
	db, err := storage.OpenMemory()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if _, err := db.RebuildTasks(all); err != nil {
		return nil, fmt.Errorf("indexing tasks: %w", err)
	}
	positions, err := db.SearchTasks(query, filter)
	if err != nil {
		return nil, err
	}

	matches := make([]task.Task, 0, len(positions))
	for _, i := range positions {
		matches = append(matches, all[i])
	}
	return matches, nil
}
