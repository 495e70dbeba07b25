package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matsen/trackers/internal/task"
)

const (
	minIDWidth     = 2
	minStatusWidth = 12
	listFooter     = "--------------------------------------"
)

// ANSI colors for status labels.
const (
	colorReset  = "\x1b[0m"
	colorGreen  = "\x1b[32m"
	colorYellow = "\x1b[33m"
	colorCyan   = "\x1b[36m"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// StatusResponse is the response for commands that change one task.
type StatusResponse struct {
	Status string     `json:"status"`
	Task   *task.Task `json:"task,omitempty"`
	ID     int        `json:"id,omitempty"`
}

// ListResponse is the response for list and search.
type ListResponse struct {
	Filter string      `json:"filter,omitempty"`
	Tasks  []task.Task `json:"tasks"`
	Count  int         `json:"count"`
}

// listTitle names the listing for the given filter.
func listTitle(filter *task.Status) string {
	if filter == nil {
		return "ALL TASKS"
	}
	return filter.Title() + " TASKS"
}

// statusLabel renders "[status      ]", colored when color is set.
func statusLabel(s task.Status, color bool) string {
	label := "[" + fmt.Sprintf("%-*s", minStatusWidth, string(s)) + "]"
	if !color {
		return label
	}
	switch s {
	case task.StatusDone:
		return colorGreen + label + colorReset
	case task.StatusInProgress:
		return colorYellow + label + colorReset
	default:
		return colorCyan + label + colorReset
	}
}

// printTaskList prints tasks under a heading.
func printTaskList(w io.Writer, title string, tasks []task.Task, color bool) {
	if len(tasks) == 0 {
		fmt.Fprintf(w, "\n-- No %s found. --\n\n", strings.ToLower(title))
		return
	}

	fmt.Fprintf(w, "\n--- %s (%d) ---\n\n", title, len(tasks))

	idWidth := minIDWidth
	for _, t := range tasks {
		idWidth = max(idWidth, len(strconv.Itoa(t.ID)))
	}
	for _, t := range tasks {
		fmt.Fprintf(w, "%*d. %s - %s\n", idWidth, t.ID, statusLabel(t.Status, color), t.Description)
	}
	fmt.Fprintf(w, "\n%s\n\n", listFooter)
}

// statusAction describes a status change in the confirmation message.
func statusAction(s task.Status) string {
	switch s {
	case task.StatusDone:
		return "completed"
	case task.StatusInProgress:
		return "set to in-progress"
	default:
		return "set to todo"
	}
}
