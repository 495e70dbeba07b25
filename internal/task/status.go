package task

import (
	"fmt"
	"strings"
)

// Status is the workflow stage of a task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Statuses lists every status in workflow order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

// InvalidFilterError reports an unrecognized status string.
type InvalidFilterError struct {
	Value string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid status filter %q (use 'done', 'todo', or 'in-progress')", e.Value)
}

// ParseStatus maps user input to a Status. Matching ignores case and treats
// '_' like '-', so "IN_PROGRESS" and "in-progress" are equivalent.
func ParseStatus(s string) (Status, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for _, st := range Statuses {
		if norm == string(st) {
			return st, nil
		}
	}
	return "", &InvalidFilterError{Value: s}
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	for _, st := range Statuses {
		if s == st {
			return true
		}
	}
	return false
}

// Title is the heading used when listing tasks with this status.
func (s Status) Title() string {
	return strings.ToUpper(strings.ReplaceAll(string(s), "-", " "))
}
