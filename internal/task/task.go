// Package task defines task records, their status workflow and the
// operations on them.
package task

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/matsen/trackers/internal/record"
)

// Kind names task records in errors.
const Kind = "task"

// TimeLayout is the on-disk timestamp format: UTC with exactly three
// fractional digits, e.g. 2026-05-01T08:00:00.000Z.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Task is a single persisted task.
type Task struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RecordID implements record.Record.
func (t Task) RecordID() int {
	return t.ID
}

// MarshalJSON writes the timestamps in TimeLayout. Reading needs no
// counterpart since RFC 3339 parsing accepts any fraction.
func (t Task) MarshalJSON() ([]byte, error) {
	type plain Task
	return json.Marshal(struct {
		plain
		CreatedAt string `json:"createdAt"`
		UpdatedAt string `json:"updatedAt"`
	}{
		plain:     plain(t),
		CreatedAt: t.CreatedAt.UTC().Format(TimeLayout),
		UpdatedAt: t.UpdatedAt.UTC().Format(TimeLayout),
	})
}

// Draft holds the fields of a task that has not been assigned an ID.
type Draft struct {
	Description string
}

// Validate checks the required fields.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Description) == "" {
		return record.Invalid("description", "task description is required")
	}
	return nil
}

// New builds a todo Task from a validated draft.
func New(id int, d Draft, now time.Time) Task {
	ts := timestamp(now)
	return Task{
		ID:          id,
		Description: d.Description,
		Status:      StatusTodo,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Description *string
	Status      *Status
}

// Validate rejects fields that were provided but unusable.
func (p Patch) Validate() error {
	if p.Description != nil && strings.TrimSpace(*p.Description) == "" {
		return record.Invalid("description", "new description is required")
	}
	if p.Status != nil && !p.Status.Valid() {
		return &InvalidFilterError{Value: string(*p.Status)}
	}
	return nil
}

// Apply returns t with p applied and UpdatedAt set to now.
func (p Patch) Apply(t Task, now time.Time) Task {
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	t.UpdatedAt = timestamp(now)
	return t
}

// timestamp normalizes to UTC with millisecond precision.
func timestamp(now time.Time) time.Time {
	return now.UTC().Truncate(time.Millisecond)
}
