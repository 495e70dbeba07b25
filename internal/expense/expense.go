// Package expense defines expense records and the operations on them.
package expense

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/matsen/trackers/internal/record"
)

// DateLayout is the calendar date format stored in the date field.
const DateLayout = "2006-01-02"

// Kind names expense records in errors.
const Kind = "expense"

// Expense is a single persisted expense.
type Expense struct {
	ID          int     `json:"id"`
	Date        string  `json:"date"` // YYYY-MM-DD, UTC day of creation
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// RecordID implements record.Record.
func (e Expense) RecordID() int {
	return e.ID
}

// Time parses the date field. ok is false when the date is malformed.
func (e Expense) Time() (t time.Time, ok bool) {
	t, err := time.Parse(DateLayout, e.Date)
	return t, err == nil
}

// Draft holds the fields of an expense that has not been assigned an ID.
type Draft struct {
	Description string
	Amount      float64
	Date        string // optional, defaults to today
}

// Validate checks the required fields.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Description) == "" {
		return record.Invalid("description", "description is required")
	}
	if !validAmount(d.Amount) {
		return record.Invalid("amount", "amount must be a positive number")
	}
	if d.Date != "" {
		if _, err := time.Parse(DateLayout, d.Date); err != nil {
			return record.Invalid("date", "date must be YYYY-MM-DD")
		}
	}
	return nil
}

// New builds an Expense from a validated draft.
func New(id int, d Draft, now time.Time) Expense {
	date := d.Date
	if date == "" {
		date = now.UTC().Format(DateLayout)
	}
	return Expense{
		ID:          id,
		Date:        date,
		Description: d.Description,
		Amount:      d.Amount,
	}
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Description *string
	Amount      *float64
}

// Apply returns e with the usable fields of p applied. An empty description
// or a non-positive amount is ignored, not rejected.
func (p Patch) Apply(e Expense) Expense {
	if p.Description != nil && strings.TrimSpace(*p.Description) != "" {
		e.Description = *p.Description
	}
	if p.Amount != nil && validAmount(*p.Amount) {
		e.Amount = *p.Amount
	}
	return e
}

// ParseAmount parses a CLI amount argument.
func ParseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !validAmount(v) {
		return 0, record.Invalid("amount", "%q is not a positive number", s)
	}
	return v, nil
}

func validAmount(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
