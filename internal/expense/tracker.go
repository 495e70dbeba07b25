package expense

import (
	"time"

	"github.com/matsen/trackers/internal/record"
)

// Tracker applies expense operations to a store. It loads the store once on
// construction and writes the full list back after every successful mutation.
type Tracker struct {
	store    *record.Store[Expense]
	expenses []Expense
	now      func() time.Time
}

// NewTracker loads the store and returns a tracker over it.
func NewTracker(store *record.Store[Expense]) *Tracker {
	return &Tracker{
		store:    store,
		expenses: store.Load(),
		now:      time.Now,
	}
}

// SetClock replaces the time source used for new expense dates.
func (t *Tracker) SetClock(now func() time.Time) {
	t.now = now
}

// List returns the expenses in stored order.
func (t *Tracker) List() []Expense {
	return t.expenses
}

// Get returns the expense with the given ID.
func (t *Tracker) Get(id int) (Expense, error) {
	idx, found := record.FindByID(t.expenses, id)
	if !found {
		return Expense{}, t.store.NotFound(id)
	}
	return t.expenses[idx], nil
}

// Add validates d, assigns the next ID and persists.
func (t *Tracker) Add(d Draft) (Expense, error) {
	if err := d.Validate(); err != nil {
		return Expense{}, err
	}

	e := New(record.NextID(t.expenses), d, t.now())
	next := append(t.expenses[:len(t.expenses):len(t.expenses)], e)
	if err := t.store.Save(next); err != nil {
		return Expense{}, err
	}
	t.expenses = next
	return e, nil
}

// Update applies p to the expense with the given ID and persists.
func (t *Tracker) Update(id int, p Patch) (Expense, error) {
	idx, found := record.FindByID(t.expenses, id)
	if !found {
		return Expense{}, t.store.NotFound(id)
	}

	next := make([]Expense, len(t.expenses))
	copy(next, t.expenses)
	next[idx] = p.Apply(next[idx])
	if err := t.store.Save(next); err != nil {
		return Expense{}, err
	}
	t.expenses = next
	return next[idx], nil
}

// Delete removes the expense with the given ID and persists.
func (t *Tracker) Delete(id int) error {
	next, found := record.Delete(t.expenses, id)
	if !found {
		return t.store.NotFound(id)
	}
	if err := t.store.Save(next); err != nil {
		return err
	}
	t.expenses = next
	return nil
}

// Summarize sums the amounts of expenses matching pred.
func (t *Tracker) Summarize(pred Predicate) float64 {
	return Summarize(t.expenses, pred)
}
