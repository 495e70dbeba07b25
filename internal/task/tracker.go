package task

import (
	"iter"
	"time"

	"github.com/matsen/trackers/internal/record"
)

// Tracker applies task operations to a store. It loads the store once on
// construction and writes the full list back after every successful mutation.
type Tracker struct {
	store *record.Store[Task]
	tasks []Task
	now   func() time.Time
}

// NewTracker loads the store and returns a tracker over it.
func NewTracker(store *record.Store[Task]) *Tracker {
	return &Tracker{
		store: store,
		tasks: store.Load(),
		now:   time.Now,
	}
}

// SetClock replaces the time source used for timestamps.
func (t *Tracker) SetClock(now func() time.Time) {
	t.now = now
}

// All returns the tasks in stored order.
func (t *Tracker) All() []Task {
	return t.tasks
}

// List yields the tasks with the given status, or all tasks for a nil filter.
func (t *Tracker) List(filter *Status) iter.Seq[Task] {
	if filter == nil {
		return record.Filter(t.tasks, nil)
	}
	want := *filter
	return record.Filter(t.tasks, func(tk Task) bool { return tk.Status == want })
}

// Get returns the task with the given ID.
func (t *Tracker) Get(id int) (Task, error) {
	idx, found := record.FindByID(t.tasks, id)
	if !found {
		return Task{}, t.store.NotFound(id)
	}
	return t.tasks[idx], nil
}

// Add validates d, assigns the next ID and persists.
func (t *Tracker) Add(d Draft) (Task, error) {
	if err := d.Validate(); err != nil {
		return Task{}, err
	}

	tk := New(record.NextID(t.tasks), d, t.now())
	next := append(t.tasks[:len(t.tasks):len(t.tasks)], tk)
	if err := t.store.Save(next); err != nil {
		return Task{}, err
	}
	t.tasks = next
	return tk, nil
}

// Update applies p to the task with the given ID, refreshes UpdatedAt and
// persists.
func (t *Tracker) Update(id int, p Patch) (Task, error) {
	if err := p.Validate(); err != nil {
		return Task{}, err
	}
	idx, found := record.FindByID(t.tasks, id)
	if !found {
		return Task{}, t.store.NotFound(id)
	}

	next := make([]Task, len(t.tasks))
	copy(next, t.tasks)
	next[idx] = p.Apply(next[idx], t.now())
	if err := t.store.Save(next); err != nil {
		return Task{}, err
	}
	t.tasks = next
	return next[idx], nil
}

// SetStatus moves a task to status. Any status may follow any other.
func (t *Tracker) SetStatus(id int, status Status) (Task, error) {
	return t.Update(id, Patch{Status: &status})
}

// Delete removes the task with the given ID and persists.
func (t *Tracker) Delete(id int) error {
	next, found := record.Delete(t.tasks, id)
	if !found {
		return t.store.NotFound(id)
	}
	if err := t.store.Save(next); err != nil {
		return err
	}
	t.tasks = next
	return nil
}
