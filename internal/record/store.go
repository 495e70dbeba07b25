// Package record implements the flat JSON record store shared by the trackers.
//
// A store is a single JSON array on disk. Every invocation loads the whole
// array, mutates it in memory and writes the whole array back.
package record

import (
	"encoding/json"
	"errors"
	"iter"
	"os"

	"github.com/sirupsen/logrus"
)

// Record is anything persisted by a Store. IDs are positive and unique.
type Record interface {
	RecordID() int
}

// Store is the handle on one JSON file. It is constructed once per process.
type Store[T Record] struct {
	path     string
	kind     string
	log      logrus.FieldLogger
	degraded bool
}

// errDegraded is returned by Save after Load failed to parse the file.
var errDegraded = errors.New("refusing to overwrite unreadable store")

// Open returns a handle for the JSON file at path. kind names the records
// in error messages ("expense", "task").
func Open[T Record](path, kind string, log logrus.FieldLogger) *Store[T] {
	if log == nil {
		l := logrus.New()
		l.SetOutput(os.Stderr)
		log = l
	}
	return &Store[T]{
		path: path,
		kind: kind,
		log:  log.WithField("store", kind),
	}
}

// Path returns the backing file path.
func (s *Store[T]) Path() string {
	return s.path
}

// Degraded reports whether the last Load could not read the file.
func (s *Store[T]) Degraded() bool {
	return s.degraded
}

// Load reads all records. A missing file is created holding an empty array.
// Read and parse failures are logged and yield an empty slice; the file on
// disk is left alone and later saves are refused.
func (s *Store[T]) Load() []T {
	s.degraded = false

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := os.WriteFile(s.path, []byte("[]"), 0644); err != nil {
				s.log.WithError(err).Warnf("creating %s", s.path)
			}
			return []T{}
		}
		s.log.WithError(err).Errorf("reading %s file", s.kind)
		s.degraded = true
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.WithError(err).Errorf("parsing %s file %s", s.kind, s.path)
		s.degraded = true
		return []T{}
	}
	if records == nil {
		records = []T{}
	}

	s.log.WithField("count", len(records)).Debugf("loaded %s", s.path)
	return records
}

// Save writes all records, replacing the file content.
func (s *Store[T]) Save(records []T) error {
	if s.degraded {
		return &PersistenceError{Op: "write", Path: s.path, Err: errDegraded}
	}
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "encode", Path: s.path, Err: err}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return &PersistenceError{Op: "write", Path: s.path, Err: err}
	}

	s.log.WithField("count", len(records)).Debugf("saved %s", s.path)
	return nil
}

// NotFound builds the not-found error for this store's record kind.
func (s *Store[T]) NotFound(id int) error {
	return &NotFoundError{Kind: s.kind, ID: id}
}

// NextID returns 1 for an empty slice, otherwise the largest ID plus one.
func NextID[T Record](records []T) int {
	maxID := 0
	for _, r := range records {
		if id := r.RecordID(); id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// FindByID returns the index of the record with the given ID.
func FindByID[T Record](records []T, id int) (int, bool) {
	for i, r := range records {
		if r.RecordID() == id {
			return i, true
		}
	}
	return -1, false
}

// Delete returns records without the one carrying id, preserving order.
// The input slice is not modified.
func Delete[T Record](records []T, id int) ([]T, bool) {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if r.RecordID() != id {
			out = append(out, r)
		}
	}
	if len(out) == len(records) {
		return records, false
	}
	return out, true
}

// Filter yields the records matching pred in their stored order.
// A nil pred matches everything.
func Filter[T Record](records []T, pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, r := range records {
			if pred != nil && !pred(r) {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}
