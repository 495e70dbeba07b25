package record

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

type item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (i item) RecordID() int { return i.ID }

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestLoad_MissingFileCreatesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	s := Open[item](path, "item", quietLogger())

	got := s.Load()
	if len(got) != 0 {
		t.Fatalf("Load() returned %d records, want 0", len(got))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Load() did not create file: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("created file = %q, want %q", data, "[]")
	}
}

func TestLoad_InvalidJSONFailsSoft(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	var logs bytes.Buffer
	l := logrus.New()
	l.SetOutput(&logs)
	s := Open[item](path, "item", l)

	got := s.Load()
	if len(got) != 0 {
		t.Errorf("Load() returned %d records, want 0", len(got))
	}
	if !s.Degraded() {
		t.Error("Degraded() = false after parse failure")
	}
	if !strings.Contains(logs.String(), "parsing item file") {
		t.Errorf("expected diagnostic in log, got %q", logs.String())
	}

	// The unreadable file must survive a save attempt.
	err := s.Save([]item{{ID: 1, Name: "x"}})
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("Save() error = %v, want *PersistenceError", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "{not json" {
		t.Errorf("file content changed to %q", data)
	}
}

func TestSave_PrettyPrintsTwoSpaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	s := Open[item](path, "item", quietLogger())

	if err := s.Save([]item{{ID: 1, Name: "a"}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	want := "[\n  {\n    \"id\": 1,\n    \"name\": \"a\"\n  }\n]"
	if string(data) != want {
		t.Errorf("Save() wrote\n%s\nwant\n%s", data, want)
	}
}

func TestSave_NilWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	s := Open[item](path, "item", quietLogger())

	if err := s.Save(nil); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "[]" {
		t.Errorf("Save(nil) wrote %q, want []", data)
	}
}

func TestSave_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "items.json")
	s := Open[item](path, "item", quietLogger())

	err := s.Save([]item{{ID: 1}})
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("Save() error = %v, want *PersistenceError", err)
	}
	if perr.Path != path {
		t.Errorf("PersistenceError.Path = %q, want %q", perr.Path, path)
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	s := Open[item](path, "item", quietLogger())

	want := []item{{ID: 3, Name: "c"}, {ID: 1, Name: "a"}, {ID: 7, Name: "g"}}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	before, _ := os.ReadFile(path)

	got := s.Load()
	if !slices.Equal(got, want) {
		t.Errorf("Load() = %v, want %v", got, want)
	}
	if err := s.Save(got); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	after, _ := os.ReadFile(path)
	if !bytes.Equal(before, after) {
		t.Errorf("save(load()) changed the file:\n%s\n---\n%s", before, after)
	}
}

func TestNextID(t *testing.T) {
	tests := []struct {
		name    string
		records []item
		want    int
	}{
		{"empty", nil, 1},
		{"single", []item{{ID: 1}}, 2},
		{"gap", []item{{ID: 2}, {ID: 3}}, 4},
		{"unordered", []item{{ID: 9}, {ID: 2}, {ID: 5}}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextID(tt.records); got != tt.want {
				t.Errorf("NextID() = %d, want %d", got, tt.want)
			}
			reversed := slices.Clone(tt.records)
			slices.Reverse(reversed)
			if got := NextID(reversed); got != tt.want {
				t.Errorf("NextID(reversed) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFindByID(t *testing.T) {
	records := []item{{ID: 4}, {ID: 2}}

	if idx, ok := FindByID(records, 2); !ok || idx != 1 {
		t.Errorf("FindByID(2) = (%d, %v), want (1, true)", idx, ok)
	}
	if idx, ok := FindByID(records, 3); ok || idx != -1 {
		t.Errorf("FindByID(3) = (%d, %v), want (-1, false)", idx, ok)
	}
}

func TestDelete(t *testing.T) {
	records := []item{{ID: 1}, {ID: 2}, {ID: 3}}

	got, ok := Delete(records, 2)
	if !ok {
		t.Fatal("Delete(2) reported not found")
	}
	if !slices.Equal(got, []item{{ID: 1}, {ID: 3}}) {
		t.Errorf("Delete(2) = %v", got)
	}
	if len(records) != 3 || records[1].ID != 2 {
		t.Errorf("Delete() modified its input: %v", records)
	}

	got, ok = Delete(records, 9)
	if ok {
		t.Error("Delete(9) reported success")
	}
	if len(got) != 3 {
		t.Errorf("Delete(9) returned %d records, want 3", len(got))
	}
}

func TestFilter(t *testing.T) {
	records := []item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 3, Name: "a"}}

	got := slices.Collect(Filter(records, func(i item) bool { return i.Name == "a" }))
	if !slices.Equal(got, []item{{ID: 1, Name: "a"}, {ID: 3, Name: "a"}}) {
		t.Errorf("Filter() = %v", got)
	}

	if got := slices.Collect(Filter([]item{}, nil)); len(got) != 0 {
		t.Errorf("Filter(empty) = %v, want empty", got)
	}

	// Early break must stop iteration.
	n := 0
	for range Filter(records, nil) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("iterated %d times after break, want 1", n)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&NotFoundError{Kind: "task", ID: 4}, "task with ID 4 not found"},
		{&NotFoundError{ID: 4}, "record with ID 4 not found"},
		{Invalid("amount", "must be greater than 0"), "invalid amount: must be greater than 0"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
