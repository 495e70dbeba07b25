// Package storage maintains an ephemeral SQLite index over the JSON stores.
//
// The JSON files stay the source of truth. The index is rebuilt from the
// loaded records whenever a command needs grouping or full-text search.
package storage

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// One connection: SQLite doesn't support concurrent writes, and every
	// connection to :memory: would otherwise see its own empty database.
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// OpenMemory opens a fresh in-memory index.
func OpenMemory() (*DB, error) {
	return OpenDB(MemoryPath)
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		-- seq is the position in the loaded file; id is not unique in a
		-- hand-edited file
		CREATE TABLE IF NOT EXISTS expenses (
			seq INTEGER PRIMARY KEY,
			id INTEGER NOT NULL,
			date TEXT NOT NULL,
			description TEXT NOT NULL,
			amount REAL NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_expenses_id ON expenses(id);
		CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date);

		CREATE TABLE IF NOT EXISTS tasks (
			seq INTEGER PRIMARY KEY,
			id INTEGER NOT NULL,
			description TEXT NOT NULL,
			status TEXT NOT NULL,
			created_at TEXT,
			updated_at TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_tasks_id ON tasks(id);

		-- Full-text search over task descriptions
		-- rowid mirrors tasks.seq
		CREATE VIRTUAL TABLE IF NOT EXISTS tasks_fts USING fts5(
			description
		);
	`

	_, err := db.Exec(schema)
	return err
}

// prepareFTSQuery turns free text into an FTS5 query. Every word is quoted so
// punctuation is literal, and gets a prefix wildcard; words are ANDed.
func prepareFTSQuery(query string) string {
	parts := strings.Fields(query)
	terms := make([]string, 0, len(parts))
	for _, part := range parts {
		escaped := strings.ReplaceAll(part, "\"", "\"\"")
		terms = append(terms, "\""+escaped+"\"*")
	}
	return strings.Join(terms, " ")
}
