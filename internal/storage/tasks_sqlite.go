package storage

import (
	"fmt"
	"time"

	"github.com/matsen/trackers/internal/task"
)

// RebuildTasks clears the task tables and loads the given tasks. Duplicate
// IDs are indexed as separate rows.
func (d *DB) RebuildTasks(tasks []task.Task) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tasks"); err != nil {
		return 0, fmt.Errorf("clearing tasks table: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM tasks_fts"); err != nil {
		return 0, fmt.Errorf("clearing tasks_fts table: %w", err)
	}

	tasksStmt, err := tx.Prepare(`
		INSERT INTO tasks (seq, id, description, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing tasks insert: %w", err)
	}
	defer tasksStmt.Close()

	ftsStmt, err := tx.Prepare(`INSERT INTO tasks_fts (rowid, description) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing fts insert: %w", err)
	}
	defer ftsStmt.Close()

	for i, t := range tasks {
		_, err := tasksStmt.Exec(i, t.ID, t.Description, string(t.Status),
			t.CreatedAt.Format(time.RFC3339Nano), t.UpdatedAt.Format(time.RFC3339Nano))
		if err != nil {
			return 0, fmt.Errorf("inserting task %d: %w", t.ID, err)
		}
		if _, err := ftsStmt.Exec(i, t.Description); err != nil {
			return 0, fmt.Errorf("indexing task %d: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing tasks: %w", err)
	}
	return len(tasks), nil
}

// SearchTasks returns the positions, in the slice last passed to RebuildTasks,
// of tasks whose description matches every word of query as a prefix, best
// match first. A nil status matches any status.
func (d *DB) SearchTasks(query string, status *task.Status) ([]int, error) {
	ftsQuery := prepareFTSQuery(query)
	if ftsQuery == "" {
		return nil, nil
	}

	statusArg := ""
	if status != nil {
		statusArg = string(*status)
	}

	rows, err := d.db.Query(`
		SELECT t.seq
		FROM tasks_fts
		JOIN tasks t ON t.seq = tasks_fts.rowid
		WHERE tasks_fts MATCH ?
		  AND (? = '' OR t.status = ?)
		ORDER BY tasks_fts.rank, t.seq
	`, ftsQuery, statusArg, statusArg)
	if err != nil {
		return nil, fmt.Errorf("searching tasks: %w", err)
	}
	defer rows.Close()

	var positions []int
	for rows.Next() {
		var pos int
		if err := rows.Scan(&pos); err != nil {
			return nil, err
		}
		positions = append(positions, pos)
	}
	return positions, rows.Err()
}
