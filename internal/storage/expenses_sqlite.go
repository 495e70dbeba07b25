package storage

import (
	"fmt"

	"github.com/matsen/trackers/internal/expense"
	"github.com/shopspring/decimal"
)

// MonthTotal is the sum of expenses for one calendar month.
type MonthTotal struct {
	Month string          `json:"month"` // YYYY-MM
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// totalPlaces bounds the float noise SUM() can introduce.
const totalPlaces = 8

// RebuildExpenses clears the expenses table and loads the given expenses.
func (d *DB) RebuildExpenses(expenses []expense.Expense) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM expenses"); err != nil {
		return 0, fmt.Errorf("clearing expenses table: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO expenses (id, date, description, amount)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing expenses insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range expenses {
		if _, err := stmt.Exec(e.ID, e.Date, e.Description, e.Amount); err != nil {
			return 0, fmt.Errorf("inserting expense %d: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing expenses: %w", err)
	}
	return len(expenses), nil
}

// MonthlyTotals groups expenses by calendar month in chronological order.
// year 0 means every year and month 0 every month. Rows with a malformed
// date are skipped.
func (d *DB) MonthlyTotals(year, month int) ([]MonthTotal, error) {
	rows, err := d.db.Query(`
		SELECT substr(date, 1, 7) AS month, COUNT(*), SUM(amount)
		FROM expenses
		WHERE date GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'
		  AND (? = 0 OR CAST(substr(date, 1, 4) AS INTEGER) = ?)
		  AND (? = 0 OR CAST(substr(date, 6, 2) AS INTEGER) = ?)
		GROUP BY month
		ORDER BY month
	`, year, year, month, month)
	if err != nil {
		return nil, fmt.Errorf("querying monthly totals: %w", err)
	}
	defer rows.Close()

	var totals []MonthTotal
	for rows.Next() {
		var (
			mt  MonthTotal
			sum float64
		)
		if err := rows.Scan(&mt.Month, &mt.Count, &sum); err != nil {
			return nil, err
		}
		mt.Total = decimal.NewFromFloat(sum).Round(totalPlaces)
		totals = append(totals, mt)
	}
	return totals, rows.Err()
}
