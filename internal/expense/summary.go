package expense

import (
	"strconv"
	"strings"

	"github.com/matsen/trackers/internal/record"
	"github.com/shopspring/decimal"
)

// Predicate selects expenses for a summary.
type Predicate func(Expense) bool

// InMonth matches expenses dated in the given calendar month (1-12), any year.
func InMonth(month int) Predicate {
	return func(e Expense) bool {
		t, ok := e.Time()
		return ok && int(t.Month()) == month
	}
}

// InYear matches expenses dated in the given year.
func InYear(year int) Predicate {
	return func(e Expense) bool {
		t, ok := e.Time()
		return ok && t.Year() == year
	}
}

// And matches when every non-nil predicate matches.
func And(preds ...Predicate) Predicate {
	return func(e Expense) bool {
		for _, p := range preds {
			if p != nil && !p(e) {
				return false
			}
		}
		return true
	}
}

// ParseMonth parses a month argument in the range 1-12.
func ParseMonth(s string) (int, error) {
	m, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || m < 1 || m > 12 {
		return 0, record.Invalid("month", "%q is not a month between 1 and 12", s)
	}
	return m, nil
}

// Total sums the amounts of the matching expenses as a decimal.
func Total(expenses []Expense, pred Predicate) decimal.Decimal {
	sum := decimal.Zero
	for e := range record.Filter(expenses, pred) {
		sum = sum.Add(decimal.NewFromFloat(e.Amount))
	}
	return sum
}

// Summarize sums the amounts of the matching expenses. A nil predicate
// matches everything; no matches yields 0.
func Summarize(expenses []Expense, pred Predicate) float64 {
	return Total(expenses, pred).InexactFloat64()
}

// FormatAmount renders an amount the way it is stored, without trailing zeros.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).String()
}
