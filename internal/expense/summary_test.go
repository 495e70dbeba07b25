package expense

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	expenses := []Expense{
		{ID: 1, Date: "2026-01-10", Description: "Coffee", Amount: 5},
		{ID: 2, Date: "2026-02-03", Description: "Lunch", Amount: 20},
		{ID: 3, Date: "2025-03-21", Description: "Dinner", Amount: 15},
	}

	tests := []struct {
		name string
		pred Predicate
		want float64
	}{
		{"no filter", nil, 40},
		{"january", InMonth(1), 5},
		{"march any year", InMonth(3), 15},
		{"no match", InMonth(12), 0},
		{"year", InYear(2026), 25},
		{"month and year", And(InMonth(3), InYear(2026)), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(expenses, tt.pred)
			if got != tt.want {
				t.Errorf("Summarize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSummarize_Empty(t *testing.T) {
	got := Summarize(nil, InMonth(4))
	if got != 0 || math.IsNaN(got) {
		t.Errorf("Summarize(nil) = %v, want 0", got)
	}
}

func TestSummarize_DecimalExact(t *testing.T) {
	expenses := []Expense{{ID: 1, Amount: 0.1}, {ID: 2, Amount: 0.2}}
	if got := Summarize(expenses, nil); got != 0.3 {
		t.Errorf("Summarize() = %v, want 0.3", got)
	}
}

func TestInMonth_MalformedDate(t *testing.T) {
	e := Expense{ID: 1, Date: "yesterday", Amount: 3}
	if InMonth(1)(e) {
		t.Error("InMonth matched a malformed date")
	}
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"12", 12, false},
		{" 8 ", 8, false},
		{"0", 0, true},
		{"13", 0, true},
		{"aug", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMonth(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseMonth(%q) = (%d, %v), want (%d, err=%v)", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{5, "5"},
		{20.5, "20.5"},
		{0.1, "0.1"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
