package domain

import "math"

// EURToTWD is the fixed display conversion rate: 1 EUR = 35 TWD.
// Stored amounts stay in EUR at full precision; only the converted
// display value is ever rounded.
const EURToTWD = 35.0

// Expense is one ledger entry, denominated in EUR. The date is captured
// from the target day at creation time and never revisited: if a day's
// date were ever edited afterwards, existing expenses would not move.
type Expense struct {
	ID       string
	Amount   float64
	Category string
	Note     string
	Date     string
}

// DefaultCategory is assigned to every expense created through the engine.
const DefaultCategory = "Travel"

// DefaultNote replaces a blank note on a new expense.
const DefaultNote = "未命名支出"

// Convert converts a base-currency amount for display at the given rate,
// rounded to the nearest whole display unit.
func Convert(amount, rate float64) int {
	return int(math.Round(amount * rate))
}

// ExpenseGroup is the derived aggregate of all expenses sharing one date.
// DayNumber is zero when no itinerary day carries the group's date.
type ExpenseGroup struct {
	Date      string
	DayNumber int
	Total     float64
	Items     []Expense
}

// Progress returns the checklist completion percentage, rounded to the
// nearest integer. An empty checklist reports 0, not a division by zero.
func Progress(items []EssentialItem) int {
	if len(items) == 0 {
		return 0
	}
	checked := 0
	for _, it := range items {
		if it.Checked {
			checked++
		}
	}
	return int(math.Round(float64(checked) / float64(len(items)) * 100))
}
