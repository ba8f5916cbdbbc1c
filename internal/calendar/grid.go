package calendar

import "time"

const (
	// Weekdays is the number of columns in a month grid.
	Weekdays = 7
	// GridSize is the number of cells in a month grid: six weeks of seven days.
	GridSize = 6 * Weekdays
)

// MonthGrid returns the 42 dates rendered by a month view of ref's month.
// The grid starts on the Sunday on or before the 1st, then runs through the
// whole month and pads the rest with the first days of the next month.
// Dates are built from local year/month/day components in ref's location.
func MonthGrid(ref time.Time) []time.Time {
	first := FirstOfMonth(ref)
	year, month, _ := first.Date()
	loc := first.Location()

	days := make([]time.Time, 0, GridSize)

	// Day 0 of a month normalises to the last day of the previous one, so
	// negative offsets walk back into it.
	leading := int(first.Weekday())
	for i := leading - 1; i >= 0; i-- {
		days = append(days, time.Date(year, month, -i, 0, 0, 0, 0, loc))
	}

	total := DaysInMonth(month, year)
	for day := 1; day <= total; day++ {
		days = append(days, time.Date(year, month, day, 0, 0, 0, 0, loc))
	}

	remaining := GridSize - len(days)
	for day := 1; day <= remaining; day++ {
		days = append(days, time.Date(year, month+1, day, 0, 0, 0, 0, loc))
	}

	return days
}

// FirstOfMonth returns midnight of the 1st of t's month.
func FirstOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

// LastOfMonth returns midnight of the last day of t's month.
func LastOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month+1, 0, 0, 0, 0, 0, t.Location())
}

// DaysInMonth reports how many days the given month has.
func DaysInMonth(month time.Month, year int) int {
	// Move to next month, roll back a day.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartOfDay drops the time-of-day from t, keeping its location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// AddMonths moves n months away from ref and returns the 1st of that month.
// Anchoring on the 1st keeps Jan 31 + 1 from landing in March.
func AddMonths(ref time.Time, n int) time.Time {
	year, month, _ := ref.Date()
	return time.Date(year, month+time.Month(n), 1, 0, 0, 0, 0, ref.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
