package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DayLayout is the layout used for calendar days on the wire and in commands.
	DayLayout = "2006-01-02"
	// MonthLayout is the layout used for month references in commands.
	MonthLayout = "2006-01"
)

var weekdayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeekdayLabels returns the column headers of a month grid, Sunday first.
func WeekdayLabels() []string {
	out := make([]string, len(weekdayLabels))
	copy(out, weekdayLabels)
	return out
}

// FormatDate renders t as "Wednesday, October 14, 2026".
func FormatDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// FormatShortDate renders t as "October 14".
func FormatShortDate(t time.Time) string {
	return t.Format("January 2")
}

// FormatMonth renders t as "October 2026".
func FormatMonth(t time.Time) string {
	return t.Format("January 2006")
}

// Clock is a wall-clock time of day.
type Clock struct {
	Hour   int
	Minute int
}

// String renders the clock in the fixed-width "HH:MM" form.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// On returns the instant of c on day's date in day's location.
func (c Clock) On(day time.Time) time.Time {
	year, month, d := day.Date()
	return time.Date(year, month, d, c.Hour, c.Minute, 0, 0, day.Location())
}

// ParseClock parses a strict 24-hour "HH:MM" string.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || !twoDigits(parts[0]) || !twoDigits(parts[1]) {
		return Clock{}, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return Clock{}, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("invalid minute in %q", s)
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// twoDigits rejects signs and spaces, which strconv.Atoi would accept.
func twoDigits(s string) bool {
	return len(s) == 2 && s[0] >= '0' && s[0] <= '9' && s[1] >= '0' && s[1] <= '9'
}

// FormatTime converts an "HH:MM" string to the 12-hour form, e.g. "1:05 PM".
// Noon and midnight fold to 12. Input that does not parse is returned as is.
func FormatTime(s string) string {
	c, err := ParseClock(s)
	if err != nil {
		return s
	}
	suffix := "AM"
	if c.Hour >= 12 {
		suffix = "PM"
	}
	hour := c.Hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, c.Minute, suffix)
}

// ParseDay parses a "YYYY-MM-DD" string as local midnight in loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DayLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// ParseMonth parses a "YYYY-MM" string as the 1st of that month in loc.
func ParseMonth(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(MonthLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	return t, nil
}
