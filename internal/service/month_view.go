package service

import (
	"fmt"
	"time"

	"calendar-planner/internal/calendar"
	"calendar-planner/internal/model"
	"calendar-planner/internal/store"
)

// MaxCellEvents is how many event titles a grid cell shows before "+N more".
const MaxCellEvents = 3

// Cell is one day of the month grid.
type Cell struct {
	Date     time.Time
	InMonth  bool
	Today    bool
	Selected bool
	Events   []model.Event
	More     int
}

type Week [calendar.Weekdays]Cell

// MonthView is the render model of a month grid.
type MonthView struct {
	Month    time.Time
	Title    string
	Weekdays []string
	Weeks    []Week
}

// BuildMonthView lays the events out on the grid of ref's month.
func BuildMonthView(ref, selected, today time.Time, events []model.Event) MonthView {
	days := calendar.MonthGrid(ref)
	view := MonthView{
		Month:    calendar.FirstOfMonth(ref),
		Title:    calendar.FormatMonth(ref),
		Weekdays: calendar.WeekdayLabels(),
		Weeks:    make([]Week, len(days)/calendar.Weekdays),
	}

	for i, d := range days {
		dayEvents := store.EventsOn(events, d)
		cell := Cell{
			Date:     d,
			InMonth:  calendar.SameMonth(d, ref),
			Today:    calendar.SameDay(d, today),
			Selected: calendar.SameDay(d, selected),
			Events:   dayEvents,
		}
		if len(dayEvents) > MaxCellEvents {
			cell.Events = dayEvents[:MaxCellEvents]
			cell.More = len(dayEvents) - MaxCellEvents
		}
		view.Weeks[i/calendar.Weekdays][i%calendar.Weekdays] = cell
	}
	return view
}

// Agenda is the render model of the per-day event list.
type Agenda struct {
	Day    time.Time
	Title  string
	Count  string
	Events []model.Event
}

// DayAgenda collects the events of day in start-time order.
func DayAgenda(day time.Time, events []model.Event) Agenda {
	list := store.EventsOn(events, day)
	return Agenda{
		Day:    day,
		Title:  "Events for " + calendar.FormatShortDate(day),
		Count:  countLabel(len(list), "event", "events"),
		Events: list,
	}
}

func countLabel(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
