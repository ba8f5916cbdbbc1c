package model

import (
	"strings"
	"time"

	"calendar-planner/internal/calendar"
)

// Event is a scheduled entry on a single calendar day.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	Category    Category  `json:"category"`
	Priority    Priority  `json:"priority"`
}

// EventInput carries the user-supplied fields of an event.
type EventInput struct {
	Title       string
	Description string
	Date        time.Time
	StartTime   string
	EndTime     string
	Category    Category
	Priority    Priority
}

// Input returns the editable fields of e.
func (e Event) Input() EventInput {
	return EventInput{
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Category:    e.Category,
		Priority:    e.Priority,
	}
}

// Validate checks the input at the trust boundary. An end time earlier than
// the start time is accepted.
func (in EventInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return invalid("title", "is required")
	}
	if in.Date.IsZero() {
		return invalid("date", "is required")
	}
	if _, err := calendar.ParseClock(in.StartTime); err != nil {
		return invalid("startTime", "%v", err)
	}
	if _, err := calendar.ParseClock(in.EndTime); err != nil {
		return invalid("endTime", "%v", err)
	}
	if !in.Category.Valid() {
		return invalid("category", "unknown value %q", in.Category)
	}
	if !in.Priority.Valid() {
		return invalid("priority", "unknown value %q", in.Priority)
	}
	return nil
}

// Build returns the event with the given id. The date is truncated to local
// midnight since only the calendar day matters.
func (in EventInput) Build(id string) Event {
	return Event{
		ID:          id,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Date:        calendar.StartOfDay(in.Date),
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Category:    in.Category,
		Priority:    in.Priority,
	}
}
