package model

import (
	"strings"
	"time"

	"calendar-planner/internal/calendar"
)

// Task represents a single item in the sidebar task list.
type Task struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	Priority  Priority   `json:"priority"`
	Category  Category   `json:"category"`
}

// TaskInput carries the user-supplied fields of a task.
type TaskInput struct {
	Title     string
	Completed bool
	DueDate   *time.Time
	Priority  Priority
	Category  Category
}

func (in TaskInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return invalid("title", "is required")
	}
	if !in.Category.Valid() {
		return invalid("category", "unknown value %q", in.Category)
	}
	if !in.Priority.Valid() {
		return invalid("priority", "unknown value %q", in.Priority)
	}
	return nil
}

func (in TaskInput) Build(id string) Task {
	task := Task{
		ID:        id,
		Title:     strings.TrimSpace(in.Title),
		Completed: in.Completed,
		Priority:  in.Priority,
		Category:  in.Category,
	}
	if in.DueDate != nil {
		due := calendar.StartOfDay(*in.DueDate)
		task.DueDate = &due
	}
	return task
}

// Overdue reports whether the task is still open after its due day.
func (t Task) Overdue(now time.Time) bool {
	if t.Completed || t.DueDate == nil {
		return false
	}
	return calendar.StartOfDay(now).After(*t.DueDate)
}
