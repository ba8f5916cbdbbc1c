package model

import (
	"errors"
	"testing"
	"time"
)

func validEventInput() EventInput {
	return EventInput{
		Title:     "Standup",
		Date:      time.Date(2026, time.October, 14, 9, 15, 0, 0, time.UTC),
		StartTime: "09:30",
		EndTime:   "09:45",
		Category:  CategoryWork,
		Priority:  PriorityMedium,
	}
}

func TestEventInputValidate(t *testing.T) {
	if err := validEventInput().Validate(); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}

	tests := []struct {
		name  string
		field string
		edit  func(*EventInput)
	}{
		{"blank title", "title", func(in *EventInput) { in.Title = "   " }},
		{"zero date", "date", func(in *EventInput) { in.Date = time.Time{} }},
		{"bad start", "startTime", func(in *EventInput) { in.StartTime = "9:30" }},
		{"bad end", "endTime", func(in *EventInput) { in.EndTime = "25:00" }},
		{"signed start", "startTime", func(in *EventInput) { in.StartTime = "+9:30" }},
		{"signed end", "endTime", func(in *EventInput) { in.EndTime = "-0:00" }},
		{"padded start", "startTime", func(in *EventInput) { in.StartTime = " 9:30" }},
		{"bad category", "category", func(in *EventInput) { in.Category = "travel" }},
		{"bad priority", "priority", func(in *EventInput) { in.Priority = "urgent" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validEventInput()
			tt.edit(&in)
			err := in.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Field != tt.field {
				t.Fatalf("expected field %q, got %v", tt.field, err)
			}
		})
	}
}

func TestEventInputAllowsEndBeforeStart(t *testing.T) {
	in := validEventInput()
	in.StartTime = "22:00"
	in.EndTime = "01:00"
	if err := in.Validate(); err != nil {
		t.Fatalf("expected end before start to be accepted, got %v", err)
	}
}

func TestEventInputBuild(t *testing.T) {
	in := validEventInput()
	in.Title = "  Standup  "
	ev := in.Build("abc")
	if ev.ID != "abc" || ev.Title != "Standup" {
		t.Fatalf("unexpected event %+v", ev)
	}
	if ev.Date.Hour() != 0 || ev.Date.Day() != 14 {
		t.Fatalf("expected date truncated to midnight, got %s", ev.Date)
	}
	if ev.Input().StartTime != in.StartTime {
		t.Fatal("expected input round trip")
	}
}

func TestTaskInputValidate(t *testing.T) {
	in := TaskInput{Title: "Buy milk", Category: CategoryPersonal, Priority: PriorityLow}
	if err := in.Validate(); err != nil {
		t.Fatalf("expected valid task, got %v", err)
	}
	in.Category = ""
	if err := in.Validate(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestTaskOverdue(t *testing.T) {
	due := time.Date(2026, time.October, 10, 0, 0, 0, 0, time.UTC)
	task := TaskInput{Title: "Report", DueDate: &due, Category: CategoryWork, Priority: PriorityHigh}.Build("t1")
	now := time.Date(2026, time.October, 14, 8, 0, 0, 0, time.UTC)
	if !task.Overdue(now) {
		t.Fatal("expected overdue")
	}
	if task.Overdue(due.Add(20 * time.Hour)) {
		t.Fatal("expected not overdue on the due day")
	}
	task.Completed = true
	if task.Overdue(now) {
		t.Fatal("expected completed task not overdue")
	}
}

func TestParseEnums(t *testing.T) {
	c, err := ParseCategory(" Health ")
	if err != nil || c != CategoryHealth {
		t.Fatalf("unexpected category %q, %v", c, err)
	}
	if _, err := ParseCategory("travel"); err == nil {
		t.Fatal("expected error for unknown category")
	}
	p, err := ParsePriority("HIGH")
	if err != nil || p != PriorityHigh {
		t.Fatalf("unexpected priority %q, %v", p, err)
	}
	if len(Categories()) != 4 || len(Priorities()) != 3 {
		t.Fatal("unexpected enum listings")
	}
}
