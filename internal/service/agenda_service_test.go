package service

import (
	"strings"
	"testing"
	"time"

	"calendar-planner/internal/model"
	"calendar-planner/internal/store"
)

type fixedSnapshot store.Snapshot

func (f fixedSnapshot) Snapshot() store.Snapshot { return store.Snapshot(f) }

func TestDailySummary(t *testing.T) {
	now := time.Date(2026, time.October, 14, 8, 0, 0, 0, time.UTC)
	overdue := time.Date(2026, time.October, 10, 0, 0, 0, 0, time.UTC)
	later := time.Date(2026, time.October, 30, 0, 0, 0, 0, time.UTC)

	snap := fixedSnapshot{
		Events: []model.Event{
			{ID: "e1", Title: "Gym <legs>", Date: now, StartTime: "18:00", EndTime: "19:00", Category: model.CategoryHealth, Priority: model.PriorityLow},
			{ID: "e2", Title: "Standup", Date: now, StartTime: "09:30", EndTime: "09:45", Category: model.CategoryWork, Priority: model.PriorityHigh},
			{ID: "e3", Title: "Tomorrow", Date: now.AddDate(0, 0, 1), StartTime: "09:00", EndTime: "10:00", Category: model.CategoryWork, Priority: model.PriorityLow},
		},
		Tasks: []model.Task{
			{ID: "t1", Title: "Someday", Category: model.CategoryOther, Priority: model.PriorityLow},
			{ID: "t2", Title: "Later", DueDate: &later, Category: model.CategoryWork, Priority: model.PriorityMedium},
			{ID: "t3", Title: "Late", DueDate: &overdue, Category: model.CategoryWork, Priority: model.PriorityHigh},
			{ID: "t4", Title: "Done", Completed: true, Category: model.CategoryWork, Priority: model.PriorityHigh},
		},
	}

	text := NewAgendaService(snap).DailySummary(now)

	if !strings.Contains(text, "Wednesday, October 14, 2026") {
		t.Fatalf("expected formatted date, got:\n%s", text)
	}
	if strings.Contains(text, "Tomorrow") || strings.Contains(text, "Done") {
		t.Fatalf("expected only today's events and open tasks, got:\n%s", text)
	}
	if !strings.Contains(text, "Gym &lt;legs&gt;") {
		t.Fatalf("expected escaped title, got:\n%s", text)
	}
	if strings.Index(text, "Standup") > strings.Index(text, "Gym") {
		t.Fatalf("expected events in start order, got:\n%s", text)
	}
	if !strings.Contains(text, "9:30 AM–9:45 AM") {
		t.Fatalf("expected 12-hour times, got:\n%s", text)
	}
	late, mid, someday := strings.Index(text, "Late"), strings.Index(text, "Later"), strings.Index(text, "Someday")
	if !(late < mid && mid < someday) {
		t.Fatalf("expected tasks by due date with undated last, got:\n%s", text)
	}
	if !strings.Contains(text, "overdue") {
		t.Fatalf("expected overdue marker, got:\n%s", text)
	}
	if !strings.Contains(text, "1/4") {
		t.Fatalf("expected progress line, got:\n%s", text)
	}
}

func TestDailySummaryEmpty(t *testing.T) {
	text := NewAgendaService(fixedSnapshot{}).DailySummary(time.Date(2026, time.October, 14, 8, 0, 0, 0, time.UTC))
	if !strings.Contains(text, "nothing scheduled") || !strings.Contains(text, "no open tasks") {
		t.Fatalf("unexpected empty summary:\n%s", text)
	}
	if !strings.Contains(text, "0/0") {
		t.Fatalf("expected zero progress, got:\n%s", text)
	}
}

func TestProgressLine(t *testing.T) {
	line := ProgressLine(store.Progress{Completed: 3, Total: 4})
	if !strings.Contains(line, "3/4") || !strings.Contains(line, "75%") {
		t.Fatalf("unexpected line %q", line)
	}
	if strings.Count(line, "▰") != 7 {
		t.Fatalf("expected 7 filled steps, got %q", line)
	}
}
