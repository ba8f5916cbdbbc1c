package service

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"calendar-planner/internal/calendar"
	"calendar-planner/internal/model"
	"calendar-planner/internal/store"
)

// SnapshotReader is the read side of the entity store.
type SnapshotReader interface {
	Snapshot() store.Snapshot
}

// AgendaService builds human-readable summaries for daily notifications.
type AgendaService struct {
	store SnapshotReader
}

func NewAgendaService(s SnapshotReader) *AgendaService {
	return &AgendaService{store: s}
}

// DailySummary lists today's events, the open tasks and the task progress.
func (s *AgendaService) DailySummary(now time.Time) string {
	snap := s.store.Snapshot()
	today := store.EventsOn(snap.Events, now)
	pending := PendingTasks(snap.Tasks)

	var builder strings.Builder
	builder.WriteString("📋 <b>Daily agenda</b>\n")
	builder.WriteString(fmt.Sprintf("🗓 %s\n\n", calendar.FormatDate(now)))

	builder.WriteString("📅 <b>Events today</b>\n")
	if len(today) == 0 {
		builder.WriteString("— nothing scheduled\n")
	} else {
		for _, ev := range today {
			builder.WriteString(FormatEventLine(ev))
		}
	}

	builder.WriteString("\n✅ <b>Open tasks</b>\n")
	if len(pending) == 0 {
		builder.WriteString("— no open tasks\n")
	} else {
		for _, task := range pending {
			builder.WriteString(FormatTaskLine(task, now))
		}
	}

	builder.WriteString("\n")
	builder.WriteString(ProgressLine(store.ProgressOf(snap.Tasks)))

	return strings.TrimSpace(builder.String())
}

// PendingTasks returns the open tasks by due date, undated last, keeping
// insertion order among equals.
func PendingTasks(tasks []model.Task) []model.Task {
	var pending []model.Task
	for _, task := range tasks {
		if !task.Completed {
			pending = append(pending, task)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		switch {
		case pending[i].DueDate == nil && pending[j].DueDate == nil:
			return false
		case pending[i].DueDate == nil:
			return false
		case pending[j].DueDate == nil:
			return true
		default:
			return pending[i].DueDate.Before(*pending[j].DueDate)
		}
	})
	return pending
}

// ProgressLine renders "Tasks progress: 1/4 (25%)" with a ten-step bar.
func ProgressLine(p store.Progress) string {
	filled := p.Percent() / 10
	bar := strings.Repeat("▰", filled) + strings.Repeat("▱", 10-filled)
	return fmt.Sprintf("📊 Tasks progress: %d/%d %s %d%%", p.Completed, p.Total, bar, p.Percent())
}

// FormatEventLine renders one agenda line of an event.
func FormatEventLine(ev model.Event) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s–%s <b>%s</b>",
		PriorityIcon(ev.Priority),
		calendar.FormatTime(ev.StartTime),
		calendar.FormatTime(ev.EndTime),
		html.EscapeString(ev.Title),
	))
	sb.WriteString(fmt.Sprintf(" <i>(%s)</i>", ev.Category))
	if ev.Description != "" {
		sb.WriteString(fmt.Sprintf("\n   📝 %s", html.EscapeString(ev.Description)))
	}
	sb.WriteByte('\n')
	return sb.String()
}

// FormatTaskLine renders one task line with due-date hints.
func FormatTaskLine(task model.Task, now time.Time) string {
	var sb strings.Builder

	icon := "⬜"
	switch {
	case task.Completed:
		icon = "☑️"
	case task.Overdue(now):
		icon = "⚠️"
	case task.DueDate != nil && calendar.SameDay(*task.DueDate, now):
		icon = "⏳"
	}

	sb.WriteString(fmt.Sprintf("%s %s %s <i>(%s)</i>", icon, PriorityIcon(task.Priority), html.EscapeString(task.Title), task.Category))

	if task.DueDate != nil && !task.Completed {
		due := task.DueDate.Format(calendar.DayLayout)
		if task.Overdue(now) {
			sb.WriteString(fmt.Sprintf("\n   ⏰ due %s · <b>overdue</b>", due))
		} else {
			sb.WriteString(fmt.Sprintf("\n   ⏰ due %s", due))
		}
	}

	sb.WriteByte('\n')
	return sb.String()
}

// PriorityIcon marks a priority with a coloured dot.
func PriorityIcon(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return "🔴"
	case model.PriorityMedium:
		return "🟡"
	default:
		return "🟢"
	}
}
