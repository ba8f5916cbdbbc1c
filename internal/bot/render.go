package bot

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"calendar-planner/internal/calendar"
	"calendar-planner/internal/model"
	"calendar-planner/internal/service"
	"calendar-planner/internal/store"
)

const (
	cbDayPrefix        = "day:"
	cbNavPrefix        = "nav:"
	cbToggleTaskPrefix = "tgl:"
	cbDeleteTaskPrefix = "tdel:"
	cbDeleteEvtPrefix  = "edel:"
	cbEditEvtPrefix    = "eedit:"
	cbNoop             = "noop"
)

// dayLabel marks today with brackets, the selected day with a dot and days
// with events with an asterisk. A selected today gets both: "[•14]".
func dayLabel(cell service.Cell) string {
	label := strconv.Itoa(cell.Date.Day())
	if len(cell.Events) > 0 {
		label += "*"
	}
	if cell.Selected {
		label = "•" + label
	}
	if cell.Today {
		label = "[" + label + "]"
	}
	if !cell.InMonth {
		label = "·" + label
	}
	return label
}

func monthKeyboard(view service.MonthView) tgbotapi.InlineKeyboardMarkup {
	prev := calendar.AddMonths(view.Month, -1).Format(calendar.MonthLayout)
	next := calendar.AddMonths(view.Month, 1).Format(calendar.MonthLayout)

	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀", cbNavPrefix+prev),
			tgbotapi.NewInlineKeyboardButtonData(view.Title, cbNoop),
			tgbotapi.NewInlineKeyboardButtonData("▶", cbNavPrefix+next),
		),
	}

	header := make([]tgbotapi.InlineKeyboardButton, 0, calendar.Weekdays)
	for _, wd := range view.Weekdays {
		header = append(header, tgbotapi.NewInlineKeyboardButtonData(wd, cbNoop))
	}
	rows = append(rows, header)

	for _, week := range view.Weeks {
		row := make([]tgbotapi.InlineKeyboardButton, 0, calendar.Weekdays)
		for _, cell := range week {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(dayLabel(cell), cbDayPrefix+cell.Date.Format(calendar.DayLayout)))
		}
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func monthText(view service.MonthView, agenda service.Agenda) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🗓 <b>%s</b>\n", html.EscapeString(view.Title)))
	sb.WriteString(fmt.Sprintf("Selected: %s\n\n", calendar.FormatDate(agenda.Day)))
	sb.WriteString(agendaText(agenda))
	return strings.TrimSpace(sb.String())
}

func agendaText(agenda service.Agenda) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<b>%s</b>\n", html.EscapeString(agenda.Title)))
	sb.WriteString(agenda.Count + "\n")
	if len(agenda.Events) == 0 {
		sb.WriteString("No events scheduled. Add one with /newevent.\n")
		return sb.String()
	}
	sb.WriteByte('\n')
	for _, ev := range agenda.Events {
		sb.WriteString(service.FormatEventLine(ev))
		sb.WriteString(fmt.Sprintf("   🆔 <code>%s</code>\n", html.EscapeString(ev.ID)))
	}
	return sb.String()
}

func agendaKeyboard(agenda service.Agenda) *tgbotapi.InlineKeyboardMarkup {
	if len(agenda.Events) == 0 {
		return nil
	}
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(agenda.Events))
	for _, ev := range agenda.Events {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ "+shortTitle(ev.Title, 20), cbEditEvtPrefix+ev.ID),
			tgbotapi.NewInlineKeyboardButtonData("🗑 Delete", cbDeleteEvtPrefix+ev.ID),
		))
	}
	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &markup
}

func taskListText(tasks []model.Task, now time.Time) string {
	var sb strings.Builder
	sb.WriteString("📋 <b>Tasks</b>\n")
	sb.WriteString(service.ProgressLine(store.ProgressOf(tasks)) + "\n\n")
	if len(tasks) == 0 {
		sb.WriteString("No tasks yet. Add a task with /newtask to get started!")
		return sb.String()
	}
	for _, task := range tasks {
		sb.WriteString(service.FormatTaskLine(task, now))
	}
	return strings.TrimSpace(sb.String())
}

func taskListKeyboard(tasks []model.Task) *tgbotapi.InlineKeyboardMarkup {
	if len(tasks) == 0 {
		return nil
	}
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(tasks))
	for _, task := range tasks {
		mark := "⬜"
		if task.Completed {
			mark = "☑️"
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(mark+" "+shortTitle(task.Title, 24), cbToggleTaskPrefix+task.ID),
			tgbotapi.NewInlineKeyboardButtonData("🗑", cbDeleteTaskPrefix+task.ID),
		))
	}
	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &markup
}

func eventSummary(ev model.Event, heading string) string {
	var sb strings.Builder
	sb.WriteString(heading + "\n")
	sb.WriteString(fmt.Sprintf("• <b>ID:</b> <code>%s</code>\n", html.EscapeString(ev.ID)))
	sb.WriteString(fmt.Sprintf("• <b>Title:</b> %s\n", html.EscapeString(ev.Title)))
	if ev.Description != "" {
		sb.WriteString(fmt.Sprintf("• <b>Description:</b> %s\n", html.EscapeString(ev.Description)))
	}
	sb.WriteString(fmt.Sprintf("• <b>Date:</b> %s\n", calendar.FormatDate(ev.Date)))
	sb.WriteString(fmt.Sprintf("• <b>Time:</b> %s – %s\n", calendar.FormatTime(ev.StartTime), calendar.FormatTime(ev.EndTime)))
	sb.WriteString(fmt.Sprintf("• <b>Category:</b> %s · <b>Priority:</b> %s\n", ev.Category, ev.Priority))
	return strings.TrimSpace(sb.String())
}

func taskSummary(task model.Task) string {
	var sb strings.Builder
	sb.WriteString("✅ <b>Task saved</b>\n")
	sb.WriteString(fmt.Sprintf("• <b>ID:</b> <code>%s</code>\n", html.EscapeString(task.ID)))
	sb.WriteString(fmt.Sprintf("• <b>Title:</b> %s\n", html.EscapeString(task.Title)))
	if task.DueDate != nil {
		sb.WriteString(fmt.Sprintf("• <b>Due:</b> %s\n", task.DueDate.Format(calendar.DayLayout)))
	}
	sb.WriteString(fmt.Sprintf("• <b>Category:</b> %s · <b>Priority:</b> %s\n", task.Category, task.Priority))
	return strings.TrimSpace(sb.String())
}

func shortTitle(title string, maxLen int) string {
	clean := strings.TrimSpace(strings.ReplaceAll(title, "\n", " "))
	runes := []rune(clean)
	if len(runes) <= maxLen {
		return clean
	}
	if maxLen <= 1 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-1]) + "…"
}
