package bot

import (
	"fmt"
	"strings"
	"time"

	"calendar-planner/internal/calendar"
	"calendar-planner/internal/model"
)

type conversationKind int

const (
	kindEvent conversationKind = iota
	kindTask
)

type conversationStage int

const (
	stageNone conversationStage = iota
	stageTitle
	stageDescription
	stageDate
	stageStart
	stageEnd
	stageDueDate
	stageCategory
	stagePriority
	stageDone
)

// conversationState collects an event or task one field per message.
// editID is set when an existing event is being edited; skipping a step then
// keeps the current value.
type conversationState struct {
	kind   conversationKind
	stage  conversationStage
	editID string
	event  model.EventInput
	task   model.TaskInput
}

func newEventConversation(selected time.Time) *conversationState {
	return &conversationState{
		kind:  kindEvent,
		stage: stageTitle,
		event: model.EventInput{
			Date:     selected,
			Category: model.CategoryOther,
			Priority: model.PriorityMedium,
		},
	}
}

func editEventConversation(ev model.Event) *conversationState {
	return &conversationState{
		kind:   kindEvent,
		stage:  stageTitle,
		editID: ev.ID,
		event:  ev.Input(),
	}
}

func newTaskConversation() *conversationState {
	return &conversationState{
		kind:  kindTask,
		stage: stageTitle,
		task: model.TaskInput{
			Category: model.CategoryOther,
			Priority: model.PriorityMedium,
		},
	}
}

func (c *conversationState) editing() bool {
	return c.editID != ""
}

// prompt is the question for the current stage.
func (c *conversationState) prompt() string {
	switch c.stage {
	case stageTitle:
		if c.kind == kindTask {
			return "🆕 New task.\n<b>Step 1:</b> what should it be called?"
		}
		if c.editing() {
			return fmt.Sprintf("✏️ Editing event.\n<b>Step 1:</b> new title (or «Skip» to keep «%s»).", shortTitle(c.event.Title, 40))
		}
		return "🆕 New event.\n<b>Step 1:</b> what should it be called?"
	case stageDescription:
		return "✏️ Add a short description (or press «Skip»)."
	case stageDate:
		return fmt.Sprintf("📆 Which day? Use <code>2026-10-14</code> or «Skip» for %s.", c.event.Date.Format(calendar.DayLayout))
	case stageStart:
		if c.editing() {
			return fmt.Sprintf("🕘 Start time as <code>HH:MM</code> (or «Skip» to keep %s).", c.event.StartTime)
		}
		return "🕘 Start time as <code>HH:MM</code>, 24-hour."
	case stageEnd:
		if c.editing() {
			return fmt.Sprintf("🕔 End time as <code>HH:MM</code> (or «Skip» to keep %s).", c.event.EndTime)
		}
		return "🕔 End time as <code>HH:MM</code>, 24-hour."
	case stageDueDate:
		return "⏰ Due date as <code>2026-10-14</code> (or «Skip»)."
	case stageCategory:
		return "🏷 Pick a category."
	case stagePriority:
		return "🚦 Pick a priority."
	default:
		return ""
	}
}

// apply consumes one answer. It returns a correction message when the
// answer is rejected; the stage is then left unchanged.
func (c *conversationState) apply(text string, loc *time.Location) string {
	text = strings.TrimSpace(text)
	skip := isSkipInput(text)

	switch c.stage {
	case stageTitle:
		switch {
		case skip && c.editing():
		case skip || text == "":
			return "The title cannot be empty."
		case c.kind == kindTask:
			c.task.Title = text
		default:
			c.event.Title = text
		}
		if c.kind == kindTask {
			c.stage = stageDueDate
		} else {
			c.stage = stageDescription
		}
	case stageDescription:
		if !skip {
			c.event.Description = text
		} else if !c.editing() {
			c.event.Description = ""
		}
		c.stage = stageDate
	case stageDate:
		if !skip {
			day, err := calendar.ParseDay(text, loc)
			if err != nil {
				return "Cannot read that date. Use <code>2026-10-14</code> or «Skip»."
			}
			c.event.Date = day
		}
		c.stage = stageStart
	case stageStart:
		if skip && c.editing() {
			c.stage = stageEnd
			return ""
		}
		if _, err := calendar.ParseClock(text); err != nil {
			return "Times use the 24-hour <code>HH:MM</code> form, e.g. <code>09:30</code>."
		}
		c.event.StartTime = text
		c.stage = stageEnd
	case stageEnd:
		if skip && c.editing() {
			c.stage = stageCategory
			return ""
		}
		if _, err := calendar.ParseClock(text); err != nil {
			return "Times use the 24-hour <code>HH:MM</code> form, e.g. <code>17:00</code>."
		}
		c.event.EndTime = text
		c.stage = stageCategory
	case stageDueDate:
		if !skip {
			day, err := calendar.ParseDay(text, loc)
			if err != nil {
				return "Cannot read that date. Use <code>2026-10-14</code> or «Skip»."
			}
			c.task.DueDate = &day
		}
		c.stage = stageCategory
	case stageCategory:
		if !skip {
			category, err := model.ParseCategory(text)
			if err != nil {
				return "Pick one of: work, personal, health, other."
			}
			if c.kind == kindTask {
				c.task.Category = category
			} else {
				c.event.Category = category
			}
		}
		c.stage = stagePriority
	case stagePriority:
		if !skip {
			priority, err := model.ParsePriority(text)
			if err != nil {
				return "Pick one of: low, medium, high."
			}
			if c.kind == kindTask {
				c.task.Priority = priority
			} else {
				c.event.Priority = priority
			}
		}
		c.stage = stageDone
	}
	return ""
}

func (c *conversationState) done() bool {
	return c.stage == stageDone
}
