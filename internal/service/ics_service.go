package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"calendar-planner/internal/calendar"
	"calendar-planner/internal/model"
)

const (
	ICSProductID = "-//calendar-planner//EN"
	icsUIDDomain = "calendar-planner"
)

// ExportICS renders the events as an iCalendar document. Times are local
// wall-clock times on the event's day; an end before the start is taken to
// fall on the following day. Events whose times do not parse are skipped.
func ExportICS(events []model.Event, now time.Time) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ICSProductID)

	for _, ev := range events {
		start, err := calendar.ParseClock(ev.StartTime)
		if err != nil {
			log.Printf("[warn] skip event %s in export: %v", ev.ID, err)
			continue
		}
		end, err := calendar.ParseClock(ev.EndTime)
		if err != nil {
			log.Printf("[warn] skip event %s in export: %v", ev.ID, err)
			continue
		}

		startAt := start.On(ev.Date)
		endAt := end.On(ev.Date)
		if endAt.Before(startAt) {
			endAt = end.On(ev.Date.AddDate(0, 0, 1))
		}

		vevent := cal.AddEvent(fmt.Sprintf("%s@%s", ev.ID, icsUIDDomain))
		vevent.SetDtStampTime(now.UTC())
		vevent.SetStartAt(startAt)
		vevent.SetEndAt(endAt)
		vevent.SetSummary(ev.Title)
		if ev.Description != "" {
			vevent.SetDescription(ev.Description)
		}
		vevent.SetProperty(ical.ComponentPropertyCategories, strings.ToUpper(string(ev.Category)))
		vevent.SetProperty(ical.ComponentPropertyPriority, icsPriority(ev.Priority))
	}

	return []byte(cal.Serialize()), nil
}

// icsPriority maps to RFC 5545 PRIORITY: 1 highest, 9 lowest.
func icsPriority(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return "1"
	case model.PriorityMedium:
		return "5"
	default:
		return "9"
	}
}
