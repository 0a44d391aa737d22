// Package ics exports and imports events in iCalendar format.
package ics

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/javiermolinar/focustime/internal/event"
)

// ErrEmptyCalendar is returned when an import source has no VEVENTs.
var ErrEmptyCalendar = errors.New("calendar contains no events")

const prodID = "-//focustime//calendar//EN"

// Export writes events to w as a VCALENDAR. Event ids become UIDs, so
// a later import into another store keeps events distinguishable.
func Export(w io.Writer, events []*event.Event) error {
	cal := ical.NewCalendar()
	cal.SetProductId(prodID)
	cal.SetMethod(ical.MethodPublish)

	for _, e := range events {
		if e == nil {
			continue
		}
		ve := cal.AddEvent(e.ID)
		ve.SetSummary(e.Title)
		if e.Description != "" {
			ve.SetDescription(e.Description)
		}
		if e.AllDay {
			ve.SetAllDayStartAt(e.Start)
			ve.SetAllDayEndAt(e.End)
		} else {
			ve.SetStartAt(e.Start)
			ve.SetEndAt(e.End)
		}
		if !e.CreatedAt.IsZero() {
			ve.SetCreatedTime(e.CreatedAt)
		}
		if !e.UpdatedAt.IsZero() {
			ve.SetModifiedAt(e.UpdatedAt)
		}
	}

	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("serializing calendar: %w", err)
	}
	return nil
}

// Import parses a VCALENDAR from r into events assigned to calendarID.
// Malformed VEVENTs are skipped; ids and timestamps are left for the
// store to assign. All-day entries with no DTEND get a one-day span.
func Import(r io.Reader, calendarID string) ([]*event.Event, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parsing calendar: %w", err)
	}

	var events []*event.Event
	for _, ve := range cal.Events() {
		e, err := importVEvent(ve, calendarID)
		if err != nil {
			continue
		}
		events = append(events, e)
	}

	if len(events) == 0 {
		return nil, ErrEmptyCalendar
	}
	return events, nil
}

func importVEvent(ve *ical.VEvent, calendarID string) (*event.Event, error) {
	summary := ""
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		summary = p.Value
	}
	if strings.TrimSpace(summary) == "" {
		return nil, event.ErrEmptyTitle
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return nil, fmt.Errorf("reading DTSTART: %w", err)
	}
	allDay := isAllDay(ve)

	end, err := ve.GetEndAt()
	if err != nil || !end.After(start) {
		if allDay {
			end = start.AddDate(0, 0, 1)
		} else {
			end = start.Add(time.Hour)
		}
	}

	e := &event.Event{
		Title:      strings.TrimSpace(summary),
		CalendarID: calendarID,
		Start:      start,
		End:        end,
		AllDay:     allDay,
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		e.Description = p.Value
	}
	return e, nil
}

// isAllDay detects all-day entries by the DTSTART value format:
// VALUE=DATE or a value without a time component.
func isAllDay(ve *ical.VEvent) bool {
	p := ve.GetProperty(ical.ComponentPropertyDtStart)
	if p == nil {
		return false
	}
	if params := p.ICalParameters; params != nil {
		if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			return true
		}
	}
	return !strings.Contains(p.Value, "T")
}
