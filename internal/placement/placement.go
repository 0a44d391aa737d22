// Package placement resolves which events belong in which grid cell.
// Membership is computed at day granularity: an event belongs to every
// day from its start day through its end day, so multi-day events
// appear in each day they touch.
package placement

import (
	"time"

	"github.com/javiermolinar/focustime/internal/dateutil"
	"github.com/javiermolinar/focustime/internal/event"
)

// MonthCellCap is the number of events shown per month cell before the
// remainder collapses into an overflow count.
const MonthCellCap = 3

// EventInDay reports whether e occupies any part of day. The event's
// start day and end day are compared at day granularity, so an event
// ending at 00:00 of a day still counts as occupying that day.
func EventInDay(e *event.Event, day time.Time) bool {
	d := dateutil.TruncateToDay(day)
	sd := dateutil.TruncateToDay(e.Start)
	ed := dateutil.TruncateToDay(e.End)
	return sd.Equal(d) || (sd.Before(d) && !ed.Before(d))
}

// EventsForDay returns the events occupying day, preserving input
// order.
func EventsForDay(events []*event.Event, day time.Time) []*event.Event {
	var out []*event.Event
	for _, e := range events {
		if e != nil && EventInDay(e, day) {
			out = append(out, e)
		}
	}
	return out
}

// EventsForHourSlot returns the events that start within [day hour:00,
// day hour+1:00). Week and day views anchor each event in the hour row
// of its start time.
func EventsForHourSlot(events []*event.Event, day time.Time, hour int) []*event.Event {
	var out []*event.Event
	for _, e := range events {
		if e == nil {
			continue
		}
		if dateutil.SameDay(e.Start, day) && e.Start.Hour() == hour {
			out = append(out, e)
		}
	}
	return out
}

// DayCell is a month cell's display list: up to MonthCellCap events
// plus a count of how many were hidden.
type DayCell struct {
	Events   []*event.Event
	Overflow int
}

// CapForDisplay truncates a day's event list to the month cell cap.
func CapForDisplay(events []*event.Event) DayCell {
	if len(events) <= MonthCellCap {
		return DayCell{Events: events}
	}
	return DayCell{
		Events:   events[:MonthCellCap],
		Overflow: len(events) - MonthCellCap,
	}
}

// MonthCells resolves a full month grid: one DayCell per grid day, in
// grid order.
func MonthCells(events []*event.Event, days []time.Time) []DayCell {
	cells := make([]DayCell, len(days))
	for i, day := range days {
		cells[i] = CapForDisplay(EventsForDay(events, day))
	}
	return cells
}
