// Package event defines the core domain types for focustime.
package event

import (
	"errors"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrEmptyTitle     = errors.New("title cannot be empty")
	ErrEndBeforeStart = errors.New("end must be after start")
	ErrUnknownView    = errors.New("view must be 'month', 'week' or 'day'")
)

// Domain errors.
var (
	ErrEventNotFound    = errors.New("event not found")
	ErrCalendarNotFound = errors.New("calendar not found")
)

// View identifies one of the three grid views.
type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
	ViewDay   View = "day"
)

// ParseView validates a view name.
func ParseView(s string) (View, error) {
	switch View(s) {
	case ViewMonth, ViewWeek, ViewDay:
		return View(s), nil
	default:
		return "", ErrUnknownView
	}
}

// CalendarType is a presentational category tag. It carries no behavior.
type CalendarType string

const (
	TypeStudy     CalendarType = "study"
	TypeBirthday  CalendarType = "birthday"
	TypeTasks     CalendarType = "tasks"
	TypeWork      CalendarType = "work"
	TypeReminders CalendarType = "reminders"
)

// Calendar groups events under a name, color and visibility flag.
type Calendar struct {
	ID      string
	Name    string
	Color   string
	Visible bool
	Type    CalendarType
}

// DefaultCalendars is the fixed set seeded into a fresh store.
func DefaultCalendars() []Calendar {
	return []Calendar{
		{ID: "study", Name: "Study", Color: "#10B981", Visible: true, Type: TypeStudy},
		{ID: "tasks", Name: "Tasks", Color: "#3B82F6", Visible: true, Type: TypeTasks},
		{ID: "birthdays", Name: "Birthdays", Color: "#F43F5E", Visible: true, Type: TypeBirthday},
		{ID: "work", Name: "Work", Color: "#8B5CF6", Visible: true, Type: TypeWork},
		{ID: "reminders", Name: "Reminders", Color: "#FACC15", Visible: true, Type: TypeReminders},
	}
}

// Event is a scheduled calendar entry. Values are immutable from the
// core's point of view: mutations go through Apply, which returns a new
// record, and through the store, which replaces rows wholesale.
type Event struct {
	ID          string
	Title       string
	CalendarID  string
	Description string
	Start       time.Time
	End         time.Time
	Color       string // empty means inherit the calendar color
	AllDay      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// New creates an Event with validation. The ID and timestamps are left
// zero; the store assigns them on create.
func New(title, calendarID string, start, end time.Time) (*Event, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !end.After(start) {
		return nil, ErrEndBeforeStart
	}
	return &Event{
		Title:      title,
		CalendarID: calendarID,
		Start:      start,
		End:        end,
	}, nil
}

// Duration returns the event length.
func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// IsMultiDay reports whether the event spans more than one calendar day.
func (e Event) IsMultiDay() bool {
	sy, sm, sd := e.Start.Date()
	ey, em, ed := e.End.Date()
	return sy != ey || sm != em || sd != ed
}

// EffectiveColor resolves the display color: the event's own color if
// set, otherwise the owning calendar's.
func (e Event) EffectiveColor(cal Calendar) string {
	if e.Color != "" {
		return e.Color
	}
	return cal.Color
}

// Update is a partial field set for an event. Nil fields are left
// untouched.
type Update struct {
	Title       *string
	Description *string
	CalendarID  *string
	Start       *time.Time
	End         *time.Time
	Color       *string
	AllDay      *bool
}

// IsZero reports whether the update changes nothing.
func (u Update) IsZero() bool {
	return u.Title == nil && u.Description == nil && u.CalendarID == nil &&
		u.Start == nil && u.End == nil && u.Color == nil && u.AllDay == nil
}

// Apply merges the update into a copy of the event and returns it. The
// receiver is never modified, so concurrent readers of the old value
// never observe a partially-applied update.
func (e Event) Apply(u Update) Event {
	if u.Title != nil {
		e.Title = strings.TrimSpace(*u.Title)
	}
	if u.Description != nil {
		e.Description = *u.Description
	}
	if u.CalendarID != nil {
		e.CalendarID = *u.CalendarID
	}
	if u.Start != nil {
		e.Start = *u.Start
	}
	if u.End != nil {
		e.End = *u.End
	}
	if u.Color != nil {
		e.Color = *u.Color
	}
	if u.AllDay != nil {
		e.AllDay = *u.AllDay
	}
	return e
}

// VisibleCalendarIDs returns the ids of visible calendars.
func VisibleCalendarIDs(calendars []*Calendar) map[string]bool {
	visible := make(map[string]bool, len(calendars))
	for _, c := range calendars {
		if c != nil && c.Visible {
			visible[c.ID] = true
		}
	}
	return visible
}

// FilterVisible returns the events whose owning calendar is visible,
// preserving input order.
func FilterVisible(events []*Event, calendars []*Calendar) []*Event {
	visible := VisibleCalendarIDs(calendars)
	var out []*Event
	for _, e := range events {
		if e != nil && visible[e.CalendarID] {
			out = append(out, e)
		}
	}
	return out
}
