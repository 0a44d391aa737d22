// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/focustime/internal/event"
)

// DataLoadedMsg is sent when events and calendars for the visible
// range are loaded.
type DataLoadedMsg struct {
	Events    []*event.Event
	Calendars []*event.Calendar
}

// EventMutatedMsg is sent after a create, update or delete succeeds.
// The model reloads the visible range in response.
type EventMutatedMsg struct{}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsg is sent for temporary status messages.
type StatusMsg struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadRange loads events overlapping [start, end] plus all calendars.
func LoadRange(repo event.Repository, start, end time.Time) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		events, err := repo.ListEventsByRange(ctx, start, end)
		if err != nil {
			return ErrMsg{Err: err}
		}
		calendars, err := repo.ListCalendars(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}

		return DataLoadedMsg{Events: events, Calendars: calendars}
	}
}

// CreateEvent stores a new event.
func CreateEvent(repo event.Repository, e *event.Event) tea.Cmd {
	return func() tea.Msg {
		if err := repo.CreateEvent(context.Background(), e); err != nil {
			return ErrMsg{Err: err}
		}
		return EventMutatedMsg{}
	}
}

// UpdateEvent applies a partial update to an event.
func UpdateEvent(repo event.Repository, id string, u event.Update) tea.Cmd {
	return func() tea.Msg {
		if err := repo.UpdateEvent(context.Background(), id, u); err != nil {
			return ErrMsg{Err: err}
		}
		return EventMutatedMsg{}
	}
}

// DeleteEvent removes an event.
func DeleteEvent(repo event.Repository, id string) tea.Cmd {
	return func() tea.Msg {
		if err := repo.DeleteEvent(context.Background(), id); err != nil {
			return ErrMsg{Err: err}
		}
		return EventMutatedMsg{}
	}
}

// ToggleCalendar flips a calendar's visibility.
func ToggleCalendar(repo event.Repository, id string, visible bool) tea.Cmd {
	return func() tea.Msg {
		if err := repo.SetCalendarVisibility(context.Background(), id, visible); err != nil {
			return ErrMsg{Err: err}
		}
		return EventMutatedMsg{}
	}
}
