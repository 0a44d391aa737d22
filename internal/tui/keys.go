package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/focustime/internal/event"
	"github.com/javiermolinar/focustime/internal/gesture"
	"github.com/javiermolinar/focustime/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.renaming {
		return m.handleRenameKeys(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "m":
		return m.switchView(event.ViewMonth)
	case "w":
		return m.switchView(event.ViewWeek)
	case "d":
		return m.switchView(event.ViewDay)

	case "h", "left":
		return m.shiftFocus(-1)
	case "l", "right":
		return m.shiftFocus(1)
	case "t":
		m.focus = m.nowFunc()
		m.selected = -1
		return m, m.reload()

	case "j", "down", "tab":
		return m.cycleSelection(1), nil
	case "k", "up", "shift+tab":
		return m.cycleSelection(-1), nil

	case "n":
		req := gesture.ClickCreate(m.focus)
		e, err := event.New("New event", m.defaultCalendarID(), req.Start, req.End)
		if err != nil {
			return m, func() tea.Msg { return commands.ErrMsg{Err: err} }
		}
		return m, commands.CreateEvent(m.repo, e)

	case "r", "enter":
		if e, ok := m.selectedEvent(); ok {
			m.renaming = true
			m.renameID = e.ID
			m.titleInput.SetValue(e.Title)
			m.titleInput.CursorEnd()
			m.titleInput.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case "x", "delete":
		if e, ok := m.selectedEvent(); ok {
			m.selected = -1
			return m, commands.DeleteEvent(m.repo, e.ID)
		}
		return m, nil

	case "y":
		if e, ok := m.selectedEvent(); ok {
			text := fmt.Sprintf("%s %s-%s %s",
				e.Start.Format("2006-01-02"),
				e.Start.Format("15:04"),
				e.End.Format("15:04"),
				e.Title)
			if err := clipboard.WriteAll(text); err != nil {
				return m, func() tea.Msg { return commands.ErrMsg{Err: err} }
			}
			return m, func() tea.Msg { return commands.StatusMsg{Msg: "Copied to clipboard"} }
		}
		return m, nil

	case "1", "2", "3", "4", "5":
		idx := int(msg.String()[0] - '1')
		if idx < len(m.calendars) {
			c := m.calendars[idx]
			return m, commands.ToggleCalendar(m.repo, c.ID, !c.Visible)
		}
		return m, nil
	}

	return m, nil
}

// handleRenameKeys routes input while the title prompt is open.
func (m Model) handleRenameKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeRename()
		return m, nil

	case "enter":
		title := strings.TrimSpace(m.titleInput.Value())
		id := m.renameID
		m.closeRename()
		if title == "" {
			return m, func() tea.Msg { return commands.ErrMsg{Err: event.ErrEmptyTitle} }
		}
		return m, commands.UpdateEvent(m.repo, id, event.Update{Title: &title})
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

func (m *Model) closeRename() {
	m.renaming = false
	m.renameID = ""
	m.titleInput.Blur()
	m.titleInput.SetValue("")
}

// switchView changes the active view, keeping the focus date.
func (m Model) switchView(v event.View) (tea.Model, tea.Cmd) {
	if m.view == v {
		return m, nil
	}
	m.view = v
	m.selected = -1
	return m, m.reload()
}

// shiftFocus moves the focus date by one period of the current view.
func (m Model) shiftFocus(dir int) (tea.Model, tea.Cmd) {
	switch m.view {
	case event.ViewMonth:
		m.focus = m.focus.AddDate(0, dir, 0)
	case event.ViewWeek:
		m.focus = m.focus.AddDate(0, 0, 7*dir)
	case event.ViewDay:
		m.focus = m.focus.AddDate(0, 0, dir)
	}
	m.selected = -1
	return m, m.reload()
}

// cycleSelection moves the keyboard selection through visible events.
// With nothing selected, forward starts at the first event and
// backward at the last.
func (m Model) cycleSelection(dir int) Model {
	visible := m.visibleEvents()
	if len(visible) == 0 {
		m.selected = -1
		return m
	}
	if m.selected < 0 {
		if dir > 0 {
			m.selected = 0
		} else {
			m.selected = len(visible) - 1
		}
		return m
	}
	m.selected = (m.selected + dir + len(visible)) % len(visible)
	return m
}

// selectedEvent returns the keyboard-selected event.
func (m Model) selectedEvent() (*event.Event, bool) {
	visible := m.visibleEvents()
	if m.selected < 0 || m.selected >= len(visible) {
		return nil, false
	}
	return visible[m.selected], true
}

// defaultCalendarID picks the calendar new events land in: the first
// visible one, falling back to the first seeded.
func (m Model) defaultCalendarID() string {
	for _, c := range m.calendars {
		if c.Visible {
			return c.ID
		}
	}
	if len(m.calendars) > 0 {
		return m.calendars[0].ID
	}
	return "tasks"
}
