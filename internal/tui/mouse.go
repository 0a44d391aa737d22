package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/focustime/internal/event"
	"github.com/javiermolinar/focustime/internal/gesture"
	"github.com/javiermolinar/focustime/internal/slot"
	"github.com/javiermolinar/focustime/internal/tui/commands"
)

// handleMouseMsg wires pointer events into the gesture session.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	layout := m.layout()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.handlePress(layout, msg.X, msg.Y), nil

	case tea.MouseActionMotion:
		return m.handleMotion(layout, msg.X, msg.Y)

	case tea.MouseActionRelease:
		return m.handleRelease(layout, msg.X, msg.Y)
	}

	return m, nil
}

func (m Model) handlePress(layout Layout, x, y int) Model {
	m.pressX, m.pressY = x, y
	m.pressDay = time.Time{}

	if m.view == event.ViewMonth {
		day, ok := layout.HitDay(x, y)
		if !ok {
			return m
		}
		if e, hit := layout.MonthEventAt(m.visibleEvents(), x, y); hit {
			m.gesture.BeginMove(e.ID)
			return m
		}
		// Plain cell press: remember it, a release on the same cell
		// creates a default event there.
		m.pressDay = day
		return m
	}

	if e, hit := layout.EventAt(m.visibleEvents(), x, y); hit {
		if layout.OnResizeEdge(e, y) {
			m.gesture.BeginResize(*e)
		} else {
			m.gesture.BeginMove(e.ID)
		}
		return m
	}

	if t, ok := layout.HitTime(x, y); ok {
		m.gesture.BeginCreate(t)
	}
	return m
}

func (m Model) handleMotion(layout Layout, x, y int) (tea.Model, tea.Cmd) {
	if !m.gesture.Active() {
		return m, nil
	}

	// Leaving the grid mid-gesture commits the work in progress.
	if !layout.OnGrid(x, y) {
		return m.commitAbandon()
	}

	switch m.gesture.Mode() {
	case gesture.ModeCreating:
		if t, ok := layout.HitTime(x, y); ok {
			m.gesture.TrackCreate(t)
		}
	case gesture.ModeResizing:
		m.gesture.ResizeBy(LinesToPixels(y - m.pressY))
	}
	return m, nil
}

func (m Model) handleRelease(layout Layout, x, y int) (tea.Model, tea.Cmd) {
	switch m.gesture.Mode() {
	case gesture.ModeCreating:
		if t, ok := layout.HitTime(x, y); ok {
			m.gesture.TrackCreate(t)
		}
		req, _ := m.gesture.FinishCreate()
		return m.commitCreate(req)

	case gesture.ModeMoving:
		id, _ := m.gesture.FinishMove()
		return m.commitMove(layout, id, x, y)

	case gesture.ModeResizing:
		m.gesture.ResizeBy(LinesToPixels(y - m.pressY))
		res, _ := m.gesture.FinishResize()
		return m.commitResize(res)
	}

	// No gesture: a month cell release on the pressed cell creates a
	// default event there.
	if m.view == event.ViewMonth && !m.pressDay.IsZero() {
		if day, ok := layout.HitDay(x, y); ok && day.Equal(m.pressDay) {
			m.pressDay = time.Time{}
			return m.commitCreate(gesture.ClickCreate(day))
		}
		m.pressDay = time.Time{}
	}
	return m, nil
}

// commitAbandon resolves an interrupted gesture as if released in
// place. A move without a drop target has nothing to commit.
func (m Model) commitAbandon() (tea.Model, tea.Cmd) {
	out, ok := m.gesture.Abandon()
	if !ok {
		return m, nil
	}
	switch {
	case out.Create != nil:
		return m.commitCreate(*out.Create)
	case out.Resize != nil:
		return m.commitResize(*out.Resize)
	}
	return m, nil
}

func (m Model) commitCreate(req gesture.CreateRequest) (tea.Model, tea.Cmd) {
	e, err := event.New("New event", m.defaultCalendarID(), req.Start, req.End)
	if err != nil {
		return m, func() tea.Msg { return commands.ErrMsg{Err: err} }
	}
	return m, commands.CreateEvent(m.repo, e)
}

// commitMove resolves a drop against the live event record, so edits
// made while dragging are reflected in the result.
func (m Model) commitMove(layout Layout, id string, x, y int) (tea.Model, tea.Cmd) {
	live, ok := m.eventByID(id)
	if !ok {
		return m, nil
	}

	if m.view == event.ViewMonth {
		day, hit := layout.HitDay(x, y)
		if !hit {
			return m, nil
		}
		return m, commands.UpdateEvent(m.repo, id, gesture.DropOnDayCell(live, day))
	}

	t, hit := layout.HitTime(x, y)
	if !hit {
		return m, nil
	}
	tod := slot.TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
	return m, commands.UpdateEvent(m.repo, id, gesture.DropOnHourSlot(live, t, tod))
}

func (m Model) commitResize(res gesture.ResizeResult) (tea.Model, tea.Cmd) {
	end := res.End
	return m, commands.UpdateEvent(m.repo, res.EventID, event.Update{End: &end})
}
