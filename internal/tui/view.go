package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/focustime/internal/dateutil"
	"github.com/javiermolinar/focustime/internal/event"
	"github.com/javiermolinar/focustime/internal/gesture"
	"github.com/javiermolinar/focustime/internal/placement"
)

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.view {
	case event.ViewWeek, event.ViewDay:
		b.WriteString(m.renderTimeGrid())
	default:
		b.WriteString(m.renderMonth())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	var title string
	switch m.view {
	case event.ViewWeek:
		days := dateutil.WeekDays(m.focus)
		title = fmt.Sprintf("%s – %s",
			days[0].Format("Jan 2"), days[6].Format("Jan 2, 2006"))
	case event.ViewDay:
		title = m.focus.Format("Monday, January 2, 2006")
	default:
		title = m.focus.Format("January 2006")
	}
	header := m.styles.TitleStyle.Render("focustime  " + title)

	return header + "\n" + m.renderDayHeaders()
}

func (m Model) renderDayHeaders() string {
	layout := m.layout()
	colWidth := layout.ColWidth()
	now := m.nowFunc()

	var cols []string
	switch m.view {
	case event.ViewDay:
		cols = append(cols, strings.Repeat(" ", gutterWidth))
		style := m.styles.DayHeaderStyle
		if dateutil.SameDay(m.focus, now) {
			style = m.styles.DayHeaderTodayStyle
		}
		cols = append(cols, style.Width(colWidth).Render(m.focus.Format("Mon 2")))
	case event.ViewWeek:
		cols = append(cols, strings.Repeat(" ", gutterWidth))
		for _, d := range dateutil.WeekDays(m.focus) {
			style := m.styles.DayHeaderStyle
			if dateutil.SameDay(d, now) {
				style = m.styles.DayHeaderTodayStyle
			}
			cols = append(cols, style.Width(colWidth).Render(d.Format("Mon 2")))
		}
	default:
		for i := 0; i < 7; i++ {
			wd := time.Weekday((int(dateutil.WeekStart) + i) % 7)
			cols = append(cols, m.styles.DayHeaderStyle.Width(colWidth).Render(wd.String()[:3]))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// renderMonth draws the month grid: one cell per day, a day number
// line followed by the capped event list.
func (m Model) renderMonth() string {
	layout := m.layout()
	days := layout.Days
	colWidth := layout.ColWidth()
	cellLines := layout.cellLines()
	visible := m.visibleEvents()
	now := m.nowFunc()

	var rows []string
	for rowStart := 0; rowStart < len(days); rowStart += 7 {
		week := days[rowStart : rowStart+7]
		var cells []string
		for _, day := range week {
			cells = append(cells, m.renderMonthCell(layout, day, visible, colWidth, cellLines, now))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderMonthCell(layout Layout, day time.Time, visible []*event.Event, colWidth, cellLines int, now time.Time) string {
	numStyle := m.styles.DayNumberStyle
	if day.Month() != m.focus.Month() {
		numStyle = m.styles.DayNumberMutedStyle
	}
	if dateutil.SameDay(day, now) {
		numStyle = m.styles.DayNumberTodayStyle
	}

	lines := []string{numStyle.Render(fmt.Sprintf("%2d", day.Day()))}

	shown, hidden := layout.MonthCellList(visible, day)
	for _, e := range shown {
		style := m.styles.EventColorStyle(e.EffectiveColor(m.calendarByID(e.CalendarID)))
		if sel, ok := m.selectedEvent(); ok && sel.ID == e.ID {
			style = m.styles.EventSelectedStyle
		}
		lines = append(lines, style.MaxWidth(colWidth-1).Render(e.Title))
	}
	if hidden > 0 {
		lines = append(lines, m.styles.OverflowStyle.Render(fmt.Sprintf("+%d more", hidden)))
	}
	for len(lines) < cellLines {
		lines = append(lines, "")
	}

	block := strings.Join(lines, "\n")
	return lipgloss.NewStyle().Width(colWidth).MaxWidth(colWidth).Render(block)
}

// colCell is one rendered line of a day column.
type colCell struct {
	text  string
	style lipgloss.Style
}

// renderTimeGrid draws the week and day views: an hour gutter and one
// column per day, events placed by their slot geometry.
func (m Model) renderTimeGrid() string {
	layout := m.layout()
	colWidth := layout.ColWidth()
	visible := m.visibleEvents()

	grid := make([][]colCell, len(layout.Days))
	for c := range grid {
		grid[c] = make([]colCell, layout.gridLines())
		for r := range grid[c] {
			grid[c][r] = colCell{text: "", style: m.styles.EmptyCellStyle}
		}
	}

	for c, day := range layout.Days {
		for _, e := range placement.EventsForDay(visible, day) {
			if !dateutil.SameDay(e.Start, day) {
				continue
			}
			top, bottom := layout.eventLineSpan(e)
			style := m.styles.EventColorStyle(e.EffectiveColor(m.calendarByID(e.CalendarID)))
			if sel, ok := m.selectedEvent(); ok && sel.ID == e.ID {
				style = m.styles.EventSelectedStyle
			}
			for r := top; r <= bottom && r < layout.gridLines(); r++ {
				text := "│"
				if r == top {
					text = fmt.Sprintf("%s %s", e.Start.Format("15:04"), e.Title)
				}
				grid[c][r] = colCell{text: text, style: style}
			}
		}
	}

	m.overlayCreatePreview(layout, grid)

	var lines []string
	for r := 0; r < layout.gridLines(); r++ {
		label := strings.Repeat(" ", gutterWidth)
		if r%linesPerHour == 0 {
			label = m.styles.TimeColumnStyle.Render(fmt.Sprintf("%02d:00 ", r/linesPerHour))
		}
		var cols []string
		cols = append(cols, label)
		for c := range grid {
			cell := grid[c][r]
			cols = append(cols, cell.style.Width(colWidth).MaxWidth(colWidth).Render(cell.text))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	}
	return strings.Join(lines, "\n")
}

// overlayCreatePreview paints the in-progress create selection.
func (m Model) overlayCreatePreview(layout Layout, grid [][]colCell) {
	req, ok := m.gesture.CreatePreview()
	if !ok {
		return
	}
	for c, day := range layout.Days {
		if !dateutil.SameDay(req.Start, day) {
			continue
		}
		preview := event.Event{Start: req.Start, End: req.End}
		top, bottom := layout.eventLineSpan(&preview)
		for r := top; r <= bottom && r < layout.gridLines(); r++ {
			text := "░"
			if r == top {
				text = fmt.Sprintf("%s – %s", req.Start.Format("15:04"), req.End.Format("15:04"))
			}
			grid[c][r] = colCell{text: text, style: m.styles.PreviewStyle}
		}
	}
}

func (m Model) renderFooter() string {
	if m.renaming {
		return m.styles.GestureStyle.Render("rename: ") + m.titleInput.View()
	}

	if m.statusMsg != "" {
		style := m.styles.StatusStyle
		if m.err != nil {
			style = m.styles.ErrorStyle
		}
		return style.Render(m.statusMsg)
	}

	if m.gesture.Active() {
		var hint string
		switch m.gesture.Mode() {
		case gesture.ModeCreating:
			if req, ok := m.gesture.CreatePreview(); ok {
				hint = fmt.Sprintf("creating %s – %s", req.Start.Format("15:04"), req.End.Format("15:04"))
			}
		case gesture.ModeMoving:
			hint = "moving event"
		case gesture.ModeResizing:
			if end, ok := m.gesture.ResizePreview(); ok {
				hint = fmt.Sprintf("resizing to %s", end.Format("15:04"))
			}
		}
		return m.styles.GestureStyle.Render(hint)
	}

	hints := "m/w/d views · h/l navigate · t today · n new · j/k select · r rename · x delete · y yank · 1-5 calendars · q quit"
	return m.styles.FooterStyle.Render(hints)
}
