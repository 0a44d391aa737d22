package tui

import (
	"time"

	"github.com/javiermolinar/focustime/internal/dateutil"
	"github.com/javiermolinar/focustime/internal/event"
	"github.com/javiermolinar/focustime/internal/gesture"
	"github.com/javiermolinar/focustime/internal/placement"
	"github.com/javiermolinar/focustime/internal/slot"
)

const (
	headerLines  = 2 // title line + day-of-week header
	gutterWidth  = 6 // "09:00 " time column in week and day views
	linesPerHour = 2
	gridHours    = 24
)

// Layout maps terminal coordinates onto the calendar grid for the
// current view. It is recomputed whenever the window, view or focus
// date changes.
type Layout struct {
	Width  int
	Height int
	View   event.View
	Days   []time.Time // grid days: 7*n for month, 7 for week, 1 for day
}

func (l Layout) columns() int {
	switch l.View {
	case event.ViewDay:
		return 1
	default:
		return 7
	}
}

func (l Layout) gutter() int {
	if l.View == event.ViewMonth {
		return 0
	}
	return gutterWidth
}

// ColWidth returns the width of one day column.
func (l Layout) ColWidth() int {
	cols := l.columns()
	w := (l.Width - l.gutter()) / cols
	if w < 1 {
		w = 1
	}
	return w
}

// gridLines is the number of body lines a time column occupies.
func (l Layout) gridLines() int {
	return gridHours * linesPerHour
}

// cellLines is the height of a month cell in lines.
func (l Layout) cellLines() int {
	rows := len(l.Days) / 7
	if rows == 0 {
		return 1
	}
	h := (l.Height - headerLines - 1) / rows // 1 footer line
	if h < 1 {
		h = 1
	}
	return h
}

// HitDay resolves a click to a month cell day. ok is false off-grid.
func (l Layout) HitDay(x, y int) (time.Time, bool) {
	if l.View != event.ViewMonth {
		return time.Time{}, false
	}
	row := (y - headerLines) / l.cellLines()
	col := x / l.ColWidth()
	if y < headerLines || col < 0 || col > 6 {
		return time.Time{}, false
	}
	idx := row*7 + col
	if idx < 0 || idx >= len(l.Days) {
		return time.Time{}, false
	}
	return l.Days[idx], true
}

// HitTime resolves a click in a week or day body to a concrete time:
// the hit day at the time of day of the clicked line, snapped to the
// slot grid. ok is false off-grid.
func (l Layout) HitTime(x, y int) (time.Time, bool) {
	if l.View == event.ViewMonth {
		return time.Time{}, false
	}
	if x < l.gutter() || y < headerLines {
		return time.Time{}, false
	}

	col := (x - l.gutter()) / l.ColWidth()
	if col < 0 || col >= l.columns() || col >= len(l.Days) {
		return time.Time{}, false
	}
	row := y - headerLines
	if row < 0 || row >= l.gridLines() {
		return time.Time{}, false
	}

	tod := slot.PositionToTime(float64(row) / float64(l.gridLines()))
	day := l.Days[col]
	return day.Add(time.Duration(tod.Minutes()) * time.Minute), true
}

// OnGrid reports whether the coordinate falls inside the event body of
// the current view. Motion outside it during a gesture finishes the
// gesture.
func (l Layout) OnGrid(x, y int) bool {
	if x < 0 || x >= l.Width || y < headerLines {
		return false
	}
	switch l.View {
	case event.ViewMonth:
		_, ok := l.HitDay(x, y)
		return ok
	default:
		_, ok := l.HitTime(x, y)
		return ok
	}
}

// eventLineSpan returns the body line range [top, bottom] an event
// occupies in a time column.
func (l Layout) eventLineSpan(e *event.Event) (int, int) {
	geo, ok := slot.EventGeometry(*e, l.View)
	if !ok {
		return 0, 0
	}
	lines := l.gridLines()
	top := int(geo.Top * float64(lines))
	height := int(geo.Height * float64(lines))
	if height < 1 {
		height = 1
	}
	return top, top + height - 1
}

// EventAt resolves a click in a time column to the event rendered
// there, if any. Later events win, matching paint order.
func (l Layout) EventAt(events []*event.Event, x, y int) (*event.Event, bool) {
	if l.View == event.ViewMonth {
		return nil, false
	}
	col := (x - l.gutter()) / l.ColWidth()
	if x < l.gutter() || col < 0 || col >= len(l.Days) {
		return nil, false
	}
	day := l.Days[col]
	row := y - headerLines
	if row < 0 || row >= l.gridLines() {
		return nil, false
	}

	var hit *event.Event
	for _, e := range placement.EventsForDay(events, day) {
		if !dateutil.SameDay(e.Start, day) {
			continue
		}
		top, bottom := l.eventLineSpan(e)
		if row >= top && row <= bottom {
			hit = e
		}
	}
	return hit, hit != nil
}

// MonthCellList returns the events a month cell renders and the count
// collapsed into its overflow line. Short cells drop trailing events
// so the overflow line always fits.
func (l Layout) MonthCellList(events []*event.Event, day time.Time) ([]*event.Event, int) {
	cell := placement.CapForDisplay(placement.EventsForDay(events, day))
	shown, hidden := cell.Events, cell.Overflow

	capacity := l.cellLines() - 1 // day number line
	overflowLine := 0
	if hidden > 0 {
		overflowLine = 1
	}
	if len(shown)+overflowLine > capacity {
		keep := capacity - 1
		if keep < 0 {
			keep = 0
		}
		hidden += len(shown) - keep
		shown = shown[:keep]
	}
	return shown, hidden
}

// MonthEventAt resolves a click in a month cell to one of its listed
// events. The first cell line is the day number; the event list
// follows underneath.
func (l Layout) MonthEventAt(events []*event.Event, x, y int) (*event.Event, bool) {
	day, ok := l.HitDay(x, y)
	if !ok {
		return nil, false
	}
	rowInCell := (y - headerLines) % l.cellLines()
	idx := rowInCell - 1
	if idx < 0 {
		return nil, false
	}
	shown, _ := l.MonthCellList(events, day)
	if idx >= len(shown) {
		return nil, false
	}
	return shown[idx], true
}

// OnResizeEdge reports whether the hit line is the last line of the
// event's block, where a drag resizes instead of moves.
func (l Layout) OnResizeEdge(e *event.Event, y int) bool {
	_, bottom := l.eventLineSpan(e)
	return y-headerLines == bottom
}

// LinesToPixels converts vertical line travel into the pixel scale the
// gesture math uses.
func LinesToPixels(lines int) float64 {
	return float64(lines) / linesPerHour * gesture.PixelsPerHour
}
