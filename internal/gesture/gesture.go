// Package gesture tracks pointer interactions over the calendar grid:
// drag-to-create, drag-to-move and resize. A Session holds at most one
// gesture at a time; all timing math snaps to the slot grid.
package gesture

import (
	"time"

	"github.com/javiermolinar/focustime/internal/dateutil"
	"github.com/javiermolinar/focustime/internal/event"
	"github.com/javiermolinar/focustime/internal/slot"
)

const (
	// PixelsPerHour is the vertical scale of the week and day columns.
	PixelsPerHour = 60

	// CreateExtension is added past the far endpoint of a create drag,
	// so the swept slot itself is covered by the resulting event. It is
	// also the length of a click-created event.
	CreateExtension = time.Hour

	// DefaultCreateHour is the start hour for click-created events in
	// the month view, which has no time axis to select from.
	DefaultCreateHour = 9
)

// Mode identifies the gesture currently in progress.
type Mode int

const (
	ModeIdle Mode = iota
	ModeCreating
	ModeMoving
	ModeResizing
)

func (m Mode) String() string {
	switch m {
	case ModeCreating:
		return "creating"
	case ModeMoving:
		return "moving"
	case ModeResizing:
		return "resizing"
	default:
		return "idle"
	}
}

// CreateRequest is the outcome of a completed create gesture.
type CreateRequest struct {
	Start time.Time
	End   time.Time
}

// ResizeResult is the outcome of a completed resize gesture.
type ResizeResult struct {
	EventID string
	End     time.Time
}

// Session is the single gesture state holder. Begin* methods start a
// gesture, replacing whatever was active; Finish* methods end it and
// return the outcome. The zero value is an idle session.
type Session struct {
	mode Mode

	// create
	anchor  time.Time
	tracked time.Time

	// move
	movingID string

	// resize
	resizeID    string
	resizeStart time.Time
	originalEnd time.Time
	proposedEnd time.Time
}

// Mode returns the active gesture mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Active reports whether any gesture is in progress.
func (s *Session) Active() bool {
	return s.mode != ModeIdle
}

// reset clears all gesture state.
func (s *Session) reset() {
	*s = Session{}
}

// ClickCreate produces the request for a plain click on a month cell:
// a one-hour event starting at the default hour of that day. No
// gesture state is involved.
func ClickCreate(day time.Time) CreateRequest {
	d := dateutil.TruncateToDay(day)
	start := d.Add(DefaultCreateHour * time.Hour)
	return CreateRequest{Start: start, End: start.Add(CreateExtension)}
}

// BeginCreate starts a drag-to-create gesture anchored at t.
func (s *Session) BeginCreate(t time.Time) {
	s.reset()
	s.mode = ModeCreating
	s.anchor = t
	s.tracked = t
}

// TrackCreate records the latest pointer time during a create drag.
// Outside a create gesture it is a no-op.
func (s *Session) TrackCreate(t time.Time) {
	if s.mode != ModeCreating {
		return
	}
	s.tracked = t
}

// CreatePreview returns the interval the create gesture would produce
// if released now. ok is false outside a create gesture.
func (s *Session) CreatePreview() (CreateRequest, bool) {
	if s.mode != ModeCreating {
		return CreateRequest{}, false
	}
	return resolveCreate(s.anchor, s.tracked), true
}

// FinishCreate ends the create gesture and returns the event interval:
// the dragged endpoints are ordered, the far one is extended by an hour
// to cover its own slot, and both are snapped to the grid. Dragging
// upward therefore yields the same interval as dragging downward over
// the same slots, and a press without motion yields a one-hour event.
func (s *Session) FinishCreate() (CreateRequest, bool) {
	if s.mode != ModeCreating {
		return CreateRequest{}, false
	}
	req := resolveCreate(s.anchor, s.tracked)
	s.reset()
	return req, true
}

func resolveCreate(a, b time.Time) CreateRequest {
	lo, hi := a, b
	if hi.Before(lo) {
		lo, hi = hi, lo
	}
	return CreateRequest{
		Start: slot.Snap(lo),
		End:   slot.Snap(hi.Add(CreateExtension)),
	}
}

// BeginMove starts a move gesture for the event with the given id. The
// session carries only the id; the event itself is looked up live at
// drop time so the drop reflects any edits made mid-drag.
func (s *Session) BeginMove(id string) {
	s.reset()
	s.mode = ModeMoving
	s.movingID = id
}

// MovingID returns the id carried by an active move gesture.
func (s *Session) MovingID() (string, bool) {
	if s.mode != ModeMoving {
		return "", false
	}
	return s.movingID, true
}

// FinishMove ends the move gesture and returns the carried id. The
// caller resolves the drop against the live event record.
func (s *Session) FinishMove() (string, bool) {
	if s.mode != ModeMoving {
		return "", false
	}
	id := s.movingID
	s.reset()
	return id, true
}

// DropOnHourSlot computes the update for dropping live onto an hour
// row of a week or day column. The event keeps its duration; its start
// becomes the target day at the given time of day.
func DropOnHourSlot(live *event.Event, day time.Time, at slot.TimeOfDay) event.Update {
	d := dateutil.TruncateToDay(day)
	start := d.Add(time.Duration(at.Minutes()) * time.Minute)
	end := start.Add(live.Duration())
	return event.Update{Start: &start, End: &end}
}

// DropOnDayCell computes the update for dropping live onto a month
// cell. The event keeps its duration and its original time of day;
// only the date changes.
func DropOnDayCell(live *event.Event, day time.Time) event.Update {
	d := dateutil.TruncateToDay(day)
	start := d.Add(
		time.Duration(live.Start.Hour())*time.Hour +
			time.Duration(live.Start.Minute())*time.Minute)
	end := start.Add(live.Duration())
	return event.Update{Start: &start, End: &end}
}

// BeginResize starts a resize gesture on e's end edge. The proposal is
// seeded with the current end, so releasing without movement changes
// nothing.
func (s *Session) BeginResize(e event.Event) {
	s.reset()
	s.mode = ModeResizing
	s.resizeID = e.ID
	s.resizeStart = e.Start
	s.originalEnd = e.End
	s.proposedEnd = e.End
}

// ResizeBy updates the proposal from the pointer's vertical travel in
// pixels since the gesture began. The proposed end is the original end
// shifted by the travel, snapped to the grid. Proposals at or before
// the event start are rejected silently: the last valid proposal
// stands.
func (s *Session) ResizeBy(pixels float64) {
	if s.mode != ModeResizing {
		return
	}
	delta := time.Duration(pixels / PixelsPerHour * float64(time.Hour))
	candidate := slot.Snap(s.originalEnd.Add(delta))
	if !candidate.After(s.resizeStart) {
		return
	}
	s.proposedEnd = candidate
}

// ResizePreview returns the end the resize would commit if released
// now. ok is false outside a resize gesture.
func (s *Session) ResizePreview() (time.Time, bool) {
	if s.mode != ModeResizing {
		return time.Time{}, false
	}
	return s.proposedEnd, true
}

// FinishResize ends the resize gesture and returns the committed end:
// the last valid snapped proposal.
func (s *Session) FinishResize() (ResizeResult, bool) {
	if s.mode != ModeResizing {
		return ResizeResult{}, false
	}
	res := ResizeResult{EventID: s.resizeID, End: s.proposedEnd}
	s.reset()
	return res, true
}

// Outcome is what an abandoned gesture resolved to. Exactly one field
// is set, matching the mode the session was in.
type Outcome struct {
	Create *CreateRequest
	MoveID string
	Resize *ResizeResult
}

// Abandon ends whatever gesture is active as if the pointer had been
// released at its last tracked position. Leaving the grid mid-gesture
// commits rather than cancels, so work in progress is never dropped.
func (s *Session) Abandon() (Outcome, bool) {
	switch s.mode {
	case ModeCreating:
		req, _ := s.FinishCreate()
		return Outcome{Create: &req}, true
	case ModeMoving:
		id, _ := s.FinishMove()
		return Outcome{MoveID: id}, true
	case ModeResizing:
		res, _ := s.FinishResize()
		return Outcome{Resize: &res}, true
	default:
		return Outcome{}, false
	}
}
