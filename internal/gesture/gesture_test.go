package gesture

import (
	"testing"
	"time"

	"github.com/javiermolinar/focustime/internal/event"
	"github.com/javiermolinar/focustime/internal/slot"
)

func at(h, m int) time.Time {
	return time.Date(2024, 3, 5, h, m, 0, 0, time.Local)
}

func TestClickCreate(t *testing.T) {
	day := time.Date(2024, 3, 5, 14, 22, 0, 0, time.Local)
	req := ClickCreate(day)

	if want := at(9, 0); !req.Start.Equal(want) {
		t.Errorf("expected start %v, got %v", want, req.Start)
	}
	if want := at(10, 0); !req.End.Equal(want) {
		t.Errorf("expected end %v, got %v", want, req.End)
	}
}

func TestSession_CreateDrag(t *testing.T) {
	var s Session

	s.BeginCreate(at(9, 10))
	if s.Mode() != ModeCreating {
		t.Fatalf("expected creating mode, got %v", s.Mode())
	}
	s.TrackCreate(at(10, 50))

	req, ok := s.FinishCreate()
	if !ok {
		t.Fatal("expected create to finish")
	}
	if want := at(9, 15); !req.Start.Equal(want) {
		t.Errorf("expected start %v, got %v", want, req.Start)
	}
	// The far endpoint is extended by an hour before snapping, so the
	// slot under the pointer is part of the event: 10:50 → 11:45.
	if want := at(11, 45); !req.End.Equal(want) {
		t.Errorf("expected end %v, got %v", want, req.End)
	}
	if s.Active() {
		t.Error("session should be idle after finish")
	}
}

func TestSession_CreateDragUpward(t *testing.T) {
	// Dragging upward produces the same interval as dragging downward.
	var down, up Session

	down.BeginCreate(at(9, 10))
	down.TrackCreate(at(10, 50))
	downReq, _ := down.FinishCreate()

	up.BeginCreate(at(10, 50))
	up.TrackCreate(at(9, 10))
	upReq, _ := up.FinishCreate()

	if !downReq.Start.Equal(upReq.Start) || !downReq.End.Equal(upReq.End) {
		t.Errorf("directions disagree: down %v-%v, up %v-%v",
			downReq.Start, downReq.End, upReq.Start, upReq.End)
	}
}

func TestSession_CreateShortDrag(t *testing.T) {
	var s Session
	s.BeginCreate(at(9, 0))
	s.TrackCreate(at(9, 20))

	req, _ := s.FinishCreate()
	if want := at(10, 15); !req.End.Equal(want) {
		t.Errorf("short drag should still cover its last slot, got end %v", req.End)
	}
	if req.End.Sub(req.Start) < time.Hour {
		t.Errorf("created events are at least an hour, got %s", req.End.Sub(req.Start))
	}
}

func TestSession_CreateWithoutMotion(t *testing.T) {
	// A press-and-release without movement behaves like a one-hour
	// selection at the press point.
	var s Session
	s.BeginCreate(at(14, 7))

	req, _ := s.FinishCreate()
	if want := at(14, 0); !req.Start.Equal(want) {
		t.Errorf("expected start %v, got %v", want, req.Start)
	}
	if want := at(15, 0); !req.End.Equal(want) {
		t.Errorf("expected end %v, got %v", want, req.End)
	}
}

func TestSession_CreatePreview(t *testing.T) {
	var s Session
	if _, ok := s.CreatePreview(); ok {
		t.Error("idle session should have no preview")
	}

	s.BeginCreate(at(9, 0))
	s.TrackCreate(at(11, 0))
	req, ok := s.CreatePreview()
	if !ok {
		t.Fatal("expected preview")
	}
	if !req.End.Equal(at(12, 0)) {
		t.Errorf("expected preview end 12:00, got %v", req.End)
	}
	if s.Mode() != ModeCreating {
		t.Error("preview must not end the gesture")
	}
}

func TestDropOnHourSlot(t *testing.T) {
	live := &event.Event{
		ID:    "e1",
		Start: at(14, 0),
		End:   at(15, 30),
	}
	target := time.Date(2024, 3, 8, 0, 0, 0, 0, time.Local)

	u := DropOnHourSlot(live, target, slot.TimeOfDay{Hour: 10, Minute: 15})
	if u.Start == nil || u.End == nil {
		t.Fatal("expected start and end in update")
	}
	wantStart := time.Date(2024, 3, 8, 10, 15, 0, 0, time.Local)
	wantEnd := time.Date(2024, 3, 8, 11, 45, 0, 0, time.Local)
	if !u.Start.Equal(wantStart) {
		t.Errorf("expected start %v, got %v", wantStart, *u.Start)
	}
	if !u.End.Equal(wantEnd) {
		t.Errorf("expected duration-preserving end %v, got %v", wantEnd, *u.End)
	}
}

func TestDropOnDayCell(t *testing.T) {
	live := &event.Event{
		ID:    "e1",
		Start: at(14, 30),
		End:   at(16, 0),
	}
	target := time.Date(2024, 3, 12, 0, 0, 0, 0, time.Local)

	u := DropOnDayCell(live, target)
	wantStart := time.Date(2024, 3, 12, 14, 30, 0, 0, time.Local)
	wantEnd := time.Date(2024, 3, 12, 16, 0, 0, 0, time.Local)
	if !u.Start.Equal(wantStart) {
		t.Errorf("expected time of day preserved, got start %v", *u.Start)
	}
	if !u.End.Equal(wantEnd) {
		t.Errorf("expected end %v, got %v", wantEnd, *u.End)
	}
}

func TestSession_Move(t *testing.T) {
	var s Session
	s.BeginMove("e1")

	id, ok := s.MovingID()
	if !ok || id != "e1" {
		t.Fatalf("expected moving id e1, got %q (%v)", id, ok)
	}

	id, ok = s.FinishMove()
	if !ok || id != "e1" {
		t.Fatalf("expected finish to return e1, got %q (%v)", id, ok)
	}
	if s.Active() {
		t.Error("session should be idle after finish")
	}
}

func TestSession_Resize(t *testing.T) {
	e := event.Event{ID: "e1", Start: at(15, 0), End: at(16, 0)}

	var s Session
	s.BeginResize(e)

	// 35 minutes of downward travel at 60px/hour.
	s.ResizeBy(35)

	res, ok := s.FinishResize()
	if !ok {
		t.Fatal("expected resize to finish")
	}
	if res.EventID != "e1" {
		t.Errorf("expected event id e1, got %q", res.EventID)
	}
	if want := at(16, 30); !res.End.Equal(want) {
		t.Errorf("expected snapped end %v, got %v", want, res.End)
	}
}

func TestSession_ResizeRejectsCollapse(t *testing.T) {
	e := event.Event{ID: "e1", Start: at(15, 0), End: at(16, 0)}

	var s Session
	s.BeginResize(e)

	// Dragging far above the start must not produce an end at or
	// before the start; the proposal keeps its last valid value.
	s.ResizeBy(-90)
	if end, _ := s.ResizePreview(); !end.Equal(at(16, 0)) {
		t.Errorf("invalid proposal should be ignored, got %v", end)
	}

	// A later valid travel is accepted again.
	s.ResizeBy(-30)
	res, _ := s.FinishResize()
	if want := at(15, 30); !res.End.Equal(want) {
		t.Errorf("expected end %v, got %v", want, res.End)
	}
}

func TestSession_ResizeWithoutMotion(t *testing.T) {
	e := event.Event{ID: "e1", Start: at(15, 0), End: at(16, 10)}

	var s Session
	s.BeginResize(e)
	res, _ := s.FinishResize()

	// No travel commits the original end untouched, even off-grid.
	if !res.End.Equal(at(16, 10)) {
		t.Errorf("expected original end, got %v", res.End)
	}
}

func TestSession_Abandon(t *testing.T) {
	t.Run("idle", func(t *testing.T) {
		var s Session
		if _, ok := s.Abandon(); ok {
			t.Error("idle session has nothing to abandon")
		}
	})

	t.Run("creating commits", func(t *testing.T) {
		var s Session
		s.BeginCreate(at(9, 0))
		s.TrackCreate(at(11, 0))

		out, ok := s.Abandon()
		if !ok || out.Create == nil {
			t.Fatal("expected create outcome")
		}
		if !out.Create.End.Equal(at(12, 0)) {
			t.Errorf("expected committed end 12:00, got %v", out.Create.End)
		}
		if s.Active() {
			t.Error("session should be idle after abandon")
		}
	})

	t.Run("resizing commits", func(t *testing.T) {
		e := event.Event{ID: "e1", Start: at(15, 0), End: at(16, 0)}
		var s Session
		s.BeginResize(e)
		s.ResizeBy(60)

		out, ok := s.Abandon()
		if !ok || out.Resize == nil {
			t.Fatal("expected resize outcome")
		}
		if !out.Resize.End.Equal(at(17, 0)) {
			t.Errorf("expected committed end 17:00, got %v", out.Resize.End)
		}
	})

	t.Run("moving returns id", func(t *testing.T) {
		var s Session
		s.BeginMove("e1")
		out, ok := s.Abandon()
		if !ok || out.MoveID != "e1" {
			t.Errorf("expected move id e1, got %+v (%v)", out, ok)
		}
	})
}

func TestSession_BeginReplacesActiveGesture(t *testing.T) {
	var s Session
	s.BeginCreate(at(9, 0))
	s.BeginMove("e1")

	if s.Mode() != ModeMoving {
		t.Fatalf("expected moving, got %v", s.Mode())
	}
	if _, ok := s.CreatePreview(); ok {
		t.Error("create state should be gone")
	}
}
