package tui

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/javiermolinar/focustime/internal/config"
	"github.com/javiermolinar/focustime/internal/event"
	"github.com/javiermolinar/focustime/internal/placement"
)

// memRepo is an in-memory event.Repository for tests.
type memRepo struct {
	mu        sync.Mutex
	events    []*event.Event
	calendars []*event.Calendar
}

func newMemRepo() *memRepo {
	r := &memRepo{}
	for _, c := range event.DefaultCalendars() {
		cal := c
		r.calendars = append(r.calendars, &cal)
	}
	return r
}

func (r *memRepo) ListEvents(ctx context.Context) ([]*event.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*event.Event(nil), r.events...), nil
}

func (r *memRepo) ListEventsByRange(ctx context.Context, start, end time.Time) ([]*event.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*event.Event
	for _, e := range r.events {
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if placement.EventInDay(e, d) {
				out = append(out, e)
				break
			}
		}
	}
	return out, nil
}

func (r *memRepo) GetEvent(ctx context.Context, id string) (*event.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *memRepo) CreateEvent(ctx context.Context, e *event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	r.events = append(r.events, e)
	return nil
}

func (r *memRepo) UpdateEvent(ctx context.Context, id string, u event.Update) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.events {
		if e.ID == id {
			updated := e.Apply(u)
			updated.UpdatedAt = time.Now()
			r.events[i] = &updated
			return nil
		}
	}
	return nil
}

func (r *memRepo) DeleteEvent(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.events {
		if e.ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memRepo) ListCalendars(ctx context.Context) ([]*event.Calendar, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*event.Calendar(nil), r.calendars...), nil
}

func (r *memRepo) SetCalendarVisibility(ctx context.Context, id string, visible bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.calendars {
		if c.ID == id {
			c.Visible = visible
			return nil
		}
	}
	return event.ErrCalendarNotFound
}

func (r *memRepo) Close() error { return nil }

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.UI.Theme = "mocha"
	return cfg
}

func testModel(repo event.Repository) Model {
	m := *New(repo, testConfig())
	m.width = 84
	m.height = 30
	m.focus = time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)
	m.nowFunc = func() time.Time {
		return time.Date(2024, 3, 5, 12, 0, 0, 0, time.Local)
	}
	return m
}
