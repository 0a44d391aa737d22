package event

import (
	"context"
	"time"
)

// Repository defines the storage interface for events and calendars.
type Repository interface {
	// ListEvents returns all events in insertion order.
	ListEvents(ctx context.Context) ([]*Event, error)

	// ListEventsByRange returns events overlapping the inclusive day
	// range [start, end], in insertion order.
	ListEventsByRange(ctx context.Context, start, end time.Time) ([]*Event, error)

	// GetEvent retrieves an event by ID. Returns nil, nil if unknown.
	GetEvent(ctx context.Context, id string) (*Event, error)

	// CreateEvent stores a new event, assigning its ID and the
	// created/updated timestamps on the passed value.
	CreateEvent(ctx context.Context, e *Event) error

	// UpdateEvent applies a partial update and refreshes the updated
	// timestamp. Unknown ids are a silent no-op.
	UpdateEvent(ctx context.Context, id string, u Update) error

	// DeleteEvent removes an event. Unknown ids are a silent no-op.
	DeleteEvent(ctx context.Context, id string) error

	// ListCalendars returns all calendars in their seeded order.
	ListCalendars(ctx context.Context) ([]*Calendar, error)

	// SetCalendarVisibility toggles a calendar's visibility flag.
	SetCalendarVisibility(ctx context.Context, id string, visible bool) error

	// Close releases any resources held by the repository.
	Close() error
}
