// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/focustime/internal/event"
)

// SQLite implements event.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository, runs migrations and seeds the
// default calendars.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

const eventColumns = `id, title, calendar_id, description, start_at, end_at, color, all_day, created_at, updated_at`

// ListEvents returns all events in insertion order.
func (s *SQLite) ListEvents(ctx context.Context) ([]*event.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY rowid`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	return scanEvents(rows)
}

// ListEventsByRange returns events overlapping the inclusive day range
// [start, end], in insertion order. Comparison is at day granularity:
// an event counts as overlapping if its start day is on or before the
// range end and its end day is on or after the range start. Days are
// the lexical date prefix of the stored local timestamps; SQLite's
// date() would shift offset-carrying values to UTC days first.
func (s *SQLite) ListEventsByRange(ctx context.Context, start, end time.Time) ([]*event.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE substr(start_at, 1, 10) <= ? AND substr(end_at, 1, 10) >= ?
		ORDER BY rowid
	`

	rows, err := s.db.QueryContext(ctx, query, end.Format("2006-01-02"), start.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("querying events by range: %w", err)
	}
	return scanEvents(rows)
}

// GetEvent retrieves an event by ID. Returns nil, nil if unknown.
func (s *SQLite) GetEvent(ctx context.Context, id string) (*event.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = ?`

	e, err := scanEvent(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying event: %w", err)
	}
	return e, nil
}

// CreateEvent stores a new event, assigning its ID and timestamps.
func (s *SQLite) CreateEvent(ctx context.Context, e *event.Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	// RFC3339 storage has second precision; truncate so the value the
	// caller holds matches what a later read returns.
	now := time.Now().Truncate(time.Second)
	e.CreatedAt = now
	e.UpdatedAt = now

	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		e.ID,
		e.Title,
		e.CalendarID,
		e.Description,
		e.Start.Format(time.RFC3339),
		e.End.Format(time.RFC3339),
		e.Color,
		boolToInt(e.AllDay),
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}

	return nil
}

// UpdateEvent applies a partial update, building the SET clause from
// the fields present, and refreshes updated_at. Unknown ids and empty
// updates are silent no-ops.
func (s *SQLite) UpdateEvent(ctx context.Context, id string, u event.Update) error {
	if u.IsZero() {
		return nil
	}

	var (
		sets []string
		args []any
	)
	if u.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, strings.TrimSpace(*u.Title))
	}
	if u.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *u.Description)
	}
	if u.CalendarID != nil {
		sets = append(sets, "calendar_id = ?")
		args = append(args, *u.CalendarID)
	}
	if u.Start != nil {
		sets = append(sets, "start_at = ?")
		args = append(args, u.Start.Format(time.RFC3339))
	}
	if u.End != nil {
		sets = append(sets, "end_at = ?")
		args = append(args, u.End.Format(time.RFC3339))
	}
	if u.Color != nil {
		sets = append(sets, "color = ?")
		args = append(args, *u.Color)
	}
	if u.AllDay != nil {
		sets = append(sets, "all_day = ?")
		args = append(args, boolToInt(*u.AllDay))
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().Format(time.RFC3339))
	args = append(args, id)

	query := `UPDATE events SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating event: %w", err)
	}
	return nil
}

// DeleteEvent removes an event. Unknown ids are a silent no-op.
func (s *SQLite) DeleteEvent(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	return nil
}

// ListCalendars returns all calendars in their seeded order.
func (s *SQLite) ListCalendars(ctx context.Context) ([]*event.Calendar, error) {
	query := `SELECT id, name, color, visible, type FROM calendars ORDER BY seed_order, rowid`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying calendars: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var calendars []*event.Calendar
	for rows.Next() {
		var (
			c       event.Calendar
			visible int
			typ     string
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &visible, &typ); err != nil {
			return nil, fmt.Errorf("scanning calendar: %w", err)
		}
		c.Visible = visible != 0
		c.Type = event.CalendarType(typ)
		calendars = append(calendars, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating calendars: %w", err)
	}
	return calendars, nil
}

// SetCalendarVisibility toggles a calendar's visibility flag.
func (s *SQLite) SetCalendarVisibility(ctx context.Context, id string, visible bool) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE calendars SET visible = ? WHERE id = ?`, boolToInt(visible), id)
	if err != nil {
		return fmt.Errorf("setting calendar visibility: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %s", event.ErrCalendarNotFound, id)
	}
	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*event.Event, error) {
	var (
		e                event.Event
		startAt, endAt   string
		created, updated string
		allDay           int
	)
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.CalendarID,
		&e.Description,
		&startAt,
		&endAt,
		&e.Color,
		&allDay,
		&created,
		&updated,
	)
	if err != nil {
		return nil, err
	}

	if e.Start, err = parseTimestamp(startAt); err != nil {
		return nil, fmt.Errorf("parsing start: %w", err)
	}
	if e.End, err = parseTimestamp(endAt); err != nil {
		return nil, fmt.Errorf("parsing end: %w", err)
	}
	if e.CreatedAt, err = parseTimestamp(created); err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	if e.UpdatedAt, err = parseTimestamp(updated); err != nil {
		return nil, fmt.Errorf("parsing updated at: %w", err)
	}
	e.AllDay = allDay != 0

	return &e, nil
}

func scanEvents(rows *sql.Rows) ([]*event.Event, error) {
	defer func() { _ = rows.Close() }()

	var events []*event.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}

// parseTimestamp parses the timestamp formats SQLite might hand back.
func parseTimestamp(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
	}
	for _, f := range formats {
		if t, err := time.ParseInLocation(f, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %s", s)
}
