package db

import (
	"fmt"

	"github.com/javiermolinar/focustime/internal/event"
)

// migrate runs database migrations and seeds the default calendars.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS calendars (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			color      TEXT NOT NULL,
			visible    INTEGER NOT NULL DEFAULT 1,
			type       TEXT NOT NULL DEFAULT '',
			seed_order INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS events (
			id          TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			calendar_id TEXT NOT NULL REFERENCES calendars(id),
			description TEXT NOT NULL DEFAULT '',
			start_at    DATETIME NOT NULL,
			end_at      DATETIME NOT NULL,
			color       TEXT NOT NULL DEFAULT '',
			all_day     INTEGER NOT NULL DEFAULT 0,
			created_at  DATETIME NOT NULL,
			updated_at  DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_events_start ON events(start_at);
		CREATE INDEX IF NOT EXISTS idx_events_calendar ON events(calendar_id);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return s.seedCalendars()
}

// seedCalendars inserts the default calendars on first run. Existing
// rows are left untouched so user edits survive restarts.
func (s *SQLite) seedCalendars() error {
	query := `
		INSERT OR IGNORE INTO calendars (id, name, color, visible, type, seed_order)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	for i, c := range event.DefaultCalendars() {
		if _, err := s.db.Exec(query, c.ID, c.Name, c.Color, boolToInt(c.Visible), string(c.Type), i); err != nil {
			return fmt.Errorf("seeding calendar %q: %w", c.ID, err)
		}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
