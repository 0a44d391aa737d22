package ui

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/focustime/internal/config"
	"github.com/javiermolinar/focustime/internal/db"
	"github.com/javiermolinar/focustime/internal/event"
	"github.com/javiermolinar/focustime/internal/ics"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	repo, err := db.New(filepath.Join(t.TempDir(), "focustime.db"))
	if err != nil {
		t.Fatalf("creating repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	cfg := config.Default()
	return NewApp(repo, cfg)
}

func mustCreateEvent(t *testing.T, app *App, title string, start, end time.Time) *event.Event {
	t.Helper()

	e, err := event.New(title, "work", start, end)
	if err != nil {
		t.Fatalf("building event: %v", err)
	}
	if err := app.repo.CreateEvent(context.Background(), e); err != nil {
		t.Fatalf("creating event: %v", err)
	}
	return e
}

func TestListExportEvents(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	mustCreateEvent(t, app, "January planning",
		time.Date(2025, 1, 10, 9, 0, 0, 0, time.Local),
		time.Date(2025, 1, 10, 10, 0, 0, 0, time.Local))
	mustCreateEvent(t, app, "March review",
		time.Date(2025, 3, 5, 14, 0, 0, 0, time.Local),
		time.Date(2025, 3, 5, 15, 0, 0, 0, time.Local))

	all, err := app.listExportEvents(ctx, "", "")
	if err != nil {
		t.Fatalf("listExportEvents failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 events without a range, got %d", len(all))
	}

	january, err := app.listExportEvents(ctx, "2025-01-01", "2025-01-31")
	if err != nil {
		t.Fatalf("listExportEvents with range failed: %v", err)
	}
	if len(january) != 1 {
		t.Fatalf("expected 1 event in January, got %d", len(january))
	}
	if january[0].Title != "January planning" {
		t.Fatalf("expected January planning, got %q", january[0].Title)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	source := newTestApp(t)

	mustCreateEvent(t, source, "Quarterly sync",
		time.Date(2025, 4, 1, 9, 0, 0, 0, time.Local),
		time.Date(2025, 4, 1, 10, 30, 0, 0, time.Local))

	events, err := source.listExportEvents(ctx, "", "")
	if err != nil {
		t.Fatalf("listExportEvents failed: %v", err)
	}

	var buf bytes.Buffer
	if err := ics.Export(&buf, events); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Quarterly sync") {
		t.Fatal("exported calendar missing event summary")
	}

	dest := newTestApp(t)
	imported, err := ics.Import(&buf, "work")
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	for _, e := range imported {
		if err := dest.repo.CreateEvent(ctx, e); err != nil {
			t.Fatalf("creating imported event: %v", err)
		}
	}

	stored, err := dest.repo.ListEvents(ctx)
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("expected 1 imported event, got %d", len(stored))
	}
	if stored[0].Title != "Quarterly sync" {
		t.Fatalf("expected Quarterly sync, got %q", stored[0].Title)
	}
	if stored[0].End.Sub(stored[0].Start) != 90*time.Minute {
		t.Fatalf("expected 90m duration, got %s", stored[0].End.Sub(stored[0].Start))
	}
}

func TestCheckCalendar(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	if err := app.checkCalendar(ctx, "work"); err != nil {
		t.Fatalf("expected seeded calendar to pass, got %v", err)
	}

	err := app.checkCalendar(ctx, "nope")
	if !errors.Is(err, event.ErrCalendarNotFound) {
		t.Fatalf("expected ErrCalendarNotFound, got %v", err)
	}
}
