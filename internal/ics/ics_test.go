package ics

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/focustime/internal/event"
)

func TestExport(t *testing.T) {
	events := []*event.Event{
		{
			ID:          "e1",
			Title:       "Team sync",
			CalendarID:  "work",
			Description: "weekly",
			Start:       time.Date(2025, 1, 9, 9, 0, 0, 0, time.UTC),
			End:         time.Date(2025, 1, 9, 10, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	if err := Export(&buf, events); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"BEGIN:VCALENDAR", "BEGIN:VEVENT", "UID:e1", "SUMMARY:Team sync", "DESCRIPTION:weekly", "END:VCALENDAR"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestImport(t *testing.T) {
	src := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//test//EN",
		"BEGIN:VEVENT",
		"UID:abc",
		"SUMMARY:Dentist",
		"DESCRIPTION:checkup",
		"DTSTART:20250109T140000Z",
		"DTEND:20250109T143000Z",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:def",
		"SUMMARY:Holiday",
		"DTSTART;VALUE=DATE:20250110",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	events, err := Import(strings.NewReader(src), "reminders")
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	dentist := events[0]
	if dentist.Title != "Dentist" || dentist.Description != "checkup" {
		t.Errorf("unexpected fields: %+v", dentist)
	}
	if dentist.CalendarID != "reminders" {
		t.Errorf("expected calendar reminders, got %s", dentist.CalendarID)
	}
	if dentist.AllDay {
		t.Error("timed event flagged all-day")
	}
	if got := dentist.End.Sub(dentist.Start); got != 30*time.Minute {
		t.Errorf("expected 30m duration, got %v", got)
	}

	holiday := events[1]
	if !holiday.AllDay {
		t.Error("date-only event should be all-day")
	}
	if got := holiday.End.Sub(holiday.Start); got != 24*time.Hour {
		t.Errorf("all-day event without DTEND should span one day, got %v", got)
	}
}

func TestImport_SkipsUntitled(t *testing.T) {
	src := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//test//EN",
		"BEGIN:VEVENT",
		"UID:no-summary",
		"DTSTART:20250109T140000Z",
		"DTEND:20250109T150000Z",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:ok",
		"SUMMARY:Kept",
		"DTSTART:20250109T140000Z",
		"DTEND:20250109T150000Z",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	events, err := Import(strings.NewReader(src), "tasks")
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if len(events) != 1 || events[0].Title != "Kept" {
		t.Errorf("expected only the titled event, got %d", len(events))
	}
}

func TestImport_Empty(t *testing.T) {
	src := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//test//test//EN\r\nEND:VCALENDAR\r\n"

	_, err := Import(strings.NewReader(src), "tasks")
	if !errors.Is(err, ErrEmptyCalendar) {
		t.Errorf("expected ErrEmptyCalendar, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	orig := []*event.Event{
		{
			ID:         "rt1",
			Title:      "Flight",
			CalendarID: "work",
			Start:      time.Date(2025, 3, 1, 6, 30, 0, 0, time.UTC),
			End:        time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	if err := Export(&buf, orig); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	got, err := Import(&buf, "study")
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	if got[0].Title != "Flight" {
		t.Errorf("expected title Flight, got %q", got[0].Title)
	}
	if !got[0].Start.Equal(orig[0].Start) || !got[0].End.Equal(orig[0].End) {
		t.Errorf("times drifted: %v-%v", got[0].Start, got[0].End)
	}
}
