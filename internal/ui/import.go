package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/focustime/internal/event"
	"github.com/javiermolinar/focustime/internal/ics"
)

func (a *App) importCmd() *cobra.Command {
	var calendarID string

	cmd := &cobra.Command{
		Use:   "import [file.ics]",
		Short: "Import events from an iCalendar file",
		Long: `Import events from an iCalendar (.ics) file into a calendar.

Entries without a summary are skipped. Imported events get fresh ids,
so importing the same file twice creates duplicates rather than
overwriting.`,
		Example: `  focustime import holidays.ics --calendar=reminders`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			ctx := context.Background()

			if err := a.checkCalendar(ctx, calendarID); err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening import file: %w", err)
			}
			defer func() { _ = f.Close() }()

			events, err := ics.Import(f, calendarID)
			if err != nil {
				return err
			}

			imported := 0
			for _, e := range events {
				if err := a.repo.CreateEvent(ctx, e); err != nil {
					return fmt.Errorf("importing event %q: %w", e.Title, err)
				}
				imported++
			}

			fmt.Printf("Imported %d events into %s\n", imported, calendarID)
			return nil
		},
	}

	cmd.Flags().StringVar(&calendarID, "calendar", "tasks", "Calendar to import into")

	return cmd
}

func (a *App) checkCalendar(ctx context.Context, id string) error {
	calendars, err := a.repo.ListCalendars(ctx)
	if err != nil {
		return fmt.Errorf("listing calendars: %w", err)
	}
	for _, c := range calendars {
		if c.ID == id {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", event.ErrCalendarNotFound, id)
}
