package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/focustime/internal/dateutil"
	"github.com/javiermolinar/focustime/internal/event"
	"github.com/javiermolinar/focustime/internal/ics"
)

func (a *App) exportCmd() *cobra.Command {
	var (
		output    string
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export events as iCalendar",
		Long: `Export events to an iCalendar (.ics) file.

Without a date range, every stored event is exported. With --output
omitted the calendar is written to stdout.`,
		Example: `  focustime export --output=backup.ics
  focustime export --start=2025-01-01 --end=2025-03-31 --output=q1.ics`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			ctx := context.Background()

			events, err := a.listExportEvents(ctx, startDate, endDate)
			if err != nil {
				return err
			}

			w := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			if err := ics.Export(w, events); err != nil {
				return err
			}
			if output != "" {
				fmt.Printf("Exported %d events to %s\n", len(events), output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Output file (defaults to stdout)")
	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "End date (YYYY-MM-DD)")

	return cmd
}

func (a *App) listExportEvents(ctx context.Context, startDate, endDate string) ([]*event.Event, error) {
	if startDate == "" && endDate == "" {
		events, err := a.repo.ListEvents(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing events: %w", err)
		}
		return events, nil
	}

	dateRange, err := dateutil.NewDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	events, err := a.repo.ListEventsByRange(ctx, dateRange.Start, dateRange.End)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	return events, nil
}
