package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/focustime/internal/dateutil"
	"github.com/javiermolinar/focustime/internal/event"
)

func (a *App) listCmd() *cobra.Command {
	var (
		startDate string
		endDate   string
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events in a date range",
		Long: `List events scheduled within a date range.

If no dates are specified, lists today's events.
If only --start is specified, lists events for that single day.
Hidden calendars are excluded unless --all is given.`,
		Example: `  focustime list
  focustime list --start=2025-01-15
  focustime list --start=2025-01-15 --end=2025-01-20`,
		RunE: func(_ *cobra.Command, _ []string) error {
			dateRange, err := dateutil.NewDateRange(startDate, endDate)
			if err != nil {
				return err
			}

			if err := a.ensureRepo(); err != nil {
				return err
			}
			ctx := context.Background()

			events, err := a.repo.ListEventsByRange(ctx, dateRange.Start, dateRange.End)
			if err != nil {
				return fmt.Errorf("listing events: %w", err)
			}
			if !all {
				calendars, err := a.repo.ListCalendars(ctx)
				if err != nil {
					return fmt.Errorf("listing calendars: %w", err)
				}
				events = event.FilterVisible(events, calendars)
			}

			if len(events) == 0 {
				fmt.Println("No events found in the specified date range.")
				return nil
			}

			width := termWidth()
			var currentDate string
			for _, e := range events {
				date := e.Start.Format("2006-01-02")
				if date != currentDate {
					if currentDate != "" {
						fmt.Println()
					}
					colorHeader.Printf("=== %s ===\n", date)
					currentDate = date
				}

				span := fmt.Sprintf("%s-%s", e.Start.Format("15:04"), e.End.Format("15:04"))
				if e.AllDay {
					span = "all day    "
				}
				line := fmt.Sprintf("  %s [%s] %s",
					colorTime.Sprint(span),
					colorMuted.Sprint(e.CalendarID),
					e.Title,
				)
				fmt.Println(truncate(line, width))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&endDate, "end", "", "End date (YYYY-MM-DD, defaults to start date)")
	cmd.Flags().BoolVar(&all, "all", false, "Include events from hidden calendars")

	return cmd
}
