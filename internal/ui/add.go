package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/focustime/internal/dateutil"
	"github.com/javiermolinar/focustime/internal/event"
)

func (a *App) addCmd() *cobra.Command {
	var (
		start       string
		end         string
		calendarID  string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new event",
		Long: `Add a new event to a calendar.

Example:
  focustime add "Team sync" --start="2025-01-10 09:00" --end="2025-01-10 10:00" --calendar=work`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			startAt, err := dateutil.ParseDateTime(start)
			if err != nil {
				return err
			}
			endAt, err := dateutil.ParseDateTime(end)
			if err != nil {
				return err
			}

			e, err := event.New(args[0], calendarID, startAt, endAt)
			if err != nil {
				return err
			}
			e.Description = description

			if err := a.ensureRepo(); err != nil {
				return err
			}
			if err := a.repo.CreateEvent(context.Background(), e); err != nil {
				return fmt.Errorf("creating event: %w", err)
			}

			fmt.Printf("Created event %s: %s [%s] %s %s-%s\n",
				e.ID,
				e.Title,
				e.CalendarID,
				e.Start.Format("2006-01-02"),
				e.Start.Format("15:04"),
				e.End.Format("15:04"),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start (YYYY-MM-DD HH:MM, required)")
	cmd.Flags().StringVar(&end, "end", "", "End (YYYY-MM-DD HH:MM, required)")
	cmd.Flags().StringVar(&calendarID, "calendar", "tasks", "Calendar id")
	cmd.Flags().StringVar(&description, "description", "", "Event description")

	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}
