package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) calendarsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendars",
		Short: "List calendars",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			calendars, err := a.repo.ListCalendars(context.Background())
			if err != nil {
				return fmt.Errorf("listing calendars: %w", err)
			}

			for _, c := range calendars {
				state := colorOK.Sprint("visible")
				if !c.Visible {
					state = colorHidden.Sprint("hidden")
				}
				fmt.Printf("  %-10s %-10s %s  %s\n", c.ID, c.Name, c.Color, state)
			}
			return nil
		},
	}

	cmd.AddCommand(a.calendarToggleCmd("show", true))
	cmd.AddCommand(a.calendarToggleCmd("hide", false))
	return cmd
}

func (a *App) calendarToggleCmd(use string, visible bool) *cobra.Command {
	short := "Show a calendar's events"
	state := "visible"
	if !visible {
		short = "Hide a calendar's events"
		state = "hidden"
	}
	return &cobra.Command{
		Use:   use + " [calendar-id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			if err := a.repo.SetCalendarVisibility(context.Background(), args[0], visible); err != nil {
				return err
			}
			fmt.Printf("Calendar %s is now %s\n", args[0], state)
			return nil
		},
	}
}
