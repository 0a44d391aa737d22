package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [event-id]",
		Short: "Delete an event",
		Long: `Delete an event by its ID.

Example:
  focustime delete 3f1a0c2e-...`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			e, err := a.repo.GetEvent(ctx, args[0])
			if err != nil {
				return fmt.Errorf("looking up event: %w", err)
			}
			if e == nil {
				return fmt.Errorf("no event with id %s", args[0])
			}

			if err := a.repo.DeleteEvent(ctx, e.ID); err != nil {
				return fmt.Errorf("deleting event: %w", err)
			}

			fmt.Printf("Deleted event %s: %s\n", e.ID, e.Title)
			return nil
		},
	}
}
