// Package ui provides the command-line interface for focustime.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/focustime/internal/config"
	"github.com/javiermolinar/focustime/internal/db"
	"github.com/javiermolinar/focustime/internal/event"
	"github.com/javiermolinar/focustime/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   event.Repository
	config *config.Config
	root   *cobra.Command
}

// NewApp creates a new CLI application with the given repository and config.
func NewApp(repo event.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "focustime",
		Short: "A personal calendar in your terminal",
		Long: `Focustime is a personal calendar for the terminal.

It renders month, week and day views, supports drag interactions with
the mouse, and keeps events in a local SQLite database.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			return tui.Run(a.repo, a.config)
		},
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.deleteCmd())
	a.root.AddCommand(a.calendarsCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.importCmd())

	return a
}

// ensureRepo lazily opens the database, so commands that never touch
// storage (version, config) don't create it.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	repo, err := db.New(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.repo = repo
	return nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("focustime %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the repository if one was opened.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}
