// Package theme provides color themes for the TUI.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string
	Bg          string // Base background
	BgHighlight string // Event blocks, subtle highlight
	BgSelection string // Cursor, selection
	Fg          string // Primary foreground
	FgMuted     string // Adjacent-month days, muted elements
	Accent      string // Title, today marker, borders
	Today       string // Today's cell highlight
	Preview     string // Drag-create preview block
	Warning     string // Warnings, destructive prompts
}

var themes = map[string]*Theme{
	"mocha": {
		Name:        "mocha",
		Bg:          "#1e1e2e",
		BgHighlight: "#313244",
		BgSelection: "#45475a",
		Fg:          "#cdd6f4",
		FgMuted:     "#6c7086",
		Accent:      "#89b4fa",
		Today:       "#f5c2e7",
		Preview:     "#94e2d5",
		Warning:     "#f38ba8",
	},
	"latte": {
		Name:        "latte",
		Bg:          "#eff1f5",
		BgHighlight: "#ccd0da",
		BgSelection: "#bcc0cc",
		Fg:          "#4c4f69",
		FgMuted:     "#9ca0b0",
		Accent:      "#1e66f5",
		Today:       "#ea76cb",
		Preview:     "#179299",
		Warning:     "#d20f39",
	},
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load resolves a theme by name. "auto" picks mocha or latte from the
// terminal background; unknown names are an error.
func Load(name string) (*Theme, error) {
	name = strings.ToLower(name)
	if name == "" || name == "auto" {
		name = detectName()
	}

	t, ok := themes[name]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q", name)
	}
	return t, nil
}

// detectName picks a theme matching the terminal background.
func detectName() string {
	if termenv.HasDarkBackground() {
		return "mocha"
	}
	return "latte"
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"auto", "mocha", "latte"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
