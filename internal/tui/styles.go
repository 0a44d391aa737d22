// Package tui provides the terminal user interface for focustime.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/focustime/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorToday       lipgloss.Color
	colorPreview     lipgloss.Color
	colorWarning     lipgloss.Color

	TitleStyle lipgloss.Style

	DayHeaderStyle      lipgloss.Style
	DayHeaderTodayStyle lipgloss.Style

	TimeColumnStyle lipgloss.Style

	DayNumberStyle      lipgloss.Style
	DayNumberMutedStyle lipgloss.Style
	DayNumberTodayStyle lipgloss.Style

	EventStyle         lipgloss.Style
	EventSelectedStyle lipgloss.Style
	OverflowStyle      lipgloss.Style
	PreviewStyle       lipgloss.Style

	EmptyCellStyle lipgloss.Style

	StatusStyle  lipgloss.Style
	ErrorStyle   lipgloss.Style
	FooterStyle  lipgloss.Style
	GestureStyle lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{
		colorBg:          theme.Color(t.Bg),
		colorBgHighlight: theme.Color(t.BgHighlight),
		colorBgSelection: theme.Color(t.BgSelection),
		colorFg:          theme.Color(t.Fg),
		colorFgMuted:     theme.Color(t.FgMuted),
		colorAccent:      theme.Color(t.Accent),
		colorToday:       theme.Color(t.Today),
		colorPreview:     theme.Color(t.Preview),
		colorWarning:     theme.Color(t.Warning),
	}

	s.TitleStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)

	s.DayHeaderStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Align(lipgloss.Center)
	s.DayHeaderTodayStyle = s.DayHeaderStyle.
		Foreground(s.colorToday).
		Bold(true)

	s.TimeColumnStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.DayNumberStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)
	s.DayNumberMutedStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)
	s.DayNumberTodayStyle = lipgloss.NewStyle().
		Foreground(s.colorToday).
		Bold(true)

	s.EventStyle = lipgloss.NewStyle().
		Background(s.colorBgHighlight).
		Foreground(s.colorFg)
	s.EventSelectedStyle = lipgloss.NewStyle().
		Background(s.colorBgSelection).
		Foreground(s.colorFg).
		Bold(true)
	s.OverflowStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Italic(true)
	s.PreviewStyle = lipgloss.NewStyle().
		Background(s.colorPreview).
		Foreground(s.colorBg)

	s.EmptyCellStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)
	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Bold(true)
	s.FooterStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)
	s.GestureStyle = lipgloss.NewStyle().
		Foreground(s.colorPreview).
		Bold(true)

	return s
}

// EventColorStyle returns the base event style tinted with an event's
// effective hex color.
func (s *Styles) EventColorStyle(hex string) lipgloss.Style {
	if hex == "" {
		return s.EventStyle
	}
	return s.EventStyle.Foreground(theme.Color(hex))
}
