package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/focustime/internal/config"
	"github.com/javiermolinar/focustime/internal/dateutil"
	"github.com/javiermolinar/focustime/internal/event"
	"github.com/javiermolinar/focustime/internal/gesture"
	"github.com/javiermolinar/focustime/internal/tui/commands"
	"github.com/javiermolinar/focustime/internal/tui/theme"
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   event.Repository
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	view    event.View
	focus   time.Time // anchor date for the visible period
	loading bool

	// Loaded data
	events    []*event.Event
	calendars []*event.Calendar

	// Keyboard selection within the visible events
	selected int

	// Rename state
	renaming   bool
	renameID   string
	titleInput textinput.Model

	// Pointer gesture state
	gesture  gesture.Session
	pressX   int
	pressY   int
	pressDay time.Time // month-view press cell, for click vs drag-move

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string
	statusTime time.Time

	// Error state
	err error

	nowFunc func() time.Time
}

// New creates a new TUI model.
func New(repo event.Repository, cfg *config.Config) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}

	view, verr := event.ParseView(cfg.UI.DefaultView)
	if verr != nil {
		view = event.ViewMonth
	}

	ti := textinput.New()
	ti.Placeholder = "Event title"
	ti.CharLimit = 256
	ti.Width = 40

	return &Model{
		repo:       repo,
		config:     cfg,
		theme:      t,
		styles:     NewStyles(t),
		view:       view,
		focus:      dateutil.TruncateToDay(time.Now()),
		loading:    true,
		selected:   -1,
		titleInput: ti,
		nowFunc:    time.Now,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	start, end := m.visibleRange()
	return commands.LoadRange(m.repo, start, end)
}

// layout returns the hit-test layout for the current state.
func (m Model) layout() Layout {
	return Layout{
		Width:  m.width,
		Height: m.height,
		View:   m.view,
		Days:   m.visibleDays(),
	}
}

// visibleDays returns the grid days of the current view.
func (m Model) visibleDays() []time.Time {
	switch m.view {
	case event.ViewWeek:
		return dateutil.WeekDays(m.focus)
	case event.ViewDay:
		return []time.Time{dateutil.TruncateToDay(m.focus)}
	default:
		return dateutil.MonthGrid(m.focus)
	}
}

// visibleRange returns the inclusive day range the view needs loaded.
func (m Model) visibleRange() (time.Time, time.Time) {
	days := m.visibleDays()
	return days[0], days[len(days)-1]
}

// visibleEvents filters the loaded events down to visible calendars.
func (m Model) visibleEvents() []*event.Event {
	return event.FilterVisible(m.events, m.calendars)
}

// calendarByID resolves a loaded calendar, falling back to a zero value.
func (m Model) calendarByID(id string) event.Calendar {
	for _, c := range m.calendars {
		if c.ID == id {
			return *c
		}
	}
	return event.Calendar{}
}

// eventByID resolves a loaded event by id.
func (m Model) eventByID(id string) (*event.Event, bool) {
	for _, e := range m.events {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// reload reloads the visible range.
func (m Model) reload() tea.Cmd {
	start, end := m.visibleRange()
	return commands.LoadRange(m.repo, start, end)
}

// Run starts the TUI.
func Run(repo event.Repository, cfg *config.Config) error {
	p := tea.NewProgram(New(repo, cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
