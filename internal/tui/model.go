// Package tui is the terminal front end: a Bubble Tea model that turns key,
// mouse and focus events into controller operations.
package tui

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mesh-intelligence/todos/internal/app"
	"github.com/mesh-intelligence/todos/internal/view"
	"github.com/mesh-intelligence/todos/pkg/types"
)

// DoubleClickInterval is the longest gap between two presses on the same row
// that still counts as a double click.
const DoubleClickInterval = 500 * time.Millisecond

type focus int

const (
	focusEntry focus = iota
	focusList
	focusEdit
)

// Options configures a Model.
type Options struct {
	// Route is the initial navigation route; empty means "/all".
	Route  string
	Styles *view.Styles
	// Keys replaces DefaultKeyMap.
	Keys   *KeyMap
	Logger *slog.Logger
	// Now replaces time.Now for double-click detection.
	Now func() time.Time
}

// Model is the Bubble Tea model. The controller it wraps is shared by copies
// of the model, so the model itself only carries presentation state.
type Model struct {
	app      *app.App
	keys     KeyMap
	renderer *view.Renderer
	log      *slog.Logger
	now      func() time.Time

	entry  textinput.Model
	editor textinput.Model
	help   help.Model

	focus     focus
	cursor    int
	offset    int
	editingID string

	lastClickID string
	lastClickAt time.Time

	width, height int
	status        string
	quitting      bool
}

// NewModel builds a model over a and applies the initial route.
func NewModel(a *app.App, opts Options) Model {
	styles := view.DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	entry := textinput.New()
	entry.Placeholder = "What needs to be done?"
	entry.Prompt = "❯ "
	entry.Focus()

	editor := textinput.New()
	editor.Prompt = ""

	m := Model{
		app:      a,
		keys:     keys,
		renderer: view.MustNew(styles),
		log:      logger,
		now:      now,
		entry:    entry,
		editor:   editor,
		help:     help.New(),
	}

	route := opts.Route
	if route == "" {
		route = types.FilterAll.Route()
	}
	if _, err := a.Navigate(route); err != nil {
		m.report(err)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Filter returns the active filter mode.
func (m Model) Filter() types.Filter { return m.app.Filter() }

// Selected returns the item under the cursor, if any.
func (m Model) Selected() (types.Todo, bool) {
	visible := m.app.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return types.Todo{}, false
	}
	return visible[m.cursor], true
}

// EditingID returns the ID of the item being edited, or "".
func (m Model) EditingID() string { return m.editingID }

// Status returns the last reported error message.
func (m Model) Status() string { return m.status }
