// Package app is the controller state object: it owns the todo collection,
// the current filter mode, and in-progress edits, and persists the full
// collection after every mutation.
//
// Operations on an identifier that is not in the collection leave it
// unchanged, write nothing, and return types.ErrNotFound. Interactive
// callers discard that error; the command line reports it.
package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mesh-intelligence/todos/internal/todo"
	"github.com/mesh-intelligence/todos/pkg/types"
)

// Store loads and saves the whole collection.
type Store interface {
	Load() []types.Todo
	Save(todos []types.Todo) error
}

// IDSource produces identifiers for new items.
type IDSource interface {
	NewID() string
}

// App holds one independent todo session.
type App struct {
	list   *todo.List
	filter types.Filter
	store  Store
	ids    IDSource
	log    *slog.Logger

	// edits tracks items currently in editing mode. A true value means the
	// edit was aborted and the next commit must keep the old title.
	edits map[string]bool
}

// New loads the collection from store and returns an App showing every item.
// A nil logger discards log output.
func New(store Store, ids IDSource, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	a := &App{
		list:   todo.New(store.Load()),
		filter: types.FilterAll,
		store:  store,
		ids:    ids,
		log:    logger,
		edits:  make(map[string]bool),
	}
	a.log.Debug("loaded todos", "count", a.list.Len())
	return a
}

// Filter returns the current filter mode.
func (a *App) Filter() types.Filter { return a.filter }

// Todos returns every item in display order.
func (a *App) Todos() []types.Todo { return a.list.Items() }

// Visible returns the items selected by the current filter.
func (a *App) Visible() []types.Todo { return a.list.Filtered(a.filter) }

// Len returns the total number of items regardless of filter.
func (a *App) Len() int { return a.list.Len() }

// ActiveCount returns the number of items not yet completed.
func (a *App) ActiveCount() int { return a.list.ActiveCount() }

// CompletedCount returns the number of completed items.
func (a *App) CompletedCount() int { return a.list.CompletedCount() }

// Get returns the item with the given ID.
func (a *App) Get(id string) (types.Todo, bool) { return a.list.Get(id) }

// Create appends a new item with the trimmed text. Empty text creates nothing
// and returns types.ErrInvalidTitle.
func (a *App) Create(text string) (types.Todo, error) {
	t, ok := a.list.Create(a.ids.NewID(), text)
	if !ok {
		a.log.Debug("ignored empty create")
		return types.Todo{}, types.ErrInvalidTitle
	}
	a.log.Info("created todo", "id", t.ID)
	return t, a.render()
}

// Toggle flips the completed flag of the item with the given ID.
func (a *App) Toggle(id string) error {
	if !a.list.Toggle(id) {
		return a.missing("toggle", id)
	}
	return a.render()
}

// Edit sets the title of the item to the trimmed text; empty text deletes it.
func (a *App) Edit(id, text string) error {
	if !a.list.Edit(id, text) {
		return a.missing("edit", id)
	}
	a.pruneEdits()
	return a.render()
}

// Destroy removes the item with the given ID.
func (a *App) Destroy(id string) error {
	delete(a.edits, id)
	if !a.list.Destroy(id) {
		return a.missing("destroy", id)
	}
	a.log.Info("destroyed todo", "id", id)
	return a.render()
}

// ToggleAll marks every item completed (flag true) or active (flag false).
func (a *App) ToggleAll(flag bool) error {
	a.list.ToggleAll(flag)
	return a.render()
}

// ClearCompleted removes every completed item.
func (a *App) ClearCompleted() error {
	n := a.list.ClearCompleted()
	a.pruneEdits()
	a.log.Info("cleared completed", "removed", n)
	return a.render()
}

// Navigate selects the filter named by route ("/all", "/active",
// "/completed"). Unrecognized routes select every item. The collection is not
// changed, but the render cycle still writes it.
func (a *App) Navigate(route string) (types.Filter, error) {
	f, ok := types.ParseRoute(route)
	if !ok {
		a.log.Debug("unknown route", "route", route)
	}
	a.filter = f
	return f, a.render()
}

// render ends every cycle with a full write of the collection.
func (a *App) render() error {
	if err := a.store.Save(a.list.Items()); err != nil {
		return fmt.Errorf("persist todos: %w", err)
	}
	return nil
}

func (a *App) missing(op, id string) error {
	a.log.Debug("ignored missing todo", "op", op, "id", id)
	return fmt.Errorf("%s %s: %w", op, id, types.ErrNotFound)
}
