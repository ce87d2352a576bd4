// Package todo holds the ordered in-memory collection of task items and the
// views derived from it. Insertion order is display order.
package todo

import (
	"strings"

	"github.com/mesh-intelligence/todos/pkg/types"
)

// List is an ordered collection of todos. The zero value is an empty list.
// List is not safe for concurrent use.
type List struct {
	items []types.Todo
}

// New returns a List holding a copy of items.
func New(items []types.Todo) *List {
	l := &List{items: make([]types.Todo, len(items))}
	copy(l.items, items)
	return l
}

// Items returns a copy of every item in order. The result is never nil.
func (l *List) Items() []types.Todo {
	out := make([]types.Todo, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}

// Get returns the item with the given ID.
func (l *List) Get(id string) (types.Todo, bool) {
	i := l.index(id)
	if i < 0 {
		return types.Todo{}, false
	}
	return l.items[i], true
}

// Create appends a new active item titled with the trimmed text. It does
// nothing and returns false when the trimmed text is empty.
func (l *List) Create(id, text string) (types.Todo, bool) {
	title := strings.TrimSpace(text)
	if title == "" {
		return types.Todo{}, false
	}
	t := types.Todo{ID: id, Title: title}
	l.items = append(l.items, t)
	return t, true
}

// Toggle flips the completed flag of the item with the given ID.
func (l *List) Toggle(id string) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.items[i].Completed = !l.items[i].Completed
	return true
}

// Edit sets the title of the item with the given ID to the trimmed text.
// Empty text removes the item instead.
func (l *List) Edit(id, text string) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	title := strings.TrimSpace(text)
	if title == "" {
		l.removeAt(i)
		return true
	}
	l.items[i].Title = title
	return true
}

// Destroy removes the item with the given ID.
func (l *List) Destroy(id string) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.removeAt(i)
	return true
}

// ToggleAll sets the completed flag of every item to flag.
func (l *List) ToggleAll(flag bool) {
	for i := range l.items {
		l.items[i].Completed = flag
	}
}

// ClearCompleted removes every completed item and returns how many were
// removed. Remaining items keep their relative order.
func (l *List) ClearCompleted() int {
	kept := l.items[:0]
	for _, t := range l.items {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	removed := len(l.items) - len(kept)
	clear(l.items[len(kept):])
	l.items = kept
	return removed
}

// ActiveCount returns the number of items not yet completed.
func (l *List) ActiveCount() int {
	n := 0
	for _, t := range l.items {
		if !t.Completed {
			n++
		}
	}
	return n
}

// CompletedCount returns the number of completed items.
func (l *List) CompletedCount() int {
	return len(l.items) - l.ActiveCount()
}

// Filtered returns, in original order, the items selected by f.
// The result is never nil.
func (l *List) Filtered(f types.Filter) []types.Todo {
	out := make([]types.Todo, 0, len(l.items))
	for _, t := range l.items {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

func (l *List) index(id string) int {
	for i := range l.items {
		if l.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (l *List) removeAt(i int) {
	l.items = append(l.items[:i], l.items[i+1:]...)
}
