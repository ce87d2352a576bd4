package app

// An item moves normal -> editing on BeginEdit, and leaves editing on
// CommitEdit: back to normal with the new title, deleted when the text is
// empty, or back to normal with the old title when AbortEdit came first.

// BeginEdit puts the item into editing mode and returns its current title to
// pre-populate the edit field.
func (a *App) BeginEdit(id string) (string, error) {
	t, ok := a.list.Get(id)
	if !ok {
		return "", a.missing("begin edit", id)
	}
	a.edits[id] = false
	return t.Title, nil
}

// Editing reports whether the item is in editing mode.
func (a *App) Editing(id string) bool {
	_, ok := a.edits[id]
	return ok
}

// AbortEdit marks the edit in progress as cancelled. The following
// CommitEdit keeps the title unchanged.
func (a *App) AbortEdit(id string) {
	if _, ok := a.edits[id]; ok {
		a.edits[id] = true
	}
}

// CommitEdit ends editing mode when the edit field loses focus. An aborted
// edit keeps the old title; otherwise the Edit rules apply, so empty text
// deletes the item. Committing an item that is not being edited applies
// the Edit rules directly.
func (a *App) CommitEdit(id, text string) error {
	aborted := a.edits[id]
	delete(a.edits, id)

	if aborted {
		if _, ok := a.list.Get(id); !ok {
			return a.missing("commit edit", id)
		}
		a.log.Debug("aborted edit", "id", id)
		return a.render()
	}
	return a.Edit(id, text)
}

// pruneEdits drops the sessions of items no longer in the collection.
func (a *App) pruneEdits() {
	for id := range a.edits {
		if _, ok := a.list.Get(id); !ok {
			delete(a.edits, id)
		}
	}
}

// CancelEdits drops every edit session without changing titles.
func (a *App) CancelEdits() {
	clear(a.edits)
}
