package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mesh-intelligence/todos/internal/view"
	"github.com/mesh-intelligence/todos/pkg/types"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.entry.Width = max(0, msg.Width-view.TitleStart)
		m.editor.Width = max(0, msg.Width-view.TitleStart)
		m.help.Width = msg.Width
		m.scroll()
		return m, nil

	case tea.BlurMsg:
		if m.focus == focusEdit {
			m.commitEdit()
		}
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m.quit()
		}
		switch m.focus {
		case focusList:
			return m.updateList(msg)
		case focusEdit:
			return m.updateEdit(msg)
		default:
			return m.updateEntry(msg)
		}
	}

	var cmd tea.Cmd
	if m.focus == focusEdit {
		m.editor, cmd = m.editor.Update(msg)
	} else {
		m.entry, cmd = m.entry.Update(msg)
	}
	return m, cmd
}

func (m Model) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		_, err := m.app.Create(m.entry.Value())
		if errors.Is(err, types.ErrInvalidTitle) {
			return m, nil
		}
		m.entry.Reset()
		m.settle(err)
		return m, nil
	case key.Matches(msg, m.keys.FocusList):
		m.focusList()
		return m, nil
	case msg.Type == tea.KeyUp:
		m.move(-1)
		return m, nil
	case msg.Type == tea.KeyDown:
		m.move(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.entry, cmd = m.entry.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Up):
		m.move(-1)
	case key.Matches(msg, k.Down):
		m.move(1)
	case key.Matches(msg, k.Toggle):
		if t, ok := m.Selected(); ok {
			m.settle(m.app.Toggle(t.ID))
		}
	case key.Matches(msg, k.Edit):
		if t, ok := m.Selected(); ok {
			m.beginEdit(t.ID)
		}
	case key.Matches(msg, k.Destroy):
		if t, ok := m.Selected(); ok {
			m.settle(m.app.Destroy(t.ID))
		}
	case key.Matches(msg, k.ToggleAll):
		m.toggleAll()
	case key.Matches(msg, k.ClearCompleted):
		m.settle(m.app.ClearCompleted())
	case key.Matches(msg, k.RouteAll):
		m.navigate(types.FilterAll.Route())
	case key.Matches(msg, k.RouteActive):
		m.navigate(types.FilterActive.Route())
	case key.Matches(msg, k.RouteCompleted):
		m.navigate(types.FilterCompleted.Route())
	case key.Matches(msg, k.PrevRoute):
		m.navigate(m.cycleRoute(-1))
	case key.Matches(msg, k.NextRoute):
		m.navigate(m.cycleRoute(1))
	case key.Matches(msg, k.FocusEntry):
		m.focusEntry()
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.scroll()
	case key.Matches(msg, k.Quit):
		return m.quit()
	}
	return m, nil
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Commit), key.Matches(msg, m.keys.Blur):
		m.commitEdit()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.app.AbortEdit(m.editingID)
		m.commitEdit()
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	visible := m.app.Visible()
	idx, onRow := m.rowAt(msg.Y, len(visible))

	if m.focus == focusEdit {
		if !onRow || visible[idx].ID != m.editingID {
			m.commitEdit()
		}
		return m, nil
	}

	switch {
	case msg.Y == view.ListTop-1 && msg.X <= view.ToggleAllEnd:
		if m.app.Len() > 0 {
			m.toggleAll()
		}
	case onRow && msg.X >= view.CheckStart && msg.X <= view.CheckEnd:
		m.cursor = idx
		m.settle(m.app.Toggle(visible[idx].ID))
	case onRow:
		m.cursor = idx
		id := visible[idx].ID
		now := m.now()
		if id == m.lastClickID && now.Sub(m.lastClickAt) <= DoubleClickInterval {
			m.lastClickID = ""
			m.beginEdit(id)
			return m, nil
		}
		m.lastClickID, m.lastClickAt = id, now
		m.focusList()
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.focus == focusEdit {
		m.commitEdit()
	}
	m.app.CancelEdits()
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) toggleAll() {
	m.settle(m.app.ToggleAll(m.app.ActiveCount() > 0))
}

func (m *Model) navigate(route string) {
	_, err := m.app.Navigate(route)
	m.settle(err)
}

func (m *Model) cycleRoute(delta int) string {
	n := len(types.Filters)
	i := 0
	for j, f := range types.Filters {
		if f == m.app.Filter() {
			i = j
			break
		}
	}
	return types.Filters[((i+delta)%n+n)%n].Route()
}

func (m *Model) beginEdit(id string) {
	title, err := m.app.BeginEdit(id)
	if err != nil {
		m.report(err)
		return
	}
	for i, t := range m.app.Visible() {
		if t.ID == id {
			m.cursor = i
			break
		}
	}
	m.editingID = id
	m.editor.SetValue(title)
	m.editor.CursorEnd()
	m.entry.Blur()
	m.editor.Focus()
	m.focus = focusEdit
	m.scroll()
}

func (m *Model) commitEdit() {
	id, text := m.editingID, m.editor.Value()
	m.editingID = ""
	m.editor.Blur()
	m.editor.Reset()
	m.settle(m.app.CommitEdit(id, text))
}

// settle ends a render cycle: focus returns to the entry field and the
// cursor stays inside the visible list.
func (m *Model) settle(err error) {
	m.report(err)
	m.focusEntry()
	m.clamp()
}

// report puts persistence failures on the status line. Missing items and
// empty titles are not failures.
func (m *Model) report(err error) {
	switch {
	case err == nil:
		m.status = ""
	case errors.Is(err, types.ErrNotFound), errors.Is(err, types.ErrInvalidTitle):
	default:
		m.log.Error("todo operation failed", "err", err)
		m.status = err.Error()
	}
}

func (m *Model) focusEntry() {
	m.focus = focusEntry
	m.editor.Blur()
	m.entry.Focus()
}

func (m *Model) focusList() {
	m.focus = focusList
	m.entry.Blur()
	m.clamp()
}

func (m *Model) move(delta int) {
	m.cursor += delta
	m.clamp()
}

func (m *Model) clamp() {
	n := len(m.app.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.scroll()
}

// listHeight is the number of rows that fit on screen; zero means the
// height is unknown and every row is shown.
func (m *Model) listHeight() int {
	if m.height <= 0 {
		return 0
	}
	h := m.height - view.ListTop - 4
	if m.status != "" {
		h -= 2
	}
	if m.help.ShowAll {
		h -= 4
	}
	return max(h, 1)
}

func (m *Model) scroll() {
	n := len(m.app.Visible())
	h := m.listHeight()
	if h == 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	m.offset = max(0, min(m.offset, n-h))
}

// rowAt maps a screen line to an index in the visible list.
func (m *Model) rowAt(y, n int) (int, bool) {
	line := y - view.ListTop
	if line < 0 {
		return -1, false
	}
	if h := m.listHeight(); h > 0 && line >= h {
		return -1, false
	}
	i := m.offset + line
	if i >= n {
		return -1, false
	}
	return i, true
}
