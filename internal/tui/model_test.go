package tui

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/todos/internal/app"
	"github.com/mesh-intelligence/todos/internal/ids"
	"github.com/mesh-intelligence/todos/internal/store"
	"github.com/mesh-intelligence/todos/internal/view"
	"github.com/mesh-intelligence/todos/pkg/types"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestModel(t *testing.T, initial ...types.Todo) (Model, *store.Store, *fakeClock) {
	t.Helper()
	backend := store.NewMemoryBackend()
	require.NoError(t, backend.Attach(types.Config{}))
	st := store.New(backend, types.DefaultNamespace, nil)
	if len(initial) > 0 {
		require.NoError(t, st.Save(initial))
	}
	a := app.New(st, ids.NewWithSource(rand.NewPCG(1, 2)), nil)
	clock := &fakeClock{t: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	styles := view.PlainStyles()
	return NewModel(a, Options{Styles: &styles, Now: clock.now}), st, clock
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		mm, _ := m.Update(msg)
		var ok bool
		m, ok = mm.(Model)
		require.True(t, ok)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func keyOf(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = send(t, m, runes(string(r)))
	}
	return m
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func seeded() []types.Todo {
	return []types.Todo{
		{ID: "a", Title: "Buy milk"},
		{ID: "b", Title: "Walk dog", Completed: true},
		{ID: "c", Title: "Read book"},
	}
}

func TestEntry_CreatesOnEnter(t *testing.T) {
	m, st, _ := newTestModel(t)

	m = typeText(t, m, "  Buy milk ")
	m = send(t, m, keyOf(tea.KeyEnter))

	saved := st.Load()
	require.Len(t, saved, 1)
	assert.Equal(t, "Buy milk", saved[0].Title)
	assert.False(t, saved[0].Completed)
	assert.Empty(t, m.entry.Value(), "entry is cleared after a create")
	assert.Equal(t, focusEntry, m.focus)
}

func TestEntry_EmptyTextCreatesNothing(t *testing.T) {
	m, st, _ := newTestModel(t)

	m = typeText(t, m, "   ")
	m = send(t, m, keyOf(tea.KeyEnter))

	assert.Empty(t, st.Load())
	assert.Equal(t, 0, m.app.Len())
}

func TestEntry_ListKeysAreText(t *testing.T) {
	m, st, _ := newTestModel(t)

	m = typeText(t, m, "quad")
	m = send(t, m, keyOf(tea.KeyEnter))

	require.Len(t, st.Load(), 1)
	assert.Equal(t, "quad", st.Load()[0].Title)
	assert.False(t, m.quitting)
}

func TestEntry_ArrowsMoveSelection(t *testing.T) {
	m, _, _ := newTestModel(t, seeded()...)

	m = send(t, m, keyOf(tea.KeyDown), keyOf(tea.KeyDown))
	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "c", sel.ID)

	m = send(t, m, keyOf(tea.KeyDown))
	sel, _ = m.Selected()
	assert.Equal(t, "c", sel.ID, "selection stops at the last row")

	m = send(t, m, keyOf(tea.KeyUp))
	sel, _ = m.Selected()
	assert.Equal(t, "b", sel.ID)
}

func TestList_ToggleReturnsFocusToEntry(t *testing.T) {
	m, st, _ := newTestModel(t, seeded()...)

	m = send(t, m, keyOf(tea.KeyTab))
	assert.Equal(t, focusList, m.focus)

	m = send(t, m, runes("x"))
	assert.True(t, st.Load()[0].Completed)
	assert.Equal(t, focusEntry, m.focus)

	m = send(t, m, keyOf(tea.KeyTab), tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.False(t, st.Load()[0].Completed)
}

func TestList_DestroyToggleAllClear(t *testing.T) {
	m, st, _ := newTestModel(t, seeded()...)

	m = send(t, m, keyOf(tea.KeyTab), runes("a"))
	for _, td := range st.Load() {
		assert.True(t, td.Completed)
	}

	m = send(t, m, keyOf(tea.KeyTab), runes("a"))
	for _, td := range st.Load() {
		assert.False(t, td.Completed, "toggle all clears when nothing is active")
	}

	m = send(t, m, keyOf(tea.KeyTab), runes("d"))
	assert.Len(t, st.Load(), 2)

	m = send(t, m, keyOf(tea.KeyTab), runes("x"), keyOf(tea.KeyTab), runes("c"))
	saved := st.Load()
	require.Len(t, saved, 1)
	assert.Equal(t, "c", saved[0].ID)
	assert.Equal(t, 1, m.app.Len())
}

func TestList_Routes(t *testing.T) {
	m, _, _ := newTestModel(t, seeded()...)

	m = send(t, m, keyOf(tea.KeyTab), runes("2"))
	assert.Equal(t, types.FilterActive, m.Filter())
	assert.Len(t, m.app.Visible(), 2)
	assert.Equal(t, focusEntry, m.focus)

	m = send(t, m, keyOf(tea.KeyTab), runes("3"))
	assert.Equal(t, types.FilterCompleted, m.Filter())

	m = send(t, m, keyOf(tea.KeyTab), keyOf(tea.KeyRight))
	assert.Equal(t, types.FilterAll, m.Filter(), "right wraps around")

	m = send(t, m, keyOf(tea.KeyTab), keyOf(tea.KeyLeft))
	assert.Equal(t, types.FilterCompleted, m.Filter(), "left wraps around")

	m = send(t, m, keyOf(tea.KeyTab), runes("1"))
	assert.Equal(t, types.FilterAll, m.Filter())
}

func TestList_CursorStaysInsideFilteredList(t *testing.T) {
	m, _, _ := newTestModel(t, seeded()...)

	m = send(t, m, keyOf(tea.KeyDown), keyOf(tea.KeyDown))
	m = send(t, m, keyOf(tea.KeyTab), runes("3"))

	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "b", sel.ID)
}

func TestInitialRoute(t *testing.T) {
	backend := store.NewMemoryBackend()
	require.NoError(t, backend.Attach(types.Config{}))
	st := store.New(backend, types.DefaultNamespace, nil)
	require.NoError(t, st.Save(seeded()))

	m := NewModel(app.New(st, ids.New(), nil), Options{Route: "/completed"})
	assert.Equal(t, types.FilterCompleted, m.Filter())

	m = NewModel(app.New(st, ids.New(), nil), Options{Route: "/bogus"})
	assert.Equal(t, types.FilterAll, m.Filter())
}

func TestEdit_CommitOnEnter(t *testing.T) {
	m, st, _ := newTestModel(t, seeded()...)

	m = send(t, m, keyOf(tea.KeyTab), keyOf(tea.KeyEnter))
	require.Equal(t, focusEdit, m.focus)
	assert.Equal(t, "a", m.EditingID())
	assert.Equal(t, "Buy milk", m.editor.Value())
	assert.True(t, m.app.Editing("a"))

	m = typeText(t, m, " and eggs")
	m = send(t, m, keyOf(tea.KeyEnter))

	assert.Equal(t, "Buy milk and eggs", st.Load()[0].Title)
	assert.Equal(t, focusEntry, m.focus)
	assert.Empty(t, m.EditingID())
	assert.False(t, m.app.Editing("a"))
}

func TestEdit_EscapeKeepsTitle(t *testing.T) {
	m, st, _ := newTestModel(t, seeded()...)

	m = send(t, m, keyOf(tea.KeyTab), runes("e"))
	for range len("Buy milk") {
		m = send(t, m, keyOf(tea.KeyBackspace))
	}
	require.Empty(t, m.editor.Value())

	m = send(t, m, keyOf(tea.KeyEsc))

	assert.Equal(t, "Buy milk", st.Load()[0].Title, "abort wins over empty-deletes")
	assert.Len(t, st.Load(), 3)
	assert.Equal(t, focusEntry, m.focus)
}

func TestEdit_EmptyCommitDeletes(t *testing.T) {
	m, st, _ := newTestModel(t, seeded()...)

	m = send(t, m, keyOf(tea.KeyTab), runes("e"))
	for range len("Buy milk") {
		m = send(t, m, keyOf(tea.KeyBackspace))
	}
	m = send(t, m, keyOf(tea.KeyEnter))

	saved := st.Load()
	require.Len(t, saved, 2)
	assert.Equal(t, "b", saved[0].ID)
	assert.Equal(t, focusEntry, m.focus)
}

func TestEdit_BlurCommits(t *testing.T) {
	for name, blur := range map[string]tea.Msg{
		"tab":        keyOf(tea.KeyTab),
		"focus lost": tea.BlurMsg{},
		"click away": click(0, 0),
	} {
		t.Run(name, func(t *testing.T) {
			m, st, _ := newTestModel(t, seeded()...)

			m = send(t, m, keyOf(tea.KeyTab), runes("e"))
			m = typeText(t, m, "!")
			m = send(t, m, blur)

			assert.Equal(t, "Buy milk!", st.Load()[0].Title)
			assert.Equal(t, focusEntry, m.focus)
		})
	}
}

func TestEdit_ClickOnEditingRowKeepsEditing(t *testing.T) {
	m, _, _ := newTestModel(t, seeded()...)

	m = send(t, m, keyOf(tea.KeyTab), runes("e"))
	m = send(t, m, click(view.TitleStart+1, view.ListTop))

	assert.Equal(t, focusEdit, m.focus)
	assert.Equal(t, "a", m.EditingID())
}

func TestMouse_CheckBoxToggles(t *testing.T) {
	m, st, _ := newTestModel(t, seeded()...)

	m = send(t, m, click(view.CheckStart+1, view.ListTop+2))

	assert.True(t, st.Load()[2].Completed)
	assert.Equal(t, focusEntry, m.focus)
}

func TestMouse_RowsStayAlignedWithMultilineTitle(t *testing.T) {
	m, st, _ := newTestModel(t,
		types.Todo{ID: "a", Title: "first\nsecond line"},
		types.Todo{ID: "b", Title: "Walk dog"},
	)

	lines := strings.Split(m.View(), "\n")
	require.Greater(t, len(lines), view.ListTop+1)
	assert.Contains(t, lines[view.ListTop], "[ ] first second line")
	assert.Contains(t, lines[view.ListTop+1], "[ ] Walk dog")

	send(t, m, click(view.CheckStart+1, view.ListTop+1))

	got := st.Load()
	assert.False(t, got[0].Completed)
	assert.True(t, got[1].Completed)
	assert.Equal(t, "first\nsecond line", got[0].Title, "stored title is unchanged")
}

func TestMouse_ToggleAllMarker(t *testing.T) {
	m, st, _ := newTestModel(t, seeded()...)

	m = send(t, m, click(0, view.ListTop-1))
	for _, td := range st.Load() {
		assert.True(t, td.Completed)
	}
	assert.Equal(t, 0, m.app.ActiveCount())
}

func TestMouse_DoubleClickEdits(t *testing.T) {
	m, _, clock := newTestModel(t, seeded()...)
	row := click(view.TitleStart+2, view.ListTop+1)

	m = send(t, m, row)
	assert.Equal(t, focusList, m.focus)
	sel, _ := m.Selected()
	assert.Equal(t, "b", sel.ID)

	clock.advance(200 * time.Millisecond)
	m = send(t, m, row)

	assert.Equal(t, focusEdit, m.focus)
	assert.Equal(t, "b", m.EditingID())
	assert.Equal(t, "Walk dog", m.editor.Value())
}

func TestMouse_SlowClicksDoNotEdit(t *testing.T) {
	m, _, clock := newTestModel(t, seeded()...)
	row := click(view.TitleStart+2, view.ListTop)

	m = send(t, m, row)
	clock.advance(DoubleClickInterval + time.Millisecond)
	m = send(t, m, row)

	assert.NotEqual(t, focusEdit, m.focus)
	assert.Empty(t, m.EditingID())
}

func TestMouse_ClicksOnDifferentRowsDoNotEdit(t *testing.T) {
	m, _, _ := newTestModel(t, seeded()...)

	m = send(t, m, click(view.TitleStart, view.ListTop), click(view.TitleStart, view.ListTop+1))

	assert.Empty(t, m.EditingID())
}

func TestView_EmptyCollection(t *testing.T) {
	m, _, _ := newTestModel(t)

	out := m.View()
	assert.Contains(t, out, "todos")
	assert.NotContains(t, out, "left")
	assert.NotContains(t, out, "Clear completed")
}

func TestView_ShowsRowsAndFooter(t *testing.T) {
	m, _, _ := newTestModel(t, seeded()...)

	out := m.View()
	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), view.ListTop+2)
	assert.Contains(t, lines[view.ListTop], "[ ] Buy milk")
	assert.Contains(t, lines[view.ListTop+1], "[x] Walk dog")
	assert.Contains(t, out, "2 items left")
	assert.Contains(t, out, "Clear completed")
}

func TestView_EditingRowShowsEditor(t *testing.T) {
	m, _, _ := newTestModel(t, seeded()...)

	m = send(t, m, keyOf(tea.KeyTab), runes("e"))
	m = typeText(t, m, "XYZ")

	lines := strings.Split(m.View(), "\n")
	assert.Contains(t, lines[view.ListTop], "Buy milkXYZ")
}

func TestView_ScrollsToCursor(t *testing.T) {
	var many []types.Todo
	for i := range 20 {
		many = append(many, types.Todo{ID: string(rune('a' + i)), Title: "item " + string(rune('a'+i))})
	}
	m, _, _ := newTestModel(t, many...)
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 12})

	for range 19 {
		m = send(t, m, keyOf(tea.KeyDown))
	}

	out := m.View()
	assert.Contains(t, out, "item t")
	assert.NotContains(t, out, "item a\n")
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := m.Update(keyOf(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m = send(t, m, keyOf(tea.KeyTab))
	_, cmd = m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestQuitWhileEditingCommits(t *testing.T) {
	m, st, _ := newTestModel(t, seeded()...)

	m = send(t, m, keyOf(tea.KeyTab), runes("e"))
	m = typeText(t, m, "?")
	m = send(t, m, keyOf(tea.KeyCtrlC))

	assert.Equal(t, "Buy milk?", st.Load()[0].Title)
	assert.Empty(t, m.View())
}

func TestQuitEndsEditSessions(t *testing.T) {
	m, st, _ := newTestModel(t, seeded()...)
	_, err := m.app.BeginEdit("c")
	require.NoError(t, err)

	m = send(t, m, keyOf(tea.KeyTab), runes("e"))
	m = typeText(t, m, "!")
	m = send(t, m, keyOf(tea.KeyCtrlC))

	assert.Equal(t, "Buy milk!", st.Load()[0].Title)
	assert.False(t, m.app.Editing("a"))
	assert.False(t, m.app.Editing("c"))
	assert.Equal(t, "Read book", st.Load()[2].Title)
}

func TestCustomKeyMap(t *testing.T) {
	backend := store.NewMemoryBackend()
	require.NoError(t, backend.Attach(types.Config{}))
	st := store.New(backend, types.DefaultNamespace, nil)
	require.NoError(t, st.Save(seeded()))
	a := app.New(st, ids.NewWithSource(rand.NewPCG(1, 2)), nil)

	keys := DefaultKeyMap()
	keys.Toggle = key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle"))
	styles := view.PlainStyles()
	m := NewModel(a, Options{Styles: &styles, Keys: &keys})

	m = send(t, m, keyOf(tea.KeyTab), runes("x"))
	assert.False(t, st.Load()[0].Completed, "default binding is replaced")

	m = send(t, m, runes("t"))
	assert.True(t, st.Load()[0].Completed)
	assert.Equal(t, focusEntry, m.focus)
}

type brokenStore struct{}

func (brokenStore) Load() []types.Todo { return nil }

func (brokenStore) Save([]types.Todo) error { return errors.New("disk full") }

func TestPersistFailureShowsStatus(t *testing.T) {
	styles := view.PlainStyles()
	m := NewModel(app.New(brokenStore{}, ids.New(), nil), Options{Styles: &styles})

	m = typeText(t, m, "Buy milk")
	m = send(t, m, keyOf(tea.KeyEnter))

	assert.Contains(t, m.Status(), "disk full")
	assert.Contains(t, m.View(), "disk full")
	assert.Equal(t, 1, m.app.Len(), "the item stays in memory")
}
