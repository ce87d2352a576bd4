package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings for every focus region.
type KeyMap struct {
	// entry
	Submit    key.Binding
	FocusList key.Binding

	// list
	Up             key.Binding
	Down           key.Binding
	Toggle         key.Binding
	Edit           key.Binding
	Destroy        key.Binding
	ToggleAll      key.Binding
	ClearCompleted key.Binding
	RouteAll       key.Binding
	RouteActive    key.Binding
	RouteCompleted key.Binding
	PrevRoute      key.Binding
	NextRoute      key.Binding
	FocusEntry     key.Binding
	Help           key.Binding
	Quit           key.Binding

	// edit
	Commit key.Binding
	Cancel key.Binding
	Blur   key.Binding

	ForceQuit key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		FocusList: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "list")),

		Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:         key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Edit:           key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit")),
		Destroy:        key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		ToggleAll:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle all")),
		ClearCompleted: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear completed")),
		RouteAll:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		RouteActive:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		RouteCompleted: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		PrevRoute:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev filter")),
		NextRoute:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next filter")),
		FocusEntry:     key.NewBinding(key.WithKeys("tab", "esc", "i"), key.WithHelp("i", "new item")),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:           key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),

		Commit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Blur:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "save")),

		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// helpKeys adapts the key map to help.KeyMap for the focused region.
type helpKeys struct {
	keys  KeyMap
	focus focus
}

func (h helpKeys) ShortHelp() []key.Binding {
	k := h.keys
	switch h.focus {
	case focusList:
		return []key.Binding{k.Toggle, k.Edit, k.Destroy, k.FocusEntry, k.Help, k.Quit}
	case focusEdit:
		return []key.Binding{k.Commit, k.Cancel}
	default:
		return []key.Binding{k.Submit, k.FocusList, k.ForceQuit}
	}
}

func (h helpKeys) FullHelp() [][]key.Binding {
	k := h.keys
	switch h.focus {
	case focusList:
		return [][]key.Binding{
			{k.Up, k.Down, k.Toggle, k.Edit, k.Destroy},
			{k.ToggleAll, k.ClearCompleted},
			{k.RouteAll, k.RouteActive, k.RouteCompleted, k.PrevRoute, k.NextRoute},
			{k.FocusEntry, k.Help, k.Quit},
		}
	default:
		return [][]key.Binding{h.ShortHelp()}
	}
}
