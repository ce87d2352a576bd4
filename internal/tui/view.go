package tui

import "github.com/mesh-intelligence/todos/internal/view"

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	visible := m.app.Visible()
	start := min(m.offset, len(visible))
	end := len(visible)
	if h := m.listHeight(); h > 0 {
		end = min(end, start+h)
	}

	rows := make([]view.Row, 0, end-start)
	for i := start; i < end; i++ {
		t := visible[i]
		row := view.Row{Todo: t, Selected: i == m.cursor}
		if t.ID == m.editingID {
			row.Editing = true
			row.Input = m.editor.View()
		}
		rows = append(rows, row)
	}

	out, err := m.renderer.Render(view.Page{
		Entry:   m.entry.View(),
		Rows:    rows,
		Total:   m.app.Len(),
		AllDone: m.app.ActiveCount() == 0,
		Footer:  view.NewFooter(m.app.ActiveCount(), m.app.CompletedCount(), m.app.Filter()),
		Status:  m.status,
		Help:    m.help.View(helpKeys{keys: m.keys, focus: m.focus}),
		Width:   m.width,
	})
	if err != nil {
		return err.Error()
	}
	return out
}
