// Package view renders the todo list and its footer from text/template
// templates styled with lipgloss.
package view

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"github.com/charmbracelet/x/ansi"

	"github.com/mesh-intelligence/todos/pkg/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Screen layout. The list starts on line ListTop; each row is one line with
// the check box in columns CheckStart..CheckEnd and the title from TitleStart.
const (
	ListTop    = 2
	CheckStart = 2
	CheckEnd   = 4
	TitleStart = 6

	// ToggleAllEnd is the last column of the toggle-all marker on the
	// entry line.
	ToggleAllEnd = 1
)

// Row is one rendered item.
type Row struct {
	Todo     types.Todo
	Selected bool
	Editing  bool
	// Input is the rendered edit field, shown instead of the title while
	// Editing.
	Input string
	// Width bounds the title; zero means unbounded.
	Width int
}

// Footer is the summary shown under the list.
type Footer struct {
	ActiveTodoCount int    `json:"activeTodoCount"`
	ActiveTodoWord  string `json:"activeTodoWord"`
	CompletedTodos  int    `json:"completedTodos"`
	Filter          string `json:"filter"`
}

// NewFooter builds the footer data for the given counts and filter.
func NewFooter(active, completed int, filter types.Filter) Footer {
	return Footer{
		ActiveTodoCount: active,
		ActiveTodoWord:  Pluralize(active, "item"),
		CompletedTodos:  completed,
		Filter:          string(filter),
	}
}

// Pluralize returns word for a count of one and word+"s" otherwise.
func Pluralize(count int, word string) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

// SingleLine makes a title safe to print on one terminal row: escape
// sequences are removed, newlines and tabs become spaces, and any other
// control character is dropped.
func SingleLine(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, ansi.Strip(s))
}

// Page is everything shown on one screen.
type Page struct {
	Entry   string // rendered new-item field
	Rows    []Row  // visible items
	Total   int    // items in the whole collection
	AllDone bool   // no active items remain
	Footer  Footer
	Status  string
	Help    string
	Width   int
}

// Renderer executes the list and footer templates.
type Renderer struct {
	styles Styles
	tmpl   *template.Template
}

// New parses the embedded templates.
func New(styles Styles) (*Renderer, error) {
	r := &Renderer{styles: styles}
	tmpl, err := template.New("view").
		Option("missingkey=error").
		Funcs(r.funcs()).
		ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// MustNew is like New but panics if the templates do not parse.
func MustNew(styles Styles) *Renderer {
	r, err := New(styles)
	if err != nil {
		panic(err)
	}
	return r
}

// List renders one line per row.
func (r *Renderer) List(rows []Row) (string, error) {
	return r.execute("todo-list", rows)
}

// Footer renders the summary line.
func (r *Renderer) Footer(f Footer) (string, error) {
	return r.execute("footer", f)
}

// Render composes the full screen. The toggle-all marker, the list and the
// footer are omitted when the collection is empty.
func (r *Renderer) Render(p Page) (string, error) {
	var b strings.Builder

	b.WriteString(r.styles.Header.Render("todos"))
	b.WriteByte('\n')

	if p.Total > 0 {
		b.WriteString(r.toggleAll(p.AllDone))
	} else {
		b.WriteString(strings.Repeat(" ", ToggleAllEnd+1))
	}
	b.WriteString(p.Entry)

	if p.Total > 0 {
		rows := make([]Row, len(p.Rows))
		for i, row := range p.Rows {
			row.Width = p.Width
			rows[i] = row
		}
		list, err := r.List(rows)
		if err != nil {
			return "", err
		}
		if list != "" {
			b.WriteByte('\n')
			b.WriteString(list)
		}

		footer, err := r.Footer(p.Footer)
		if err != nil {
			return "", err
		}
		b.WriteString("\n\n")
		b.WriteString(footer)
	}

	if p.Status != "" {
		b.WriteString("\n\n")
		b.WriteString(r.styles.Status.Render(p.Status))
	}
	if p.Help != "" {
		b.WriteString("\n\n")
		b.WriteString(p.Help)
	}
	return b.String(), nil
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var b strings.Builder
	if err := r.tmpl.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return b.String(), nil
}

func (r *Renderer) toggleAll(allDone bool) string {
	if allDone {
		return r.styles.ToggleAllDone.Render("✓") + " "
	}
	return r.styles.ToggleAll.Render("✓") + " "
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"marker": func(selected bool) string {
			if selected {
				return r.styles.Marker.Render("›")
			}
			return " "
		},
		"check": func(done bool) string {
			if done {
				return r.styles.CheckDone.Render("[x]")
			}
			return r.styles.Check.Render("[ ]")
		},
		"title": func(row Row) string {
			title := SingleLine(row.Todo.Title)
			if row.Width > TitleStart {
				title = ansi.Truncate(title, row.Width-TitleStart, "…")
			}
			st := r.styles.Title
			if row.Todo.Completed {
				st = r.styles.TitleDone
			}
			if row.Selected {
				st = st.Inherit(r.styles.Selected)
			}
			return st.Render(title)
		},
		"count": func(n int) string {
			return r.styles.Count.Render(fmt.Sprint(n))
		},
		"link": func(name, current string) string {
			label := strings.ToUpper(name[:1]) + name[1:]
			if name == current {
				return r.styles.LinkActive.Render(label)
			}
			return r.styles.Link.Render(label)
		},
		"clearCompleted": func() string {
			return r.styles.Clear.Render("Clear completed")
		},
	}
}
