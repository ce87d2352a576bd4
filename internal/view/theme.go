package view

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the templates.
type Styles struct {
	Header        lipgloss.Style
	Marker        lipgloss.Style
	Check         lipgloss.Style
	CheckDone     lipgloss.Style
	Title         lipgloss.Style
	TitleDone     lipgloss.Style
	Selected      lipgloss.Style
	Count         lipgloss.Style
	Link          lipgloss.Style
	LinkActive    lipgloss.Style
	Clear         lipgloss.Style
	ToggleAll     lipgloss.Style
	ToggleAllDone lipgloss.Style
	Status        lipgloss.Style
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// Semantic colors; readable on light and dark backgrounds.
var (
	colorMuted   = ac("240", "243")
	colorAccent  = ac("27", "62")
	colorDone    = ac("28", "71")
	colorHeader  = ac("124", "175")
	colorWarning = ac("160", "203")
)

// DefaultStyles returns the standard palette.
func DefaultStyles() Styles {
	return Styles{
		Header:        lipgloss.NewStyle().Bold(true).Foreground(colorHeader),
		Marker:        lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Check:         lipgloss.NewStyle().Foreground(colorMuted),
		CheckDone:     lipgloss.NewStyle().Foreground(colorDone),
		Title:         lipgloss.NewStyle(),
		TitleDone:     lipgloss.NewStyle().Strikethrough(true).Foreground(colorMuted),
		Selected:      lipgloss.NewStyle().Bold(true),
		Count:         lipgloss.NewStyle().Bold(true),
		Link:          lipgloss.NewStyle().Foreground(colorMuted),
		LinkActive:    lipgloss.NewStyle().Underline(true).Foreground(colorAccent),
		Clear:         lipgloss.NewStyle().Foreground(colorMuted),
		ToggleAll:     lipgloss.NewStyle().Foreground(colorMuted),
		ToggleAllDone: lipgloss.NewStyle().Bold(true).Foreground(colorDone),
		Status:        lipgloss.NewStyle().Foreground(colorWarning),
	}
}

// PlainStyles returns styles that add no escape sequences, for tests and
// non-terminal output.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Header: plain, Marker: plain, Check: plain, CheckDone: plain,
		Title: plain, TitleDone: plain, Selected: plain, Count: plain,
		Link: plain, LinkActive: plain, Clear: plain,
		ToggleAll: plain, ToggleAllDone: plain, Status: plain,
	}
}
