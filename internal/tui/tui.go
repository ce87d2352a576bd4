package tui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/mesh-intelligence/todos/internal/app"
)

// Run starts the full-screen program and blocks until it quits.
func Run(a *app.App, opts Options, progOpts ...tea.ProgramOption) error {
	popts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	}, progOpts...)

	if _, err := tea.NewProgram(NewModel(a, opts), popts...).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// ApplyColorProfile disables colors when noColor is set or NO_COLOR is
// present in the environment.
func ApplyColorProfile(noColor bool) {
	if noColor || strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
