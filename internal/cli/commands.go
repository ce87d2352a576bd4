package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/todos/pkg/types"
)

func newAddCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a todo",
		Example: `  todos add Buy milk
  todos add "Walk the dog"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open()
			if err != nil {
				return err
			}
			defer s.close()

			t, err := s.app.Create(strings.Join(args, " "))
			if err != nil {
				return checked(err)
			}
			if opts.jsonMode {
				return writeJSON(cmd.OutOrStdout(), t)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created todo: %s\n", t.ID)
			return nil
		},
	}
}

func newToggleCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <ref>",
		Short: "Flip a todo between active and completed",
		Long:  "Flip a todo between active and completed.\n" + refHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open()
			if err != nil {
				return err
			}
			defer s.close()

			id, err := resolveRef(s.app.Todos(), args[0])
			if err != nil {
				return err
			}
			if err := s.app.Toggle(id); err != nil {
				return checked(err)
			}
			t, _ := s.app.Get(id)
			return report(cmd.OutOrStdout(), opts, t, "Toggled todo: %s (%s)\n", id, status(t))
		},
	}
}

func newEditCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <ref> <text...>",
		Short: "Change the title of a todo",
		Long:  "Change the title of a todo. An empty title deletes it.\n" + refHelp,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open()
			if err != nil {
				return err
			}
			defer s.close()

			id, err := resolveRef(s.app.Todos(), args[0])
			if err != nil {
				return err
			}
			if err := s.app.Edit(id, strings.Join(args[1:], " ")); err != nil {
				return checked(err)
			}
			t, ok := s.app.Get(id)
			if !ok {
				return report(cmd.OutOrStdout(), opts, deleted{ID: id, Deleted: true}, "Deleted todo: %s\n", id)
			}
			return report(cmd.OutOrStdout(), opts, t, "Updated todo: %s\n", id)
		},
	}
}

func newRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <ref>",
		Aliases: []string{"delete"},
		Short:   "Delete a todo",
		Long:    "Delete a todo.\n" + refHelp,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open()
			if err != nil {
				return err
			}
			defer s.close()

			id, err := resolveRef(s.app.Todos(), args[0])
			if err != nil {
				return err
			}
			if err := s.app.Destroy(id); err != nil {
				return checked(err)
			}
			return report(cmd.OutOrStdout(), opts, deleted{ID: id, Deleted: true}, "Deleted todo: %s\n", id)
		},
	}
}

func newToggleAllCmd(opts *rootOptions) *cobra.Command {
	var off bool
	cmd := &cobra.Command{
		Use:   "toggle-all",
		Short: "Mark every todo completed, or active with --off",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open()
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.app.ToggleAll(!off); err != nil {
				return checked(err)
			}
			word := "completed"
			if off {
				word = "active"
			}
			return report(cmd.OutOrStdout(), opts, s.app.Todos(), "Marked %d todo(s) %s\n", s.app.Len(), word)
		},
	}
	cmd.Flags().BoolVar(&off, "off", false, "mark every todo active instead")
	return cmd
}

func newClearCompletedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-completed",
		Short: "Delete every completed todo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open()
			if err != nil {
				return err
			}
			defer s.close()

			n := s.app.CompletedCount()
			if err := s.app.ClearCompleted(); err != nil {
				return checked(err)
			}
			return report(cmd.OutOrStdout(), opts, s.app.Todos(), "Cleared %d completed todo(s)\n", n)
		},
	}
}

// deleted is the --json output for a removed todo.
type deleted struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

const refHelp = `
<ref> is the position shown by "todos list" (1-based, counted over the full
list) or a unique prefix of the todo ID.`

// report prints v as JSON in --json mode and the formatted message otherwise.
func report(w io.Writer, opts *rootOptions, v any, format string, args ...any) error {
	if opts.jsonMode {
		return writeJSON(w, v)
	}
	fmt.Fprintf(w, format, args...)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return systemError(fmt.Errorf("marshal output: %w", err))
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func status(t types.Todo) string {
	if t.Completed {
		return "completed"
	}
	return "active"
}
