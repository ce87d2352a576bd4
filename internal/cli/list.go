package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/todos/internal/view"
	"github.com/mesh-intelligence/todos/pkg/types"
)

// listOutput is the --json shape of "todos list".
type listOutput struct {
	Todos  []listedTodo `json:"todos"`
	Footer view.Footer  `json:"footer"`
}

type listedTodo struct {
	Index int `json:"index"`
	types.Todo
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todos",
		Example: `  todos list
  todos list --filter active`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := types.Filter(filter)
			if !f.Valid() {
				return userError(fmt.Errorf("invalid filter %q (valid: all, active, completed)", filter))
			}

			s, err := opts.open()
			if err != nil {
				return err
			}
			defer s.close()

			out := listOutput{
				Todos:  []listedTodo{},
				Footer: view.NewFooter(s.app.ActiveCount(), s.app.CompletedCount(), f),
			}
			for i, t := range s.app.Todos() {
				if f.Match(t) {
					out.Todos = append(out.Todos, listedTodo{Index: i + 1, Todo: t})
				}
			}

			w := cmd.OutOrStdout()
			if opts.jsonMode {
				return writeJSON(w, out)
			}

			if len(out.Todos) > 0 {
				tbl := uitable.New()
				tbl.MaxColWidth = 60
				tbl.AddRow("#", "DONE", "TITLE", "ID")
				for _, t := range out.Todos {
					tbl.AddRow(strconv.Itoa(t.Index), checkMark(t.Completed), view.SingleLine(t.Title), color.HiBlackString(t.ID))
				}
				fmt.Fprintln(w, tbl)
			}
			fmt.Fprintf(w, "%d %s left\n", out.Footer.ActiveTodoCount, out.Footer.ActiveTodoWord)
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", string(types.FilterAll), "which todos to show: all, active or completed")
	return cmd
}

func checkMark(done bool) string {
	if done {
		return color.GreenString("[x]")
	}
	return "[ ]"
}
