package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/todos/pkg/types"
)

// Export formats.
const (
	formatJSON = "json"
	formatTOML = "toml"
)

// tomlDocument wraps the list because TOML has no top-level arrays.
type tomlDocument struct {
	Todos []types.Todo `toml:"todos"`
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the whole list as JSON or TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatJSON && format != formatTOML {
				return userError(fmt.Errorf("invalid format %q (valid: json, toml)", format))
			}

			s, err := opts.open()
			if err != nil {
				return err
			}
			defer s.close()

			todos := s.app.Todos()
			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), todos)
			}
			if err := toml.NewEncoder(cmd.OutOrStdout()).Encode(tomlDocument{Todos: todos}); err != nil {
				return systemError(fmt.Errorf("encode toml: %w", err))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", formatJSON, "output format: json or toml")
	return cmd
}
