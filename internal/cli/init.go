package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/todos/internal/paths"
	"github.com/mesh-intelligence/todos/internal/store"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize todos storage",
		Long:  "Create the configuration and data directories, write a default config.yaml and initialize the storage backend.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.resolve()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(st.Store.DataDir, 0o755); err != nil {
				return systemError(fmt.Errorf("create data directory: %w", err))
			}

			s, err := store.Open(st.Store, nil)
			if err != nil {
				return systemError(fmt.Errorf("initialize storage: %w", err))
			}
			namespace := s.Namespace()
			if err := s.Close(); err != nil {
				return systemError(fmt.Errorf("finalize storage: %w", err))
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Config:    %s\n", paths.ConfigFile(st.ConfigDir))
			fmt.Fprintf(w, "Data:      %s (%s)\n", st.Store.DataDir, st.Store.Backend)
			fmt.Fprintf(w, "Namespace: %s\n", namespace)
			fmt.Fprintln(w, "todos initialized successfully")
			return nil
		},
	}
}
