// Package cli implements the todos command line: the root command launches
// the terminal interface and the subcommands script the same controller.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/todos/internal/tui"
	"github.com/mesh-intelligence/todos/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootOptions holds global flag values shared by every subcommand.
type rootOptions struct {
	configDir string
	dataDir   string
	backend   string
	namespace string
	logFile   string
	jsonMode  bool
	noColor   bool
	route     string
}

// NewRootCmd creates the top-level "todos" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "todos",
		Short: "A terminal task list",
		Long: "todos keeps a list of tasks in a local store.\n" +
			"Run without a subcommand to open the interactive list.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(opts)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return userError(err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	pf.StringVar(&opts.dataDir, "data-dir", "", "data directory (default: .todos-db)")
	pf.StringVar(&opts.backend, "backend", "", "storage backend: sqlite, diskv, file or memory")
	pf.StringVar(&opts.namespace, "namespace", "", "storage key for the list (default: todos)")
	pf.StringVar(&opts.logFile, "log-file", "", "write JSON logs to this file")
	pf.BoolVar(&opts.jsonMode, "json", false, "output in JSON format")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colors")
	root.Flags().StringVar(&opts.route, "route", types.FilterAll.Route(), "initial filter route: /all, /active or /completed")

	root.AddCommand(
		newAddCmd(opts),
		newListCmd(opts),
		newToggleCmd(opts),
		newEditCmd(opts),
		newRemoveCmd(opts),
		newToggleAllCmd(opts),
		newClearCompletedCmd(opts),
		newExportCmd(opts),
		newInitCmd(opts),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command with the process arguments and exits.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes the command line in args and returns the exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(stderr, "Error:", err)
	return exitCode(err)
}

func runInteractive(opts *rootOptions) error {
	s, err := opts.open()
	if err != nil {
		return err
	}
	defer s.close()

	tui.ApplyColorProfile(opts.noColor)
	if err := tui.Run(s.app, tui.Options{Route: opts.route, Logger: s.log}); err != nil {
		return systemError(err)
	}
	return nil
}

// exitError carries the exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }

func systemError(err error) error { return &exitError{code: exitSysError, err: err} }

// checked classifies an error from a controller operation: missing items and
// empty titles are the caller's fault, anything else is a storage failure.
func checked(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, types.ErrNotFound), errors.Is(err, types.ErrInvalidTitle):
		return userError(err)
	default:
		return systemError(err)
	}
}

// exitCode maps an error to a process exit code. Errors not classified
// otherwise come from argument parsing and count as user errors.
func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}
