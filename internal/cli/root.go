// Package cli implements the taskmaster command line: the board TUI as the default action plus
// headless commands over the same data store.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootOptions holds the global flags shared by every command
type rootOptions struct {
	configPath string
	dataPath   string
	backend    string
	verbose    bool
}

// NewRootCommand builds the command tree
func NewRootCommand(version string) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "taskmaster",
		Short: "Taskmaster - a personal task board",
		Long: `Taskmaster keeps tasks on boards of six fixed groups: backlog, focus, in progress,
org intentions, delegated and completed.

Running it without a command opens the board in the terminal.`,
		Version:       version,
		RunE:          func(cmd *cobra.Command, args []string) error { return runTUI(cmd, opts) },
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default: .taskmaster.json, then the user config)")
	flags.StringVar(&opts.dataPath, "data", "", "Board data location, overrides the config")
	flags.StringVar(&opts.backend, "backend", "", "Storage backend: file or sqlite, overrides the config")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log at debug level")

	root.AddCommand(
		newListCmd(opts),
		newAddCmd(opts),
		newMoveCmd(opts),
		newCompleteCmd(opts),
		newDeleteCmd(opts),
		newBoardCmd(opts),
		newCleanupCmd(opts),
		newMigrateCmd(opts),
		newExportCmd(opts),
		newConfigCmd(opts),
	)
	return root
}

// Execute runs the root command
func Execute(version string) error {
	if err := NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
