package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/riordanpawley/taskmaster/internal/migration"
	"github.com/riordanpawley/taskmaster/internal/services/storage"
	"github.com/riordanpawley/taskmaster/internal/store"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newCleanupCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Remove expired completed tasks and orphaned tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, opts, func(ctx context.Context, deps *Dependencies) error {
				return CleanupCommand(deps, cmd.OutOrStdout())
			})
		},
	}
}

// CleanupCommand runs both cleanup passes over every board
func CleanupCommand(deps *Dependencies, out io.Writer) error {
	report := deps.Store.RunCleanup()
	fmt.Fprintf(out, "Expired completed tasks: %d\n", len(report.Expired))
	fmt.Fprintf(out, "Dangling references:     %d\n", report.Dangling)
	fmt.Fprintf(out, "Orphaned tasks:          %d\n", len(report.Orphaned))
	return nil
}

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Upgrade stored board data to the current schema",
		Long: `Upgrade stored board data to the current schema version and repair structural
problems. Data that cannot be read is backed up and replaced by a fresh board.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return MigrateCommand(ctx, opts, cmd.OutOrStdout(), dryRun)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would change without saving")
	return cmd
}

// MigrateCommand reports the migration of the stored data and, unless dryRun is set, writes
// the migrated data back
func MigrateCommand(ctx context.Context, opts *rootOptions, out io.Writer, dryRun bool) (err error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger, logFile, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	backend, err := storage.Open(cfg.Storage.Backend, cfg.Storage.DataPath, logger)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, backend.Close())
	}()

	raw, err := backend.Load(ctx)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		fmt.Fprintln(out, "No stored data; nothing to migrate")
		return nil
	}

	_, report := migration.MigrateJSON(raw)
	printMigration(out, report)
	if dryRun {
		return nil
	}

	var saveErrs []error
	if _, err := store.Open(ctx, backend, logger, store.WithSaveErrorHandler(func(err error) {
		saveErrs = append(saveErrs, err)
	})); err != nil {
		return err
	}
	if err := errors.Join(saveErrs...); err != nil {
		return fmt.Errorf("migrated data was not saved: %w", err)
	}
	fmt.Fprintf(out, "Saved %s\n", cfg.Storage.DataPath)
	return nil
}

func printMigration(out io.Writer, report migration.Report) {
	switch {
	case report.Reset:
		fmt.Fprintf(out, "Data is unreadable and will be replaced by a fresh board: %s\n", report.Reason)
	case report.FromVersion == report.ToVersion:
		fmt.Fprintf(out, "Data is at version %d\n", report.ToVersion)
	default:
		fmt.Fprintf(out, "Version %d -> %d\n", report.FromVersion, report.ToVersion)
	}
	for _, r := range report.Repairs {
		fmt.Fprintf(out, "  repair: %s\n", r)
	}
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all board data as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, opts, func(ctx context.Context, deps *Dependencies) error {
				if output == "" || output == "-" {
					return ExportCommand(deps, cmd.OutOrStdout(), format)
				}
				return exportToFile(deps, output, format)
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	return cmd
}

func exportToFile(deps *Dependencies, path, format string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := ExportCommand(deps, f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ExportCommand writes the whole data aggregate in the given format
func ExportCommand(deps *Dependencies, out io.Writer, format string) error {
	data, err := json.MarshalIndent(deps.Store.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode data: %w", err)
	}

	switch format {
	case "json":
		_, err = fmt.Fprintf(out, "%s\n", data)
		return err
	case "yaml", "yml":
		// Decode into a generic value so YAML keys match the stored JSON field names
		var doc map[string]interface{}
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown export format %q (want json or yaml)", format)
	}
}
