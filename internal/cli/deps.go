package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/riordanpawley/taskmaster/internal/config"
	"github.com/riordanpawley/taskmaster/internal/domain"
	"github.com/riordanpawley/taskmaster/internal/services/storage"
	"github.com/riordanpawley/taskmaster/internal/store"
)

// Dependencies holds all the services needed for CLI commands
type Dependencies struct {
	Config  *config.Config
	Backend storage.Backend
	Store   *store.Store
	Logger  *slog.Logger

	logFile  io.Closer
	saveErrs []error
}

// loadConfig reads the config selected by the flags and applies the flag overrides
func loadConfig(opts *rootOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if opts.backend != "" && opts.backend != cfg.Storage.Backend {
		// A default path follows the backend it was derived from
		if cfg.Storage.DataPath == config.DefaultDataPath(cfg.Storage.Backend) {
			cfg.Storage.DataPath = config.DefaultDataPath(opts.backend)
		}
		cfg.Storage.Backend = opts.backend
	}
	if opts.dataPath != "" {
		cfg.Storage.DataPath = opts.dataPath
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger returns a text logger appending to the configured log file. Logging never goes to
// the terminal so it cannot corrupt the board.
func newLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f, nil
}

// NewDependencies loads the config, opens the log file and the backend, and loads the store
func NewDependencies(ctx context.Context, opts *rootOptions, storeOpts ...store.Option) (*Dependencies, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	logger, logFile, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	backend, err := storage.Open(cfg.Storage.Backend, cfg.Storage.DataPath, logger)
	if err != nil {
		logFile.Close()
		return nil, err
	}

	d := &Dependencies{
		Config:  cfg,
		Backend: backend,
		Logger:  logger,
		logFile: logFile,
	}

	// Headless commands collect save failures; a handler passed by the caller takes over
	storeOpts = append([]store.Option{store.WithSaveErrorHandler(d.recordSaveError)}, storeOpts...)
	d.Store, err = store.Open(ctx, backend, logger, storeOpts...)
	if err != nil {
		backend.Close()
		logFile.Close()
		return nil, err
	}

	logger.Debug("dependencies ready", "backend", cfg.Storage.Backend, "data", cfg.Storage.DataPath)
	return d, nil
}

func (d *Dependencies) recordSaveError(err error) {
	d.saveErrs = append(d.saveErrs, err)
}

// SaveError returns the save failures seen since the store was opened
func (d *Dependencies) SaveError() error {
	return errors.Join(d.saveErrs...)
}

// Close releases the backend and the log file
func (d *Dependencies) Close() error {
	return errors.Join(d.Backend.Close(), d.logFile.Close())
}

// resolveBoard finds a board by id or, failing that, by case-insensitive title. An empty ref
// selects the active board.
func (d *Dependencies) resolveBoard(ref string) (*domain.Board, error) {
	if ref == "" {
		return d.Store.ActiveBoard()
	}
	snap := d.Store.Snapshot()
	if b := snap.Board(ref); b != nil {
		return b, nil
	}
	for _, b := range snap.Boards {
		if strings.EqualFold(b.Title, ref) {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrBoardNotFound, ref)
}

// useBoard makes the referenced board active for mutations of the active board
func (d *Dependencies) useBoard(ref string) (*domain.Board, error) {
	b, err := d.resolveBoard(ref)
	if err != nil {
		return nil, err
	}
	if err := d.Store.SetActiveBoard(b.ID); err != nil {
		return nil, err
	}
	return b, nil
}
