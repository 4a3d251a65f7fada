package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/taskmaster/internal/app"
	"github.com/riordanpawley/taskmaster/internal/services/sweeper"
	"github.com/riordanpawley/taskmaster/internal/services/undo"
	"github.com/riordanpawley/taskmaster/internal/store"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// runTUI opens the board in the terminal. The periodic sweeper runs alongside the program and
// stops when the program exits.
func runTUI(cmd *cobra.Command, opts *rootOptions) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	events := app.NewEvents()
	deps, err := NewDependencies(ctx, opts, store.WithSaveErrorHandler(events.SaveFailed))
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, deps.Close())
	}()

	cfg := deps.Config
	undoManager := undo.NewManager(deps.Store, time.Duration(cfg.Undo.WindowSeconds)*time.Second, cfg.Undo.MaxVisible, deps.Logger)
	// Stopped before the backend closes; the next load sweeps pending deletions as orphans
	defer undoManager.Close()

	sweep := sweeper.New(deps.Store, time.Duration(cfg.Cleanup.IntervalMinutes)*time.Minute, deps.Logger, events.Swept)

	model := app.New(app.Options{
		Store:  deps.Store,
		Undo:   undoManager,
		Events: events,
		Config: cfg,
		Logger: deps.Logger,
	})

	g, gctx := errgroup.WithContext(ctx)
	runCtx, cancel := context.WithCancel(gctx)
	defer cancel()

	g.Go(func() error {
		return sweep.Run(runCtx)
	})
	g.Go(func() error {
		defer cancel()
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(runCtx))
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("running board: %w", err)
		}
		return nil
	})

	deps.Logger.Info("board opened", "backend", cfg.Storage.Backend)
	if err := g.Wait(); err != nil {
		return err
	}
	deps.Logger.Info("board closed")
	return nil
}
