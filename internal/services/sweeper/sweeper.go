// Package sweeper re-runs task cleanup on a fixed interval for as long as the program runs.
package sweeper

import (
	"context"
	"log/slog"
	"time"

	"github.com/riordanpawley/taskmaster/internal/cleanup"
)

// DefaultInterval is how often cleanup runs when no interval is configured
const DefaultInterval = time.Hour

// Cleaner runs one cleanup pass and persists its result
type Cleaner interface {
	RunCleanup() cleanup.Report
}

// Sweeper periodically invokes a Cleaner
type Sweeper struct {
	cleaner  Cleaner
	interval time.Duration
	logger   *slog.Logger
	onSweep  func(cleanup.Report)
}

// New creates a sweeper. onSweep, when set, receives every report that removed something.
func New(cleaner Cleaner, interval time.Duration, logger *slog.Logger, onSweep func(cleanup.Report)) *Sweeper {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Sweeper{
		cleaner:  cleaner,
		interval: interval,
		logger:   logger,
		onSweep:  onSweep,
	}
}

// Interval returns the time between sweeps
func (s *Sweeper) Interval() time.Duration {
	return s.interval
}

// Run sweeps every interval until ctx is cancelled
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Debug("sweeper started", "interval", s.interval)
	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("sweeper stopped")
			return nil
		case <-ticker.C:
			report := s.cleaner.RunCleanup()
			if report.Empty() {
				continue
			}
			if s.onSweep != nil {
				s.onSweep(report)
			}
		}
	}
}
