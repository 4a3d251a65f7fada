// Package store owns the canonical in-memory PluginData and exposes every mutation the UI and
// CLI perform on it. Each mutation is applied in memory first and then the whole aggregate is
// written to the Backend.
//
// Mutations that name a board, group or task that does not exist change nothing and return one
// of the domain sentinel errors. Persistence failures are never returned from mutations; they
// are logged and passed to the handler installed with WithSaveErrorHandler.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/riordanpawley/taskmaster/internal/cleanup"
	"github.com/riordanpawley/taskmaster/internal/domain"
	"github.com/riordanpawley/taskmaster/internal/migration"
)

// saveTimeout bounds a single write to the backend
const saveTimeout = 10 * time.Second

// Backend loads and saves the serialized aggregate. Load returns nil bytes when nothing has
// been stored yet.
type Backend interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// Backupper is implemented by backends that can keep a copy of unreadable data before it is
// replaced by a fresh dataset
type Backupper interface {
	Backup(ctx context.Context, data []byte) error
}

// Store is the single owner of the task board data
type Store struct {
	mu            sync.Mutex
	data          *domain.PluginData
	activeBoardID string

	backend     Backend
	logger      *slog.Logger
	now         func() time.Time
	onSaveError func(error)
}

// Option configures a Store
type Option func(*Store)

// WithClock replaces time.Now, used for completion dates and retention
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithSaveErrorHandler registers fn to receive persistence failures
func WithSaveErrorHandler(fn func(error)) Option {
	return func(s *Store) {
		s.onSaveError = fn
	}
}

// Open loads the stored aggregate, migrates it to the current schema, runs both cleanup passes
// and writes the result back. The first board becomes the active one. Unreadable stored data is
// backed up before it is replaced; when no copy can be kept Open fails and writes nothing.
func Open(ctx context.Context, backend Backend, logger *slog.Logger, opts ...Option) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		backend: backend,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	raw, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading board data: %w", err)
	}

	data, report := migration.MigrateJSON(raw)
	if len(raw) == 0 {
		s.logger.Info("no stored board data, starting fresh")
	} else {
		s.logMigration(report)
	}
	if report.Reset && len(raw) > 0 {
		if err := backupUnreadable(ctx, backend, raw); err != nil {
			return nil, err
		}
	}

	s.data = data
	s.activeBoardID = data.Boards[0].ID

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.persistLocked()
	return s, nil
}

// backupUnreadable keeps a copy of data that is about to be replaced by a fresh dataset. Without
// a copy Open refuses to continue so the stored bytes stay as they are.
func backupUnreadable(ctx context.Context, backend Backend, raw []byte) error {
	b, ok := backend.(Backupper)
	if !ok {
		return &domain.StorageError{Op: "backup", Err: errors.New("stored data is unreadable and the backend cannot keep a copy")}
	}
	if err := b.Backup(ctx, raw); err != nil {
		return &domain.StorageError{Op: "backup", Err: fmt.Errorf("stored data is unreadable, refusing to overwrite it: %w", err)}
	}
	return nil
}

func (s *Store) logMigration(report migration.Report) {
	switch {
	case report.Reset:
		s.logger.Warn("starting from a fresh dataset", "reason", report.Reason, "from", report.FromVersion)
	case report.FromVersion != report.ToVersion:
		s.logger.Info("migrated board data", "from", report.FromVersion, "to", report.ToVersion)
	}
	for _, r := range report.Repairs {
		s.logger.Warn("repaired board data", "repair", r)
	}
}

// persistLocked writes the whole aggregate to the backend. Callers hold s.mu so that writes
// reach the backend in mutation order.
func (s *Store) persistLocked() {
	b, err := json.Marshal(s.data)
	if err != nil {
		s.saveFailed(fmt.Errorf("encoding board data: %w", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := s.backend.Save(ctx, b); err != nil {
		s.saveFailed(err)
	}
}

func (s *Store) saveFailed(err error) {
	s.logger.Error("failed to save board data", "error", err)
	if s.onSaveError != nil {
		s.onSaveError(err)
	}
}

// RunCleanup runs the retention and orphan passes over every board and persists when anything
// was removed
func (s *Store) RunCleanup() cleanup.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := s.sweepLocked()
	if !report.Empty() {
		s.persistLocked()
	}
	return report
}

func (s *Store) sweepLocked() cleanup.Report {
	report := cleanup.Sweep(s.data, s.now())
	if !report.Empty() {
		s.logger.Info("cleaned up tasks",
			"expired", len(report.Expired),
			"orphaned", len(report.Orphaned),
			"dangling", report.Dangling,
		)
	}
	return report
}

// Snapshot returns a deep copy of the aggregate for rendering and export
func (s *Store) Snapshot() *domain.PluginData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// Settings returns the current settings
func (s *Store) Settings() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Settings
}

// Task returns a copy of the task with the given id
func (s *Store) Task(id string) (*domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.data.Tasks[id]
	if !ok {
		return nil, false
	}
	return t.Clone(), true
}

// Now returns the store clock's current time
func (s *Store) Now() time.Time {
	return s.now()
}

// board returns the board with the given id. Callers hold s.mu.
func (s *Store) board(id string) (*domain.Board, error) {
	b := s.data.Board(id)
	if b == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrBoardNotFound, id)
	}
	return b, nil
}

// group returns a group of a board. Callers hold s.mu.
func (s *Store) group(boardID string, id domain.GroupID) (*domain.Board, *domain.Group, error) {
	if !id.Valid() {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrUnknownGroup, id)
	}
	b, err := s.board(boardID)
	if err != nil {
		return nil, nil, err
	}
	g := b.Group(id)
	if g == nil {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrUnknownGroup, id)
	}
	return b, g, nil
}
