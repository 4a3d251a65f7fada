package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/riordanpawley/taskmaster/internal/domain"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id         INTEGER PRIMARY KEY CHECK (id = 1),
	data       TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS snapshot_backups (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	data       TEXT NOT NULL,
	created_at TEXT NOT NULL
);
`

// SQLiteBackend stores the aggregate as the single row of a SQLite table
type SQLiteBackend struct {
	db     *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

// OpenSQLite opens or creates the database at path and ensures the schema exists
func OpenSQLite(path string, logger *slog.Logger) (*SQLiteBackend, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, &domain.StorageError{Op: "open", Backend: "sqlite", Err: err}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, &domain.StorageError{Op: "open", Backend: "sqlite", Err: err}
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			err = fmt.Errorf("%w (close error: %v)", err, closeErr)
		}
		return nil, &domain.StorageError{Op: "open", Backend: "sqlite", Err: fmt.Errorf("creating schema: %w", err)}
	}

	logger.Debug("opened sqlite store", "path", path)
	return &SQLiteBackend{db: db, logger: logger, now: time.Now}, nil
}

// Close closes the database connection
func (s *SQLiteBackend) Close() error {
	return s.db.Close()
}

// Load returns the stored snapshot, or nil bytes when none was saved yet
func (s *SQLiteBackend) Load(ctx context.Context) ([]byte, error) {
	var data string
	err := s.db.QueryRowContext(ctx, "SELECT data FROM snapshots WHERE id = 1").Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &domain.StorageError{Op: "load", Backend: "sqlite", Err: err}
	}
	return []byte(data), nil
}

// Save replaces the stored snapshot
func (s *SQLiteBackend) Save(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, data, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`, string(data), s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return &domain.StorageError{Op: "save", Backend: "sqlite", Err: err}
	}
	return nil
}

// Backup keeps unreadable data in the backup table
func (s *SQLiteBackend) Backup(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO snapshot_backups (data, created_at) VALUES (?, ?)",
		string(data), s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return &domain.StorageError{Op: "backup", Backend: "sqlite", Err: err}
	}
	s.logger.Warn("backed up unreadable snapshot")
	return nil
}

// Backups returns how many unreadable snapshots were kept
func (s *SQLiteBackend) Backups(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM snapshot_backups").Scan(&n); err != nil {
		return 0, &domain.StorageError{Op: "load", Backend: "sqlite", Err: err}
	}
	return n, nil
}
