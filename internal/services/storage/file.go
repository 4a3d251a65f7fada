// Package storage provides the persistence backends the store writes its aggregate to: a JSON
// file and a single-row SQLite table.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/riordanpawley/taskmaster/internal/domain"
)

// FileBackend stores the aggregate as an indented JSON file
type FileBackend struct {
	path   string
	logger *slog.Logger
	now    func() time.Time
}

// NewFileBackend creates a backend writing to path
func NewFileBackend(path string, logger *slog.Logger) *FileBackend {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileBackend{
		path:   path,
		logger: logger,
		now:    time.Now,
	}
}

// Path returns the data file location
func (f *FileBackend) Path() string {
	return f.path
}

// Load reads the data file. A missing file yields nil bytes.
func (f *FileBackend) Load(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		f.logger.Debug("no data file yet", "path", f.path)
		return nil, nil
	}
	if err != nil {
		return nil, &domain.StorageError{Op: "load", Backend: "file", Err: err}
	}
	return data, nil
}

// Save writes data atomically via a temp file and rename
func (f *FileBackend) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return &domain.StorageError{Op: "save", Backend: "file", Err: err}
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		return &domain.StorageError{Op: "save", Backend: "file", Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	pretty.WriteByte('\n')

	if err := writeAtomic(f.path, pretty.Bytes()); err != nil {
		return &domain.StorageError{Op: "save", Backend: "file", Err: err}
	}
	return nil
}

// Backup copies unreadable data next to the data file before it gets replaced
func (f *FileBackend) Backup(ctx context.Context, data []byte) error {
	path := fmt.Sprintf("%s.corrupt-%s", f.path, f.now().Format("20060102-150405"))
	if err := writeAtomic(path, data); err != nil {
		return &domain.StorageError{Op: "backup", Backend: "file", Err: err}
	}
	f.logger.Warn("backed up unreadable data file", "path", path)
	return nil
}

func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename data file: %w", err)
	}
	return nil
}

// Close is a no-op; every Save leaves the file complete
func (f *FileBackend) Close() error {
	return nil
}
