package storage

import (
	"context"
	"fmt"
	"log/slog"
)

// Backend kinds accepted by Open
const (
	KindFile   = "file"
	KindSQLite = "sqlite"
)

// Backend is the surface shared by every storage backend
type Backend interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Backup(ctx context.Context, data []byte) error
	Close() error
}

// Open creates the backend of the given kind at path
func Open(kind, path string, logger *slog.Logger) (Backend, error) {
	switch kind {
	case KindFile, "":
		return NewFileBackend(path, logger), nil
	case KindSQLite:
		return OpenSQLite(path, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", kind)
	}
}
