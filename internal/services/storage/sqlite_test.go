package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T) (*SQLiteBackend, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "taskmaster.db")
	s, err := OpenSQLite(path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestSQLiteBackend_EmptyLoad(t *testing.T) {
	s, _ := openTestSQLite(t)

	data, err := s.Load(context.Background())

	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestSQLiteBackend_Upsert(t *testing.T) {
	s, _ := openTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []byte(`{"version":6}`)))
	require.NoError(t, s.Save(ctx, []byte(`{"version":7}`)))

	data, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"version":7}`, string(data))

	var rows int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestSQLiteBackend_Reopen(t *testing.T) {
	s, path := openTestSQLite(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, []byte(`{"version":7}`)))
	require.NoError(t, s.Close())

	reopened, err := OpenSQLite(path, nil)
	require.NoError(t, err)
	defer reopened.Close()

	data, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"version":7}`, string(data))
}

func TestSQLiteBackend_Backup(t *testing.T) {
	s, _ := openTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.Backup(ctx, []byte("{broken")))
	require.NoError(t, s.Backup(ctx, []byte("{worse")))

	n, err := s.Backups(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
