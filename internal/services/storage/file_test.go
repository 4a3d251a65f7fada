package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/riordanpawley/taskmaster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackend_MissingFile(t *testing.T) {
	f := NewFileBackend(filepath.Join(t.TempDir(), "data.json"), nil)

	data, err := f.Load(context.Background())

	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestFileBackend_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data.json")
	f := NewFileBackend(path, nil)
	ctx := context.Background()

	require.NoError(t, f.Save(ctx, []byte(`{"version":7,"boards":[]}`)))

	data, err := f.Load(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":7,"boards":[]}`, string(data))
	assert.Contains(t, string(data), "\n  \"version\": 7")

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
}

func TestFileBackend_SaveOverwrites(t *testing.T) {
	f := NewFileBackend(filepath.Join(t.TempDir(), "data.json"), nil)
	ctx := context.Background()

	require.NoError(t, f.Save(ctx, []byte(`{"version":1}`)))
	require.NoError(t, f.Save(ctx, []byte(`{"version":2}`)))

	data, err := f.Load(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":2}`, string(data))
}

func TestFileBackend_SaveRejectsInvalidJSON(t *testing.T) {
	f := NewFileBackend(filepath.Join(t.TempDir(), "data.json"), nil)

	err := f.Save(context.Background(), []byte("{nope"))

	var storageErr *domain.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "save", storageErr.Op)
	assert.Equal(t, "file", storageErr.Backend)
}

func TestFileBackend_SaveCancelledContext(t *testing.T) {
	f := NewFileBackend(filepath.Join(t.TempDir(), "data.json"), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.Save(ctx, []byte(`{}`))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileBackend_LoadError(t *testing.T) {
	dir := t.TempDir()
	f := NewFileBackend(dir, nil)

	_, err := f.Load(context.Background())

	var storageErr *domain.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "load", storageErr.Op)
}

func TestFileBackend_Backup(t *testing.T) {
	dir := t.TempDir()
	f := NewFileBackend(filepath.Join(dir, "data.json"), nil)

	require.NoError(t, f.Backup(context.Background(), []byte("{broken")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "data.json.corrupt-"))

	content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "{broken", string(content))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		kind    string
		wantErr bool
	}{
		{name: "default is file", kind: ""},
		{name: "file", kind: KindFile},
		{name: "sqlite", kind: KindSQLite},
		{name: "unknown", kind: "redis", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Open(tt.kind, filepath.Join(dir, tt.name+".db"), nil)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer b.Close()

			require.NoError(t, b.Save(context.Background(), []byte(`{"version":7}`)))
			data, err := b.Load(context.Background())
			require.NoError(t, err)
			assert.JSONEq(t, `{"version":7}`, string(data))
		})
	}
}
