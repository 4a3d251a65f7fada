package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersionedConfig_LegacyFlatConfig(t *testing.T) {
	// Legacy config without version field and with flat keys
	legacyJSON := `{
		"backend": "sqlite",
		"dataPath": "/tmp/board.db",
		"cleanupIntervalMinutes": 15,
		"logLevel": "debug"
	}`

	cfg, err := ParseVersionedConfig([]byte(legacyJSON))
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/board.db", cfg.Storage.DataPath)
	assert.Equal(t, 15, cfg.Cleanup.IntervalMinutes)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseVersionedConfig_Version1(t *testing.T) {
	v1JSON := `{
		"version": 1,
		"undoWindowSeconds": 8,
		"maxVisibleUndo": 5,
		"locale": "ru_RU"
	}`

	cfg, err := ParseVersionedConfig([]byte(v1JSON))
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Undo.WindowSeconds)
	assert.Equal(t, 5, cfg.Undo.MaxVisible)
	assert.Equal(t, "ru_RU", cfg.Locale)
}

func TestParseVersionedConfig_Version2(t *testing.T) {
	v2JSON := `{
		"version": 2,
		"storage": {"backend": "file", "dataPath": "/data/tasks.json"},
		"log": {"file": "/var/log/tm.log"}
	}`

	cfg, err := ParseVersionedConfig([]byte(v2JSON))
	require.NoError(t, err)

	assert.Equal(t, "/data/tasks.json", cfg.Storage.DataPath)
	assert.Equal(t, "/var/log/tm.log", cfg.Log.File)
}

func TestParseVersionedConfig_NestedConfigField(t *testing.T) {
	cfg, err := ParseVersionedConfig([]byte(`{"version": 2, "config": {"locale": "en_US"}}`))
	require.NoError(t, err)
	assert.Equal(t, "en_US", cfg.Locale)
}

func TestParseVersionedConfig_FutureVersion(t *testing.T) {
	_, err := ParseVersionedConfig([]byte(`{"version": 999, "locale": "ru"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer than supported")
}

func TestApplyMigrations_V0ToCurrent(t *testing.T) {
	data := map[string]interface{}{
		"backend": "sqlite",
		"logFile": "/tmp/tm.log",
	}

	migrated, err := ApplyMigrations(data, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, migrated["version"])
	assert.NotContains(t, migrated, "backend")
	assert.NotContains(t, migrated, "logFile")
	assert.Equal(t, "sqlite", migrated["storage"].(map[string]interface{})["backend"])
	assert.Equal(t, "/tmp/tm.log", migrated["log"].(map[string]interface{})["file"])
}

func TestApplyMigrations_SectionWins(t *testing.T) {
	data := map[string]interface{}{
		"backend": "sqlite",
		"storage": map[string]interface{}{"backend": "file"},
	}

	migrated, err := ApplyMigrations(data, 1)
	require.NoError(t, err)
	assert.Equal(t, "file", migrated["storage"].(map[string]interface{})["backend"])
}

func TestApplyMigrations_SectionNotObject(t *testing.T) {
	data := map[string]interface{}{
		"backend": "sqlite",
		"storage": "nope",
	}

	_, err := ApplyMigrations(data, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration 1 -> 2 failed")
}

func TestApplyMigrations_NoPath(t *testing.T) {
	_, err := ApplyMigrations(map[string]interface{}{}, -3)
	assert.Error(t, err)
}

func TestMarshalVersionedConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.Backend = "sqlite"

	data, err := MarshalVersionedConfig(cfg)
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &result))

	assert.Equal(t, float64(CurrentVersion), result["version"])
	assert.Equal(t, "sqlite", result["storage"].(map[string]interface{})["backend"])
}

func TestRoundTrip(t *testing.T) {
	original := DefaultConfig()
	original.Storage.DataPath = "/srv/board.json"
	original.Cleanup.IntervalMinutes = 5
	original.Undo.WindowSeconds = 9
	original.Locale = "ru_RU.UTF-8"

	data, err := MarshalVersionedConfig(original)
	require.NoError(t, err)

	parsed, err := ParseVersionedConfig(data)
	require.NoError(t, err)

	assert.Equal(t, original, parsed)
}

func TestCurrentVersion(t *testing.T) {
	assert.Equal(t, CurrentVersion, migrations[len(migrations)-1].ToVersion)
}
