package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// AppName names the per-user config and data directories
const AppName = "taskmaster"

// ProjectFileName is the config file looked up in the working directory
const ProjectFileName = ".taskmaster.json"

// Config represents the full TaskMaster configuration
type Config struct {
	Storage StorageConfig `json:"storage"`
	Cleanup CleanupConfig `json:"cleanup"`
	Undo    UndoConfig    `json:"undo"`
	Log     LogConfig     `json:"log"`
	// Locale overrides the host locale used when the language setting is "auto"
	Locale string `json:"locale"`
}

// StorageConfig selects where board data lives
type StorageConfig struct {
	Backend  string `json:"backend"`
	DataPath string `json:"dataPath"`
}

// CleanupConfig contains periodic cleanup settings
type CleanupConfig struct {
	IntervalMinutes int `json:"intervalMinutes"`
}

// UndoConfig contains delete and quick-complete undo settings
type UndoConfig struct {
	WindowSeconds int `json:"windowSeconds"`
	MaxVisible    int `json:"maxVisible"`
}

// LogConfig contains logging settings
type LogConfig struct {
	File  string `json:"file"`
	Level string `json:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	dataDir := DataDir()

	return &Config{
		Storage: StorageConfig{
			Backend:  "file",
			DataPath: filepath.Join(dataDir, "data.json"),
		},
		Cleanup: CleanupConfig{
			IntervalMinutes: 60,
		},
		Undo: UndoConfig{
			WindowSeconds: 5,
			MaxVisible:    3,
		},
		Log: LogConfig{
			File:  filepath.Join(dataDir, "taskmaster.log"),
			Level: "info",
		},
	}
}

// DataDir returns the per-user directory holding data and logs
func DataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, AppName)
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, "."+AppName)
}

// UserConfigPath returns the per-user config file location
func UserConfigPath() string {
	return filepath.Join(DataDir(), "config.json")
}

// LoadConfig loads configuration with priority:
// 1. .taskmaster.json in dir (with version migration support)
// 2. the per-user config file
// 3. Defaults
func LoadConfig(dir string) (*Config, error) {
	projectPath := filepath.Join(dir, ProjectFileName)
	if cfg, err := loadIfExists(projectPath); cfg != nil || err != nil {
		return cfg, err
	}
	if cfg, err := loadIfExists(UserConfigPath()); cfg != nil || err != nil {
		return cfg, err
	}
	return DefaultConfig(), nil
}

// LoadFile loads the config file at path, which must exist
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := ParseVersionedConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return MergeWithDefaults(cfg), nil
}

func loadIfExists(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return LoadFile(path)
}

// SaveConfig saves configuration to the specified path with version information
func SaveConfig(cfg *Config, path string) error {
	data, err := MarshalVersionedConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	// Merge Storage config
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = defaults.Storage.Backend
	}
	if cfg.Storage.DataPath == "" {
		cfg.Storage.DataPath = DefaultDataPath(cfg.Storage.Backend)
	}

	// Merge Cleanup config
	if cfg.Cleanup.IntervalMinutes == 0 {
		cfg.Cleanup.IntervalMinutes = defaults.Cleanup.IntervalMinutes
	}

	// Merge Undo config
	if cfg.Undo.WindowSeconds == 0 {
		cfg.Undo.WindowSeconds = defaults.Undo.WindowSeconds
	}
	if cfg.Undo.MaxVisible == 0 {
		cfg.Undo.MaxVisible = defaults.Undo.MaxVisible
	}

	// Merge Log config
	if cfg.Log.File == "" {
		cfg.Log.File = defaults.Log.File
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	return cfg
}

// DefaultDataPath returns the data location used for a backend when none is configured
func DefaultDataPath(backend string) string {
	if backend == "sqlite" {
		return filepath.Join(DataDir(), "taskmaster.db")
	}
	return filepath.Join(DataDir(), "data.json")
}

// Validate reports the first invalid value
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("invalid storage backend %q (want file or sqlite)", c.Storage.Backend)
	}
	if c.Cleanup.IntervalMinutes < 1 {
		return fmt.Errorf("cleanup interval must be at least one minute, got %d", c.Cleanup.IntervalMinutes)
	}
	if c.Undo.WindowSeconds < 1 {
		return fmt.Errorf("undo window must be at least one second, got %d", c.Undo.WindowSeconds)
	}
	if c.Undo.MaxVisible < 1 {
		return fmt.Errorf("undo max visible must be at least 1, got %d", c.Undo.MaxVisible)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel converts a log level name to a slog level
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", name)
	}
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
