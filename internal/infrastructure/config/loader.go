package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/jumpkey/internal/application/port"
	"github.com/bnema/jumpkey/internal/domain/entity"
	"github.com/bnema/jumpkey/internal/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
// Every use of viper happens with mu held.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string // explicit path, empty for the XDG location
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watcher    *fsnotify.Watcher
}

// Option customizes a Manager.
type Option func(*Manager)

// WithConfigFile reads path instead of $XDG_CONFIG_HOME/jumpkey/config.toml.
func WithConfigFile(path string) Option {
	return func(m *Manager) {
		m.configFile = path
	}
}

// NewManager creates a new configuration manager.
func NewManager(opts ...Option) (*Manager, error) {
	v := viper.New()
	m := &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}
	for _, opt := range opts {
		opt(m)
	}

	v.SetConfigType("toml")
	if m.configFile != "" {
		v.SetConfigFile(m.configFile)
	} else {
		v.SetConfigName("config")
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.AddConfigPath(configDir)
	}

	// JUMPKEY_LOGGING_LEVEL, JUMPKEY_JOURNAL_ENABLED, ...
	v.SetEnvPrefix("JUMPKEY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short aliases shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", "JUMPKEY_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind JUMPKEY_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "JUMPKEY_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind JUMPKEY_LOG_FORMAT: %w", err)
	}

	return m, nil
}

// Load loads the configuration from file and environment variables.
// A missing file is replaced by a default one.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.configFile == "" {
		if err := EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to ensure directories: %w", err)
		}
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.path(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.path(),
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

// decode unmarshals, fills dynamic paths, normalizes and validates.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	if err := ensureJournalPath(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func ensureJournalPath(config *Config) error {
	if config.Journal.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Journal.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = logging.FormatJSON
	case "", "text", "console":
		config.Logging.Format = logging.FormatConsole
	}
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	if config.Logging.LogDir == "" {
		config.Logging.LogDir = getDefaultLogDir()
	}
	if config.Daemon.ReloadDebounceMs < 0 {
		config.Daemon.ReloadDebounceMs = 0
	}
	if config.Shortcuts == nil {
		config.Shortcuts = []ShortcutEntry{}
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Shortcuts = append([]ShortcutEntry(nil), m.config.Shortcuts...)
	return &configCopy
}

// Shortcuts returns the current shortcut list with defaults applied.
func (m *Manager) Shortcuts(_ context.Context) []entity.ShortcutConfig {
	return m.Get().ShortcutConfigs()
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.configFileLocked()
}

func (m *Manager) configFileLocked() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.path()
}

func (m *Manager) path() string {
	if m.configFile != "" {
		return m.configFile
	}
	configFile, err := GetConfigFile()
	if err != nil {
		return "config.toml"
	}
	return configFile
}

// createDefaultConfig writes the default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile := m.path()
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteDefaultConfig(configFile); err != nil {
		return err
	}
	m.viper.SetConfigFile(configFile)

	log := logging.NewFromEnv()
	log.Info().Str("path", configFile).Msg("created default configuration file")
	return nil
}

// setDefaults sets default configuration values in Viper. Per-shortcut
// defaults are applied in ShortcutEntry.ToEntity since viper cannot default
// fields inside arrays of tables.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)

	m.viper.SetDefault("journal.enabled", defaults.Journal.Enabled)
	m.viper.SetDefault("journal.retention_days", defaults.Journal.RetentionDays)

	m.viper.SetDefault("daemon.watch_config", defaults.Daemon.WatchConfig)
	m.viper.SetDefault("daemon.reload_debounce_ms", defaults.Daemon.ReloadDebounceMs)
}

var _ port.ShortcutSource = (*Manager)(nil)
