package config

import (
	"fmt"
	"time"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	defaultMaxLogAgeDays    = 7
	defaultRetentionDays    = 90
	defaultReloadDebounceMs = 200
	defaultLogLevel         = "info"
	defaultLogFormat        = "console"
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for jumpkey.
func DefaultConfig() *Config {
	return &Config{
		Shortcuts: []ShortcutEntry{},
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			EnableFileLog: false,
			LogDir:        getDefaultLogDir(),
			MaxAge:        defaultMaxLogAgeDays,
		},
		Journal: JournalConfig{
			Enabled: true,
			// Path is set dynamically in Load()
			RetentionDays: defaultRetentionDays,
		},
		Daemon: DaemonConfig{
			WatchConfig:      true,
			ReloadDebounceMs: defaultReloadDebounceMs,
		},
	}
}

// ReloadDebounce returns the reload coalescing window.
func (d DaemonConfig) ReloadDebounce() time.Duration {
	return time.Duration(d.ReloadDebounceMs) * time.Millisecond
}

func defaultShortcutID(index int) string {
	return fmt.Sprintf("shortcut-%d", index+1)
}
