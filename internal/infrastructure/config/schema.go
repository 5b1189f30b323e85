package config

import "github.com/bnema/jumpkey/internal/domain/entity"

// Config represents the complete configuration for jumpkey.
type Config struct {
	// Shortcuts maps key combinations to applications. Order matters: when two
	// entries share an accelerator the first one wins.
	Shortcuts []ShortcutEntry `mapstructure:"shortcuts" toml:"shortcuts" json:"shortcuts"`
	Logging   LoggingConfig   `mapstructure:"logging" toml:"logging" json:"logging"`
	Journal   JournalConfig   `mapstructure:"journal" toml:"journal" json:"journal"`
	Daemon    DaemonConfig    `mapstructure:"daemon" toml:"daemon" json:"daemon"`
}

// ShortcutEntry is one [[shortcuts]] table. Booleans are pointers so an
// omitted key can fall back to its default while an explicit false is kept.
type ShortcutEntry struct {
	ID string `mapstructure:"id" toml:"id" json:"id,omitempty"`
	// ApplicationToFocus is a desktop file id, e.g. "org.gnome.TextEditor.desktop".
	ApplicationToFocus string `mapstructure:"application_to_focus" toml:"application_to_focus" json:"application_to_focus"`
	// TitleToMatch restricts the shortcut to windows whose title matches.
	TitleToMatch    string `mapstructure:"title_to_match" toml:"title_to_match,omitempty" json:"title_to_match,omitempty"`
	ExactTitleMatch *bool  `mapstructure:"exact_title_match" toml:"exact_title_match,omitempty" json:"exact_title_match,omitempty"`
	// LaunchApplication starts the application when no window matches (default true).
	LaunchApplication *bool `mapstructure:"launch_application" toml:"launch_application,omitempty" json:"launch_application,omitempty"`
	// CommandLineArguments are appended to the executable on launch.
	CommandLineArguments string `mapstructure:"command_line_arguments" toml:"command_line_arguments,omitempty" json:"command_line_arguments,omitempty"`
	// KeyboardShortcut uses GTK accelerator syntax, e.g. "<Super>e".
	KeyboardShortcut string `mapstructure:"keyboard_shortcut" toml:"keyboard_shortcut" json:"keyboard_shortcut"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" json:"level"`
	Format        string `mapstructure:"format" toml:"format" json:"format"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxAge        int    `mapstructure:"max_age" toml:"max_age" json:"max_age"`
}

// JournalConfig controls the activation journal.
type JournalConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	// Path is the SQLite file; empty means $XDG_DATA_HOME/jumpkey/jumpkey.sqlite.
	Path          string `mapstructure:"path" toml:"path,omitempty" json:"path,omitempty"`
	RetentionDays int    `mapstructure:"retention_days" toml:"retention_days" json:"retention_days"`
}

// DaemonConfig controls the long-running process.
type DaemonConfig struct {
	// WatchConfig rebinds shortcuts whenever the file changes.
	WatchConfig bool `mapstructure:"watch_config" toml:"watch_config" json:"watch_config"`
	// ReloadDebounceMs groups bursts of file events into one rebuild.
	ReloadDebounceMs int `mapstructure:"reload_debounce_ms" toml:"reload_debounce_ms" json:"reload_debounce_ms"`
}

// ToEntity converts the entry, applying defaults for omitted keys.
// index is used to name entries without an id.
func (e ShortcutEntry) ToEntity(index int) entity.ShortcutConfig {
	id := e.ID
	if id == "" {
		id = defaultShortcutID(index)
	}

	cfg := entity.NewShortcutConfig(id, e.ApplicationToFocus, e.KeyboardShortcut)
	cfg.TitleToMatch = e.TitleToMatch
	cfg.CommandLineArguments = e.CommandLineArguments
	if e.ExactTitleMatch != nil {
		cfg.ExactTitleMatch = *e.ExactTitleMatch
	}
	if e.LaunchApplication != nil {
		cfg.LaunchApplication = *e.LaunchApplication
	}
	return cfg.Normalize()
}

// ShortcutConfigs converts every entry in order.
func (c *Config) ShortcutConfigs() []entity.ShortcutConfig {
	out := make([]entity.ShortcutConfig, 0, len(c.Shortcuts))
	for i, e := range c.Shortcuts {
		out = append(out, e.ToEntity(i))
	}
	return out
}
