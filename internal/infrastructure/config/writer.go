package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const defaultConfigHeader = `# jumpkey configuration
#
# Each [[shortcuts]] table binds a key combination to an application:
#
# [[shortcuts]]
#   id = "editor"
#   application_to_focus = "org.gnome.TextEditor.desktop"
#   keyboard_shortcut = "<Super>e"
#   title_to_match = ""            # optional, substring unless exact_title_match
#   exact_title_match = false
#   launch_application = true      # start it when no window matches
#   command_line_arguments = ""    # appended to the executable on launch
#
# Run "jumpkey apps" to find application ids.

`

// WriteConfig encodes cfg as TOML at path.
func WriteConfig(cfg *Config, path string, header string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	buf.WriteString(header)

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// WriteDefaultConfig writes the defaults with an explanatory header. It never
// overwrites an existing file.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	cfg := DefaultConfig()
	// Machine-specific paths are resolved at load time.
	cfg.Logging.LogDir = ""
	return WriteConfig(cfg, path, defaultConfigHeader)
}
