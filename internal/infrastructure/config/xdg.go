package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "jumpkey"
	databaseName = "jumpkey.sqlite"
	lockName     = "jumpkey.lock"
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome  string
	DataHome    string
	StateHome   string
	RuntimeHome string
}

// GetXDGDirs returns the XDG Base Directory paths for jumpkey:
// - $XDG_CONFIG_HOME/jumpkey (default: ~/.config/jumpkey)
// - $XDG_DATA_HOME/jumpkey (default: ~/.local/share/jumpkey)
// - $XDG_STATE_HOME/jumpkey (default: ~/.local/state/jumpkey)
// - $XDG_RUNTIME_DIR/jumpkey (default: the state directory)
func GetXDGDirs() (*XDGDirs, error) {
	// Development mode: use .dev directory in current working directory
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{
			ConfigHome:  devDir,
			DataHome:    devDir,
			StateHome:   devDir,
			RuntimeHome: devDir,
		}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configHome := xdgDir("XDG_CONFIG_HOME", filepath.Join(homeDir, ".config"))
	dataHome := xdgDir("XDG_DATA_HOME", filepath.Join(homeDir, ".local", "share"))
	stateHome := xdgDir("XDG_STATE_HOME", filepath.Join(homeDir, ".local", "state"))

	runtimeHome := stateHome
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		runtimeHome = filepath.Join(dir, appName)
	}

	return &XDGDirs{
		ConfigHome:  configHome,
		DataHome:    dataHome,
		StateHome:   stateHome,
		RuntimeHome: runtimeHome,
	}, nil
}

func xdgDir(env, fallback string) string {
	base := os.Getenv(env)
	if base == "" {
		base = fallback
	}
	return filepath.Join(base, appName)
}

// GetConfigDir returns the XDG config directory for jumpkey.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetDataDir returns the XDG data directory for jumpkey.
func GetDataDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.DataHome, nil
}

// GetStateDir returns the XDG state directory for jumpkey.
func GetStateDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.StateHome, nil
}

// GetLogDir returns the log directory. Logs are state, not data.
func GetLogDir() (string, error) {
	stateDir, err := GetStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(stateDir, "logs"), nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// GetDatabaseFile returns the path to the activation journal.
func GetDatabaseFile() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, databaseName), nil
}

// GetLockFile returns the single-instance lock path.
func GetLockFile() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.RuntimeHome, lockName), nil
}

// EnsureDirectories creates the XDG directories if they don't exist.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return err
	}

	for _, dir := range []string{dirs.ConfigHome, dirs.DataHome, dirs.StateHome, dirs.RuntimeHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}

	return nil
}
