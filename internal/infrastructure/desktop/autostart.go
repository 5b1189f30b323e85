package desktop

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/bnema/jumpkey/internal/application/port"
	"github.com/bnema/jumpkey/internal/logging"
)

const (
	appName        = "jumpkey"
	autostartEntry = "jumpkey.desktop"
	filePerm       = 0o644
	dirPerm        = 0o755
)

// autostartTemplate is the freedesktop.org desktop entry format.
// %s placeholder for executable path.
const autostartTemplate = `[Desktop Entry]
Type=Application
Name=jumpkey
Comment=Global shortcuts to focus or launch applications
Exec=%s run
Terminal=false
NoDisplay=true
X-GNOME-Autostart-enabled=true
`

// AutostartAdapter implements port.Autostart.
type AutostartAdapter struct {
	configHome string // overrides $XDG_CONFIG_HOME when set
	executable func() (string, error)
}

// NewAutostart creates a new autostart adapter.
func NewAutostart() *AutostartAdapter {
	return &AutostartAdapter{executable: getExecutablePath}
}

func (a *AutostartAdapter) entryPath() (string, error) {
	configHome := a.configHome
	if configHome == "" {
		configHome = os.Getenv("XDG_CONFIG_HOME")
	}
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "autostart", autostartEntry), nil
}

// getExecutablePath returns the path to the jumpkey executable.
func getExecutablePath() (string, error) {
	execPath, err := os.Executable()
	if err == nil {
		if resolved, symlinkErr := filepath.EvalSymlinks(execPath); symlinkErr == nil {
			execPath = resolved
		}
		return execPath, nil
	}

	path, err := exec.LookPath(appName)
	if err != nil {
		return "", fmt.Errorf("cannot find %s executable: %w", appName, err)
	}
	return path, nil
}

// Status checks the current autostart state.
func (a *AutostartAdapter) Status(ctx context.Context) (*port.AutostartStatus, error) {
	entryPath, err := a.entryPath()
	if err != nil {
		return nil, err
	}
	status := &port.AutostartStatus{EntryPath: entryPath}

	if _, statErr := os.Stat(entryPath); statErr == nil {
		status.Installed = true
	}
	if execPath, execErr := a.executable(); execErr == nil {
		status.ExecutablePath = execPath
	}

	logging.FromContext(ctx).Debug().
		Bool("installed", status.Installed).
		Str("entry_path", status.EntryPath).
		Str("exec_path", status.ExecutablePath).
		Msg("autostart status")
	return status, nil
}

// Enable writes the autostart entry.
func (a *AutostartAdapter) Enable(ctx context.Context) (string, error) {
	execPath, err := a.executable()
	if err != nil {
		return "", err
	}
	entryPath, err := a.entryPath()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(entryPath), dirPerm); err != nil {
		return "", fmt.Errorf("create autostart dir: %w", err)
	}
	content := fmt.Sprintf(autostartTemplate, execPath)
	if err := os.WriteFile(entryPath, []byte(content), filePerm); err != nil {
		return "", fmt.Errorf("write autostart entry: %w", err)
	}

	logging.FromContext(ctx).Info().Str("path", entryPath).Msg("autostart entry installed")
	return entryPath, nil
}

// Disable removes the autostart entry.
func (a *AutostartAdapter) Disable(ctx context.Context) error {
	log := logging.FromContext(ctx)

	entryPath, err := a.entryPath()
	if err != nil {
		return err
	}

	if err := os.Remove(entryPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", entryPath).Msg("autostart entry not found (already removed)")
			return nil
		}
		return fmt.Errorf("remove autostart entry: %w", err)
	}

	log.Info().Str("path", entryPath).Msg("autostart entry removed")
	return nil
}

var _ port.Autostart = (*AutostartAdapter)(nil)
