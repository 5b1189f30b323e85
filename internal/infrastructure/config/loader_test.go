package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/jumpkey/internal/domain/entity"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("XDG_RUNTIME_DIR", filepath.Join(root, "run"))
	t.Setenv("JUMPKEY_LOG_LEVEL", "")
	t.Setenv("JUMPKEY_LOG_FORMAT", "")
	return root
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), dirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), filePerm))
}

func loadFrom(t *testing.T, content string) *Manager {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, content)

	mgr, err := NewManager(WithConfigFile(path))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	return mgr
}

func TestLoad_ShortcutDefaults(t *testing.T) {
	isolateXDG(t)
	mgr := loadFrom(t, `
[[shortcuts]]
id = "editor"
application_to_focus = "org.gnome.TextEditor.desktop"
keyboard_shortcut = "<Super>e"

[[shortcuts]]
application_to_focus = "kitty.desktop"
keyboard_shortcut = "<Super>Return"
title_to_match = "work"
exact_title_match = true
launch_application = false
command_line_arguments = " --session work.conf "
`)

	got := mgr.Shortcuts(context.Background())
	require.Len(t, got, 2)

	assert.Equal(t, entity.ShortcutConfig{
		ID:                 "editor",
		ApplicationToFocus: "org.gnome.TextEditor.desktop",
		KeyboardShortcut:   "<Super>e",
		LaunchApplication:  true,
		ExactTitleMatch:    false,
	}, got[0])

	assert.Equal(t, entity.ShortcutConfig{
		ID:                   "shortcut-2",
		ApplicationToFocus:   "kitty.desktop",
		KeyboardShortcut:     "<Super>Return",
		TitleToMatch:         "work",
		ExactTitleMatch:      true,
		LaunchApplication:    false,
		CommandLineArguments: "--session work.conf",
	}, got[1], "explicit false must survive defaulting")
}

func TestShortcutEntry_ToEntityKeepsArguments(t *testing.T) {
	tests := []struct {
		name string
		args string
	}{
		{name: "whitespace only", args: "   "},
		{name: "leading space", args: " --new-window"},
		{name: "empty", args: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ShortcutEntry{
				ApplicationToFocus:   "editor.desktop",
				KeyboardShortcut:     "<Super>e",
				CommandLineArguments: tt.args,
			}.ToEntity(0)
			assert.Equal(t, tt.args, cfg.CommandLineArguments)
		})
	}
}

func TestLoad_SectionDefaults(t *testing.T) {
	root := isolateXDG(t)
	mgr := loadFrom(t, "")

	cfg := mgr.Get()
	assert.Empty(t, cfg.Shortcuts)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Journal.Enabled)
	assert.Equal(t, defaultRetentionDays, cfg.Journal.RetentionDays)
	assert.Equal(t, filepath.Join(root, "data", "jumpkey", "jumpkey.sqlite"), cfg.Journal.Path)
	assert.True(t, cfg.Daemon.WatchConfig)
	assert.Equal(t, defaultReloadDebounceMs, cfg.Daemon.ReloadDebounceMs)
}

func TestLoad_EnvOverride(t *testing.T) {
	isolateXDG(t)
	t.Setenv("JUMPKEY_LOG_LEVEL", "debug")
	t.Setenv("JUMPKEY_JOURNAL_RETENTION_DAYS", "3")

	cfg := loadFrom(t, "[logging]\nlevel = \"warn\"\n").Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 3, cfg.Journal.RetentionDays)
}

func TestLoad_InvalidValues(t *testing.T) {
	isolateXDG(t)
	tests := []struct {
		name    string
		content string
	}{
		{"bad level", "[logging]\nlevel = \"loud\"\n"},
		{"bad format", "[logging]\nformat = \"xml\"\n"},
		{"negative retention", "[journal]\nretention_days = -1\n"},
		{"not toml", "[[shortcuts]\nid = \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			writeFile(t, path, tt.content)
			mgr, err := NewManager(WithConfigFile(path))
			require.NoError(t, err)
			assert.Error(t, mgr.Load())
		})
	}
}

func TestLoad_CreatesDefaultFile(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	path := filepath.Join(root, "config", "jumpkey", "config.toml")
	assert.FileExists(t, path)
	assert.Equal(t, path, mgr.GetConfigFile())
	assert.Empty(t, mgr.Shortcuts(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[[shortcuts]]", "header documents the entry format")
}

func TestReload_NotifiesAndKeepsPreviousOnError(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[[shortcuts]]\napplication_to_focus = \"a.desktop\"\nkeyboard_shortcut = \"<Super>a\"\n")

	mgr, err := NewManager(WithConfigFile(path))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var received [][]entity.ShortcutConfig
	mgr.OnShortcutsChange(func(configs []entity.ShortcutConfig) {
		received = append(received, configs)
	})

	writeFile(t, path, "[[shortcuts]]\napplication_to_focus = \"b.desktop\"\nkeyboard_shortcut = \"<Super>b\"\n")
	require.NoError(t, mgr.Reload())
	require.Len(t, received, 1)
	assert.Equal(t, "b.desktop", received[0][0].ApplicationToFocus)

	writeFile(t, path, "[logging]\nlevel = \"loud\"\n")
	assert.Error(t, mgr.Reload())
	assert.Len(t, received, 1)
	assert.Equal(t, "b.desktop", mgr.Shortcuts(context.Background())[0].ApplicationToFocus)
}

func TestWatch_ReloadsOnWriteAlongsideReload(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[[shortcuts]]\napplication_to_focus = \"a.desktop\"\nkeyboard_shortcut = \"<Super>a\"\n")

	mgr, err := NewManager(WithConfigFile(path))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var mu sync.Mutex
	var apps []string
	mgr.OnShortcutsChange(func(configs []entity.ShortcutConfig) {
		mu.Lock()
		defer mu.Unlock()
		if len(configs) > 0 {
			apps = append(apps, configs[0].ApplicationToFocus)
		}
	})

	require.NoError(t, mgr.Watch())
	require.NoError(t, mgr.Watch(), "watching twice is a no-op")
	t.Cleanup(func() { assert.NoError(t, mgr.StopWatching()) })

	// SIGHUP reloads may land while the watcher is reading the same file.
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			_ = mgr.Reload()
		}
	}()

	updated := "[[shortcuts]]\napplication_to_focus = \"b.desktop\"\nkeyboard_shortcut = \"<Super>b\"\n"
	writeFile(t, path, updated)
	wg.Wait()
	// Write again so the last notification comes from the watcher.
	writeFile(t, path, updated)

	// A reload can observe the truncated file mid-write, so the list may be
	// briefly empty.
	assert.Eventually(t, func() bool {
		shortcuts := mgr.Shortcuts(context.Background())
		return len(shortcuts) == 1 && shortcuts[0].ApplicationToFocus == "b.desktop"
	}, 2*time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(apps) > 0 && apps[len(apps)-1] == "b.desktop"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestStopWatching_WithoutWatch(t *testing.T) {
	isolateXDG(t)
	mgr := loadFrom(t, "")
	assert.NoError(t, mgr.StopWatching())
}

func TestGet_ReturnsCopy(t *testing.T) {
	isolateXDG(t)
	mgr := loadFrom(t, "[[shortcuts]]\nid = \"x\"\n")

	cfg := mgr.Get()
	cfg.Shortcuts[0].ID = "mutated"
	assert.Equal(t, "x", mgr.Get().Shortcuts[0].ID)
}
