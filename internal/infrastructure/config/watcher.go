package config

import (
	"fmt"
	"path/filepath"

	"github.com/bnema/jumpkey/internal/domain/entity"
	"github.com/bnema/jumpkey/internal/logging"
	"github.com/fsnotify/fsnotify"
)

// Watch starts watching the config file and reloads it after every write.
// A file that fails to parse or validate keeps the previous configuration.
// File events go through Reload, so they never race a SIGHUP reload.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watcher != nil {
		return nil
	}

	file := filepath.Clean(m.configFileLocked())
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create config watcher: %w", err)
	}
	// Editors often save by renaming a temp file over the config, so the
	// directory is watched rather than the file.
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(file), err)
	}

	m.watcher = watcher
	go m.watchLoop(watcher, file)
	return nil
}

// StopWatching stops the watcher started by Watch. Safe to call when not
// watching.
func (m *Manager) StopWatching() error {
	m.mu.Lock()
	watcher := m.watcher
	m.watcher = nil
	m.mu.Unlock()

	if watcher == nil {
		return nil
	}
	return watcher.Close()
}

func (m *Manager) watchLoop(watcher *fsnotify.Watcher, file string) {
	log := logging.NewFromEnv()
	for {
		select {
		case e, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != file || e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")
			if err := m.Reload(); err != nil {
				log.Warn().Err(err).Msg("failed to reload config, keeping previous shortcuts")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("config watcher error")
		}
	}
}

// Reload re-reads the file and notifies subscribers. Used for SIGHUP.
func (m *Manager) Reload() error {
	m.mu.Lock()
	if err := m.reload(); err != nil {
		m.mu.Unlock()
		return err
	}
	m.notifyCallbacksLocked()
	return nil
}

// notifyCallbacksLocked copies callbacks and config, releases lock, then notifies.
// Must be called with m.mu held for write. Releases the lock before calling callbacks.
func (m *Manager) notifyCallbacksLocked() {
	config := m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(config)
	}
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// OnShortcutsChange registers fn to receive the shortcut list after every change.
func (m *Manager) OnShortcutsChange(fn func(configs []entity.ShortcutConfig)) {
	m.OnConfigChange(func(c *Config) {
		fn(c.ShortcutConfigs())
	})
}

// reload must be called with the lock held for write.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}
