package testutil

import (
	"context"
	"sync"

	"github.com/bnema/jumpkey/internal/domain/entity"
)

// FakeShortcuts is an in-memory port.ShortcutSource.
type FakeShortcuts struct {
	mu        sync.Mutex
	configs   []entity.ShortcutConfig
	listeners []func([]entity.ShortcutConfig)
}

func NewFakeShortcuts(configs ...entity.ShortcutConfig) *FakeShortcuts {
	return &FakeShortcuts{configs: configs}
}

func (f *FakeShortcuts) Shortcuts(context.Context) []entity.ShortcutConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entity.ShortcutConfig(nil), f.configs...)
}

func (f *FakeShortcuts) OnShortcutsChange(fn func([]entity.ShortcutConfig)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, fn)
}

// Set replaces the list and notifies every listener, like a file write.
func (f *FakeShortcuts) Set(configs ...entity.ShortcutConfig) {
	f.mu.Lock()
	f.configs = configs
	listeners := make([]func([]entity.ShortcutConfig), len(f.listeners))
	copy(listeners, f.listeners)
	f.mu.Unlock()

	for _, fn := range listeners {
		fn(append([]entity.ShortcutConfig(nil), configs...))
	}
}
