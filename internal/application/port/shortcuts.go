package port

import (
	"context"

	"github.com/bnema/jumpkey/internal/domain/entity"
)

// ShortcutSource is the read side of the settings store.
type ShortcutSource interface {
	// Shortcuts returns the current configuration list.
	Shortcuts(ctx context.Context) []entity.ShortcutConfig
	// OnShortcutsChange registers fn to run after every configuration change.
	OnShortcutsChange(fn func(configs []entity.ShortcutConfig))
}
