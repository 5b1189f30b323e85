package x11

import (
	"fmt"
	"strings"

	"github.com/bnema/jumpkey/internal/application/port"
	"github.com/bnema/jumpkey/internal/domain/entity"
)

// xgbutil modifier names for each accelerator modifier.
var modifierNames = map[entity.Modifier]string{
	entity.ModShift:   "shift",
	entity.ModControl: "control",
	entity.ModAlt:     "mod1",
	entity.ModMeta:    "mod1",
	entity.ModSuper:   "mod4",
	entity.ModHyper:   "mod3",
}

// TranslateAccelerator converts GTK syntax ("<Super><Shift>t") into the
// keybind string form ("mod4-shift-t").
func TranslateAccelerator(accelerator string) (string, error) {
	acc, err := entity.ParseAccelerator(accelerator)
	if err != nil {
		return "", fmt.Errorf("%w: %w", port.ErrInvalidAccelerator, err)
	}

	parts := make([]string, 0, len(acc.Modifiers)+1)
	seen := make(map[string]bool, len(acc.Modifiers))
	for _, mod := range acc.Modifiers {
		name := modifierNames[mod]
		if seen[name] {
			continue
		}
		seen[name] = true
		parts = append(parts, name)
	}
	parts = append(parts, acc.Key)
	return strings.Join(parts, "-"), nil
}

// canonicalAccelerator folds aliases so "<Primary>a" and "<ctrl>a" collide.
func canonicalAccelerator(accelerator string) string {
	acc, err := entity.ParseAccelerator(accelerator)
	if err != nil {
		return accelerator
	}
	return acc.String()
}
