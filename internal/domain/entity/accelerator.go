package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Modifier is a keyboard modifier in an accelerator.
type Modifier string

const (
	ModShift   Modifier = "Shift"
	ModControl Modifier = "Control"
	ModAlt     Modifier = "Alt"
	ModSuper   Modifier = "Super"
	ModMeta    Modifier = "Meta"
	ModHyper   Modifier = "Hyper"
)

var modifierOrder = []Modifier{ModShift, ModControl, ModAlt, ModSuper, ModMeta, ModHyper}

var modifierAliases = map[string]Modifier{
	"shift":   ModShift,
	"control": ModControl,
	"ctrl":    ModControl,
	"ctl":     ModControl,
	"primary": ModControl,
	"alt":     ModAlt,
	"mod1":    ModAlt,
	"super":   ModSuper,
	"mod4":    ModSuper,
	"meta":    ModMeta,
	"hyper":   ModHyper,
}

var (
	ErrEmptyAccelerator      = errors.New("accelerator is empty")
	ErrUnknownModifier       = errors.New("unknown modifier")
	ErrMissingAcceleratorKey = errors.New("accelerator has no key")
)

// Accelerator is a parsed GTK-style key combination such as "<Super><Shift>t".
type Accelerator struct {
	Modifiers []Modifier // canonical order, no duplicates
	Key       string
}

// ParseAccelerator parses the "<Mod>...<Mod>key" notation. Modifier names are
// case-insensitive and "Primary" maps to Control.
func ParseAccelerator(s string) (Accelerator, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Accelerator{}, ErrEmptyAccelerator
	}

	seen := make(map[Modifier]bool)
	rest := s
	for strings.HasPrefix(rest, "<") {
		end := strings.IndexByte(rest, '>')
		if end < 0 {
			return Accelerator{}, fmt.Errorf("%q: unterminated modifier", s)
		}
		name := strings.ToLower(rest[1:end])
		mod, ok := modifierAliases[name]
		if !ok {
			return Accelerator{}, fmt.Errorf("%w %q in %q", ErrUnknownModifier, rest[1:end], s)
		}
		seen[mod] = true
		rest = rest[end+1:]
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return Accelerator{}, fmt.Errorf("%w: %q", ErrMissingAcceleratorKey, s)
	}
	if strings.ContainsAny(rest, "<> \t") {
		return Accelerator{}, fmt.Errorf("%q: invalid key name %q", s, rest)
	}

	acc := Accelerator{Key: rest}
	for _, mod := range modifierOrder {
		if seen[mod] {
			acc.Modifiers = append(acc.Modifiers, mod)
		}
	}
	return acc, nil
}

// Has reports whether the accelerator uses mod.
func (a Accelerator) Has(mod Modifier) bool {
	for _, m := range a.Modifiers {
		if m == mod {
			return true
		}
	}
	return false
}

// String renders the canonical GTK form.
func (a Accelerator) String() string {
	var b strings.Builder
	for _, m := range a.Modifiers {
		b.WriteString("<")
		b.WriteString(string(m))
		b.WriteString(">")
	}
	b.WriteString(a.Key)
	return b.String()
}
