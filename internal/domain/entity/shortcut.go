package entity

import "strings"

// ShortcutConfig is one user-configured shortcut. The settings store owns it;
// jumpkey only reads it.
type ShortcutConfig struct {
	ID                   string
	ApplicationToFocus   string // desktop id, e.g. "org.gnome.TextEditor.desktop"
	TitleToMatch         string // empty matches every window
	ExactTitleMatch      bool
	LaunchApplication    bool
	CommandLineArguments string
	KeyboardShortcut     string // GTK accelerator syntax, e.g. "<Super>e"
}

// Defaults for fields the user omitted.
const (
	DefaultLaunchApplication = true
	DefaultExactTitleMatch   = false
)

// NewShortcutConfig returns a config with the documented defaults applied.
func NewShortcutConfig(id, appID, accelerator string) ShortcutConfig {
	return ShortcutConfig{
		ID:                 id,
		ApplicationToFocus: appID,
		KeyboardShortcut:   accelerator,
		ExactTitleMatch:    DefaultExactTitleMatch,
		LaunchApplication:  DefaultLaunchApplication,
	}
}

// Normalize trims whitespace around the identifier-like fields.
// The title filter and the launch arguments are literal and left untouched.
func (c ShortcutConfig) Normalize() ShortcutConfig {
	c.ID = strings.TrimSpace(c.ID)
	c.ApplicationToFocus = strings.TrimSpace(c.ApplicationToFocus)
	c.KeyboardShortcut = strings.TrimSpace(c.KeyboardShortcut)
	return c
}

// IsComplete reports whether the config can produce a binding.
func (c ShortcutConfig) IsComplete() bool {
	return c.KeyboardShortcut != "" && c.ApplicationToFocus != ""
}

// HasTitleFilter reports whether windows must be filtered by title.
func (c ShortcutConfig) HasTitleFilter() bool {
	return c.TitleToMatch != ""
}
