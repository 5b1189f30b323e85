package entity

import "time"

// Activation is one journaled shortcut press.
type Activation struct {
	ID          int64
	ShortcutID  string
	Accelerator string
	AppID       string
	Action      ActionKind
	WindowID    WindowID
	Error       string
	CreatedAt   time.Time
}

// Failed reports whether executing the action returned an error.
func (a *Activation) Failed() bool {
	return a.Error != ""
}

// ActivationStats aggregates journal entries per shortcut.
type ActivationStats struct {
	ShortcutID  string
	Accelerator string
	Presses     int64
	Failures    int64
	LastPressed time.Time
}
