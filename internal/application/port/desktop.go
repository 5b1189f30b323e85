package port

import "context"

// AutostartStatus describes the daemon's session autostart entry.
type AutostartStatus struct {
	Installed      bool
	EntryPath      string
	ExecutablePath string
}

// Autostart manages the XDG autostart entry that starts the daemon at login.
type Autostart interface {
	// Status checks whether the entry is installed.
	Status(ctx context.Context) (*AutostartStatus, error)

	// Enable writes the entry and returns its path.
	// Idempotent: safe to call multiple times.
	Enable(ctx context.Context) (string, error)

	// Disable removes the entry.
	// Idempotent: returns nil if the file doesn't exist.
	Disable(ctx context.Context) error
}
