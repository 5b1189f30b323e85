package port

import (
	"context"
	"errors"

	"github.com/bnema/jumpkey/internal/domain/entity"
)

//go:generate mockgen -source=windows.go -destination=mocks/mock_window_system.go -package=mocks

// ErrApplicationNotFound is returned when no installed application has the id.
var ErrApplicationNotFound = errors.New("application not found")

// WindowSystem reads and manipulates the live window set.
type WindowSystem interface {
	// WindowsForApp lists the application's windows in the platform's native order.
	WindowsForApp(ctx context.Context, app entity.Application) ([]entity.WindowRef, error)
	// FocusedWindow returns the window holding input focus; ok is false when none does.
	FocusedWindow(ctx context.Context) (id entity.WindowID, ok bool, err error)
	// Activate raises and focuses the window, switching desktop if needed.
	Activate(ctx context.Context, id entity.WindowID) error
	// Minimize iconifies the window.
	Minimize(ctx context.Context, id entity.WindowID) error
}

// ApplicationCatalog looks up and launches installed applications.
type ApplicationCatalog interface {
	// Lookup returns ErrApplicationNotFound when appID is not installed.
	Lookup(ctx context.Context, appID string) (entity.Application, error)
	// List returns the applications a picker should offer.
	List(ctx context.Context) ([]entity.Application, error)
	// Launch opens a new window of the application.
	Launch(ctx context.Context, appID string) error
	// LaunchCommandLine starts commandLine as a one-off application.
	LaunchCommandLine(ctx context.Context, appID, commandLine string) error
}
