package testutil

import (
	"context"
	"sync"

	"github.com/bnema/jumpkey/internal/application/port"
	"github.com/bnema/jumpkey/internal/domain/entity"
)

// FakeSession implements port.WindowSystem and port.ApplicationCatalog over
// an in-memory set of applications and windows, recording every action.
type FakeSession struct {
	mu       sync.Mutex
	apps     map[string]entity.Application
	windows  map[string][]entity.WindowRef
	focused  entity.WindowID
	hasFocus bool

	ActivateErr error
	MinimizeErr error
	LaunchErr   error

	Activated    []entity.WindowID
	Minimized    []entity.WindowID
	Launched     []string
	CommandLines []string
}

func NewFakeSession() *FakeSession {
	return &FakeSession{
		apps:    make(map[string]entity.Application),
		windows: make(map[string][]entity.WindowRef),
	}
}

// Install registers an application.
func (s *FakeSession) Install(app entity.Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apps[app.ID] = app
}

// SetWindows replaces the windows of appID, in native order.
func (s *FakeSession) SetWindows(appID string, windows ...entity.WindowRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.windows[appID] = windows
}

// Focus marks id as the focused window.
func (s *FakeSession) Focus(id entity.WindowID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focused, s.hasFocus = id, true
}

// ClearFocus leaves no window focused.
func (s *FakeSession) ClearFocus() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focused, s.hasFocus = 0, false
}

func (s *FakeSession) WindowsForApp(_ context.Context, app entity.Application) ([]entity.WindowRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.WindowRef(nil), s.windows[app.ID]...), nil
}

func (s *FakeSession) FocusedWindow(context.Context) (entity.WindowID, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focused, s.hasFocus, nil
}

func (s *FakeSession) Activate(_ context.Context, id entity.WindowID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ActivateErr != nil {
		return s.ActivateErr
	}
	s.Activated = append(s.Activated, id)
	s.focused, s.hasFocus = id, true
	return nil
}

func (s *FakeSession) Minimize(_ context.Context, id entity.WindowID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.MinimizeErr != nil {
		return s.MinimizeErr
	}
	s.Minimized = append(s.Minimized, id)
	if s.focused == id {
		s.focused, s.hasFocus = 0, false
	}
	return nil
}

func (s *FakeSession) Lookup(_ context.Context, appID string) (entity.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.apps[appID]
	if !ok {
		return entity.Application{}, port.ErrApplicationNotFound
	}
	return app, nil
}

func (s *FakeSession) List(context.Context) ([]entity.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Application, 0, len(s.apps))
	for _, app := range s.apps {
		out = append(out, app)
	}
	return out, nil
}

func (s *FakeSession) Launch(_ context.Context, appID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LaunchErr != nil {
		return s.LaunchErr
	}
	s.Launched = append(s.Launched, appID)
	return nil
}

func (s *FakeSession) LaunchCommandLine(_ context.Context, _ string, commandLine string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LaunchErr != nil {
		return s.LaunchErr
	}
	s.CommandLines = append(s.CommandLines, commandLine)
	return nil
}

// LaunchCount returns how many launches were recorded, with or without
// arguments.
func (s *FakeSession) LaunchCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Launched) + len(s.CommandLines)
}

// ActivatedWindows returns a copy of the activation history.
func (s *FakeSession) ActivatedWindows() []entity.WindowID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.WindowID(nil), s.Activated...)
}
