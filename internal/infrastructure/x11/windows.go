package x11

import (
	"context"
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/bnema/jumpkey/internal/application/port"
	"github.com/bnema/jumpkey/internal/domain/entity"
	"github.com/bnema/jumpkey/internal/logging"
)

const stickyDesktop = 0xFFFFFFFF

// Window types that never count as an application window.
var skippedTypes = map[string]bool{
	"_NET_WM_WINDOW_TYPE_DESKTOP": true,
	"_NET_WM_WINDOW_TYPE_DOCK":    true,
	"_NET_WM_WINDOW_TYPE_TOOLBAR": true,
	"_NET_WM_WINDOW_TYPE_MENU":    true,
	"_NET_WM_WINDOW_TYPE_SPLASH":  true,
}

// client is what we read about one managed window.
type client struct {
	id       xproto.Window
	title    string
	instance string
	class    string
	desktop  int
	skip     bool
}

// WindowSystem implements port.WindowSystem through EWMH requests to the
// running window manager.
type WindowSystem struct {
	xu *xgbutil.XUtil
}

// NewWindowSystem creates a window system bound to s.
func NewWindowSystem(s *Session) *WindowSystem {
	return &WindowSystem{xu: s.xu}
}

// WindowsForApp lists the application's windows in _NET_CLIENT_LIST order.
func (w *WindowSystem) WindowsForApp(ctx context.Context, app entity.Application) ([]entity.WindowRef, error) {
	ids, err := ewmh.ClientListGet(w.xu)
	if err != nil {
		return nil, fmt.Errorf("read _NET_CLIENT_LIST: %w", err)
	}

	clients := make([]client, 0, len(ids))
	for _, id := range ids {
		clients = append(clients, w.describe(id))
	}

	windows := selectWindows(app, clients)
	logging.FromContext(ctx).Trace().
		Str("app_id", app.ID).
		Int("clients", len(clients)).
		Int("windows", len(windows)).
		Msg("resolved application windows")
	return windows, nil
}

func (w *WindowSystem) describe(id xproto.Window) client {
	c := client{id: id, desktop: -1}

	if name, err := ewmh.WmNameGet(w.xu, id); err == nil && name != "" {
		c.title = name
	} else if name, err := icccm.WmNameGet(w.xu, id); err == nil {
		c.title = name
	}

	if class, err := icccm.WmClassGet(w.xu, id); err == nil && class != nil {
		c.instance = class.Instance
		c.class = class.Class
	}

	if desk, err := ewmh.WmDesktopGet(w.xu, id); err == nil && desk != stickyDesktop {
		c.desktop = int(desk)
	}

	if types, err := ewmh.WmWindowTypeGet(w.xu, id); err == nil {
		for _, t := range types {
			if skippedTypes[t] {
				c.skip = true
			}
		}
	}
	if states, err := ewmh.WmStateGet(w.xu, id); err == nil {
		for _, s := range states {
			if s == "_NET_WM_STATE_SKIP_TASKBAR" {
				c.skip = true
			}
		}
	}
	return c
}

// selectWindows keeps the clients owned by app, preserving order.
func selectWindows(app entity.Application, clients []client) []entity.WindowRef {
	var out []entity.WindowRef
	for _, c := range clients {
		if c.skip || !app.OwnsWindow(c.instance, c.class) {
			continue
		}
		out = append(out, entity.WindowRef{
			ID:      entity.WindowID(c.id),
			Title:   c.title,
			Class:   c.class,
			Desktop: c.desktop,
		})
	}
	return out
}

// FocusedWindow returns _NET_ACTIVE_WINDOW. ok is false when nothing has focus.
func (w *WindowSystem) FocusedWindow(_ context.Context) (entity.WindowID, bool, error) {
	active, err := ewmh.ActiveWindowGet(w.xu)
	if err != nil {
		// Some window managers delete the property when nothing is focused.
		return 0, false, nil
	}
	if active == 0 {
		return 0, false, nil
	}
	return entity.WindowID(active), true, nil
}

// Activate switches to the window's desktop if needed, then asks the window
// manager to raise and focus it. A minimized window is restored.
func (w *WindowSystem) Activate(ctx context.Context, id entity.WindowID) error {
	win := xproto.Window(id)

	if desk, err := ewmh.WmDesktopGet(w.xu, win); err == nil && desk != stickyDesktop {
		if current, err := ewmh.CurrentDesktopGet(w.xu); err == nil && current != desk {
			if err := ewmh.CurrentDesktopReq(w.xu, int(desk)); err != nil {
				logging.FromContext(ctx).Debug().Err(err).Uint("desktop", desk).Msg("desktop switch refused")
			}
		}
	}

	if err := ewmh.ActiveWindowReq(w.xu, win); err != nil {
		return fmt.Errorf("activate window %d: %w", id, err)
	}
	return nil
}

// Minimize iconifies the window with an ICCCM WM_CHANGE_STATE request.
func (w *WindowSystem) Minimize(_ context.Context, id entity.WindowID) error {
	if err := ewmh.ClientEvent(w.xu, xproto.Window(id), "WM_CHANGE_STATE", icccm.StateIconic); err != nil {
		return fmt.Errorf("minimize window %d: %w", id, err)
	}
	return nil
}

var _ port.WindowSystem = (*WindowSystem)(nil)
