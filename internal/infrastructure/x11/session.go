// Package x11 grabs global shortcuts and drives windows on an X11 session
// through EWMH/ICCCM.
package x11

import (
	"context"
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/bnema/jumpkey/internal/logging"
)

// Session is one connection to the X server.
type Session struct {
	xu   *xgbutil.XUtil
	root xproto.Window
}

// Connect opens the display named by $DISPLAY.
func Connect() (*Session, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}
	keybind.Initialize(xu)

	return &Session{xu: xu, root: xu.RootWin()}, nil
}

// Run processes X events until ctx is cancelled. Event callbacks run on
// the calling goroutine.
func (s *Session) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			xevent.Quit(s.xu)
		case <-done:
		}
	}()
	defer close(done)

	log.Debug().Msg("x11 event loop started")
	xevent.Main(s.xu)
	log.Debug().Msg("x11 event loop stopped")
	return nil
}

// Close disconnects from the X server.
func (s *Session) Close() {
	s.xu.Conn().Close()
}
