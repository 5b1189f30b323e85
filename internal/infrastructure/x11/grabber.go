package x11

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/bnema/jumpkey/internal/application/port"
	"github.com/bnema/jumpkey/internal/logging"
)

// Lock and NumLock never change which binding a press belongs to.
const ignoredMods = xproto.ModMaskLock | xproto.ModMask2

// combo is one physical key combination as reported by KeyPress events.
type combo struct {
	mods uint16
	code xproto.Keycode
}

// keyBackend is the X side of a grab, split out so the bookkeeping can be
// tested without a display.
type keyBackend interface {
	parse(keyStr string) (mods uint16, codes []xproto.Keycode, err error)
	grab(mods uint16, code xproto.Keycode) error
	ungrab(mods uint16, code xproto.Keycode)
}

type xKeyBackend struct {
	xu   *xgbutil.XUtil
	root xproto.Window
}

func (b xKeyBackend) parse(keyStr string) (uint16, []xproto.Keycode, error) {
	return keybind.ParseString(b.xu, keyStr)
}

func (b xKeyBackend) grab(mods uint16, code xproto.Keycode) error {
	return keybind.GrabChecked(b.xu, b.root, mods, code)
}

func (b xKeyBackend) ungrab(mods uint16, code xproto.Keycode) {
	keybind.Ungrab(b.xu, b.root, mods, code)
}

type grab struct {
	accelerator string
	combos      []combo
}

// Grabber implements port.KeyGrabber with passive key grabs on the root
// window. An accelerator can be held by one handle at a time.
type Grabber struct {
	backend keyBackend

	mu          sync.Mutex
	next        port.ActionHandle
	grabs       map[port.ActionHandle]*grab
	byAccel     map[string]port.ActionHandle
	byCombo     map[combo]port.ActionHandle
	modes       map[string]port.ActionMode
	subscribers map[int]func(port.ActionHandle)
	nextSub     int
}

// NewGrabber installs the KeyPress handler on the session's root window.
func NewGrabber(s *Session) *Grabber {
	g := newGrabber(xKeyBackend{xu: s.xu, root: s.root})
	xevent.KeyPressFun(func(_ *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		g.handleKey(ev.State, ev.Detail)
	}).Connect(s.xu, s.root)
	return g
}

func newGrabber(backend keyBackend) *Grabber {
	return &Grabber{
		backend:     backend,
		grabs:       make(map[port.ActionHandle]*grab),
		byAccel:     make(map[string]port.ActionHandle),
		byCombo:     make(map[combo]port.ActionHandle),
		modes:       make(map[string]port.ActionMode),
		subscribers: make(map[int]func(port.ActionHandle)),
	}
}

// Grab claims accelerator for this process.
func (g *Grabber) Grab(ctx context.Context, accelerator string) (port.ActionHandle, error) {
	keyStr, err := TranslateAccelerator(accelerator)
	if err != nil {
		return 0, err
	}
	mods, codes, err := g.backend.parse(keyStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", port.ErrInvalidAccelerator, accelerator, err)
	}
	if len(codes) == 0 {
		return 0, fmt.Errorf("%w: %q: no keycode for key", port.ErrInvalidAccelerator, accelerator)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	canonical := canonicalAccelerator(accelerator)
	if _, taken := g.byAccel[canonical]; taken {
		return 0, fmt.Errorf("%w: %q", port.ErrAcceleratorTaken, accelerator)
	}

	combos := make([]combo, 0, len(codes))
	for _, code := range codes {
		c := combo{mods: mods, code: code}
		if _, taken := g.byCombo[c]; taken {
			g.releaseLocked(combos)
			return 0, fmt.Errorf("%w: %q", port.ErrAcceleratorTaken, accelerator)
		}
		if err := g.backend.grab(mods, code); err != nil {
			// The lock-mask variants grabbed before the refusal stay held otherwise.
			g.backend.ungrab(mods, code)
			g.releaseLocked(combos)
			return 0, fmt.Errorf("%w: %q: %w", port.ErrAcceleratorTaken, accelerator, err)
		}
		combos = append(combos, c)
	}

	g.next++
	handle := g.next
	g.grabs[handle] = &grab{accelerator: canonical, combos: combos}
	g.byAccel[canonical] = handle
	for _, c := range combos {
		g.byCombo[c] = handle
	}

	logging.FromContext(ctx).Debug().
		Str("accelerator", accelerator).
		Str("x11_keys", keyStr).
		Uint32("handle", uint32(handle)).
		Msg("key grabbed")
	return handle, nil
}

func (g *Grabber) releaseLocked(combos []combo) {
	for _, c := range combos {
		g.backend.ungrab(c.mods, c.code)
	}
}

// Ungrab releases a handle obtained from Grab.
func (g *Grabber) Ungrab(_ context.Context, handle port.ActionHandle) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	gr, ok := g.grabs[handle]
	if !ok {
		return fmt.Errorf("ungrab: unknown handle %d", handle)
	}
	g.releaseLocked(gr.combos)
	for _, c := range gr.combos {
		delete(g.byCombo, c)
	}
	delete(g.byAccel, gr.accelerator)
	delete(g.grabs, handle)
	return nil
}

// BindingName returns the allow-list name for handle.
func (g *Grabber) BindingName(handle port.ActionHandle) string {
	return fmt.Sprintf("external-grab-%d", handle)
}

// Allow sets the modes in which a binding may fire. ActionModeNone removes it.
func (g *Grabber) Allow(_ context.Context, name string, mode port.ActionMode) error {
	if name == "" {
		return errors.New("allow: empty binding name")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if mode == port.ActionModeNone {
		delete(g.modes, name)
		return nil
	}
	g.modes[name] = mode
	return nil
}

// Subscribe registers fn for activation events. Events arrive on the X event
// goroutine.
func (g *Grabber) Subscribe(fn func(port.ActionHandle)) func() {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.nextSub
	g.nextSub++
	g.subscribers[id] = fn
	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		delete(g.subscribers, id)
	}
}

func (g *Grabber) handleKey(state uint16, code xproto.Keycode) {
	// Only the eight modifier bits matter; button state is noise here.
	mods := state & 0xff &^ uint16(ignoredMods)

	g.mu.Lock()
	handle, ok := g.byCombo[combo{mods: mods, code: code}]
	if ok && g.modes[g.BindingName(handle)] == port.ActionModeNone {
		ok = false
	}
	subs := make([]func(port.ActionHandle), 0, len(g.subscribers))
	for _, fn := range g.subscribers {
		subs = append(subs, fn)
	}
	g.mu.Unlock()

	if !ok {
		return
	}
	for _, fn := range subs {
		fn(handle)
	}
}

var _ port.KeyGrabber = (*Grabber)(nil)
