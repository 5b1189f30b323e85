package x11

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/jumpkey/internal/application/port"
)

// fakeKeys maps the last segment of a keybind string to a keycode and the
// modifier names to their X masks.
type fakeKeys struct {
	codes   map[string]xproto.Keycode
	refuse  map[combo]bool
	grabbed map[combo]bool
	// partial refusals leave some ignore-mod variants grabbed, like
	// keybind.GrabChecked failing halfway through its loop.
	partial map[combo]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{
		codes:   map[string]xproto.Keycode{"e": 26, "t": 28, "Return": 36},
		refuse:  make(map[combo]bool),
		grabbed: make(map[combo]bool),
		partial: make(map[combo]bool),
	}
}

func (f *fakeKeys) parse(keyStr string) (uint16, []xproto.Keycode, error) {
	parts := strings.Split(keyStr, "-")
	var mods uint16
	for _, p := range parts[:len(parts)-1] {
		switch p {
		case "shift":
			mods |= xproto.ModMaskShift
		case "control":
			mods |= xproto.ModMaskControl
		case "mod1":
			mods |= xproto.ModMask1
		case "mod4":
			mods |= xproto.ModMask4
		}
	}
	code, ok := f.codes[parts[len(parts)-1]]
	if !ok {
		return 0, nil, errors.New("unknown keysym")
	}
	return mods, []xproto.Keycode{code}, nil
}

func (f *fakeKeys) grab(mods uint16, code xproto.Keycode) error {
	c := combo{mods: mods, code: code}
	if f.refuse[c] {
		if f.partial[c] {
			f.grabbed[c] = true
		}
		return errors.New("BadAccess")
	}
	f.grabbed[c] = true
	return nil
}

func (f *fakeKeys) ungrab(mods uint16, code xproto.Keycode) {
	delete(f.grabbed, combo{mods: mods, code: code})
}

func TestGrabber_GrabDispatchUngrab(t *testing.T) {
	keys := newFakeKeys()
	g := newGrabber(keys)
	ctx := context.Background()

	var fired []port.ActionHandle
	unsubscribe := g.Subscribe(func(h port.ActionHandle) { fired = append(fired, h) })
	defer unsubscribe()

	h, err := g.Grab(ctx, "<Super>e")
	require.NoError(t, err)
	assert.Equal(t, "external-grab-1", g.BindingName(h))
	assert.True(t, keys.grabbed[combo{mods: xproto.ModMask4, code: 26}])

	// Not allow-listed yet.
	g.handleKey(xproto.ModMask4, 26)
	assert.Empty(t, fired)

	require.NoError(t, g.Allow(ctx, g.BindingName(h), port.ActionModeAll))
	g.handleKey(xproto.ModMask4|xproto.ModMaskLock|xproto.ModMask2, 26)
	assert.Equal(t, []port.ActionHandle{h}, fired, "caps and num lock are ignored")

	g.handleKey(xproto.ModMask4|xproto.ModMaskShift, 26)
	assert.Len(t, fired, 1, "extra modifiers do not match")

	require.NoError(t, g.Ungrab(ctx, h))
	assert.Empty(t, keys.grabbed)
	g.handleKey(xproto.ModMask4, 26)
	assert.Len(t, fired, 1)

	assert.Error(t, g.Ungrab(ctx, h))
}

func TestGrabber_RefusesSecondHolder(t *testing.T) {
	g := newGrabber(newFakeKeys())
	ctx := context.Background()

	_, err := g.Grab(ctx, "<Primary>t")
	require.NoError(t, err)

	_, err = g.Grab(ctx, "<Control>t")
	assert.ErrorIs(t, err, port.ErrAcceleratorTaken)
}

func TestGrabber_ServerRefusal(t *testing.T) {
	keys := newFakeKeys()
	keys.refuse[combo{mods: xproto.ModMask4, code: 36}] = true
	g := newGrabber(keys)

	_, err := g.Grab(context.Background(), "<Super>Return")
	assert.ErrorIs(t, err, port.ErrAcceleratorTaken)

	h, err := g.Grab(context.Background(), "<Super>e")
	require.NoError(t, err)
	assert.Equal(t, port.ActionHandle(1), h, "failed grabs do not consume handles")
}

func TestGrabber_PartialRefusalLeavesNoGrab(t *testing.T) {
	keys := newFakeKeys()
	c := combo{mods: xproto.ModMask4, code: 26}
	keys.refuse[c] = true
	keys.partial[c] = true
	g := newGrabber(keys)

	_, err := g.Grab(context.Background(), "<Super>e")
	require.ErrorIs(t, err, port.ErrAcceleratorTaken)
	assert.Empty(t, keys.grabbed)
}

func TestGrabber_InvalidAccelerator(t *testing.T) {
	g := newGrabber(newFakeKeys())

	_, err := g.Grab(context.Background(), "<Super>")
	assert.ErrorIs(t, err, port.ErrInvalidAccelerator)

	_, err = g.Grab(context.Background(), "<Super>NoSuchKey")
	assert.ErrorIs(t, err, port.ErrInvalidAccelerator)
}

func TestGrabber_AllowNoneBlocks(t *testing.T) {
	g := newGrabber(newFakeKeys())
	ctx := context.Background()
	fired := 0
	g.Subscribe(func(port.ActionHandle) { fired++ })

	h, err := g.Grab(ctx, "<Super>e")
	require.NoError(t, err)
	require.NoError(t, g.Allow(ctx, g.BindingName(h), port.ActionModeAll))
	require.NoError(t, g.Allow(ctx, g.BindingName(h), port.ActionModeNone))

	g.handleKey(xproto.ModMask4, 26)
	assert.Zero(t, fired)
	assert.Error(t, g.Allow(ctx, "", port.ActionModeAll))
}
