// Package testutil holds in-memory stand-ins for the session collaborators.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/jumpkey/internal/application/port"
)

// FakeGrabber is an in-memory port.KeyGrabber. It refuses a second grab of the
// same accelerator, like a compositor would.
type FakeGrabber struct {
	mu          sync.Mutex
	next        port.ActionHandle
	byAccel     map[string]port.ActionHandle
	byHandle    map[port.ActionHandle]string
	modes       map[string]port.ActionMode
	subscribers map[int]func(port.ActionHandle)
	nextSub     int

	// Foreign lists accelerators already owned by another session client.
	Foreign map[string]bool
	// AllowErr, when set, is returned by Allow for ActionModeAll.
	AllowErr error

	GrabCalls   int
	UngrabCalls int
}

func NewFakeGrabber() *FakeGrabber {
	return &FakeGrabber{
		byAccel:     make(map[string]port.ActionHandle),
		byHandle:    make(map[port.ActionHandle]string),
		modes:       make(map[string]port.ActionMode),
		subscribers: make(map[int]func(port.ActionHandle)),
		Foreign:     make(map[string]bool),
	}
}

func (g *FakeGrabber) Grab(_ context.Context, accelerator string) (port.ActionHandle, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.GrabCalls++
	if accelerator == "" {
		return 0, port.ErrInvalidAccelerator
	}
	if _, taken := g.byAccel[accelerator]; taken || g.Foreign[accelerator] {
		return 0, port.ErrAcceleratorTaken
	}
	g.next++
	g.byAccel[accelerator] = g.next
	g.byHandle[g.next] = accelerator
	return g.next, nil
}

func (g *FakeGrabber) Ungrab(_ context.Context, handle port.ActionHandle) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.UngrabCalls++
	accel, ok := g.byHandle[handle]
	if !ok {
		return fmt.Errorf("unknown handle %d", handle)
	}
	delete(g.byHandle, handle)
	delete(g.byAccel, accel)
	return nil
}

func (g *FakeGrabber) BindingName(handle port.ActionHandle) string {
	return fmt.Sprintf("external-grab-%d", handle)
}

func (g *FakeGrabber) Allow(_ context.Context, name string, mode port.ActionMode) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if mode == port.ActionModeAll && g.AllowErr != nil {
		return g.AllowErr
	}
	if mode == port.ActionModeNone {
		delete(g.modes, name)
		return nil
	}
	g.modes[name] = mode
	return nil
}

func (g *FakeGrabber) Subscribe(fn func(port.ActionHandle)) func() {
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

// Press simulates the user pressing accelerator. It reports whether any
// subscriber was notified.
func (g *FakeGrabber) Press(accelerator string) bool {
	g.mu.Lock()
	handle, ok := g.byAccel[accelerator]
	allowed := ok && g.modes[g.BindingName(handle)] == port.ActionModeAll
	subs := make([]func(port.ActionHandle), 0, len(g.subscribers))
	for _, fn := range g.subscribers {
		subs = append(subs, fn)
	}
	g.mu.Unlock()

	if !allowed {
		return false
	}
	for _, fn := range subs {
		fn(handle)
	}
	return len(subs) > 0
}

// Emit delivers a raw activation event for handle, granted or not.
func (g *FakeGrabber) Emit(handle port.ActionHandle) {
	g.mu.Lock()
	subs := make([]func(port.ActionHandle), 0, len(g.subscribers))
	for _, fn := range g.subscribers {
		subs = append(subs, fn)
	}
	g.mu.Unlock()

	for _, fn := range subs {
		fn(handle)
	}
}

// Grabbed returns the currently grabbed accelerators, sorted.
func (g *FakeGrabber) Grabbed() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]string, 0, len(g.byAccel))
	for accel := range g.byAccel {
		out = append(out, accel)
	}
	sort.Strings(out)
	return out
}

// Allowed returns the number of allow-listed binding names.
func (g *FakeGrabber) Allowed() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.modes)
}

// Subscribers returns the number of live subscriptions.
func (g *FakeGrabber) Subscribers() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.subscribers)
}
