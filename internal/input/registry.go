// Package input owns the mapping from granted accelerator grabs to callbacks
// and dispatches activation events to them.
package input

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sort"
	"sync"

	"github.com/bnema/jumpkey/internal/application/port"
	"github.com/bnema/jumpkey/internal/logging"
)

var (
	// ErrBindFailed means the grab was refused; the shortcut is simply inactive.
	ErrBindFailed = errors.New("bind failed")
	// ErrRegistryDestroyed is returned by every mutator after Destroy.
	ErrRegistryDestroyed = errors.New("shortcut registry destroyed")
)

// Callback runs when its accelerator fires. A returned error is logged.
type Callback = func(ctx context.Context) error

// Binding is one granted grab and the callback it triggers.
type Binding struct {
	ID          port.ActionHandle
	Name        string
	Accelerator string
	callback    Callback
}

// Registry maps action handles to bindings. Activation events arrive through
// the grabber subscription and are handed to post, which lets the daemon run
// every callback on its single main loop.
type Registry struct {
	ctx         context.Context
	grabber     port.KeyGrabber
	post        func(func())
	mu          sync.Mutex
	bindings    map[port.ActionHandle]*Binding
	unsubscribe func()
	destroyed   bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithPoster routes activation dispatch through post instead of running it
// on the grabber's event goroutine.
func WithPoster(post func(func())) Option {
	return func(r *Registry) {
		if post != nil {
			r.post = post
		}
	}
}

// NewRegistry subscribes to the grabber's activation events.
// ctx carries the logger used for dispatch.
func NewRegistry(ctx context.Context, grabber port.KeyGrabber, opts ...Option) *Registry {
	r := &Registry{
		ctx:      logging.WithComponent(ctx, "shortcut-registry"),
		grabber:  grabber,
		post:     func(fn func()) { fn() },
		bindings: make(map[port.ActionHandle]*Binding),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.unsubscribe = grabber.Subscribe(func(handle port.ActionHandle) {
		r.post(func() { r.Dispatch(r.ctx, handle) })
	})
	return r
}

// Bind grabs accelerator and stores callback under the returned handle.
func (r *Registry) Bind(ctx context.Context, accelerator string, callback Callback) (port.ActionHandle, error) {
	if callback == nil {
		return 0, fmt.Errorf("%w: nil callback for %q", ErrBindFailed, accelerator)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.destroyed {
		return 0, ErrRegistryDestroyed
	}

	handle, err := r.grabber.Grab(ctx, accelerator)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrBindFailed, accelerator, err)
	}
	if handle == 0 {
		return 0, fmt.Errorf("%w: %q: grabber returned no handle", ErrBindFailed, accelerator)
	}

	name := r.grabber.BindingName(handle)
	if err := r.grabber.Allow(ctx, name, port.ActionModeAll); err != nil {
		// Without the allow-list entry the grab would never fire; give it back.
		if ungrabErr := r.grabber.Ungrab(ctx, handle); ungrabErr != nil {
			err = errors.Join(err, ungrabErr)
		}
		return 0, fmt.Errorf("%w: %q: allow %s: %w", ErrBindFailed, accelerator, name, err)
	}

	r.bindings[handle] = &Binding{
		ID:          handle,
		Name:        name,
		Accelerator: accelerator,
		callback:    callback,
	}

	logging.FromContext(ctx).Debug().
		Str("accelerator", accelerator).
		Uint32("handle", uint32(handle)).
		Str("name", name).
		Msg("shortcut bound")
	return handle, nil
}

// Unbind releases the grab behind id. Unknown ids are ignored.
func (r *Registry) Unbind(ctx context.Context, id port.ActionHandle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.destroyed {
		return ErrRegistryDestroyed
	}
	return r.unbindLocked(ctx, id)
}

func (r *Registry) unbindLocked(ctx context.Context, id port.ActionHandle) error {
	binding, ok := r.bindings[id]
	if !ok {
		return nil
	}
	// The entry goes away even if the grabber complains so a stale handle
	// can never dispatch.
	delete(r.bindings, id)

	var errs []error
	if err := r.grabber.Ungrab(ctx, id); err != nil {
		errs = append(errs, fmt.Errorf("ungrab %q: %w", binding.Accelerator, err))
	}
	if err := r.grabber.Allow(ctx, binding.Name, port.ActionModeNone); err != nil {
		errs = append(errs, fmt.Errorf("revoke %s: %w", binding.Name, err))
	}
	return errors.Join(errs...)
}

// Reset unbinds every binding.
func (r *Registry) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.destroyed {
		return ErrRegistryDestroyed
	}
	return r.resetLocked(ctx)
}

func (r *Registry) resetLocked(ctx context.Context) error {
	var errs []error
	for _, id := range r.sortedHandlesLocked() {
		if err := r.unbindLocked(ctx, id); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Destroy resets the registry and drops the activation subscription.
// The registry must not be used afterwards.
func (r *Registry) Destroy(ctx context.Context) error {
	r.mu.Lock()
	if r.destroyed {
		r.mu.Unlock()
		return nil
	}
	err := r.resetLocked(ctx)
	r.destroyed = true
	unsubscribe := r.unsubscribe
	r.unsubscribe = nil
	r.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	return err
}

// Dispatch runs the callback bound to handle. Unknown handles are ignored,
// since an event can race an Unbind. Callback errors and panics stay here.
func (r *Registry) Dispatch(ctx context.Context, handle port.ActionHandle) {
	r.mu.Lock()
	binding, ok := r.bindings[handle]
	destroyed := r.destroyed
	r.mu.Unlock()

	log := logging.FromContext(ctx)
	if destroyed || !ok {
		log.Debug().Uint32("handle", uint32(handle)).Msg("activation for unknown handle ignored")
		return
	}

	if err := invoke(ctx, binding); err != nil {
		log.Error().
			Err(err).
			Str("accelerator", binding.Accelerator).
			Str("name", binding.Name).
			Msg("shortcut callback failed")
	}
}

func invoke(ctx context.Context, binding *Binding) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic in shortcut callback: %v\n%s", rec, debug.Stack())
		}
	}()
	return binding.callback(ctx)
}

// Bindings returns a snapshot of the active bindings sorted by accelerator.
func (r *Registry) Bindings() []Binding {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		out = append(out, Binding{ID: b.ID, Name: b.Name, Accelerator: b.Accelerator})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Accelerator == out[j].Accelerator {
			return out[i].ID < out[j].ID
		}
		return out[i].Accelerator < out[j].Accelerator
	})
	return out
}

// Len returns the number of active bindings.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bindings)
}

func (r *Registry) sortedHandlesLocked() []port.ActionHandle {
	ids := make([]port.ActionHandle, 0, len(r.bindings))
	for id := range r.bindings {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
