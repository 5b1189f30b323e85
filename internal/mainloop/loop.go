// Package mainloop serializes work onto a single goroutine.
package mainloop

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/bnema/jumpkey/internal/logging"
)

// ErrStopped is returned by Run when called on a loop that already ran.
var ErrStopped = errors.New("main loop stopped")

const defaultQueueSize = 64

// Loop runs posted functions one at a time, in posting order, on the
// goroutine that called Run.
type Loop struct {
	tasks chan func()

	mu      sync.Mutex
	stopped bool
	done    chan struct{}
}

// New creates a loop with room for queueSize pending tasks before Post blocks.
func New(queueSize int) *Loop {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Loop{
		tasks: make(chan func(), queueSize),
		done:  make(chan struct{}),
	}
}

// Post queues fn. It is dropped once the loop has stopped.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	stopped := l.stopped
	l.mu.Unlock()
	if stopped {
		return
	}

	select {
	case l.tasks <- fn:
	case <-l.done:
	}
}

// Run executes tasks until ctx is cancelled. Tasks still queued at that point
// are dropped. A panicking task is logged and the loop keeps going.
func (l *Loop) Run(ctx context.Context) error {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return ErrStopped
	}
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.stopped = true
		l.mu.Unlock()
		close(l.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-l.tasks:
			l.runTask(ctx, fn)
		}
	}
}

func (l *Loop) runTask(ctx context.Context, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logging.FromContext(ctx).Error().
				Str("panic", fmt.Sprint(r)).
				Str("stack", string(debug.Stack())).
				Msg("main loop task panicked")
		}
	}()
	fn()
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
