package mainloop

import (
	"sync"
	"time"
)

// Coalescer merges bursts of same-key main-loop tasks. Only the latest
// callback for a key runs; with a delay the burst window is extended until
// the key has been quiet for that long.
type Coalescer struct {
	mu        sync.Mutex
	pending   map[string]bool
	callbacks map[string]func()
	timers    map[string]*time.Timer
	post      func(func())
	delay     time.Duration
	destroyed bool
}

// CoalescerOption customizes a Coalescer.
type CoalescerOption func(*Coalescer)

// WithDelay waits for d of silence on a key before posting it.
func WithDelay(d time.Duration) CoalescerOption {
	return func(c *Coalescer) {
		c.delay = d
	}
}

func NewCoalescer(post func(func()), opts ...CoalescerOption) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}

	c := &Coalescer{
		pending:   make(map[string]bool),
		callbacks: make(map[string]func()),
		timers:    make(map[string]*time.Timer),
		post:      post,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.callbacks[key] = fn

	if c.delay > 0 {
		if t, ok := c.timers[key]; ok {
			t.Reset(c.delay)
			c.mu.Unlock()
			return
		}
		c.timers[key] = time.AfterFunc(c.delay, func() {
			c.mu.Lock()
			delete(c.timers, key)
			c.mu.Unlock()
			c.schedule(key)
		})
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	c.schedule(key)
}

func (c *Coalescer) schedule(key string) {
	c.mu.Lock()
	if c.destroyed || c.pending[key] {
		c.mu.Unlock()
		return
	}
	c.pending[key] = true
	post := c.post
	c.mu.Unlock()

	post(func() {
		c.mu.Lock()
		if c.destroyed {
			delete(c.pending, key)
			delete(c.callbacks, key)
			c.mu.Unlock()
			return
		}
		fn := c.callbacks[key]
		delete(c.pending, key)
		delete(c.callbacks, key)
		c.mu.Unlock()

		if fn != nil {
			fn()
		}
	})
}

func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	for _, t := range c.timers {
		t.Stop()
	}
	c.timers = map[string]*time.Timer{}
	c.pending = map[string]bool{}
	c.callbacks = map[string]func(){}
	c.mu.Unlock()
}
