// Package daemon runs the long-lived shortcut service: it owns the main loop,
// the shortcut registry and the goroutines feeding them.
package daemon

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/jumpkey/internal/application/port"
	"github.com/bnema/jumpkey/internal/application/usecase"
	"github.com/bnema/jumpkey/internal/domain/entity"
	"github.com/bnema/jumpkey/internal/input"
	"github.com/bnema/jumpkey/internal/logging"
	"github.com/bnema/jumpkey/internal/mainloop"
)

const (
	reloadKey            = "shortcuts"
	defaultPruneInterval = 24 * time.Hour
	loopQueueSize        = 64
)

// ErrEventSourceStopped is returned when the event source exits while the
// daemon is still supposed to be running.
var ErrEventSourceStopped = errors.New("event source stopped")

// EventSource pumps activation events into the grabber until ctx ends.
type EventSource interface {
	Run(ctx context.Context) error
}

// Deps are the session collaborators. Journal and Events are optional.
type Deps struct {
	Grabber   port.KeyGrabber
	Windows   port.WindowSystem
	Catalog   port.ApplicationCatalog
	Shortcuts port.ShortcutSource
	Journal   port.ActivationJournal
	Events    EventSource
}

// Options tune the daemon.
type Options struct {
	// ReloadDebounce groups bursts of configuration changes into one rebuild.
	ReloadDebounce time.Duration
	// RetentionDays prunes the journal; zero keeps everything.
	RetentionDays int
	PruneInterval time.Duration
	// Reload re-reads the settings store on SIGHUP. Nil disables the handler.
	Reload func() error
	// OnApply observes every rebuild. It runs on the main loop.
	OnApply func(usecase.ApplyReport)
}

// Daemon wires the registry, the configuration controller and the main loop.
type Daemon struct {
	deps Deps
	opts Options
	loop *mainloop.Loop

	// registry is published by Run and read by Bindings from any goroutine.
	registry atomic.Pointer[input.Registry]
	apply    *usecase.ApplyShortcutsUseCase
}

// New validates deps and prepares a daemon. Nothing is grabbed until Run.
func New(deps Deps, opts Options) (*Daemon, error) {
	switch {
	case deps.Grabber == nil:
		return nil, errors.New("daemon: grabber is required")
	case deps.Windows == nil:
		return nil, errors.New("daemon: window system is required")
	case deps.Catalog == nil:
		return nil, errors.New("daemon: application catalog is required")
	case deps.Shortcuts == nil:
		return nil, errors.New("daemon: shortcut source is required")
	}
	if opts.PruneInterval <= 0 {
		opts.PruneInterval = defaultPruneInterval
	}

	return &Daemon{
		deps: deps,
		opts: opts,
		loop: mainloop.New(loopQueueSize),
	}, nil
}

// Run binds the configured shortcuts and serves them until ctx is cancelled.
// Every binding is released before Run returns.
func (d *Daemon) Run(ctx context.Context) error {
	ctx = logging.WithComponent(ctx, "daemon")
	log := logging.FromContext(ctx)

	g, gctx := errgroup.WithContext(ctx)

	registry := input.NewRegistry(gctx, d.deps.Grabber, input.WithPoster(d.loop.Post))
	d.registry.Store(registry)
	focus := usecase.NewFocusShortcutUseCase(
		usecase.NewResolveWindowsUseCase(d.deps.Catalog, d.deps.Windows),
		usecase.NewExecuteActionUseCase(d.deps.Windows, d.deps.Catalog),
		d.deps.Windows,
		d.deps.Journal,
	)
	d.apply = usecase.NewApplyShortcutsUseCase(registry, focus)

	coalescer := mainloop.NewCoalescer(d.loop.Post, mainloop.WithDelay(d.opts.ReloadDebounce))
	defer coalescer.Destroy()

	g.Go(func() error {
		return d.loop.Run(gctx)
	})

	d.loop.Post(func() {
		d.applyShortcuts(gctx, d.deps.Shortcuts.Shortcuts(gctx))
	})
	d.deps.Shortcuts.OnShortcutsChange(func(configs []entity.ShortcutConfig) {
		coalescer.Post(reloadKey, func() {
			log.Info().Int("entries", len(configs)).Msg("configuration changed, rebinding shortcuts")
			d.applyShortcuts(gctx, configs)
		})
	})

	if d.deps.Events != nil {
		g.Go(func() error {
			if err := d.deps.Events.Run(gctx); err != nil {
				return err
			}
			if gctx.Err() == nil {
				return ErrEventSourceStopped
			}
			return nil
		})
	}

	if d.deps.Journal != nil && d.opts.RetentionDays > 0 {
		g.Go(func() error {
			d.pruneJournal(gctx)
			return nil
		})
	}

	if d.opts.Reload != nil {
		g.Go(func() error {
			watchHangup(gctx, d.opts.Reload)
			return nil
		})
	}

	log.Info().Msg("jumpkey daemon started")
	err := g.Wait()

	if destroyErr := registry.Destroy(context.WithoutCancel(ctx)); destroyErr != nil {
		log.Warn().Err(destroyErr).Msg("errors while releasing shortcuts")
	}
	log.Info().Msg("jumpkey daemon stopped")

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// applyShortcuts must run on the main loop.
func (d *Daemon) applyShortcuts(ctx context.Context, configs []entity.ShortcutConfig) {
	if ctx.Err() != nil {
		return
	}
	report := d.apply.Apply(ctx, configs)

	log := logging.FromContext(ctx)
	for _, b := range d.registry.Load().Bindings() {
		log.Debug().Str("name", b.Name).Str("accelerator", b.Accelerator).Msg("shortcut active")
	}
	if d.opts.OnApply != nil {
		d.opts.OnApply(report)
	}
}

// Bindings returns the active bindings. Safe from any goroutine.
func (d *Daemon) Bindings() []input.Binding {
	registry := d.registry.Load()
	if registry == nil {
		return nil
	}
	return registry.Bindings()
}

func (d *Daemon) pruneJournal(ctx context.Context) {
	log := logging.FromContext(ctx)
	journal := usecase.NewJournalUseCase(d.deps.Journal)

	ticker := time.NewTicker(d.opts.PruneInterval)
	defer ticker.Stop()

	for {
		if _, err := journal.Prune(ctx, d.opts.RetentionDays); err != nil && ctx.Err() == nil {
			log.Warn().Err(err).Msg("journal prune failed")
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
