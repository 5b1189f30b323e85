package daemon

import (
	"context"
	"fmt"

	"github.com/bnema/jumpkey/internal/application/usecase"
	"github.com/bnema/jumpkey/internal/infrastructure/config"
	"github.com/bnema/jumpkey/internal/infrastructure/desktop"
	"github.com/bnema/jumpkey/internal/infrastructure/lock"
	"github.com/bnema/jumpkey/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/jumpkey/internal/infrastructure/x11"
	"github.com/bnema/jumpkey/internal/logging"
)

// RunSession connects to the running X session and serves the shortcuts held
// by mgr until ctx is cancelled. Only one session per user may run at a time.
func RunSession(ctx context.Context, mgr *config.Manager) error {
	log := logging.FromContext(ctx)
	cfg := mgr.Get()

	lockPath, err := config.GetLockFile()
	if err != nil {
		return fmt.Errorf("resolve lock file: %w", err)
	}
	instance, err := lock.TryLock(lockPath)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := instance.Release(); releaseErr != nil {
			log.Warn().Err(releaseErr).Msg("failed to release instance lock")
		}
	}()

	session, err := x11.Connect()
	if err != nil {
		return err
	}
	defer session.Close()

	windows := x11.NewWindowSystem(session)
	deps := Deps{
		Grabber:   x11.NewGrabber(session),
		Windows:   windows,
		Catalog:   desktop.NewCatalog(),
		Shortcuts: mgr,
		Events:    session,
	}

	if cfg.Journal.Enabled {
		lazy := sqlite.NewLazyDB(cfg.Journal.Path)
		defer func() {
			if closeErr := lazy.Close(); closeErr != nil {
				log.Warn().Err(closeErr).Msg("failed to close journal")
			}
		}()
		deps.Journal = sqlite.NewLazyJournalRepository(lazy)
		log.Debug().Str("path", lazy.Path()).Msg("activation journal enabled")
	}

	if cfg.Daemon.WatchConfig {
		if err := mgr.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watch unavailable, use SIGHUP to reload")
		}
		defer func() {
			if stopErr := mgr.StopWatching(); stopErr != nil {
				log.Warn().Err(stopErr).Msg("failed to stop config watcher")
			}
		}()
	}

	d, err := New(deps, Options{
		ReloadDebounce: cfg.Daemon.ReloadDebounce(),
		RetentionDays:  cfg.Journal.RetentionDays,
		Reload:         mgr.Reload,
		OnApply: func(report usecase.ApplyReport) {
			for _, accel := range report.Failed {
				log.Warn().Str("accelerator", accel).Msg("shortcut is owned by another client")
			}
		},
	})
	if err != nil {
		return err
	}

	log.Info().
		Str("config", mgr.GetConfigFile()).
		Bool("journal", cfg.Journal.Enabled).
		Msg("starting shortcut session")
	return d.Run(ctx)
}
