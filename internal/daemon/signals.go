package daemon

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/jumpkey/internal/logging"
)

// watchHangup calls reload on every SIGHUP until ctx ends.
func watchHangup(ctx context.Context, reload func() error) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	serveHangup(ctx, hup, reload)
}

func serveHangup(ctx context.Context, hup <-chan os.Signal, reload func() error) {
	log := logging.FromContext(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			log.Info().Msg("SIGHUP received, reloading configuration")
			if err := reload(); err != nil {
				log.Warn().Err(err).Msg("reload failed, keeping previous shortcuts")
			}
		}
	}
}

// NotifyContext returns a context cancelled on SIGINT or SIGTERM.
func NotifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
