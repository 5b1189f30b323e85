package usecase

import (
	"context"

	"github.com/bnema/jumpkey/internal/application/port"
	"github.com/bnema/jumpkey/internal/domain/entity"
	"github.com/bnema/jumpkey/internal/logging"
)

// ShortcutBinder is the part of the shortcut registry the controller drives.
type ShortcutBinder interface {
	Reset(ctx context.Context) error
	Bind(ctx context.Context, accelerator string, callback func(ctx context.Context) error) (port.ActionHandle, error)
}

// ApplyShortcutsUseCase rebuilds every binding from a configuration list.
type ApplyShortcutsUseCase struct {
	binder ShortcutBinder
	focus  *FocusShortcutUseCase
}

// NewApplyShortcutsUseCase creates the configuration controller.
func NewApplyShortcutsUseCase(binder ShortcutBinder, focus *FocusShortcutUseCase) *ApplyShortcutsUseCase {
	return &ApplyShortcutsUseCase{
		binder: binder,
		focus:  focus,
	}
}

// ApplyReport summarizes one rebuild.
type ApplyReport struct {
	Bound   []string // shortcut ids that got a binding
	Skipped []string // incomplete entries, never bound
	Failed  []string // accelerators whose grab was refused
}

// Apply tears down every binding, then binds each complete config.
// Unchanged entries are rebound too; there is no diffing.
func (uc *ApplyShortcutsUseCase) Apply(ctx context.Context, configs []entity.ShortcutConfig) ApplyReport {
	log := logging.FromContext(ctx)
	var report ApplyReport

	if err := uc.binder.Reset(ctx); err != nil {
		log.Warn().Err(err).Msg("errors while releasing previous shortcuts")
	}

	for _, raw := range configs {
		cfg := raw.Normalize()
		if !cfg.IsComplete() {
			log.Debug().Str("shortcut_id", cfg.ID).Msg("skipping incomplete shortcut")
			report.Skipped = append(report.Skipped, cfg.ID)
			continue
		}

		if _, err := uc.binder.Bind(ctx, cfg.KeyboardShortcut, uc.focus.Callback(cfg)); err != nil {
			log.Warn().
				Err(err).
				Str("shortcut_id", cfg.ID).
				Str("accelerator", cfg.KeyboardShortcut).
				Msg("shortcut inactive")
			report.Failed = append(report.Failed, cfg.KeyboardShortcut)
			continue
		}
		report.Bound = append(report.Bound, cfg.ID)
	}

	log.Info().
		Int("bound", len(report.Bound)).
		Int("skipped", len(report.Skipped)).
		Int("failed", len(report.Failed)).
		Msg("shortcuts applied")
	return report
}
