package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/jumpkey/internal/application/port"
	"github.com/bnema/jumpkey/internal/domain/entity"
	"github.com/bnema/jumpkey/internal/domain/service"
	"github.com/bnema/jumpkey/internal/logging"
)

// FocusShortcutUseCase is what runs on every press of a configured shortcut:
// resolve the windows, read focus, decide, execute and journal.
type FocusShortcutUseCase struct {
	resolver *ResolveWindowsUseCase
	executor *ExecuteActionUseCase
	windows  port.WindowSystem
	journal  port.ActivationJournal // optional
	now      func() time.Time
}

// NewFocusShortcutUseCase creates the press handler. journal may be nil.
func NewFocusShortcutUseCase(
	resolver *ResolveWindowsUseCase,
	executor *ExecuteActionUseCase,
	windows port.WindowSystem,
	journal port.ActivationJournal,
) *FocusShortcutUseCase {
	return &FocusShortcutUseCase{
		resolver: resolver,
		executor: executor,
		windows:  windows,
		journal:  journal,
		now:      time.Now,
	}
}

// Decide computes the action a press of cfg would produce right now.
func (uc *FocusShortcutUseCase) Decide(ctx context.Context, cfg entity.ShortcutConfig) (entity.Action, error) {
	resolved, err := uc.resolver.Execute(ctx, ResolveWindowsInput{
		AppID:       cfg.ApplicationToFocus,
		TitleFilter: cfg.TitleToMatch,
		Exact:       cfg.ExactTitleMatch,
	})
	if err != nil {
		return entity.NoOpAction(), err
	}
	if !resolved.Found {
		return entity.NoOpAction(), nil
	}

	focused, hasFocus, err := uc.windows.FocusedWindow(ctx)
	if err != nil {
		return entity.NoOpAction(), fmt.Errorf("read focused window: %w", err)
	}

	return service.DecideFocus(service.FocusInput{
		App:               resolved.App,
		Windows:           resolved.Windows,
		FocusedWindow:     focused,
		HasFocusedWindow:  hasFocus,
		LaunchApplication: cfg.LaunchApplication,
		Arguments:         cfg.CommandLineArguments,
	}), nil
}

// Handle decides and executes one press.
func (uc *FocusShortcutUseCase) Handle(ctx context.Context, cfg entity.ShortcutConfig) (entity.Action, error) {
	log := logging.FromContext(ctx)

	action, err := uc.Decide(ctx, cfg)
	if err == nil {
		err = uc.executor.Execute(ctx, action)
	}

	log.Debug().
		Str("action", action.String()).
		AnErr("error", err).
		Msg("shortcut handled")

	uc.record(ctx, cfg, action, err)
	return action, err
}

// Callback adapts Handle to the registry's callback shape.
func (uc *FocusShortcutUseCase) Callback(cfg entity.ShortcutConfig) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		ctx = logging.WithShortcut(ctx, cfg.ID, cfg.KeyboardShortcut, cfg.ApplicationToFocus)
		_, err := uc.Handle(ctx, cfg)
		return err
	}
}

func (uc *FocusShortcutUseCase) record(ctx context.Context, cfg entity.ShortcutConfig, action entity.Action, err error) {
	if uc.journal == nil {
		return
	}

	activation := &entity.Activation{
		ShortcutID:  cfg.ID,
		Accelerator: cfg.KeyboardShortcut,
		AppID:       cfg.ApplicationToFocus,
		Action:      action.Kind,
		CreatedAt:   uc.now(),
	}
	if action.TargetsWindow() {
		activation.WindowID = action.Window.ID
	}
	if err != nil {
		activation.Error = err.Error()
	}

	if recErr := uc.journal.Record(ctx, activation); recErr != nil {
		logging.FromContext(ctx).Warn().Err(recErr).Msg("failed to journal activation")
	}
}
