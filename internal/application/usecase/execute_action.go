package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/jumpkey/internal/application/port"
	"github.com/bnema/jumpkey/internal/domain/entity"
	"github.com/bnema/jumpkey/internal/logging"
)

// ActionExecutionError wraps a failure reported by the window or launch API.
type ActionExecutionError struct {
	Action entity.Action
	Err    error
}

func (e *ActionExecutionError) Error() string {
	return fmt.Sprintf("execute %s: %v", e.Action, e.Err)
}

func (e *ActionExecutionError) Unwrap() error {
	return e.Err
}

// ExecuteActionUseCase performs a decided action. Requests are fire-and-forget:
// it does not wait for the window manager to complete them.
type ExecuteActionUseCase struct {
	windows port.WindowSystem
	catalog port.ApplicationCatalog
}

// NewExecuteActionUseCase creates a new action executor.
func NewExecuteActionUseCase(windows port.WindowSystem, catalog port.ApplicationCatalog) *ExecuteActionUseCase {
	return &ExecuteActionUseCase{
		windows: windows,
		catalog: catalog,
	}
}

// Execute performs action. NoOp returns nil without touching the session.
func (uc *ExecuteActionUseCase) Execute(ctx context.Context, action entity.Action) error {
	var err error
	switch action.Kind {
	case entity.ActionNoOp:
		return nil
	case entity.ActionFocus:
		err = uc.windows.Activate(ctx, action.Window.ID)
	case entity.ActionMinimize:
		err = uc.windows.Minimize(ctx, action.Window.ID)
	case entity.ActionLaunch:
		err = uc.catalog.Launch(ctx, action.AppID)
	case entity.ActionLaunchWithArgs:
		err = uc.catalog.LaunchCommandLine(ctx, action.AppID, action.CommandLine)
	default:
		err = fmt.Errorf("unknown action kind %q", action.Kind)
	}

	if err != nil {
		return &ActionExecutionError{Action: action, Err: err}
	}

	logging.FromContext(ctx).Debug().Str("action", action.String()).Msg("action executed")
	return nil
}
