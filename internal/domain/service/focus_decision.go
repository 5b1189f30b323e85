package service

import "github.com/bnema/jumpkey/internal/domain/entity"

// FocusInput is everything the decision needs, captured at press time.
type FocusInput struct {
	App               entity.Application
	Windows           []entity.WindowRef // candidate windows, native order
	FocusedWindow     entity.WindowID
	HasFocusedWindow  bool
	LaunchApplication bool
	Arguments         string
}

// DecideFocus picks the single action for one shortcut press.
//
// Rules, first match wins:
//   - no candidates: launch (with arguments when configured) or do nothing
//   - several candidates: focus the last one
//   - one candidate holding focus: minimize it
//   - one candidate: focus it
//
// Several candidates always resolve to the last window rather than rotating
// through them on repeated presses.
func DecideFocus(in FocusInput) entity.Action {
	switch n := len(in.Windows); {
	case n == 0 && in.LaunchApplication:
		if in.Arguments == "" {
			return entity.LaunchAction(in.App.ID)
		}
		return entity.LaunchWithArgsAction(in.App.ID, LaunchCommandLine(in.App.Executable, in.Arguments))
	case n == 0:
		return entity.NoOpAction()
	case n > 1:
		return entity.FocusAction(in.Windows[n-1])
	case in.HasFocusedWindow && in.FocusedWindow == in.Windows[0].ID:
		return entity.MinimizeAction(in.Windows[0])
	default:
		return entity.FocusAction(in.Windows[0])
	}
}

// LaunchCommandLine joins the executable and the user's literal argument string.
func LaunchCommandLine(executable, arguments string) string {
	return executable + " " + arguments
}
