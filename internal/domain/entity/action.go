package entity

import "fmt"

// ActionKind names what a shortcut press resolved to.
type ActionKind string

const (
	ActionNoOp           ActionKind = "noop"
	ActionFocus          ActionKind = "focus"
	ActionMinimize       ActionKind = "minimize"
	ActionLaunch         ActionKind = "launch"
	ActionLaunchWithArgs ActionKind = "launch_with_args"
)

// Action is produced once per key press and consumed immediately.
type Action struct {
	Kind        ActionKind
	Window      WindowRef // set for focus and minimize
	AppID       string    // set for launch kinds
	CommandLine string    // set for launch_with_args
}

func NoOpAction() Action { return Action{Kind: ActionNoOp} }

func FocusAction(w WindowRef) Action { return Action{Kind: ActionFocus, Window: w} }

func MinimizeAction(w WindowRef) Action { return Action{Kind: ActionMinimize, Window: w} }

func LaunchAction(appID string) Action { return Action{Kind: ActionLaunch, AppID: appID} }

func LaunchWithArgsAction(appID, commandLine string) Action {
	return Action{Kind: ActionLaunchWithArgs, AppID: appID, CommandLine: commandLine}
}

// TargetsWindow reports whether the action acts on an existing window.
func (a Action) TargetsWindow() bool {
	return a.Kind == ActionFocus || a.Kind == ActionMinimize
}

func (a Action) String() string {
	switch a.Kind {
	case ActionFocus, ActionMinimize:
		return fmt.Sprintf("%s(%d %q)", a.Kind, a.Window.ID, a.Window.Title)
	case ActionLaunch:
		return fmt.Sprintf("%s(%s)", a.Kind, a.AppID)
	case ActionLaunchWithArgs:
		return fmt.Sprintf("%s(%q)", a.Kind, a.CommandLine)
	default:
		return string(a.Kind)
	}
}
