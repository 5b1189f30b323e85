package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/jumpkey/internal/application/port"
	"github.com/bnema/jumpkey/internal/domain/entity"
)

// CheckStatus is the outcome of checking one shortcut entry.
type CheckStatus int

const (
	CheckOK CheckStatus = iota
	CheckSkipped
	CheckInvalid
)

// CheckEntry is one line of the check report.
type CheckEntry struct {
	ID          string
	Accelerator string
	AppID       string
	Status      CheckStatus
	Detail      string
}

// CheckReport summarizes a configuration file.
type CheckReport struct {
	ConfigFile string
	Entries    []CheckEntry
	Warnings   []string
}

// OK reports whether every entry would bind and nothing was flagged.
func (r CheckReport) OK() bool {
	if len(r.Warnings) > 0 {
		return false
	}
	for _, e := range r.Entries {
		if e.Status != CheckOK {
			return false
		}
	}
	return true
}

// Renderer renders command output with the theme.
type Renderer struct {
	theme *Theme
}

// NewRenderer creates a renderer for theme.
func NewRenderer(theme *Theme) *Renderer {
	return &Renderer{theme: theme}
}

// RenderCheck renders the per-entry status of a configuration file.
func (r *Renderer) RenderCheck(report CheckReport) string {
	t := r.theme

	statusStyle, statusText := t.SuccessStyle, "OK"
	if !report.OK() {
		statusStyle, statusText = t.WarningStyle, "Needs attention"
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		t.Highlight.Render(IconConfig), " ",
		t.Title.Render("Config"), " ",
		t.Subtle.Render(report.ConfigFile), " ",
		t.BadgeMuted.Render(statusStyle.Render(statusText)),
	)

	lines := make([]string, 0, len(report.Entries)+len(report.Warnings)+1)
	if len(report.Entries) == 0 {
		lines = append(lines, t.Subtle.Render("no shortcuts configured"))
	}
	for _, e := range report.Entries {
		lines = append(lines, r.renderCheckEntry(e))
	}
	for _, w := range report.Warnings {
		lines = append(lines, fmt.Sprintf("%s %s", t.WarningStyle.Render(IconWarning), t.Normal.Render(w)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", t.Box.Render(strings.Join(lines, "\n")))
}

func (r *Renderer) renderCheckEntry(e CheckEntry) string {
	t := r.theme

	icon, style := IconCheck, t.SuccessStyle
	switch e.Status {
	case CheckSkipped:
		icon, style = IconInfo, t.Subtle
	case CheckInvalid:
		icon, style = IconX, t.ErrorStyle
	}

	line := fmt.Sprintf("%s %s %s %s %s",
		style.Render(icon),
		t.Title.Render(e.ID),
		t.AccentBadge(orDash(e.Accelerator)),
		t.Subtle.Render(IconArrow),
		t.Normal.Render(orDash(e.AppID)),
	)
	if e.Detail != "" {
		line += "  " + style.Render(e.Detail)
	}
	return line
}

// RenderWindows lists the windows a resolver returned for an application.
func (r *Renderer) RenderWindows(appID string, found bool, windows []entity.WindowRef, focused entity.WindowID) string {
	t := r.theme
	if !found {
		return fmt.Sprintf("%s %s is not installed", t.ErrorStyle.Render(IconX), t.Title.Render(appID))
	}

	header := fmt.Sprintf("%s %s %s",
		t.Highlight.Render(IconWindow),
		t.Title.Render(appID),
		t.MutedBadge(fmt.Sprintf("%d windows", len(windows))),
	)
	if len(windows) == 0 {
		return header
	}

	lines := make([]string, 0, len(windows))
	for _, w := range windows {
		marker := cursorEmpty
		if w.ID == focused {
			marker = cursorSelected
		}
		desktop := "sticky"
		if w.Desktop >= 0 {
			desktop = fmt.Sprintf("desktop %d", w.Desktop)
		}
		lines = append(lines, fmt.Sprintf("%s%s %s %s",
			t.Highlight.Render(marker),
			t.Subtle.Render(fmt.Sprintf("0x%08x", uint32(w.ID))),
			t.Normal.Render(w.Title),
			t.MutedBadge(desktop),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(lines, "\n"))
}

// RenderDecision shows what a press of shortcutID would do.
func (r *Renderer) RenderDecision(shortcutID string, action entity.Action) string {
	t := r.theme

	detail := ""
	switch action.Kind {
	case entity.ActionFocus, entity.ActionMinimize:
		detail = fmt.Sprintf("%q", action.Window.Title)
	case entity.ActionLaunch:
		detail = action.AppID
	case entity.ActionLaunchWithArgs:
		detail = action.CommandLine
	}

	return strings.TrimRight(fmt.Sprintf("%s %s %s %s %s",
		t.Highlight.Render(IconKeyboard),
		t.Title.Render(shortcutID),
		t.Subtle.Render(IconArrow),
		t.ActionBadge(action.Kind),
		t.Normal.Render(detail),
	), " ")
}

// RenderAutostart renders the autostart entry status.
func (r *Renderer) RenderAutostart(status *port.AutostartStatus) string {
	t := r.theme
	if status == nil || !status.Installed {
		return fmt.Sprintf("%s autostart %s", t.Subtle.Render(IconInfo), t.WarningStyle.Render("disabled"))
	}
	return fmt.Sprintf("%s autostart %s %s\n  %s %s",
		t.SuccessStyle.Render(IconCheck),
		t.SuccessStyle.Render("enabled"),
		t.Subtle.Render(status.EntryPath),
		t.Subtle.Render("exec"),
		t.Normal.Render(status.ExecutablePath),
	)
}

// RenderSuccess renders a one-line success message.
func (r *Renderer) RenderSuccess(msg string) string {
	return fmt.Sprintf("%s %s", r.theme.SuccessStyle.Render(IconCheck), r.theme.Normal.Render(msg))
}

// RenderError renders an error message.
func (r *Renderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// StatusReport describes the installation and the running daemon.
type StatusReport struct {
	ConfigFile     string
	Shortcuts      int
	Bindable       int
	DaemonRunning  bool
	DaemonPID      int
	JournalEnabled bool
	JournalPath    string
	SchemaVersion  int64
	Presses        int64
	JournalErr     error
	Autostart      *port.AutostartStatus
}

// RenderStatus renders the status overview.
func (r *Renderer) RenderStatus(s StatusReport) string {
	t := r.theme
	label := t.Subtle.Width(10)

	daemon := t.WarningStyle.Render("stopped")
	if s.DaemonRunning {
		daemon = t.SuccessStyle.Render("running")
		if s.DaemonPID > 0 {
			daemon += t.Subtle.Render(fmt.Sprintf(" (pid %d)", s.DaemonPID))
		}
	}

	journal := t.Subtle.Render("disabled")
	switch {
	case s.JournalEnabled && s.JournalErr != nil:
		journal = t.ErrorStyle.Render(s.JournalErr.Error())
	case s.JournalEnabled:
		journal = fmt.Sprintf("%s %s %s",
			t.Normal.Render(s.JournalPath),
			t.MutedBadge(fmt.Sprintf("schema v%d", s.SchemaVersion)),
			t.MutedBadge(fmt.Sprintf("%d presses", s.Presses)),
		)
	}

	autostart := t.Subtle.Render("disabled")
	if s.Autostart != nil && s.Autostart.Installed {
		autostart = t.SuccessStyle.Render("enabled")
	}

	lines := []string{
		label.Render("daemon") + daemon,
		label.Render("config") + t.Normal.Render(s.ConfigFile),
		label.Render("shortcuts") + t.Normal.Render(fmt.Sprintf("%d bindable of %d", s.Bindable, s.Shortcuts)),
		label.Render("journal") + journal,
		label.Render("autostart") + autostart,
	}

	header := fmt.Sprintf("%s %s", t.Highlight.Render(IconKeyboard), t.Title.Render("jumpkey"))
	return lipgloss.JoinVertical(lipgloss.Left, header, t.Box.Render(strings.Join(lines, "\n")))
}
