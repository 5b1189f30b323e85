package styles

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/jumpkey/internal/domain/entity"
)

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// ActionBadge colors an action kind: launches stand out, no-ops are muted.
func (t *Theme) ActionBadge(kind entity.ActionKind) string {
	style := lipgloss.NewStyle().Padding(0, 1).Foreground(t.Background)
	switch kind {
	case entity.ActionFocus:
		style = style.Background(t.Accent)
	case entity.ActionMinimize:
		style = style.Background(t.Muted)
	case entity.ActionLaunch, entity.ActionLaunchWithArgs:
		style = style.Background(t.Success)
	default:
		return t.BadgeMuted.Render(string(kind))
	}
	return style.Render(string(kind))
}

// RelativeTime formats a time as a human-readable relative string.
func RelativeTime(tm time.Time) string {
	return relativeTo(time.Now(), tm)
}

func relativeTo(now, tm time.Time) string {
	diff := now.Sub(tm)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return tm.Format("2006-01-02")
	}
}
