package styles

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/jumpkey/internal/domain/entity"
)

// AppItem is an installed application in the picker.
type AppItem struct {
	App entity.Application
}

// FilterValue implements list.Item.
func (i AppItem) FilterValue() string {
	return i.App.Name + " " + i.App.ID
}

// AppDelegate renders application items with theme styling.
type AppDelegate struct {
	Theme *Theme
}

// Height returns the height of each item.
func (AppDelegate) Height() int { return 2 }

// Spacing returns the spacing between items.
func (AppDelegate) Spacing() int { return 0 }

// Update handles item-level events.
func (AppDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render renders a single list item.
func (d AppDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ai, ok := item.(AppItem)
	if !ok {
		return
	}

	t := d.Theme
	isSelected := index == m.Index()

	cursor := cursorEmpty
	titleStyle := t.ListItemTitle
	descStyle := t.ListItemDesc
	if isSelected {
		cursor = cursorSelected
		titleStyle = titleStyle.Foreground(t.Accent).Bold(true)
		descStyle = descStyle.Foreground(t.Text)
	}

	name := ai.App.Name
	if name == "" {
		name = ai.App.ID
	}

	line1 := lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.Highlight.Render(cursor),
		titleStyle.Render(name),
	)

	desc := ai.App.ID
	if ai.App.Executable != "" {
		desc += "  " + ai.App.Executable
	}
	line2 := lipgloss.JoinHorizontal(
		lipgloss.Left,
		strings.Repeat(" ", len(cursorEmpty)),
		descStyle.Render(desc),
	)

	_, _ = fmt.Fprintf(w, "%s\n%s", line1, line2)
}

// NewAppList creates a themed, filterable list of applications.
func NewAppList(theme *Theme, apps []entity.Application, width, height int) list.Model {
	items := make([]list.Item, len(apps))
	for i, app := range apps {
		items[i] = AppItem{App: app}
	}

	l := list.New(items, AppDelegate{Theme: theme}, width, height)
	l.Title = "Applications"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	l.Styles.ActivePaginationDot = lipgloss.NewStyle().Foreground(theme.Accent)
	l.Styles.InactivePaginationDot = lipgloss.NewStyle().Foreground(theme.Muted)

	return l
}
