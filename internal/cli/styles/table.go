package styles

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/jumpkey/internal/domain/entity"
)

const timeColumnLayout = "2006-01-02 15:04:05"

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// ActivationTableColumns returns columns for the journal table.
func ActivationTableColumns() []table.Column {
	return []table.Column{
		{Title: "Time", Width: 19},
		{Title: "Shortcut", Width: 14},
		{Title: "Keys", Width: 16},
		{Title: "Application", Width: 28},
		{Title: "Action", Width: 16},
		{Title: "Error", Width: 30},
	}
}

// ActivationRow converts a journal entry to a table row.
func ActivationRow(a *entity.Activation) table.Row {
	return table.Row{
		a.CreatedAt.Local().Format(timeColumnLayout),
		a.ShortcutID,
		a.Accelerator,
		a.AppID,
		string(a.Action),
		a.Error,
	}
}

// StatsTableColumns returns columns for the per-shortcut stats table.
func StatsTableColumns() []table.Column {
	return []table.Column{
		{Title: "Shortcut", Width: 14},
		{Title: "Keys", Width: 16},
		{Title: "Presses", Width: 8},
		{Title: "Failures", Width: 8},
		{Title: "Last Press", Width: 12},
	}
}

// StatsRow converts per-shortcut stats to a table row.
func StatsRow(s *entity.ActivationStats) table.Row {
	return table.Row{
		s.ShortcutID,
		s.Accelerator,
		strconv.FormatInt(s.Presses, 10),
		strconv.FormatInt(s.Failures, 10),
		RelativeTime(s.LastPressed),
	}
}

// TableWidth is the width needed to show every column of a table unclipped.
func TableWidth(columns []table.Column) int {
	const cellPadding = 2
	width := 0
	for _, c := range columns {
		width += c.Width + cellPadding
	}
	return width
}
