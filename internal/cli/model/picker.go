// Package model holds the Bubble Tea models behind the interactive commands.
package model

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/jumpkey/internal/cli/styles"
	"github.com/bnema/jumpkey/internal/domain/entity"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// PickerModel lets the user filter installed applications and choose one.
type PickerModel struct {
	list     list.Model
	theme    *styles.Theme
	selected *entity.Application
	quitting bool
}

// NewPickerModel creates an application picker over apps.
func NewPickerModel(theme *styles.Theme, apps []entity.Application) PickerModel {
	return PickerModel{
		list:  styles.NewAppList(theme, apps, defaultWidth, defaultHeight-2),
		theme: theme,
	}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		// While filtering, keys belong to the filter input.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(styles.AppItem); ok {
				app := item.App
				m.selected = &app
			}
			m.quitting = true
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}
	return m.list.View()
}

// Selected returns the chosen application, or nil when the picker was cancelled.
func (m PickerModel) Selected() *entity.Application {
	return m.selected
}
