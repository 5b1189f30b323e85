package model

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/jumpkey/internal/application/usecase"
	"github.com/bnema/jumpkey/internal/cli/styles"
	"github.com/bnema/jumpkey/internal/domain/entity"
)

// HistoryModel shows recent activations in a table.
type HistoryModel struct {
	ctx       context.Context
	journalUC *usecase.JournalUseCase
	limit     int

	activations []*entity.Activation
	table       table.Model
	keys        styles.TableKeyMap
	help        help.Model
	theme       *styles.Theme
	loading     bool
	err         error
	width       int
	height      int
}

// NewHistoryModel creates the journal browser.
func NewHistoryModel(ctx context.Context, theme *styles.Theme, journalUC *usecase.JournalUseCase, limit int) HistoryModel {
	return HistoryModel{
		ctx:       ctx,
		journalUC: journalUC,
		limit:     limit,
		keys:      styles.DefaultTableKeyMap(),
		help:      styles.NewStyledHelp(theme),
		theme:     theme,
		loading:   true,
		width:     defaultWidth,
		height:    defaultHeight,
	}
}

type activationsLoadedMsg struct {
	activations []*entity.Activation
	err         error
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return m.load
}

func (m HistoryModel) load() tea.Msg {
	activations, err := m.journalUC.Recent(m.ctx, m.limit)
	return activationsLoadedMsg{activations: activations, err: err}
}

// Update implements tea.Model.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildTable()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd

	case activationsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.activations = msg.activations
		m.rebuildTable()
	}

	return m, nil
}

func (m *HistoryModel) rebuildTable() {
	rows := make([]table.Row, len(m.activations))
	for i, a := range m.activations {
		rows[i] = styles.ActivationRow(a)
	}

	tableHeight := len(rows) + 1
	if tableHeight > m.height-6 {
		tableHeight = m.height - 6
	}
	if tableHeight < 3 {
		tableHeight = 3
	}

	m.table = styles.NewStyledTable(m.theme, styles.ActivationTableColumns(), rows, m.width-2, tableHeight)
}

// View implements tea.Model.
func (m HistoryModel) View() string {
	t := m.theme

	switch {
	case m.loading:
		return t.Subtle.Render("Loading activations...")
	case m.err != nil:
		return t.Box.Render(t.ErrorStyle.Render("Error: " + m.err.Error()))
	case len(m.activations) == 0:
		return t.Box.Render(t.Subtle.Render("No activations recorded yet"))
	}

	failures := 0
	for _, a := range m.activations {
		if a.Failed() {
			failures++
		}
	}

	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		t.Title.Render("Activations"),
		" ",
		t.Badge.Render(fmt.Sprintf("%d shown", len(m.activations))),
		" ",
		t.BadgeMuted.Render(fmt.Sprintf("%d failed", failures)),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		m.table.View(),
		"",
		m.help.View(m.keys),
	)
}
