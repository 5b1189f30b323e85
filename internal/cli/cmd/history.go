package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/jumpkey/internal/cli/model"
	"github.com/bnema/jumpkey/internal/cli/styles"
)

var (
	historyJSON  bool
	historyMax   int
	historyStats bool
	historyPrune bool
)

const defaultHistoryMax = 50

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recent shortcut activations",
	Long: `Show what recent shortcut presses did: the decided action and any error.

Entries older than journal.retention_days are removed by the daemon; --prune
does it immediately.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().IntVar(&historyMax, "max", defaultHistoryMax, "maximum entries to show")
	historyCmd.Flags().BoolVar(&historyStats, "stats", false, "show per-shortcut press counts")
	historyCmd.Flags().BoolVar(&historyPrune, "prune", false, "delete entries older than the retention period")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	a := GetApp()
	journal, err := a.JournalUseCase()
	if err != nil {
		return err
	}
	ctx := a.Ctx()
	out := cmd.OutOrStdout()

	switch {
	case historyPrune:
		days := a.Config.Get().Journal.RetentionDays
		removed, err := journal.Prune(ctx, days)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, a.Render.RenderSuccess(fmt.Sprintf("removed %d entries older than %d days", removed, days)))
		return nil

	case historyStats:
		stats, err := journal.Stats(ctx)
		if err != nil {
			return err
		}
		if historyJSON {
			return writeJSON(out, stats)
		}
		rows := make([]table.Row, 0, len(stats))
		for _, s := range stats {
			rows = append(rows, styles.StatsRow(s))
		}
		columns := styles.StatsTableColumns()
		tbl := styles.NewStyledTable(a.Theme, columns, rows, styles.TableWidth(columns), len(rows)+1)
		fmt.Fprintln(out, lipgloss.JoinVertical(lipgloss.Left, a.Theme.Title.Render("Presses per shortcut"), tbl.View()))
		return nil

	case historyJSON:
		activations, err := journal.Recent(ctx, historyMax)
		if err != nil {
			return err
		}
		return writeJSON(out, activations)
	}

	m := model.NewHistoryModel(ctx, a.Theme, journal, historyMax)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
