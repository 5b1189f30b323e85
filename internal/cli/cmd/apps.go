package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/jumpkey/internal/cli/model"
)

const appIDColumnWidth = 48

var (
	appsJSON bool
	appsPick bool
)

var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "List installed applications and their desktop ids",
	Long: `List the applications shortcuts can target.

With --pick an interactive filterable list opens and the chosen desktop id is
printed, ready to paste into application_to_focus.`,
	Args: cobra.NoArgs,
	RunE: runApps,
}

func init() {
	rootCmd.AddCommand(appsCmd)

	appsCmd.Flags().BoolVar(&appsJSON, "json", false, "output as JSON")
	appsCmd.Flags().BoolVarP(&appsPick, "pick", "p", false, "choose an application interactively and print its id")
}

func runApps(cmd *cobra.Command, _ []string) error {
	a := GetApp()
	apps, err := a.Catalog().List(a.Ctx())
	if err != nil {
		return fmt.Errorf("list applications: %w", err)
	}
	out := cmd.OutOrStdout()

	switch {
	case appsJSON:
		return writeJSON(out, apps)

	case appsPick:
		final, err := tea.NewProgram(model.NewPickerModel(a.Theme, apps), tea.WithAltScreen()).Run()
		if err != nil {
			return err
		}
		if picked := final.(model.PickerModel).Selected(); picked != nil {
			fmt.Fprintln(out, picked.ID)
		}
		return nil
	}

	idStyle := a.Theme.Highlight.Width(appIDColumnWidth)
	for _, app := range apps {
		fmt.Fprintln(out, idStyle.Render(app.ID)+" "+a.Theme.Subtle.Render(app.Name))
	}
	return nil
}
