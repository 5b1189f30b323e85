package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/jumpkey/internal/application/usecase"
	"github.com/bnema/jumpkey/internal/infrastructure/x11"
)

var (
	windowsTitle string
	windowsExact bool
)

var windowsCmd = &cobra.Command{
	Use:   "windows <app-id>",
	Short: "Show the windows a shortcut for an application would consider",
	Long: `Resolve the open windows of an application the same way a shortcut press
does, in stacking order, and mark the focused one.

Examples:
  jumpkey windows kitty.desktop
  jumpkey windows firefox.desktop --title "Mozilla Firefox" --exact`,
	Args: cobra.ExactArgs(1),
	RunE: runWindows,
}

func init() {
	rootCmd.AddCommand(windowsCmd)

	windowsCmd.Flags().StringVarP(&windowsTitle, "title", "t", "", "only windows whose title contains this text")
	windowsCmd.Flags().BoolVar(&windowsExact, "exact", false, "require the title to match exactly")
}

func runWindows(cmd *cobra.Command, args []string) error {
	a := GetApp()
	session, err := a.Session()
	if err != nil {
		return err
	}
	windows := x11.NewWindowSystem(session)
	resolver := usecase.NewResolveWindowsUseCase(a.Catalog(), windows)

	out, err := resolver.Execute(a.Ctx(), usecase.ResolveWindowsInput{
		AppID:       args[0],
		TitleFilter: windowsTitle,
		Exact:       windowsExact,
	})
	if err != nil {
		return err
	}

	focused, _, err := windows.FocusedWindow(a.Ctx())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.Render.RenderWindows(args[0], out.Found, out.Windows, focused))
	return nil
}
