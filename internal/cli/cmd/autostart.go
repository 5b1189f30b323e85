package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/jumpkey/internal/cli/styles"
	"github.com/bnema/jumpkey/internal/infrastructure/desktop"
)

var autostartCmd = &cobra.Command{
	Use:         "autostart",
	Short:       "Start the daemon with your desktop session",
	Annotations: map[string]string{skipApp: "true"},
}

var autostartEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Install the XDG autostart entry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := desktop.NewAutostart().Enable(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), autostartRenderer().RenderSuccess("autostart entry written to "+path))
		return nil
	},
}

var autostartDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Remove the XDG autostart entry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := desktop.NewAutostart().Disable(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), autostartRenderer().RenderSuccess("autostart disabled"))
		return nil
	},
}

var autostartStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the autostart entry is installed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		status, err := desktop.NewAutostart().Status(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), autostartRenderer().RenderAutostart(status))
		return nil
	},
}

func autostartRenderer() *styles.Renderer {
	return styles.NewRenderer(styles.NewTheme())
}

func init() {
	rootCmd.AddCommand(autostartCmd)
	autostartCmd.AddCommand(autostartEnableCmd, autostartDisableCmd, autostartStatusCmd)
}
