package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the daemon runs and how it is configured",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := GetApp()
		report, err := a.Status()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.Render.RenderStatus(report))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
