package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/jumpkey/internal/cli"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration and show which shortcuts would bind",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := GetApp()
		report := cli.BuildCheckReport(a.Config.Get(), a.Config.GetConfigFile())
		fmt.Fprintln(cmd.OutOrStdout(), a.Render.RenderCheck(report))
		if !report.OK() {
			return errors.New("configuration needs attention")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
