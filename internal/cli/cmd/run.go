package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/jumpkey/internal/daemon"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the shortcut daemon in the foreground",
	Long: `Grab every configured shortcut and serve it until interrupted.

The configuration file is watched and shortcuts are rebound on every change.
Send SIGHUP to force a reload, SIGINT or SIGTERM to stop.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{fileLog: "true"},
	RunE: func(_ *cobra.Command, _ []string) error {
		a := GetApp()
		ctx, stop := daemon.NotifyContext(a.Ctx())
		defer stop()
		return daemon.RunSession(ctx, a.Config)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
