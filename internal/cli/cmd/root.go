// Package cmd provides Cobra CLI commands for jumpkey.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/jumpkey/internal/cli"
	"github.com/bnema/jumpkey/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	globals   cli.Options
	rootCmd   = &cobra.Command{
		Use:   "jumpkey",
		Short: "Global shortcuts that jump to your applications",
		Long: `jumpkey binds keyboard shortcuts to applications on an X11 desktop.

Pressing a shortcut focuses the application's window, minimizes it when it
already has focus, jumps to the most recent one when several are open, or
launches the application when none is running.

Shortcuts live in $XDG_CONFIG_HOME/jumpkey/config.toml:

  [[shortcuts]]
  application_to_focus = "org.gnome.TextEditor.desktop"
  keyboard_shortcut = "<Super>e"

Run 'jumpkey run' to start the daemon, or 'jumpkey autostart enable' to start
it with your session.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !needsApp(cmd) {
				return nil
			}

			opts := globals
			_, opts.FileLog = cmd.Annotations[fileLog]

			var err error
			app, err = cli.NewApp(opts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Command annotations.
const (
	// skipApp commands run without loading the configuration.
	skipApp = "skip-app"
	// fileLog commands also log to the rotated file when enabled.
	fileLog = "file-log"
)

func needsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion":
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[skipApp]; ok {
			return false
		}
	}
	return true
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globals.ConfigFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/jumpkey/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globals.LogLevel, "log-level", "", "override logging.level (trace, debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
