package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/jumpkey/internal/cli/styles"
	"github.com/bnema/jumpkey/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print version information",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipApp: "true"},
	Run: func(cmd *cobra.Command, _ []string) {
		t := styles.NewTheme()
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", t.Title.Render("jumpkey"), t.Highlight.Render(buildInfo.Version))
		fmt.Fprintf(cmd.OutOrStdout(), "  commit %s\n  built  %s\n  go     %s\n  %s\n",
			buildInfo.Commit, buildInfo.BuildDate, buildInfo.GoVersion, t.Subtle.Render(build.RepoURL()))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
