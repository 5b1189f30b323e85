package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/jumpkey/internal/domain/entity"
)

var decideExecute bool

var decideCmd = &cobra.Command{
	Use:   "decide <shortcut-id>",
	Short: "Print what pressing a shortcut would do right now",
	Long: `Run the focus decision for a configured shortcut against the live session.

Nothing happens unless --execute is given, in which case the action is
carried out exactly like a key press would.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecide,
}

func init() {
	rootCmd.AddCommand(decideCmd)

	decideCmd.Flags().BoolVar(&decideExecute, "execute", false, "carry out the action")
}

func runDecide(cmd *cobra.Command, args []string) error {
	a := GetApp()
	ctx := a.Ctx()

	sc, ok := findShortcut(a.Config.Shortcuts(ctx), args[0])
	if !ok {
		return fmt.Errorf("no shortcut with id %q in %s", args[0], a.Config.GetConfigFile())
	}
	if !sc.IsComplete() {
		return fmt.Errorf("shortcut %q is incomplete and never binds", sc.ID)
	}

	focus, err := a.FocusUseCase()
	if err != nil {
		return err
	}

	var action entity.Action
	if decideExecute {
		action, err = focus.Handle(ctx, sc)
	} else {
		action, err = focus.Decide(ctx, sc)
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.Render.RenderDecision(sc.ID, action))
	return err
}

func findShortcut(configs []entity.ShortcutConfig, id string) (entity.ShortcutConfig, bool) {
	for _, sc := range configs {
		if sc.ID == id {
			return sc, true
		}
	}
	return entity.ShortcutConfig{}, false
}
