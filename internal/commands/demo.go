package commands

import (
	"github.com/spf13/cobra"

	"github.com/balkashynov/tinct/internal/tui"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive theme demo",
	Long: `Open a full-screen demo of themed widgets. The theme can be changed from the
keyboard while a background reloader rotates the accent color.`,
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		preset, _ := cmd.Flags().GetString("preset")
		attrs, _ := cmd.Flags().GetString("attrs")

		store, err := newStore(preset)
		if err != nil {
			return err
		}

		interval := a.cfg.ReloadInterval
		if noReload, _ := cmd.Flags().GetBool("no-reload"); noReload {
			interval = 0
		}

		a.logger.Info("demo starting", "preset", preset, "policy", a.policy.Mode().String(), "reload", interval.String())
		err = tui.RunDemo(cmd.Context(), tui.DemoOptions{
			Deps:           a.widgetDeps(store),
			Overrides:      a.overrides(attrs, cmd.ErrOrStderr()),
			ReloadInterval: interval,
		})
		a.logger.Info("demo finished", "err", err)
		return err
	}),
}

func init() {
	demoCmd.Flags().StringP("preset", "p", "night", "Starting preset: night|day")
	demoCmd.Flags().String("attrs", "", `Widget attributes, e.g. "textColor=@color/brand"`)
	demoCmd.Flags().Bool("no-reload", false, "Disable the background accent reloader")
}
