package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/tinct/internal/colors"
	"github.com/balkashynov/tinct/internal/tui"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the themed widgets once and exit",
	Long:  "Render every widget with a preset, optional accent and attributes, without starting the TUI",
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		preset, _ := cmd.Flags().GetString("preset")
		attrs, _ := cmd.Flags().GetString("attrs")
		accent, _ := cmd.Flags().GetString("accent")

		store, err := newStore(preset)
		if err != nil {
			return err
		}
		if accent != "" {
			c, err := colors.ParseHex(accent)
			if err != nil {
				return fmt.Errorf("--accent: %w", err)
			}
			if err := store.Edit().ColorAccent(c).Apply(); err != nil {
				return err
			}
		}

		out := tui.RenderPreview(tui.DemoOptions{
			Deps:      a.widgetDeps(store),
			Overrides: a.overrides(attrs, cmd.ErrOrStderr()),
		})
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}),
}

func init() {
	previewCmd.Flags().StringP("preset", "p", "night", "Preset: night|day")
	previewCmd.Flags().String("accent", "", "Accent color override (#RRGGBB)")
	previewCmd.Flags().String("attrs", "", `Widget attributes, e.g. "textColor=@color/brand background=@2"`)
}
