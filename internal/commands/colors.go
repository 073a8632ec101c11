package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/balkashynov/tinct/internal/colors"
	"github.com/balkashynov/tinct/internal/db"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Manage named color resources",
	Long:  "Named colors can be referenced from widget attributes as @color/<name> or @<id>",
}

var colorsAddCmd = &cobra.Command{
	Use:   "add <name> <hex>",
	Short: "Add a named color",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		note, _ := cmd.Flags().GetString("note")
		res, err := a.catalog.CreateColor(db.CreateColorRequest{Name: args[0], Hex: args[1], Note: note})
		if err != nil {
			return err
		}
		a.logger.Info("color added", "id", res.ID, "name", res.Name, "hex", res.Hex)
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Added @color/%s (%s) - ID: %d\n", res.Name, res.Hex, res.ID)
		return nil
	}),
}

var colorsListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List named colors",
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		list, err := a.catalog.GetColors()
		if err != nil {
			return fmt.Errorf("fetch colors: %w", err)
		}
		out := cmd.OutOrStdout()
		if len(list) == 0 {
			fmt.Fprintln(out, "No colors found. Use 'tinct colors add <name> <hex>' to create one.")
			return nil
		}

		fmt.Fprintf(out, "%-4s %-20s %-10s %-6s %s\n", "ID", "NAME", "HEX", "", "NOTE")
		fmt.Fprintln(out, strings.Repeat("-", 60))
		for _, res := range list {
			sample := "  "
			if c, err := colors.ParseHex(res.Hex); err == nil {
				sample = lipgloss.NewStyle().Background(c.Lipgloss()).Render("    ")
			}
			name := res.Name
			if len(name) > 18 {
				name = name[:15] + "..."
			}
			fmt.Fprintf(out, "%-4d %-20s %-10s %s   %s\n", res.ID, name, res.Hex, sample, res.Note)
		}
		return nil
	}),
}

var colorsRemoveCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a named color",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		id, err := parseColorID(args[0])
		if err != nil {
			return err
		}
		res, err := a.catalog.DeleteColor(id)
		if err != nil {
			return err
		}
		a.logger.Info("color removed", "id", res.ID, "name", res.Name)
		fmt.Fprintf(cmd.OutOrStdout(), "🗑️  Removed @color/%s - ID: %d\n", res.Name, res.ID)
		return nil
	}),
}

// parseColorID accepts a catalog ID with or without the leading @.
func parseColorID(arg string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimPrefix(arg, "@"), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid color ID %q", arg)
	}
	return uint(id), nil
}

func init() {
	colorsAddCmd.Flags().String("note", "", "Additional notes")
	colorsCmd.AddCommand(colorsAddCmd)
	colorsCmd.AddCommand(colorsListCmd)
	colorsCmd.AddCommand(colorsRemoveCmd)
}
