package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for tinct",
	Long:  `Display detailed help for all tinct commands, flags and environment settings.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp(cmd.OutOrStdout())
	},
}

func showCustomHelp(w io.Writer) {
	fmt.Fprint(w, `
████████╗██╗███╗   ██╗ ██████╗████████╗
╚══██╔══╝██║████╗  ██║██╔════╝╚══██╔══╝
   ██║   ██║██╔██╗ ██║██║        ██║
   ██║   ██║██║╚██╗██║██║        ██║
   ██║   ██║██║ ╚████║╚██████╗   ██║
   ╚═╝   ╚═╝╚═╝  ╚═══╝ ╚═════╝   ╚═╝

tinct - live theme engine for terminal widgets

COMMANDS:

  demo                    Interactive demo of themed widgets
    -p, --preset          Starting preset: night|day
    --attrs               Widget attributes (see below)
    --no-reload           Disable the background accent reloader

    Keys:
      d             Toggle dark/light preset
      a             Next accent color
      m             Swap tab background/indicator modes
      x             Detach/attach every widget
      ←/→           Select tab
      esc/q         Quit

  preview                 Render the widgets once and exit
    -p, --preset          Preset: night|day
    --accent              Accent override (#RRGGBB)
    --attrs               Widget attributes

  colors add <name> <hex> Add a named color
    --note                Additional notes
  colors ls               List named colors
  colors rm <id>          Remove a named color

  version                 Print version information
  help                    Show this help

ATTRIBUTES:

  textColor=<ref>         Pin text color
  textColorHint=<ref>     Pin input hint color
  background=<ref>        Pin input background tint

    References:
      @color/<name> Named color from the catalog
      @<id>         Color by catalog ID

    Example:
      tinct preview --attrs "textColor=@color/brand background=@color/warning"

ENVIRONMENT:

  TINCT_DB_PATH           Catalog database (":memory:" for a throwaway one)
  TINCT_LOG_PATH          JSON log file
  TINCT_LOG_LEVEL         debug|info|warn|error
  TINCT_ERROR_POLICY      fail-fast|stop-pipeline
  TINCT_DEBUG             Panic on lifecycle misuse
  TINCT_RELOAD_INTERVAL   Demo reload period, e.g. 3s

`)
}
