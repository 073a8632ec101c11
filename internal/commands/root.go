package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/balkashynov/tinct/internal/attr"
	"github.com/balkashynov/tinct/internal/config"
	"github.com/balkashynov/tinct/internal/db"
	"github.com/balkashynov/tinct/internal/errpolicy"
	"github.com/balkashynov/tinct/internal/logging"
	"github.com/balkashynov/tinct/internal/parser"
	"github.com/balkashynov/tinct/internal/theme"
	"github.com/balkashynov/tinct/internal/widget"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "tinct",
	Short: "A live theme engine for terminal widgets",
	Long: `tinct keeps terminal widgets in sync with a reactive theme store.
Widgets subscribe while attached, receive updates on the UI loop, and can pin
individual properties to named colors from the resource catalog.`,
	SilenceUsage: true,
}

// app is the runtime shared by commands that touch the catalog or theme.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	catalog *db.Catalog
	policy  *errpolicy.Policy
	logFile io.Closer
}

func (a *app) Close() {
	if a.catalog != nil {
		_ = a.catalog.Close()
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

// newApp loads configuration, opens the log file and the catalog.
func newApp() (*app, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	f, err := logging.OpenFile(cfg.LogPath)
	if err != nil {
		return nil, err
	}
	logger := logging.New(f, cfg.LogLevel)

	catalog, err := db.Open(cfg.DBPath)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := catalog.SeedDefaults(); err != nil {
		_ = catalog.Close()
		_ = f.Close()
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	return &app{
		cfg:     cfg,
		logger:  logger,
		catalog: catalog,
		policy:  errpolicy.New(cfg.ErrorPolicy, logger),
		logFile: f,
	}, nil
}

// withApp wraps a command function so it runs with an initialized app
func withApp(fn func(*cobra.Command, []string, *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(cmd, args, a)
	}
}

// widgetDeps returns the dependencies every widget is built with. The
// dispatcher is chosen by the host.
func (a *app) widgetDeps(store *theme.Store) widget.Deps {
	return widget.Deps{
		Store:     store,
		Policy:    a.policy,
		Resources: a.catalog.Color,
		Logger:    a.logger,
		Debug:     a.cfg.Debug,
	}
}

// overrides parses an --attrs string into a widget override set. Invalid or
// unknown references are reported and left unset.
func (a *app) overrides(raw string, stderr io.Writer) attr.Set {
	parsed := parser.ParseAttributes(raw)
	for _, msg := range parsed.Errors {
		fmt.Fprintf(stderr, "⚠️  %s\n", msg)
	}
	set, errs := attr.Extract(parsed.Values, a.catalog.LookupRef, attr.TextColor, attr.TextColorHint, attr.Background)
	for _, err := range errs {
		if errors.Is(err, db.ErrColorNotFound) {
			fmt.Fprintf(stderr, "⚠️  %v (see 'tinct colors ls')\n", err)
			continue
		}
		fmt.Fprintf(stderr, "⚠️  %v\n", err)
	}
	a.logger.Debug("widget overrides", "attrs", parsed.Names(), "resolved", len(set))
	return set
}

// newStore returns a store populated from the named preset.
func newStore(preset string) (*theme.Store, error) {
	p, ok := theme.Presets()[preset]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (try night or day)", preset)
	}
	store := theme.NewStore()
	if err := store.Apply(p); err != nil {
		return nil, err
	}
	return store, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tinct %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetErr(os.Stderr)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
