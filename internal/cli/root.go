package cli

import (
	"fmt"
	"os"
	"strings"

	"folio-cli/internal/catalog"
	"folio-cli/internal/config"
	"folio-cli/internal/debuglog"
	"folio-cli/internal/format"
	"folio-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Catalog  string
	Format   string
	Pretty   bool
	DebugLog string
	OpenID   string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "folio",
		Short:        "Browse a project portfolio in the terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive browser
  folio

  # Start with a project's detail modal open
  folio --open hdb-cats

  # Scriptable commands
  folio projects list --category games
  folio projects show 2d-platformer --format yaml
  folio catalog validate ./projects.yaml
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := debuglog.Init(app.DebugLog); err != nil {
			return writeErr(cmd, fmt.Errorf("debug log: %w", err))
		}
		return nil
	}
	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		_ = debuglog.Close()
	}

	cmd.PersistentFlags().StringVar(&app.Catalog, "catalog", envOr("FOLIO_CATALOG", ""), "Path to a YAML project catalog (default: config, then built-in)")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("FOLIO_FORMAT", "json"), "Output format (json|yaml)")
	cmd.PersistentFlags().BoolVar(&app.Pretty, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.DebugLog, "debug-log", envOr(debuglog.EnvPath, ""), "Append debug logs to this file")
	cmd.Flags().StringVar(&app.OpenID, "open", "", "Open this project's modal on start")

	cmd.AddCommand(newProjectsCmd(app))
	cmd.AddCommand(newCatalogCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	cat, err := loadCatalog(app)
	if err != nil {
		return writeErr(cmd, err)
	}
	cfg, err := config.Load()
	if err != nil {
		return writeErr(cmd, err)
	}
	if err := tui.Run(cat, tui.Options{OpenID: app.OpenID, Theme: cfg.Theme(), Glyphs: cfg.Glyphs()}); err != nil {
		return writeErr(cmd, err)
	}
	return nil
}

// catalogPath resolves which catalog to read:
// 1) --catalog / FOLIO_CATALOG
// 2) catalog in ~/.folio/config.json
// 3) the built-in catalog ("")
func catalogPath(app *App) (string, error) {
	if p := strings.TrimSpace(app.Catalog); p != "" {
		return p, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(cfg.Catalog), nil
}

func loadCatalog(app *App) (*catalog.Catalog, error) {
	path, err := catalogPath(app)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}
	debuglog.Log.Debug("catalog loaded", "path", path, "projects", cat.Len())
	return cat, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.Pretty)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
