package cli

import (
	"errors"
	"fmt"
	"strings"

	"folio-cli/internal/catalog"

	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Catalog commands",
	}
	cmd.AddCommand(newCatalogValidateCmd(app))
	cmd.AddCommand(newCatalogCategoriesCmd(app))
	return cmd
}

func newCatalogValidateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Load a catalog and check every record",
		Long: strings.TrimSpace(`
Loads the catalog at path (or the configured/built-in one) and checks every
record: required fields, at most one video field, and at least one media
source. Prints the number of projects per media kind.
`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = strings.TrimSpace(args[0])
			} else {
				p, err := catalogPath(app)
				if err != nil {
					return writeErr(cmd, err)
				}
				path = p
			}

			cat, err := catalog.LoadOrDefault(path)
			if err != nil {
				if errors.Is(err, catalog.ErrMalformedRecord) {
					return writeErr(cmd, fmt.Errorf("invalid catalog: %w", err))
				}
				return writeErr(cmd, err)
			}

			source := path
			if source == "" {
				source = "built-in"
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"source":     source,
					"projects":   cat.Len(),
					"media":      cat.Summary(),
					"categories": cat.Categories(),
				},
			})
		},
	}
	return cmd
}

func newCatalogCategoriesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories in first-seen order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			cats := cat.Categories()
			if cats == nil {
				cats = []string{}
			}
			return writeOut(cmd, app, map[string]any{"data": cats})
		},
	}
	return cmd
}
