package cli

import (
	"errors"
	"strings"

	"folio-cli/internal/catalog"
	"folio-cli/internal/media"
	"folio-cli/internal/model"

	"github.com/spf13/cobra"
)

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Project commands",
	}
	cmd.AddCommand(newProjectsListCmd(app))
	cmd.AddCommand(newProjectsShowCmd(app))
	return cmd
}

func newProjectsListCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			category = strings.TrimSpace(category)
			out := []model.Project{}
			for _, p := range cat.Projects() {
				if category != "" && !p.HasCategory(category) {
					continue
				}
				out = append(out, p)
			}
			return writeOut(cmd, app, map[string]any{
				"data": out,
				"meta": map[string]any{"count": len(out), "category": category},
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only projects in this category")
	return cmd
}

// projectDetail is a project with its media plan inlined.
type projectDetail struct {
	model.Project
	Media media.Plan `json:"media"`
}

func newProjectsShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show a project and its resolved media",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			p, err := cat.Lookup(id)
			if errors.Is(err, catalog.ErrNotFound) {
				return writeErr(cmd, errNotFound("project", id))
			}
			if err != nil {
				return writeErr(cmd, err)
			}
			plan, err := media.Resolve(p)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": projectDetail{Project: p, Media: plan}})
		},
	}
	return cmd
}
