package tui

import (
	"strings"

	"folio-cli/internal/media"
	"folio-cli/internal/model"
)

type projectItem struct {
	project model.Project
	kind    media.Kind
}

func newProjectItem(p model.Project) projectItem {
	it := projectItem{project: p}
	if plan, err := media.Resolve(p); err == nil {
		it.kind = plan.Kind
	}
	return it
}

func (i projectItem) Title() string { return i.project.Title }

func (i projectItem) Description() string {
	return strings.Join(i.project.Categories, " "+glyphSep()+" ")
}

func (i projectItem) FilterValue() string {
	return i.project.Title + " " + strings.Join(i.project.Categories, " ")
}

func rowZone(id string) string { return "row-" + id }
