package tui

import (
	"fmt"

	"folio-cli/internal/catalog"
	"folio-cli/internal/debuglog"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

type Options struct {
	// OpenID triggers the modal for that project on start.
	OpenID string
	// Theme and Glyphs are the configured preferences; env vars win.
	Theme  string
	Glyphs string
}

func Run(cat *catalog.Catalog, opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)
	applyGlyphPreference(opts.Glyphs)

	zones := zone.New()
	defer zones.Close()

	m := newAppModel(cat, zones)
	if opts.OpenID != "" {
		m.selectListItemByID(opts.OpenID)
		if !m.trigger(opts.OpenID) {
			return fmt.Errorf("%w: %s", catalog.ErrNotFound, opts.OpenID)
		}
	}
	debuglog.Log.Info("tui start", "projects", cat.Len(), "open", opts.OpenID)

	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
