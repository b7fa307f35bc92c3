package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
)

// projectDelegate renders two-line project rows and marks each one as a
// click zone.
type projectDelegate struct {
	zones  *zone.Manager
	prefix string
}

func (d projectDelegate) Height() int  { return 2 }
func (d projectDelegate) Spacing() int { return 1 }
func (d projectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d projectDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(projectItem)
	contentW := m.Width()
	if !ok || contentW < 4 {
		fmt.Fprint(w, "")
		return
	}

	selected := index == m.Index()
	title := lipgloss.NewStyle().Foreground(colorSurfaceFg)
	meta := styleMuted()
	lead := "  "
	if selected {
		title = title.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
		meta = meta.Background(colorSelectedBg)
		lead = lipgloss.NewStyle().Foreground(colorAccent).Background(colorSelectedBg).Render(glyphCursor() + " ")
	}

	kind := it.kind.String()
	sub := it.Description()
	if sub == "" {
		sub = kind
	} else {
		sub += "   " + kind
	}

	line1 := lead + title.Render(fitWidth(it.Title(), contentW-2))
	pad := "  "
	if selected {
		pad = lipgloss.NewStyle().Background(colorSelectedBg).Render(pad)
	}
	line2 := pad + meta.Render(fitWidth(sub, contentW-2))

	row := line1 + "\n" + line2
	if d.zones != nil {
		row = d.zones.Mark(d.prefix+rowZone(it.project.ID), row)
	}
	fmt.Fprint(w, row)
}

// fitWidth pads or cuts plain text to exactly width columns.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := xansi.StringWidth(s)
	if w > width {
		if width == 1 {
			return xansi.Cut(s, 0, 1)
		}
		return xansi.Cut(s, 0, width-1) + "…"
	}
	return s + strings.Repeat(" ", width-w)
}
