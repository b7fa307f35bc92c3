package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// normalizePane forces s to be exactly width columns wide (ANSI-aware) and
// height lines tall, so overlay math can index lines and columns directly.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	lines := strings.Split(s, "\n")

	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}

	for i := range lines {
		ln := lines[i]
		// Bound the width computation on pathological lines.
		if width > 0 && len(ln) > 8192 {
			ln = xansi.Cut(ln, 0, width)
		}

		w := xansi.StringWidth(ln)
		if w > width {
			switch {
			case width <= 0:
				ln = ""
			case width == 1:
				ln = xansi.Cut(ln, 0, 1)
			default:
				ln = xansi.Cut(ln, 0, width-1) + "…"
			}
			w = xansi.StringWidth(ln)
		}
		if w < width {
			ln += strings.Repeat(" ", width-w)
		}
		lines[i] = ln
	}

	return strings.Join(lines, "\n")
}

// dimBackground renders s as a flat scrim. Inner styles are stripped first,
// otherwise they would override the dim foreground.
func dimBackground(s string) string {
	st := lipgloss.NewStyle().Foreground(colorScrimFg)
	lines := strings.Split(xansi.Strip(s), "\n")
	for i, ln := range lines {
		if ln == "" {
			continue
		}
		lines[i] = st.Render(ln)
	}
	return strings.Join(lines, "\n")
}

// overlayCenter composites fg over the middle of bg, a width x height pane.
// Lines of fg taller than the pane are dropped from the bottom.
func overlayCenter(bg, fg string, width, height int) string {
	bgLines := strings.Split(normalizePane(bg, width, height), "\n")
	fgLines := strings.Split(fg, "\n")
	if len(fgLines) > len(bgLines) {
		fgLines = fgLines[:len(bgLines)]
	}

	fgW := 0
	for _, ln := range fgLines {
		if w := xansi.StringWidth(ln); w > fgW {
			fgW = w
		}
	}
	if fgW > width {
		fgW = width
	}

	x := (width - fgW) / 2
	y := (len(bgLines) - len(fgLines)) / 2
	for i, ln := range fgLines {
		row := y + i
		if w := xansi.StringWidth(ln); w < fgW {
			ln += strings.Repeat(" ", fgW-w)
		} else if w > fgW {
			ln = xansi.Cut(ln, 0, fgW)
		}
		left := xansi.Cut(bgLines[row], 0, x)
		right := xansi.Cut(bgLines[row], x+fgW, width)
		// Reset between segments so no style bleeds across the seams.
		bgLines[row] = left + "\x1b[0m" + ln + "\x1b[0m" + right
	}
	return strings.Join(bgLines, "\n")
}

// cropLines returns at most height lines of s starting at offset, clamping
// offset so the last page stays full. The clamped offset is returned too.
func cropLines(s string, offset, height int) (string, int) {
	lines := strings.Split(s, "\n")
	if height <= 0 || len(lines) <= height {
		return s, 0
	}
	maxOff := len(lines) - height
	if offset > maxOff {
		offset = maxOff
	}
	if offset < 0 {
		offset = 0
	}
	return strings.Join(lines[offset:offset+height], "\n"), offset
}
