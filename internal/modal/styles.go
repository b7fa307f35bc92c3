package modal

import "github.com/charmbracelet/lipgloss"

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// Palette. The accent is the portfolio's fuchsia; everything else tracks the
// terminal background.
var (
	colorAccent   lipgloss.TerminalColor = ac("#C000C0", "#FF00FF")
	colorAccentFg lipgloss.TerminalColor = ac("255", "255")
	colorMuted    lipgloss.TerminalColor = ac("240", "243")
	colorSurface  lipgloss.TerminalColor = ac("235", "252")
	colorControl  lipgloss.TerminalColor = ac("252", "237")
	colorFrame    lipgloss.TerminalColor = ac("250", "240")
)

var (
	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorSurface)
	styleMuted = lipgloss.NewStyle().Foreground(colorMuted)
	styleBody  = lipgloss.NewStyle().Foreground(colorSurface)

	styleHeading = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	styleFrame = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorFrame).
			Padding(0, 1)

	styleControl = lipgloss.NewStyle().
			Foreground(colorSurface).
			Background(colorControl).
			Padding(0, 1)

	styleControlActive = lipgloss.NewStyle().
				Foreground(colorAccentFg).
				Background(colorAccent).
				Bold(true).
				Padding(0, 1)

	styleClose = lipgloss.NewStyle().Foreground(colorMuted).Bold(true)
	styleLink  = lipgloss.NewStyle().Foreground(colorAccent).Underline(true)
)

// Glyphs are the symbols used inside the modal. The TUI swaps them for an
// ASCII set when the terminal font needs it.
type Glyphs struct {
	Play   string
	Image  string
	Bullet string
	Active string
	Close  string
	Link   string
}

func UnicodeGlyphs() Glyphs {
	return Glyphs{Play: "▶", Image: "▣", Bullet: "•", Active: "▸", Close: "✕", Link: "↗"}
}

func ASCIIGlyphs() Glyphs {
	return Glyphs{Play: ">", Image: "#", Bullet: "*", Active: ">", Close: "x", Link: "->"}
}
