package tui

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// The browser must stay readable on light and dark terminals. Colors are
// lipgloss.AdaptiveColor pairs and faint styling is only applied on dark
// backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted     = ac("240", "243")
	colorSurfaceFg = ac("235", "252")
	colorControlBg = ac("252", "235")
	colorAccent    = ac("127", "213") // fuchsia, matches the modal border

	colorSelectedBg = ac("#e9e9e9", "#262626")
	colorSelectedFg = ac("235", "255")

	// Foreground of the dimmed list behind an open modal.
	colorScrimFg = ac("250", "241")

	colorFlashErrorFg = ac("160", "203")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleHeader() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
}

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI.
//
// termenv.EnvColorProfile honors CLICOLOR/CLICOLOR_FORCE, which can disable
// colors in an interactive program. Only NO_COLOR is honored here.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// Trust TERM/COLORTERM when they claim more than the detector reports.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}

// themeFromEnv resolves the light/dark preference.
//
// Priority:
// 1) FOLIO_TUI_THEME=light|dark|auto
// 2) FOLIO_TUI_DARKBG=true|false
// 3) configured theme (tui.theme)
// 4) COLORFGBG heuristic ("15;0" = fg;bg)
//
// ok is false when nothing decided and detection should be left alone.
func themeFromEnv(configured string) (dark bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("FOLIO_TUI_THEME"))) {
	case "light":
		return false, true
	case "dark":
		return true, true
	}

	if v := strings.TrimSpace(os.Getenv("FOLIO_TUI_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b, true
		}
	}

	switch strings.ToLower(strings.TrimSpace(configured)) {
	case "light":
		return false, true
	case "dark":
		return true, true
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			// Common xterm palette: 0-6 dark colors, 7-15 light colors.
			return bg < 7, true
		}
	}
	return false, false
}

// applyThemePreference configures Lip Gloss's background detection. Some
// terminals don't report their background, which makes AdaptiveColor pick
// the wrong variant.
func applyThemePreference(configured string) {
	if dark, ok := themeFromEnv(configured); ok {
		lipgloss.SetHasDarkBackground(dark)
		return
	}
	// Terminal.app often sets no COLORFGBG; fall back to the OS appearance.
	if runtime.GOOS == "darwin" {
		if dark, ok := macOSHasDarkAppearance(); ok {
			lipgloss.SetHasDarkBackground(dark)
		}
	}
}

func macOSHasDarkAppearance() (dark bool, ok bool) {
	// Prints "Dark" in dark mode; exits 1 in light mode (key missing).
	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	out, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleInterfaceStyle").CombinedOutput()
	if ctx.Err() != nil {
		return false, false
	}
	if err == nil {
		return strings.Contains(strings.ToLower(string(out)), "dark"), true
	}
	if ee, ok := err.(*exec.ExitError); ok && ee.ExitCode() == 1 {
		return false, true
	}
	return false, false
}
