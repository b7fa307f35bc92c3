package tui

import (
	"os"
	"strings"
	"sync"

	"folio-cli/internal/modal"
)

// Terminal apps can't change the user's font. Instead we choose between
// Unicode and ASCII glyph sets for play markers, bullets and arrows.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func parseGlyphSet(v string) (glyphSet, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "unicode", "utf8":
		return glyphSetUnicode, true
	case "ascii":
		return glyphSetASCII, true
	}
	return glyphSetUnicode, false
}

// applyGlyphPreference picks FOLIO_TUI_GLYPHS, then the configured value.
// Empty or unknown values keep the current set.
func applyGlyphPreference(configured string) {
	if gs, ok := parseGlyphSet(os.Getenv("FOLIO_TUI_GLYPHS")); ok {
		setGlyphs(gs)
		return
	}
	if gs, ok := parseGlyphSet(configured); ok {
		setGlyphs(gs)
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func modalGlyphs() modal.Glyphs {
	if glyphs() == glyphSetASCII {
		return modal.ASCIIGlyphs()
	}
	return modal.UnicodeGlyphs()
}

func glyphCursor() string {
	if glyphs() == glyphSetASCII {
		return ">"
	}
	return "▸"
}

func glyphSep() string {
	if glyphs() == glyphSetASCII {
		return "|"
	}
	return "·"
}
