package tui

import (
	"strings"

	"github.com/atotto/clipboard"
)

// writeClipboard is swapped out in tests; the real clipboard needs a display.
var writeClipboard = clipboard.WriteAll

func copyToClipboard(s string) error {
	return writeClipboard(strings.ReplaceAll(s, "\r\n", "\n"))
}
