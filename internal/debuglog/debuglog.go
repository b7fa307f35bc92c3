// Package debuglog is a small file-backed logger for the TUI.
//
// While the TUI owns the terminal, nothing may be written to stdout/stderr,
// so diagnostics go to the file named by --debug-log or FOLIO_TUI_DEBUG_LOG.
// With no path configured Log discards everything.
package debuglog

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

const EnvPath = "FOLIO_TUI_DEBUG_LOG"

var (
	// Log is the process-wide logger used by the TUI and the modal controller.
	Log = slog.New(slog.DiscardHandler)

	mu   sync.Mutex
	file *os.File
)

// New returns a debug-level text logger writing to w.
func New(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Init opens path for appending and points Log at it.
// An empty path disables logging.
func Init(path string) error {
	path = strings.TrimSpace(path)

	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	file = f
	Log = New(f)
	Log.Info("debug log opened", "path", path, "pid", os.Getpid())
	return nil
}

// Close flushes and closes the log file. Log discards afterwards.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	Log = slog.New(slog.DiscardHandler)
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}

// Enabled reports whether a log file is open.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return file != nil
}
