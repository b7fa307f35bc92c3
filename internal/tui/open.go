package tui

import (
	"errors"
	"io"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type urlOpenDoneMsg struct {
	url string
	err error
}

// browserCommand builds the OS opener for u. Tests replace it.
var browserCommand = func(u string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", u)
	case "windows":
		return exec.Command("cmd", "/c", "start", "", u)
	default:
		return exec.Command("xdg-open", u)
	}
}

func openURL(u string) tea.Cmd {
	u = strings.TrimSpace(u)
	if u == "" {
		return func() tea.Msg { return urlOpenDoneMsg{err: errors.New("empty url")} }
	}

	return func() tea.Msg {
		cmd := browserCommand(u)
		cmd.Stdout = io.Discard
		cmd.Stderr = io.Discard
		if err := cmd.Start(); err != nil {
			return urlOpenDoneMsg{url: u, err: err}
		}
		return urlOpenDoneMsg{url: u, err: cmd.Wait()}
	}
}
