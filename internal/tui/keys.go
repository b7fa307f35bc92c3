package tui

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Filter key.Binding
	Quit   key.Binding
}

func newListKeyMap() listKeyMap {
	return listKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view project")),
		Filter: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (k listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Filter, k.Quit}
}

func (k listKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// modalKeyMap only lists keys for help; media switching and escape are
// dispatched by the modal controller itself.
type modalKeyMap struct {
	Media      key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Demo       key.Binding
	Copy       key.Binding
	Close      key.Binding
}

func newModalKeyMap() modalKeyMap {
	return modalKeyMap{
		Media:      key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab", "shift+tab"), key.WithHelp("←/→ 1-9", "media")),
		ScrollUp:   key.NewBinding(key.WithKeys("up", "k", "pgup"), key.WithHelp("↑/k", "scroll up")),
		ScrollDown: key.NewBinding(key.WithKeys("down", "j", "pgdown"), key.WithHelp("↓/j", "scroll down")),
		Demo:       key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open demo")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy link")),
		Close:      key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", "close")),
	}
}

func (k modalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Media, k.ScrollDown, k.Demo, k.Copy, k.Close}
}

func (k modalKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
