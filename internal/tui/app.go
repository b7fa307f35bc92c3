package tui

import (
	"fmt"
	"strings"

	"folio-cli/internal/catalog"
	"folio-cli/internal/debuglog"
	"folio-cli/internal/modal"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const (
	maxModalWidth = 84
	headerHeight  = 2
	footerHeight  = 2
)

type appModel struct {
	cat   *catalog.Catalog
	zones *zone.Manager
	modal *modal.Controller

	list      list.Model
	help      help.Model
	listKeys  listKeyMap
	modalKeys modalKeyMap

	categories []string
	filter     string

	width  int
	height int

	// First visible line of the modal box when it is taller than the screen.
	modalScroll int

	minibuffer    string
	minibufferErr bool
}

func newAppModel(cat *catalog.Catalog, zones *zone.Manager) appModel {
	r := modal.NewRenderer(0)
	r.Markdown = renderMarkdown
	r.Zones = zones
	r.Glyphs = modalGlyphs()

	l := list.New(nil, projectDelegate{zones: zones}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	m := appModel{
		cat:        cat,
		zones:      zones,
		modal:      modal.NewController(cat, r, &modal.ScrollLock{}),
		list:       l,
		help:       help.New(),
		listKeys:   newListKeyMap(),
		modalKeys:  newModalKeyMap(),
		categories: cat.Categories(),
	}
	m.refreshItems("")
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case urlOpenDoneMsg:
		if msg.err != nil {
			debuglog.Log.Warn("open url failed", "url", msg.url, "err", msg.err)
			m.flash("open failed: "+msg.err.Error(), true)
		} else {
			m.flash("opened "+msg.url, false)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.minibuffer = ""
		m.minibufferErr = false
		if m.modal.ScrollLock().Locked() {
			return m.updateModalKey(msg)
		}
		return m.updateListKey(msg)

	case tea.MouseMsg:
		if m.modal.ScrollLock().Locked() {
			return m.updateModalMouse(msg)
		}
		return m.updateListMouse(msg)
	}
	return m, nil
}

func (m appModel) updateListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.listKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.listKeys.Open):
		if it, ok := m.list.SelectedItem().(projectItem); ok {
			m.trigger(it.project.ID)
		}
		return m, nil
	case key.Matches(msg, m.listKeys.Filter):
		m.cycleFilter()
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) updateModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal.HandleKey(msg.String()) {
		if !m.modal.IsOpen() {
			m.modalScroll = 0
		}
		return m, nil
	}
	switch {
	case key.Matches(msg, m.modalKeys.Close):
		m.closeModal()
	case key.Matches(msg, m.modalKeys.Demo):
		return m, m.openDemo()
	case key.Matches(msg, m.modalKeys.Copy):
		m.copyDemo()
	case key.Matches(msg, m.modalKeys.ScrollUp):
		m.scrollModal(-m.scrollStep(msg))
	case key.Matches(msg, m.modalKeys.ScrollDown):
		m.scrollModal(m.scrollStep(msg))
	}
	// Everything else is swallowed: the list stays put while the modal is open.
	return m, nil
}

func (m appModel) updateModalMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollModal(-1)
	case tea.MouseButtonWheelDown:
		m.scrollModal(1)
	case tea.MouseButtonLeft:
		t := m.modal.HitTest(msg)
		if t.Kind == modal.TargetDemo {
			return m, m.openDemo()
		}
		m.modal.Activate(t)
		if !m.modal.IsOpen() {
			m.modalScroll = 0
		}
	}
	return m, nil
}

func (m appModel) updateListMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.list.CursorUp()
	case tea.MouseButtonWheelDown:
		m.list.CursorDown()
	case tea.MouseButtonLeft:
		if i, ok := m.rowAt(msg); ok {
			m.list.Select(i)
			if it, ok := m.list.SelectedItem().(projectItem); ok {
				m.trigger(it.project.ID)
			}
		}
	}
	return m, nil
}

// rowAt finds the list row under the pointer, looking only at the current page.
func (m appModel) rowAt(msg tea.MouseMsg) (int, bool) {
	if m.zones == nil {
		return 0, false
	}
	items := m.list.Items()
	start, end := m.list.Paginator.GetSliceBounds(len(items))
	for i := start; i < end; i++ {
		it, ok := items[i].(projectItem)
		if !ok {
			continue
		}
		if zi := m.zones.Get(rowZone(it.project.ID)); zi != nil && zi.InBounds(msg) {
			return i, true
		}
	}
	return 0, false
}

func (m *appModel) trigger(id string) bool {
	m.modalScroll = 0
	if !m.modal.Trigger(id) {
		m.flash("project not found: "+id, true)
		return false
	}
	return true
}

func (m *appModel) closeModal() {
	m.modal.Close()
	m.modalScroll = 0
}

func (m *appModel) openDemo() tea.Cmd {
	p, ok := m.modal.Project()
	if !ok {
		return nil
	}
	return openURL(p.DemoURL)
}

func (m *appModel) copyDemo() {
	p, ok := m.modal.Project()
	if !ok {
		return
	}
	if err := copyToClipboard(p.DemoURL); err != nil {
		debuglog.Log.Warn("clipboard write failed", "err", err)
		m.flash("copy failed: "+err.Error(), true)
		return
	}
	m.flash("copied "+p.DemoURL, false)
}

func (m *appModel) flash(s string, isErr bool) {
	m.minibuffer = s
	m.minibufferErr = isErr
}

func (m appModel) scrollStep(msg tea.KeyMsg) int {
	switch msg.String() {
	case "pgup", "pgdown":
		if h := m.modalViewportHeight(); h > 1 {
			return h - 1
		}
	}
	return 1
}

func (m *appModel) scrollModal(delta int) {
	s := m.modal.Surface()
	if s == nil {
		return
	}
	_, m.modalScroll = cropLines(s.Box(), m.modalScroll+delta, m.modalViewportHeight())
}

func (m appModel) modalViewportHeight() int {
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

func (m *appModel) resize() {
	m.help.Width = m.width
	lh := m.height - headerHeight - footerHeight
	if lh < 1 {
		lh = 1
	}
	m.list.SetSize(m.width, lh)

	mw := m.width - 4
	if mw > maxModalWidth {
		mw = maxModalWidth
	}
	m.modal.Resize(mw)
	if s := m.modal.Surface(); s != nil {
		_, m.modalScroll = cropLines(s.Box(), m.modalScroll, m.modalViewportHeight())
	}
}

// refreshItems rebuilds the list for the active filter, keeping selectedID
// selected when it is still visible.
func (m *appModel) refreshItems(selectedID string) {
	var items []list.Item
	for _, p := range m.cat.Projects() {
		if m.filter != "" && !p.HasCategory(m.filter) {
			continue
		}
		items = append(items, newProjectItem(p))
	}
	m.list.SetItems(items)
	m.list.Select(0)
	m.selectListItemByID(selectedID)
}

func (m *appModel) selectListItemByID(id string) {
	if id == "" {
		return
	}
	for i, it := range m.list.Items() {
		if pi, ok := it.(projectItem); ok && pi.project.ID == id {
			m.list.Select(i)
			return
		}
	}
}

// cycleFilter steps all -> each category -> all.
func (m *appModel) cycleFilter() {
	if len(m.categories) == 0 {
		m.flash("no categories", false)
		return
	}
	next := 0
	if m.filter != "" {
		for i, c := range m.categories {
			if c == m.filter {
				next = i + 1
			}
		}
	}
	if next >= len(m.categories) {
		m.filter = ""
	} else {
		m.filter = m.categories[next]
	}

	selected := ""
	if it, ok := m.list.SelectedItem().(projectItem); ok {
		selected = it.project.ID
	}
	m.refreshItems(selected)
	debuglog.Log.Debug("category filter", "filter", m.filterLabel(), "rows", len(m.list.Items()))
}

func (m appModel) filterLabel() string {
	if m.filter == "" {
		return "all"
	}
	return m.filter
}

func (m appModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	header := styleHeader().Render("PROJECTS") +
		styleMuted().Render(fmt.Sprintf("  %s %s  %s %d shown", glyphSep(), m.filterLabel(), glyphSep(), len(m.list.Items())))

	mini := ""
	if m.minibuffer != "" {
		st := styleMuted()
		if m.minibufferErr {
			st = lipgloss.NewStyle().Foreground(colorFlashErrorFg)
		}
		mini = st.Render(m.minibuffer)
	}
	var helpLine string
	if m.modal.IsOpen() {
		helpLine = m.help.View(m.modalKeys)
	} else {
		helpLine = m.help.View(m.listKeys)
	}

	base := strings.Join([]string{
		header,
		"",
		normalizePane(m.list.View(), m.width, m.height-headerHeight-footerHeight),
		mini,
		helpLine,
	}, "\n")
	base = normalizePane(base, m.width, m.height)

	if s := m.modal.Surface(); s != nil {
		base = overlayCenter(dimBackground(base), m.modalView(s), m.width, m.height)
	}
	if m.zones != nil {
		return m.zones.Scan(base)
	}
	return base
}

// modalView crops the modal box to the screen and marks what is visible as
// the surface zone. Clicks outside it count as backdrop clicks.
func (m appModel) modalView(s *modal.Surface) string {
	box, _ := cropLines(s.Box(), m.modalScroll, m.modalViewportHeight())
	if m.zones == nil {
		return box
	}
	r := m.modal.Renderer()
	return m.zones.Mark(r.ZoneID("surface"), box)
}
