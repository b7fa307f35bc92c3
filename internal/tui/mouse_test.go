package tui

import (
	"testing"
	"time"

	"folio-cli/internal/catalog"
	"folio-cli/internal/modal"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

func newZonedTestModel(t *testing.T, width, height int) (appModel, *zone.Manager) {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	zones := zone.New()
	t.Cleanup(zones.Close)
	m := newAppModel(cat, zones)
	m.modal.Renderer().Markdown = nil
	return update(t, m, tea.WindowSizeMsg{Width: width, Height: height}), zones
}

// renderZone paints a frame and waits for the zone manager to record id.
func renderZone(t *testing.T, m appModel, zones *zone.Manager, id string) *zone.ZoneInfo {
	t.Helper()
	_ = m.View()
	deadline := time.Now().Add(2 * time.Second)
	for {
		if zi := zones.Get(id); zi != nil {
			return zi
		}
		if time.Now().After(deadline) {
			t.Fatalf("zone %q never appeared", id)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestMouse_ListRowClickOpensProject(t *testing.T) {
	m, zones := newZonedTestModel(t, 100, 80)

	zi := renderZone(t, m, zones, rowZone("chikia"))
	m = update(t, m, leftClick(zi.StartX, zi.StartY))

	st := m.modal.State()
	if !st.IsOpen || st.ActiveProjectID != "chikia" {
		t.Fatalf("expected chikia open after row click, got %+v", st)
	}
	if got := m.list.Index(); got != 1 {
		t.Fatalf("expected clicked row selected, got %d", got)
	}
	if !m.modal.ScrollLock().Locked() {
		t.Fatalf("expected scroll lock while open")
	}
}

func TestMouse_ModalZones(t *testing.T) {
	m, zones := newZonedTestModel(t, 100, 80)
	m.selectListItemByID("2d-platformer")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	video := renderZone(t, m, zones, "video-3")
	click := leftClick(video.StartX, video.StartY)
	if got := m.modal.HitTest(click); got != (modal.Target{Kind: modal.TargetVideo, Index: 3}) {
		t.Fatalf("expected video 3 target, got %+v", got)
	}
	m = update(t, m, click)
	if got := m.modal.State().ActiveMediaIndex; got != 3 {
		t.Fatalf("expected media 3 after click, got %d", got)
	}

	// The surface corner is inside the modal but on no control.
	surface := renderZone(t, m, zones, "surface")
	inner := leftClick(surface.StartX, surface.StartY)
	if got := m.modal.HitTest(inner); got.Kind != modal.TargetSurface {
		t.Fatalf("expected surface target, got %+v", got)
	}
	m = update(t, m, inner)
	if !m.modal.IsOpen() || m.modal.State().ActiveMediaIndex != 3 {
		t.Fatalf("expected surface click to change nothing, got %+v", m.modal.State())
	}

	backdrop := leftClick(0, 0)
	if got := m.modal.HitTest(backdrop); got.Kind != modal.TargetBackdrop {
		t.Fatalf("expected backdrop target, got %+v", got)
	}
	m = update(t, m, backdrop)
	if m.modal.IsOpen() || m.modal.ScrollLock().Locked() {
		t.Fatalf("expected backdrop click to close and release the lock")
	}
}

func TestMouse_CloseButton(t *testing.T) {
	m, zones := newZonedTestModel(t, 100, 80)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	zi := renderZone(t, m, zones, "close")
	m = update(t, m, leftClick(zi.StartX, zi.StartY))
	if m.modal.IsOpen() || m.modal.ScrollLock().Locked() {
		t.Fatalf("expected close button to close and release the lock")
	}
}
