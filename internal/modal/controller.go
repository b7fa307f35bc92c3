package modal

import (
	"folio-cli/internal/debuglog"
	"folio-cli/internal/media"
	"folio-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// Source looks up projects by identifier. *catalog.Catalog satisfies it.
type Source interface {
	Get(id string) (model.Project, bool)
}

// State is the modal's observable state. ActiveProjectID is empty while closed.
type State struct {
	IsOpen           bool
	ActiveProjectID  string
	ActiveMediaIndex int
}

// ScrollLock suppresses background scrolling while the modal is open.
// Only the Controller writes it; everything else reads Locked.
type ScrollLock struct {
	locked bool
}

func (l *ScrollLock) Locked() bool { return l != nil && l.locked }

func (l *ScrollLock) set(v bool) {
	if l != nil {
		l.locked = v
	}
}

type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetBackdrop
	TargetSurface
	TargetClose
	TargetVideo
	TargetThumbnail
	TargetDemo
)

// Target is what a click landed on.
type Target struct {
	Kind  TargetKind
	Index int
}

// Controller is the modal state machine: CLOSED <-> OPEN.
type Controller struct {
	src  Source
	r    *Renderer
	lock *ScrollLock

	state   State
	project model.Project
	plan    media.Plan
	surface *Surface
}

func NewController(src Source, r *Renderer, lock *ScrollLock) *Controller {
	if r == nil {
		r = NewRenderer(0)
	}
	if lock == nil {
		lock = &ScrollLock{}
	}
	return &Controller{src: src, r: r, lock: lock}
}

func (c *Controller) State() State { return c.state }
func (c *Controller) IsOpen() bool { return c.state.IsOpen }

// Surface is the painted modal, nil while closed.
func (c *Controller) Surface() *Surface { return c.surface }
func (c *Controller) Plan() media.Plan  { return c.plan }

func (c *Controller) Project() (model.Project, bool) {
	if !c.state.IsOpen {
		return model.Project{}, false
	}
	return c.project, true
}

func (c *Controller) Renderer() *Renderer { return c.r }
func (c *Controller) ScrollLock() *ScrollLock {
	return c.lock
}

// Trigger opens the modal for id. Unknown ids leave the state untouched.
// Triggering while open replaces the current project.
func (c *Controller) Trigger(id string) bool {
	p, ok := c.src.Get(id)
	if !ok {
		debuglog.Log.Debug("modal trigger miss", "project", id, "open", c.state.IsOpen)
		return false
	}
	plan, err := media.Resolve(p)
	if err != nil {
		debuglog.Log.Warn("modal trigger unresolvable", "project", id, "err", err)
		return false
	}

	c.project = p
	c.plan = plan
	c.surface = c.r.Paint(p, plan)
	c.state = State{IsOpen: true, ActiveProjectID: id, ActiveMediaIndex: plan.Selected}
	c.lock.set(true)
	debuglog.Log.Debug("modal open", "project", id, "media", plan.Kind)
	return true
}

// SelectMedia switches the video or image shown. Out-of-range indices and
// calls while closed are ignored.
func (c *Controller) SelectMedia(i int) bool {
	if !c.state.IsOpen {
		return false
	}
	next, ok := c.plan.Select(i)
	if !ok {
		debuglog.Log.Debug("modal select ignored", "project", c.state.ActiveProjectID, "index", i, "len", c.plan.Len())
		return false
	}
	if next.Selected == c.plan.Selected {
		return true
	}
	c.plan = next
	c.state.ActiveMediaIndex = next.Selected
	c.surface.Select(next)
	return true
}

// Step moves the selection by delta, wrapping around.
func (c *Controller) Step(delta int) bool {
	if !c.state.IsOpen || !c.plan.Selectable() {
		return false
	}
	n := c.plan.Len()
	i := ((c.plan.Selected+delta)%n + n) % n
	return c.SelectMedia(i)
}

// Close hides the modal and releases the scroll lock. Closing a closed
// modal does nothing.
func (c *Controller) Close() bool {
	if !c.state.IsOpen {
		return false
	}
	debuglog.Log.Debug("modal close", "project", c.state.ActiveProjectID)
	c.state.IsOpen = false
	c.state.ActiveProjectID = ""
	c.surface = nil
	c.plan = media.Plan{}
	c.project = model.Project{}
	c.lock.set(false)
	return true
}

// Resize repaints the open modal at a new outer width.
func (c *Controller) Resize(width int) {
	c.r.Width = width
	if c.state.IsOpen {
		c.surface = c.r.Paint(c.project, c.plan)
	}
}

// HandleKey applies a key press and reports whether the modal consumed it.
// Escape is only meaningful while open.
func (c *Controller) HandleKey(key string) bool {
	if !c.state.IsOpen {
		return false
	}
	switch key {
	case "esc":
		return c.Close()
	case "left", "h", "shift+tab":
		c.Step(-1)
		return true
	case "right", "l", "tab":
		c.Step(1)
		return true
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		c.SelectMedia(int(key[0] - '1'))
		return true
	}
	return false
}

// Activate applies a click on t. Demo link clicks are left to the caller,
// which owns the OS opener.
func (c *Controller) Activate(t Target) bool {
	if !c.state.IsOpen {
		return false
	}
	switch t.Kind {
	case TargetClose, TargetBackdrop:
		return c.Close()
	case TargetVideo:
		if c.plan.Kind != media.KindMultiVideo {
			return false
		}
		return c.SelectMedia(t.Index)
	case TargetThumbnail:
		if c.plan.Kind != media.KindImageGallery {
			return false
		}
		return c.SelectMedia(t.Index)
	default:
		return false
	}
}

// HitTest resolves a mouse event against the zones painted on the last frame.
// Anything outside the modal surface is backdrop.
func (c *Controller) HitTest(msg tea.MouseMsg) Target {
	if !c.state.IsOpen || c.r.Zones == nil {
		return Target{}
	}
	in := func(name string) bool {
		zi := c.r.Zones.Get(c.r.ZoneID(name))
		return zi != nil && zi.InBounds(msg)
	}
	if in("close") {
		return Target{Kind: TargetClose}
	}
	if in("demo") {
		return Target{Kind: TargetDemo}
	}
	for i := range c.surface.Selectors {
		if in(videoZone(i)) {
			return Target{Kind: TargetVideo, Index: i}
		}
	}
	for i := range c.surface.Thumbnails {
		if in(thumbZone(i)) {
			return Target{Kind: TargetThumbnail, Index: i}
		}
	}
	if in("surface") {
		return Target{Kind: TargetSurface}
	}
	return Target{Kind: TargetBackdrop}
}
