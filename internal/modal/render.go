package modal

import (
	"strconv"
	"strings"

	"folio-cli/internal/media"
	"folio-cli/internal/model"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
)

const (
	defaultWidth = 72
	minWidth     = 32
	thumbLabelW  = 22
)

// Region is an independently painted part of the modal.
type Region int

const (
	RegionHeader Region = iota
	RegionMedia
	RegionSelector
	RegionThumbnails
	RegionFeatures
	RegionTech
	RegionLinks
	regionCount
)

func (r Region) String() string {
	switch r {
	case RegionHeader:
		return "header"
	case RegionMedia:
		return "media"
	case RegionSelector:
		return "selector"
	case RegionThumbnails:
		return "thumbnails"
	case RegionFeatures:
		return "features"
	case RegionTech:
		return "tech"
	case RegionLinks:
		return "links"
	default:
		return "region(" + strconv.Itoa(int(r)) + ")"
	}
}

// Element is the media element currently shown in the media area.
type Element struct {
	Kind media.Kind
	Src  string
	Alt  string
}

// Control is a video selector button or a gallery thumbnail.
type Control struct {
	Label  string
	Src    string
	Active bool
}

// Renderer paints projects into Surfaces.
type Renderer struct {
	// Width is the outer width of the modal box, borders included.
	Width int
	// Markdown renders the description; plain wrapping is used when nil.
	Markdown func(md string, width int) string
	// Zones marks clickable controls. Nil disables mouse hit zones.
	Zones  *zone.Manager
	Prefix string
	Glyphs Glyphs
}

func NewRenderer(width int) *Renderer {
	return &Renderer{Width: width, Glyphs: UnicodeGlyphs()}
}

// ZoneID namespaces a zone name so several renderers can share a manager.
func (r *Renderer) ZoneID(name string) string { return r.Prefix + name }

func (r *Renderer) mark(name, s string) string {
	if r.Zones == nil || s == "" {
		return s
	}
	return r.Zones.Mark(r.ZoneID(name), s)
}

func (r *Renderer) outerWidth() int {
	w := r.Width
	if w <= 0 {
		w = defaultWidth
	}
	if w < minWidth {
		w = minWidth
	}
	return w
}

// bodyWidth is the usable text width inside border and padding.
func (r *Renderer) bodyWidth() int { return r.outerWidth() - 4 }

func (r *Renderer) glyphs() Glyphs {
	if r.Glyphs == (Glyphs{}) {
		return UnicodeGlyphs()
	}
	return r.Glyphs
}

// Surface is one painted modal: the element snapshot plus the rendered
// text of every region.
type Surface struct {
	ProjectID   string
	Title       string
	Description string
	Media       Element
	Selectors   []Control
	Thumbnails  []Control
	Features    []string
	Tech        []string
	DemoURL     string

	r       *Renderer
	plan    media.Plan
	regions [regionCount]string
	paints  [regionCount]int
}

// Paint builds every region of the modal for p.
func (r *Renderer) Paint(p model.Project, plan media.Plan) *Surface {
	s := &Surface{
		ProjectID:   p.ID,
		Title:       p.Title,
		Description: p.Description,
		DemoURL:     p.DemoURL,
		r:           r,
		plan:        plan,
	}
	s.paintHeader()
	s.paintMedia()
	s.paintSelector()
	s.paintThumbnails()
	s.setSections(p.Features, p.Tech)
	s.paintLinks()
	return s
}

// Select repaints only the regions that depend on the selected media entry.
func (s *Surface) Select(plan media.Plan) {
	s.plan = plan
	s.paintMedia()
	switch plan.Kind {
	case media.KindMultiVideo:
		s.paintSelector()
	case media.KindImageGallery:
		s.paintThumbnails()
	}
}

// Paints reports how many times region has been painted on this surface.
func (s *Surface) Paints(region Region) int { return s.paints[region] }

// Region returns the rendered text of region.
func (s *Surface) Region(region Region) string { return s.regions[region] }

func (s *Surface) ActiveSelector() int  { return activeIndex(s.Selectors) }
func (s *Surface) ActiveThumbnail() int { return activeIndex(s.Thumbnails) }

func activeIndex(cs []Control) int {
	for i, c := range cs {
		if c.Active {
			return i
		}
	}
	return -1
}

func (s *Surface) set(region Region, content string) {
	s.regions[region] = content
	s.paints[region]++
}

func (s *Surface) paintHeader() {
	r := s.r
	w := r.bodyWidth()
	g := r.glyphs()

	closeBtn := r.mark("close", styleClose.Render("["+g.Close+"]"))
	title := styleTitle.Render(xansi.Truncate(s.Title, w-lipgloss.Width(closeBtn)-1, "…"))
	gap := w - lipgloss.Width(title) - lipgloss.Width(closeBtn)
	if gap < 1 {
		gap = 1
	}
	titleLine := title + strings.Repeat(" ", gap) + closeBtn

	desc := ""
	if strings.TrimSpace(s.Description) != "" {
		if r.Markdown != nil {
			desc = r.Markdown(s.Description, w)
		}
		if strings.TrimSpace(desc) == "" {
			desc = styleBody.Width(w).Render(s.Description)
		}
	}
	if desc == "" {
		s.set(RegionHeader, titleLine)
		return
	}
	s.set(RegionHeader, titleLine+"\n\n"+desc)
}

func (s *Surface) paintMedia() {
	r := s.r
	g := r.glyphs()
	plan := s.plan
	frameW := r.bodyWidth() - 4

	var el Element
	var lines []string
	switch plan.Kind {
	case media.KindSingleVideo, media.KindMultiVideo:
		el = Element{Kind: plan.Kind, Src: plan.FrameSrc()}
		caption := "EMBED"
		if plan.Kind == media.KindMultiVideo {
			caption = "EMBED " + strconv.Itoa(plan.Selected+1) + "/" + strconv.Itoa(len(plan.Videos)) +
				"  " + plan.SelectorLabel(plan.Selected)
		}
		lines = []string{
			styleHeading.Render(g.Play+" "+caption),
			styleMuted.Render(xansi.Truncate(el.Src, frameW, "…")),
		}
	case media.KindLocalVideo:
		el = Element{Kind: plan.Kind, Src: plan.FrameSrc()}
		lines = []string{
			styleHeading.Render(g.Play + " VIDEO  video/mp4"),
			styleMuted.Render(xansi.Truncate(el.Src, frameW, "…")),
		}
	case media.KindImageGallery:
		img, _ := plan.MainImage()
		el = Element{Kind: plan.Kind, Src: img.Src, Alt: img.Alt}
		lines = []string{
			styleHeading.Render(g.Image+" IMAGE  ") + styleBody.Render(xansi.Truncate(img.Alt, frameW-9, "…")),
			styleMuted.Render(xansi.Truncate(img.Src, frameW, "…")),
		}
	}
	s.Media = el
	s.set(RegionMedia, styleFrame.Width(r.bodyWidth()-2).Render(strings.Join(lines, "\n")))
}

func (s *Surface) paintSelector() {
	plan := s.plan
	if plan.Kind != media.KindMultiVideo {
		s.Selectors = nil
		s.set(RegionSelector, "")
		return
	}
	g := s.r.glyphs()
	controls := make([]Control, len(plan.Videos))
	rendered := make([]string, len(plan.Videos))
	for i, v := range plan.Videos {
		c := Control{Label: plan.SelectorLabel(i), Src: v.Src, Active: i == plan.Selected}
		controls[i] = c
		rendered[i] = s.r.mark(videoZone(i), renderControl(c, g))
	}
	s.Selectors = controls
	s.set(RegionSelector, flowControls(rendered, s.r.bodyWidth()))
}

func (s *Surface) paintThumbnails() {
	plan := s.plan
	if !plan.ShowThumbnails() {
		s.Thumbnails = nil
		s.set(RegionThumbnails, "")
		return
	}
	g := s.r.glyphs()
	controls := make([]Control, len(plan.Images))
	rendered := make([]string, len(plan.Images))
	for i, img := range plan.Images {
		label := strings.TrimSpace(img.Alt)
		if label == "" {
			label = img.Src
		}
		c := Control{Label: label, Src: img.Src, Active: i == plan.Selected}
		controls[i] = c
		shown := c
		shown.Label = strconv.Itoa(i+1) + " " + xansi.Truncate(label, thumbLabelW, "…")
		rendered[i] = s.r.mark(thumbZone(i), renderControl(shown, g))
	}
	s.Thumbnails = controls
	s.set(RegionThumbnails, flowControls(rendered, s.r.bodyWidth()))
}

// setSections replaces the feature and tech lists wholesale.
func (s *Surface) setSections(features, tech []string) {
	s.Features = append([]string(nil), features...)
	s.Tech = append([]string(nil), tech...)
	s.set(RegionFeatures, s.renderList("// KEY_FEATURES", s.Features))
	s.set(RegionTech, s.renderList("// TECH_STACK", s.Tech))
}

func (s *Surface) renderList(heading string, entries []string) string {
	if len(entries) == 0 {
		return ""
	}
	g := s.r.glyphs()
	w := s.r.bodyWidth()
	lines := []string{styleHeading.Render(heading)}
	itemW := w - lipgloss.Width(g.Bullet) - 1
	for _, e := range entries {
		body := styleBody.Width(itemW).Render(e)
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, styleHeading.Render(g.Bullet)+" ", body))
	}
	return strings.Join(lines, "\n")
}

func (s *Surface) paintLinks() {
	g := s.r.glyphs()
	if strings.TrimSpace(s.DemoURL) == "" {
		s.set(RegionLinks, "")
		return
	}
	btn := s.r.mark("demo", styleControlActive.Render("VIEW DEMO "+g.Link))
	url := styleLink.Render(xansi.Truncate(s.DemoURL, s.r.bodyWidth()-lipgloss.Width(btn)-1, "…"))
	s.set(RegionLinks, btn+" "+url)
}

// View renders the full modal box, marked as the surface hit zone.
func (s *Surface) View() string {
	return s.r.mark("surface", s.Box())
}

// Box renders the modal box without the surface zone, for callers that crop
// it before marking.
func (s *Surface) Box() string {
	parts := make([]string, 0, regionCount*2)
	for region := Region(0); region < regionCount; region++ {
		if s.regions[region] == "" {
			continue
		}
		if len(parts) > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, s.regions[region])
	}
	return styleBox.Width(s.r.outerWidth() - 2).Render(strings.Join(parts, "\n"))
}

func renderControl(c Control, g Glyphs) string {
	if c.Active {
		return styleControlActive.Render(g.Active + " " + c.Label)
	}
	return styleControl.Render("  " + c.Label)
}

// flowControls lays controls out left to right, wrapping at width.
func flowControls(controls []string, width int) string {
	var lines []string
	var cur []string
	curW := 0
	for _, c := range controls {
		cw := lipgloss.Width(c)
		if len(cur) > 0 && curW+1+cw > width {
			lines = append(lines, strings.Join(cur, " "))
			cur, curW = nil, 0
		}
		if len(cur) > 0 {
			curW++
		}
		cur = append(cur, c)
		curW += cw
	}
	if len(cur) > 0 {
		lines = append(lines, strings.Join(cur, " "))
	}
	return strings.Join(lines, "\n")
}

func videoZone(i int) string { return "video-" + strconv.Itoa(i) }
func thumbZone(i int) string { return "thumb-" + strconv.Itoa(i) }
