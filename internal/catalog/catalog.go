package catalog

import (
	"errors"
	"fmt"
	"strings"

	"folio-cli/internal/media"
	"folio-cli/internal/model"
)

var (
	// ErrNotFound wraps lookups of unknown project identifiers.
	ErrNotFound = errors.New("project not found")
	// ErrMalformedRecord marks records that fail validation at load time.
	ErrMalformedRecord = errors.New("malformed project record")
)

// RecordError describes every problem found in one record.
type RecordError struct {
	ID  string
	Err error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s %q: %v", ErrMalformedRecord, e.ID, e.Err)
}

func (e *RecordError) Unwrap() []error { return []error{ErrMalformedRecord, e.Err} }

// Catalog is the read-only set of portfolio projects, keyed by identifier.
type Catalog struct {
	byID  map[string]model.Project
	order []string
}

// New validates projects and builds a catalog preserving their order.
func New(projects []model.Project) (*Catalog, error) {
	c := &Catalog{
		byID:  make(map[string]model.Project, len(projects)),
		order: make([]string, 0, len(projects)),
	}
	var errs []error
	for _, p := range projects {
		if _, dup := c.byID[p.ID]; dup {
			errs = append(errs, &RecordError{ID: p.ID, Err: errors.New("duplicate identifier")})
			continue
		}
		if err := Validate(p); err != nil {
			errs = append(errs, err)
			continue
		}
		c.byID[p.ID] = p
		c.order = append(c.order, p.ID)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

// Validate checks the authoring rules of a single record.
func Validate(p model.Project) error {
	var problems []error
	if strings.TrimSpace(p.ID) == "" {
		problems = append(problems, errors.New("empty identifier"))
	}
	if strings.TrimSpace(p.Title) == "" {
		problems = append(problems, errors.New("missing title"))
	}
	if strings.TrimSpace(p.DemoURL) == "" {
		problems = append(problems, errors.New("missing demoUrl"))
	}
	if n := p.VideoFields(); n > 1 {
		problems = append(problems, fmt.Errorf("%d media variants declared, want at most one of youtubeVideo, youtubeVideos, videoUrl", n))
	}
	for i, v := range p.YouTubeVideos {
		if strings.TrimSpace(v.Src) == "" {
			problems = append(problems, fmt.Errorf("youtubeVideos[%d]: missing src", i))
		}
	}
	for i, img := range p.Images {
		if strings.TrimSpace(img.Src) == "" {
			problems = append(problems, fmt.Errorf("images[%d]: missing src", i))
		}
	}
	if _, err := media.Resolve(p); err != nil {
		problems = append(problems, err)
	}
	if len(problems) == 0 {
		return nil
	}
	return &RecordError{ID: p.ID, Err: errors.Join(problems...)}
}

// Get returns the project with the given identifier.
func (c *Catalog) Get(id string) (model.Project, bool) {
	if c == nil {
		return model.Project{}, false
	}
	p, ok := c.byID[id]
	return p, ok
}

// Lookup is Get with an error for callers that report misses.
func (c *Catalog) Lookup(id string) (model.Project, error) {
	p, ok := c.Get(id)
	if !ok {
		return model.Project{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return p, nil
}

func (c *Catalog) Len() int { return len(c.order) }

// IDs returns identifiers in authored order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Projects returns all projects in authored order.
func (c *Catalog) Projects() []model.Project {
	out := make([]model.Project, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, id := range c.order {
		for _, cat := range c.byID[id].Categories {
			if cat == "" || seen[cat] {
				continue
			}
			seen[cat] = true
			out = append(out, cat)
		}
	}
	return out
}

// Summary counts projects per media kind.
func (c *Catalog) Summary() map[string]int {
	out := map[string]int{}
	for _, id := range c.order {
		plan, err := media.Resolve(c.byID[id])
		if err != nil {
			continue
		}
		out[plan.Kind.String()]++
	}
	return out
}
