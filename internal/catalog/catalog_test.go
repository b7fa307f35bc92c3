package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"folio-cli/internal/model"
)

func TestDefault_LoadsPortfolioInOrder(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	want := []string{
		"zypher-ebike", "chikia", "galactic-heist", "hdb-cats", "stock-sensei",
		"avise-financial", "gas-automated-system", "sonova", "2d-platformer", "among-us-runner",
	}
	got := c.IDs()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected ids %v, got %v", want, got)
	}

	p, ok := c.Get("hdb-cats")
	if !ok {
		t.Fatalf("expected hdb-cats to exist")
	}
	if p.Title != "HDB Cats - 3D Tower Defense" {
		t.Fatalf("unexpected title %q", p.Title)
	}
	if len(p.Features) != 6 || p.Features[0] != "3D tower defense mechanics" || p.Features[5] != "Singapore HDB setting" {
		t.Fatalf("unexpected features %v", p.Features)
	}
	if !strings.Contains(p.Description, "Singapore's HDB") {
		t.Fatalf("expected apostrophe to survive, got %q", p.Description)
	}

	multi, _ := c.Get("2d-platformer")
	if len(multi.YouTubeVideos) != 5 || multi.YouTubeVideos[1].Title != "Hide & Seek" {
		t.Fatalf("unexpected videos %+v", multi.YouTubeVideos)
	}

	sum := c.Summary()
	if sum["single-video"] != 9 || sum["multi-video"] != 1 {
		t.Fatalf("unexpected summary %v", sum)
	}
}

func TestGet_UnknownID(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	if _, ok := c.Get("nope"); ok {
		t.Fatalf("expected miss")
	}
	_, err = c.Lookup("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Fatalf("expected id in error, got %q", err.Error())
	}
}

func TestParse_RejectsRecordWithoutMedia(t *testing.T) {
	src := `
ok:
  title: OK
  images: [{src: a.png, alt: a}]
  demoUrl: https://example.com
bare:
  title: Bare
  demoUrl: https://example.com
`
	_, err := Parse([]byte(src))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
	var re *RecordError
	if !errors.As(err, &re) || re.ID != "bare" {
		t.Fatalf("expected RecordError for bare, got %v", err)
	}
}

func TestParse_RejectsAmbiguousMedia(t *testing.T) {
	src := `
both:
  title: Both
  youtubeVideo: https://example.com/embed/a
  youtubeVideos:
    - src: https://example.com/embed/b
  demoUrl: https://example.com
`
	_, err := Parse([]byte(src))
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
	if !strings.Contains(err.Error(), "2 media variants") {
		t.Fatalf("expected variant count in error, got %q", err.Error())
	}
}

func TestParse_BlankVideoFieldDoesNotCount(t *testing.T) {
	src := `
multi:
  title: Multi
  youtubeVideo: "   "
  youtubeVideos:
    - src: https://example.com/embed/b
  demoUrl: https://example.com
local:
  title: Local
  videoUrl: "\t"
  images: [{src: a.png, alt: a}]
  demoUrl: https://example.com
`
	c, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("expected blank video fields to be ignored, got %v", err)
	}
	p, _ := c.Get("multi")
	if n := p.VideoFields(); n != 1 {
		t.Fatalf("expected 1 video field for multi, got %d", n)
	}
	p, _ = c.Get("local")
	if n := p.VideoFields(); n != 0 {
		t.Fatalf("expected 0 video fields for local, got %d", n)
	}
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	p := model.Project{ID: "a", Title: "A", DemoURL: "x", Images: []model.Image{{Src: "a.png"}}}
	_, err := New([]model.Project{p, p})
	if err == nil || !strings.Contains(err.Error(), "duplicate identifier") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestLoad_FileAndCategories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	src := `
b:
  title: B
  categories: [games, web]
  videoUrl: videos/b.mp4
  demoUrl: https://example.com/b
a:
  title: A
  categories: [web, apps]
  images: [{src: a.png, alt: a}, {src: a2.png, alt: a2}]
  demoUrl: https://example.com/a
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := strings.Join(c.IDs(), ","); got != "b,a" {
		t.Fatalf("expected authored order b,a; got %s", got)
	}
	if got := strings.Join(c.Categories(), ","); got != "games,web,apps" {
		t.Fatalf("unexpected categories %s", got)
	}
	if c.Summary()["local-video"] != 1 || c.Summary()["image-gallery"] != 1 {
		t.Fatalf("unexpected summary %v", c.Summary())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
