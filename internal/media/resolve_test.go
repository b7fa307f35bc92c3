package media

import (
	"errors"
	"testing"

	"folio-cli/internal/model"
)

func TestResolve_Precedence(t *testing.T) {
	videos := []model.Video{{Src: "https://example.com/embed/a", Title: "A"}, {Src: "https://example.com/embed/b"}}
	images := []model.Image{{Src: "a.png", Alt: "a"}}

	cases := []struct {
		name string
		p    model.Project
		want Kind
		url  string
	}{
		{
			name: "single video wins over video list",
			p:    model.Project{YouTubeVideo: "https://example.com/embed/one", YouTubeVideos: videos, Images: images},
			want: KindSingleVideo,
			url:  "https://example.com/embed/one",
		},
		{
			name: "single video wins over local video",
			p:    model.Project{YouTubeVideo: "https://example.com/embed/one", VideoURL: "clip.mp4"},
			want: KindSingleVideo,
			url:  "https://example.com/embed/one",
		},
		{
			name: "video list wins over local video",
			p:    model.Project{YouTubeVideos: videos, VideoURL: "clip.mp4", Images: images},
			want: KindMultiVideo,
			url:  "https://example.com/embed/a",
		},
		{
			name: "local video wins over images",
			p:    model.Project{VideoURL: "clip.mp4", Images: images},
			want: KindLocalVideo,
			url:  "clip.mp4",
		},
		{
			name: "images by default",
			p:    model.Project{Images: images},
			want: KindImageGallery,
		},
		{
			name: "empty video list falls through",
			p:    model.Project{YouTubeVideos: []model.Video{}, Images: images},
			want: KindImageGallery,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := Resolve(tc.p)
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if plan.Kind != tc.want {
				t.Fatalf("expected kind %s, got %s", tc.want, plan.Kind)
			}
			if got := plan.FrameSrc(); got != tc.url {
				t.Fatalf("expected frame src %q, got %q", tc.url, got)
			}
			if plan.Selected != 0 {
				t.Fatalf("expected selection 0, got %d", plan.Selected)
			}
		})
	}
}

func TestResolve_NoMedia(t *testing.T) {
	_, err := Resolve(model.Project{Title: "bare"})
	if !errors.Is(err, ErrNoMedia) {
		t.Fatalf("expected ErrNoMedia, got %v", err)
	}
}

func TestPlan_SelectIgnoresOutOfRange(t *testing.T) {
	plan, _ := Resolve(model.Project{YouTubeVideos: []model.Video{{Src: "a"}, {Src: "b"}, {Src: "c"}}})

	for _, i := range []int{-1, 3, 42} {
		got, ok := plan.Select(i)
		if ok {
			t.Fatalf("expected select(%d) to be rejected", i)
		}
		if got.Selected != 0 {
			t.Fatalf("expected selection to stay 0 after select(%d), got %d", i, got.Selected)
		}
	}

	got, ok := plan.Select(2)
	if !ok || got.Selected != 2 {
		t.Fatalf("expected select(2) to succeed, got ok=%v selected=%d", ok, got.Selected)
	}
	if got.FrameSrc() != "c" {
		t.Fatalf("expected frame src c, got %q", got.FrameSrc())
	}
	if plan.Selected != 0 {
		t.Fatalf("select must not mutate the receiver")
	}
}

func TestPlan_SingleImageGalleryHasNoThumbnails(t *testing.T) {
	one, _ := Resolve(model.Project{Images: []model.Image{{Src: "a.png", Alt: "a"}}})
	if one.ShowThumbnails() {
		t.Fatalf("expected no thumbnails for a single image")
	}
	if _, ok := one.Select(0); ok {
		t.Fatalf("expected a single image gallery to have nothing to select")
	}
	img, ok := one.MainImage()
	if !ok || img.Src != "a.png" {
		t.Fatalf("expected main image a.png, got %+v ok=%v", img, ok)
	}

	two, _ := Resolve(model.Project{Images: []model.Image{{Src: "a.png"}, {Src: "b.png", Alt: "b"}}})
	if !two.ShowThumbnails() {
		t.Fatalf("expected thumbnails for two images")
	}
	two, _ = two.Select(1)
	img, _ = two.MainImage()
	if img.Src != "b.png" || img.Alt != "b" {
		t.Fatalf("expected main image b.png/b, got %+v", img)
	}
}

func TestPlan_SelectorLabelFallsBackToPosition(t *testing.T) {
	plan, _ := Resolve(model.Project{YouTubeVideos: []model.Video{{Src: "a", Title: "Floor is Lava"}, {Src: "b"}}})
	if got := plan.SelectorLabel(0); got != "Floor is Lava" {
		t.Fatalf("expected titled label, got %q", got)
	}
	if got := plan.SelectorLabel(1); got != "Video 2" {
		t.Fatalf("expected positional label, got %q", got)
	}
}
