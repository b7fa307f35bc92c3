package media

import (
	"errors"
	"strconv"
	"strings"

	"folio-cli/internal/model"
)

// ErrNoMedia is returned when a project declares neither a video nor any image.
var ErrNoMedia = errors.New("project has no media")

type Kind int

const (
	KindSingleVideo Kind = iota
	KindMultiVideo
	KindLocalVideo
	KindImageGallery
)

func (k Kind) String() string {
	switch k {
	case KindSingleVideo:
		return "single-video"
	case KindMultiVideo:
		return "multi-video"
	case KindLocalVideo:
		return "local-video"
	case KindImageGallery:
		return "image-gallery"
	default:
		return "unknown"
	}
}

// MarshalText lets plans serialize with readable kind names (json/yaml output).
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Plan is the resolved description of what the media area of the modal shows.
// Only the fields of Kind are populated.
type Plan struct {
	Kind     Kind          `json:"kind" yaml:"kind"`
	URL      string        `json:"url,omitempty" yaml:"url,omitempty"`
	Videos   []model.Video `json:"videos,omitempty" yaml:"videos,omitempty"`
	Images   []model.Image `json:"images,omitempty" yaml:"images,omitempty"`
	Selected int           `json:"selected" yaml:"selected"`
}

// Resolve classifies p. The first matching rule wins:
// single embedded video, embedded video list, local video file, images.
func Resolve(p model.Project) (Plan, error) {
	switch {
	case strings.TrimSpace(p.YouTubeVideo) != "":
		return Plan{Kind: KindSingleVideo, URL: p.YouTubeVideo}, nil
	case len(p.YouTubeVideos) > 0:
		return Plan{Kind: KindMultiVideo, Videos: p.YouTubeVideos}, nil
	case strings.TrimSpace(p.VideoURL) != "":
		return Plan{Kind: KindLocalVideo, URL: p.VideoURL}, nil
	case len(p.Images) > 0:
		return Plan{Kind: KindImageGallery, Images: p.Images}, nil
	default:
		return Plan{}, ErrNoMedia
	}
}

// Len returns the number of entries the selection can move across.
func (p Plan) Len() int {
	switch p.Kind {
	case KindMultiVideo:
		return len(p.Videos)
	case KindImageGallery:
		return len(p.Images)
	default:
		return 1
	}
}

// Selectable reports whether the plan renders selector controls or thumbnails.
func (p Plan) Selectable() bool {
	switch p.Kind {
	case KindMultiVideo:
		return len(p.Videos) > 0
	case KindImageGallery:
		return p.ShowThumbnails()
	default:
		return false
	}
}

// ShowThumbnails is true for galleries of two or more images.
func (p Plan) ShowThumbnails() bool {
	return p.Kind == KindImageGallery && len(p.Images) > 1
}

// Select returns a copy of p with entry i selected. Indices outside
// [0, Len()) leave the plan untouched and report false.
func (p Plan) Select(i int) (Plan, bool) {
	if !p.Selectable() || i < 0 || i >= p.Len() {
		return p, false
	}
	p.Selected = i
	return p, true
}

// FrameSrc is the source of the embedded frame or player; empty for galleries.
func (p Plan) FrameSrc() string {
	switch p.Kind {
	case KindSingleVideo, KindLocalVideo:
		return p.URL
	case KindMultiVideo:
		if p.Selected >= 0 && p.Selected < len(p.Videos) {
			return p.Videos[p.Selected].Src
		}
	}
	return ""
}

// MainImage is the gallery image currently shown.
func (p Plan) MainImage() (model.Image, bool) {
	if p.Kind != KindImageGallery || p.Selected < 0 || p.Selected >= len(p.Images) {
		return model.Image{}, false
	}
	return p.Images[p.Selected], true
}

// SelectorLabel labels video button i, falling back to its position.
func (p Plan) SelectorLabel(i int) string {
	if i >= 0 && i < len(p.Videos) {
		if t := strings.TrimSpace(p.Videos[i].Title); t != "" {
			return t
		}
	}
	return "Video " + strconv.Itoa(i+1)
}
