package model

import "strings"

// Image is one entry of a project's image gallery.
type Image struct {
	Src string `json:"src" yaml:"src"`
	Alt string `json:"alt" yaml:"alt"`
}

// Video is one embedded video of a multi-video project.
type Video struct {
	Src   string `json:"src" yaml:"src"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

// Project is a portfolio entry as authored in the catalog.
//
// The three video fields are mutually exclusive; when none is set the
// project is shown as an image gallery and Images must not be empty.
type Project struct {
	ID          string   `json:"id" yaml:"-"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Categories  []string `json:"categories,omitempty" yaml:"categories,omitempty"`

	Images        []Image `json:"images,omitempty" yaml:"images,omitempty"`
	YouTubeVideo  string  `json:"youtubeVideo,omitempty" yaml:"youtubeVideo,omitempty"`
	YouTubeVideos []Video `json:"youtubeVideos,omitempty" yaml:"youtubeVideos,omitempty"`
	VideoURL      string  `json:"videoUrl,omitempty" yaml:"videoUrl,omitempty"`

	Features []string `json:"features" yaml:"features"`
	Tech     []string `json:"tech" yaml:"tech"`
	DemoURL  string   `json:"demoUrl" yaml:"demoUrl"`
}

// HasCategory reports whether the project is tagged with c.
func (p Project) HasCategory(c string) bool {
	for _, pc := range p.Categories {
		if pc == c {
			return true
		}
	}
	return false
}

// VideoFields counts how many of the mutually exclusive video fields are populated.
// Blank strings count as absent.
func (p Project) VideoFields() int {
	n := 0
	if strings.TrimSpace(p.YouTubeVideo) != "" {
		n++
	}
	if len(p.YouTubeVideos) > 0 {
		n++
	}
	if strings.TrimSpace(p.VideoURL) != "" {
		n++
	}
	return n
}
