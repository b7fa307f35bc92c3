// Package docs holds the markdown help pages shown by `folio docs`.
package docs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed content/*.md
var contentFS embed.FS

var ErrUnknownTopic = errors.New("unknown docs topic")

// Topic is one help page. Title comes from the page's first "# " heading.
type Topic struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// Topics lists the embedded pages sorted by name.
func Topics() []Topic {
	entries, err := fs.ReadDir(contentFS, "content")
	if err != nil {
		return []Topic{}
	}
	out := make([]Topic, 0, len(entries))
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), ".md")
		if !ok || e.IsDir() || name == "" {
			continue
		}
		body, err := contentFS.ReadFile(path.Join("content", e.Name()))
		if err != nil {
			continue
		}
		out = append(out, Topic{Name: name, Title: heading(string(body), name)})
	}
	return out
}

func heading(body, fallback string) string {
	for _, line := range strings.Split(body, "\n") {
		if t, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(t)
		}
	}
	return fallback
}

// Lookup resolves query to a topic and returns its markdown. Matching is
// case-insensitive and a unique prefix is enough ("key" finds keys).
func Lookup(query string) (Topic, string, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || strings.ContainsAny(q, `/\`) {
		return Topic{}, "", fmt.Errorf("%w: %q", ErrUnknownTopic, query)
	}

	var matches []Topic
	for _, t := range Topics() {
		if t.Name == q {
			matches = []Topic{t}
			break
		}
		if strings.HasPrefix(t.Name, q) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return Topic{}, "", fmt.Errorf("%w: %q", ErrUnknownTopic, query)
	case 1:
	default:
		names := make([]string, len(matches))
		for i, t := range matches {
			names[i] = t.Name
		}
		return Topic{}, "", fmt.Errorf("%w: %q is ambiguous (%s)", ErrUnknownTopic, query, strings.Join(names, ", "))
	}

	t := matches[0]
	b, err := contentFS.ReadFile(path.Join("content", t.Name+".md"))
	if err != nil {
		return Topic{}, "", err
	}
	return t, string(b), nil
}
