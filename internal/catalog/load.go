package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"folio-cli/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed projects.yaml
var defaultCatalog []byte

// Default parses the catalog compiled into the binary.
func Default() (*Catalog, error) {
	c, err := Parse(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("built-in catalog: %w", err)
	}
	return c, nil
}

// Load reads and parses a catalog file.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadOrDefault loads path, or the built-in catalog when path is empty.
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Parse decodes a YAML mapping of identifier -> project.
//
// A plain map would lose the authored order, so we walk the mapping node's
// key/value pairs ourselves.
func Parse(b []byte) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return New(nil)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.New("catalog must be a mapping of project id to project")
	}

	projects := make([]model.Project, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		var p model.Project
		if err := val.Decode(&p); err != nil {
			return nil, fmt.Errorf("project %q (line %d): %w", key.Value, key.Line, err)
		}
		p.ID = key.Value
		projects = append(projects, p)
	}
	return New(projects)
}
