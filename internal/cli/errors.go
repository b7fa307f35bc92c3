package cli

import (
	"fmt"

	"folio-cli/internal/catalog"
)

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func (e notFoundError) Is(target error) bool {
	return e.kind == "project" && target == catalog.ErrNotFound
}

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}
