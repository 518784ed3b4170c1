// Package adapter provides storage integrations for geometry projects.
package adapter

import (
	m "github.com/half-rabbit/geode/internal/model"
)

// ProjectStore persists and retrieves compound-format documents by project
// name. Implementations can use different backends (local directory, object
// store, etc).
type ProjectStore interface {
	Save(name string, doc *m.Document) error
	Load(name string) (*m.Document, error)
	List() ([]string, error)
}
