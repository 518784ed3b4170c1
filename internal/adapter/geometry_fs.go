package adapter

import (
	"encoding/json"
	"fmt"
	"os"

	m "github.com/half-rabbit/geode/internal/model"
)

// GeometryFS reads and writes geometry and document JSON files outside the
// project store, for import/export through arbitrary paths.
type GeometryFS interface {
	ReadGeometry(path string) (*m.Geometry, error)
	WriteGeometry(path string, geo *m.Geometry) error
	ReadDocument(path string) (*m.Document, error)
	WriteDocument(path string, doc *m.Document) error
}

type localGeometryFS struct{}

// NewLocalGeometryFS constructs a GeometryFS over the local filesystem.
func NewLocalGeometryFS() GeometryFS {
	return &localGeometryFS{}
}

func (l *localGeometryFS) ReadGeometry(path string) (*m.Geometry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read geometry %s: %w", path, err)
	}

	var geo m.Geometry
	if err := json.Unmarshal(data, &geo); err != nil {
		return nil, fmt.Errorf("decode geometry %s: %w", path, err)
	}

	return &geo, nil
}

func (l *localGeometryFS) WriteGeometry(path string, geo *m.Geometry) error {
	data, err := json.MarshalIndent(geo, "", "  ")
	if err != nil {
		return fmt.Errorf("encode geometry: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write geometry %s: %w", path, err)
	}

	return nil
}

func (l *localGeometryFS) ReadDocument(path string) (*m.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", path, err)
	}

	var doc m.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", path, err)
	}

	return &doc, nil
}

func (l *localGeometryFS) WriteDocument(path string, doc *m.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write document %s: %w", path, err)
	}

	return nil
}
