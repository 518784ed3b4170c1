package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "github.com/half-rabbit/geode/internal/model"
)

const projectFileExt = ".json"

// fileStore keeps one <name>.json document per project under a root
// directory.
type fileStore struct {
	root string
}

// NewFileStore constructs a ProjectStore backed by a local directory.
func NewFileStore(root string) ProjectStore {
	return &fileStore{root: root}
}

func (fs *fileStore) Save(name string, doc *m.Document) error {
	if err := validProjectName(name); err != nil {
		return err
	}

	if err := os.MkdirAll(fs.root, 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode project %s: %w", name, err)
	}

	if err := os.WriteFile(fs.projectPath(name), data, 0o644); err != nil {
		return fmt.Errorf("write project %s: %w", name, err)
	}

	return nil
}

func (fs *fileStore) Load(name string) (*m.Document, error) {
	if err := validProjectName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fs.projectPath(name))
	if err != nil {
		return nil, fmt.Errorf("read project %s: %w", name, err)
	}

	var doc m.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode project %s: %w", name, err)
	}

	return &doc, nil
}

func (fs *fileStore) List() ([]string, error) {
	entries, err := os.ReadDir(fs.root)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}

		return nil, fmt.Errorf("read store directory: %w", err)
	}

	var names []string

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), projectFileExt) {
			continue
		}

		names = append(names, strings.TrimSuffix(entry.Name(), projectFileExt))
	}

	sort.Strings(names)

	return names, nil
}

func (fs *fileStore) projectPath(name string) string {
	return filepath.Join(fs.root, name+projectFileExt)
}

func validProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name is empty")
	}

	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return fmt.Errorf("invalid project name %q", name)
	}

	return nil
}
