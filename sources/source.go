package sources

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

type Source struct {
	Name    string // used as the file identifier of locations
	Path    string // empty if not loaded from disk
	Content string

	lines func() []string
}

func New(name string, content string) *Source {
	s := &Source{
		Name:    name,
		Content: content,
	}
	s.init()
	return s
}

func (s *Source) init() {
	s.lines = sync.OnceValue(func() []string {
		return strings.Split(s.Content, "\n")
	})
}

// Load reads the file at path. The source is named relative to root when path is
// under root, and by its cleaned path otherwise.
func Load(path string, root string) (*Source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load source: %w", err)
	}
	s := &Source{
		Name:    displayName(path, root),
		Path:    path,
		Content: string(content),
	}
	s.init()
	return s, nil
}

func displayName(path string, root string) string {
	if root == "" {
		return filepath.Clean(path)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return filepath.Clean(path)
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.Clean(path)
	}
	return rel
}

func (s *Source) Lines() []string {
	if s.lines == nil {
		s.init()
	}
	return s.lines()
}
