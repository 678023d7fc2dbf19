// Package topics serves the long-form help pages shipped inside the
// binary, such as the listing format reference.
package topics

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed content/*.md
var content embed.FS

// Topic represents a help topic
type Topic struct {
	Name    string
	Ext     string
	Content string
}

// Manager indexes the topics found in a filesystem
type Manager struct {
	topics   map[string]*Topic
	renderer Renderer
}

// Options configures the Manager
type Options struct {
	// Extensions is the list of file extensions to consider as topics.
	// Defaults to [".txt", ".md"].
	Extensions []string
	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer
}

// Default returns a manager over the embedded topics
func Default(renderer Renderer) (*Manager, error) {
	sub, err := fs.Sub(content, "content")
	if err != nil {
		return nil, err
	}
	return New(sub, Options{Renderer: renderer})
}

// New scans fsys for topic files
func New(fsys fs.FS, opts Options) (*Manager, error) {
	if len(opts.Extensions) == 0 {
		opts.Extensions = []string{".txt", ".md"}
	}
	if opts.Renderer == nil {
		opts.Renderer = &PlainRenderer{}
	}

	m := &Manager{topics: make(map[string]*Topic), renderer: opts.Renderer}
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := path.Ext(p)
		if !contains(opts.Extensions, ext) {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{Name: name, Ext: ext, Content: string(data)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Get retrieves a topic by name. Flag-style names (--git) are accepted.
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	topic, ok := m.topics[name]
	return topic, ok
}

// List returns all topic names, sorted
func (m *Manager) List() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns the formatted content of a topic
func (m *Manager) Render(name string) (string, bool) {
	topic, ok := m.Get(name)
	if !ok {
		return "", false
	}
	return m.renderer.Render(topic.Content, topic.Ext), true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
