// Package styles defines the colours of edir's action lines.
//
// Styles are declared in the embedded styles.yaml under semantic names,
// one per action plus an inverted variant for failures:
//
//	Rename / RenameError
//	Remove / RemoveError
//	Copy / CopyError
//
// Styles are built against a lipgloss renderer so that stdout and stderr
// can be coloured independently.
package styles

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to styles bound to one renderer
type Registry map[string]lipgloss.Style

//go:embed styles.yaml
var embeddedStyles []byte

// defaultConfig is parsed once from the embedded YAML
var defaultConfig Config

func init() {
	if err := yaml.Unmarshal(embeddedStyles, &defaultConfig); err != nil {
		// An unparsable embed is a build defect; run uncoloured.
		defaultConfig = Config{}
	}
}

// Default returns the embedded style configuration
func Default() Config {
	return defaultConfig
}

// LoadStyles reads a style configuration from a YAML file
func LoadStyles(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read styles file %s: %w", path, err)
	}
	return LoadStylesFromData(data)
}

// LoadStylesFromData parses a style configuration from YAML data
func LoadStylesFromData(data []byte) (Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse styles data: %w", err)
	}
	return config, nil
}

// Build creates every style in config for renderer r
func (c Config) Build(r *lipgloss.Renderer) Registry {
	colors := make(map[string]lipgloss.AdaptiveColor, len(c.Colors))
	for name, def := range c.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry := make(Registry, len(c.Styles))
	for name, def := range c.Styles {
		registry[name] = buildStyle(r, def, colors)
	}
	return registry
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(r *lipgloss.Renderer, def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	// paths may contain tabs; keep them as typed
	style := r.NewStyle().TabWidth(lipgloss.NoTabConversion)

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if color, ok := colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if color, ok := colors[def.Background]; ok {
		style = style.Background(color)
	}
	return style
}

// Get safely retrieves a style, falling back to an unstyled one
func (r Registry) Get(name string) lipgloss.Style {
	if style, ok := r[name]; ok {
		return style
	}
	return lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
}
