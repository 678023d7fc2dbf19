package styles_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/edir/pkg/ui/output/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ansiRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.ANSI)
	return r
}

func TestDefaultStylesPresent(t *testing.T) {
	registry := styles.Default().Build(ansiRenderer())

	for _, name := range []string{"Remove", "RemoveError", "Copy", "CopyError", "Rename", "RenameError"} {
		t.Run(name, func(t *testing.T) {
			_, ok := registry[name]
			assert.True(t, ok)
		})
	}
}

func TestActionColours(t *testing.T) {
	registry := styles.Default().Build(ansiRenderer())

	assert.Contains(t, registry.Get("Remove").Render("x"), "\x1b[31m")
	assert.Contains(t, registry.Get("Copy").Render("x"), "\x1b[32m")
	assert.Contains(t, registry.Get("Rename").Render("x"), "\x1b[33m")

	inverted := registry.Get("RenameError").Render("x")
	assert.Contains(t, inverted, "30")
	assert.Contains(t, inverted, "43")
}

func TestAsciiProfileRendersPlain(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.Ascii)
	registry := styles.Default().Build(r)

	assert.Equal(t, "Renamed \"a\tb\"", registry.Get("Rename").Render("Renamed \"a\tb\""))
}

func TestUnknownStyleIsPlain(t *testing.T) {
	registry := styles.Default().Build(ansiRenderer())
	assert.Equal(t, "x", registry.Get("Nope").Render("x"))
}

func TestLoadStylesFromData(t *testing.T) {
	cfg, err := styles.LoadStylesFromData([]byte(`
colors:
  blue: {light: "4", dark: "4"}
styles:
  Rename: {foreground: blue, bold: true}
`))
	require.NoError(t, err)
	assert.Equal(t, "blue", cfg.Styles["Rename"].Foreground)
	assert.True(t, cfg.Styles["Rename"].Bold)

	_, err = styles.LoadStylesFromData([]byte("styles: ["))
	assert.Error(t, err)
}
