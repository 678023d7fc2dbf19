package editor_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arthur-debert/edir/pkg/editor"
	"github.com/arthur-debert/edir/pkg/errors"
	"github.com/arthur-debert/edir/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePrecedence(t *testing.T) {
	t.Setenv(paths.EnvEditor, "")
	t.Setenv(paths.EnvGenericEditor, "")
	assert.Equal(t, editor.DefaultFor(runtime.GOOS), editor.Resolve(""))
	assert.Equal(t, "nano", editor.Resolve("nano"))

	t.Setenv(paths.EnvGenericEditor, "emacs -nw")
	assert.Equal(t, "emacs -nw", editor.Resolve("nano"))

	t.Setenv(paths.EnvEditor, "code --wait")
	assert.Equal(t, "code --wait", editor.Resolve("nano"))
}

func TestDefaultFor(t *testing.T) {
	assert.Equal(t, "vim", editor.DefaultFor("linux"))
	assert.Equal(t, "notepad", editor.DefaultFor("windows"))
	assert.Equal(t, "open -e", editor.DefaultFor("darwin"))
}

func TestCommand(t *testing.T) {
	argv, err := editor.Command(`code --wait "--user-data-dir=/tmp/a b"`, "/tmp/edir.sh")
	require.NoError(t, err)
	assert.Equal(t, []string{"code", "--wait", "--user-data-dir=/tmp/a b", "/tmp/edir.sh"}, argv)

	_, err = editor.Command("   ", "f")
	assert.True(t, errors.IsErrorCode(err, errors.ErrEditor))
}

func TestEditSuccess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	file := filepath.Join(t.TempDir(), "edir.sh")
	require.NoError(t, os.WriteFile(file, []byte("1  ./a\n"), 0644))

	// the editor appends a line
	ed := editor.New(`sh -c 'echo "1  ./b" >> "$0"'`)
	require.NoError(t, ed.Edit(file))

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "1  ./a\n1  ./b\n", string(data))
}

func TestEditNonZeroExitIsFatal(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	err := editor.New("false").Edit(filepath.Join(t.TempDir(), "edir.sh"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEditor))
	assert.True(t, errors.IsFatal(err))
	assert.Contains(t, err.Error(), "false returned error 1")
}

func TestEditMissingProgram(t *testing.T) {
	err := editor.New("edir-no-such-editor-xyz").Edit("f")
	assert.True(t, errors.IsErrorCode(err, errors.ErrEditor))
}
