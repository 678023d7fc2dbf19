// Package editor runs the user's text editor on the listing file.
package editor

import (
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/arthur-debert/edir/pkg/errors"
	"github.com/arthur-debert/edir/pkg/logging"
	"github.com/arthur-debert/edir/pkg/paths"
	"github.com/google/shlex"
)

// TTYPath is the controlling terminal the editor reads from, so that it
// still works when edir's own stdin is a pipe of path names.
const TTYPath = "/dev/tty"

// platform defaults, keyed by runtime.GOOS
var defaultEditors = map[string]string{
	"windows": "notepad",
	"darwin":  "open -e",
}

const fallbackEditor = "vim"

// Resolve returns the editor command line: EDIR_EDITOR, then EDITOR, then
// configured, then the platform default.
func Resolve(configured string) string {
	for _, candidate := range []string{
		os.Getenv(paths.EnvEditor),
		os.Getenv(paths.EnvGenericEditor),
		configured,
	} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return DefaultFor(runtime.GOOS)
}

// DefaultFor returns the default editor for an operating system
func DefaultFor(goos string) string {
	if editor, ok := defaultEditors[goos]; ok {
		return editor
	}
	return fallbackEditor
}

// Command splits an editor command line shell-style and appends file
func Command(editor, file string) ([]string, error) {
	argv, err := shlex.Split(editor)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEditor, "cannot parse editor command %q", editor)
	}
	if len(argv) == 0 {
		return nil, errors.New(errors.ErrEditor, "editor command is empty")
	}
	return append(argv, file), nil
}

// Editor runs one editor command
type Editor struct {
	command string
}

// New creates an Editor for the given command line
func New(command string) *Editor {
	return &Editor{command: command}
}

// Command returns the editor command line
func (e *Editor) Command() string {
	return e.command
}

// Edit blocks until the editor exits. A non-zero exit status is a fatal
// EDITOR error; it never counts as an unchanged file.
func (e *Editor) Edit(file string) error {
	logger := logging.GetLogger("editor")

	argv, err := Command(e.command, file)
	if err != nil {
		return err
	}
	logging.LogCommand(argv[0], argv[1:])

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	if tty, err := os.Open(TTYPath); err == nil {
		defer tty.Close()
		cmd.Stdin = tty
	} else {
		logger.Debug().Err(err).Msg("No controlling terminal, editor inherits stdin")
	}

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return errors.Newf(errors.ErrEditor, "%s returned error %d", e.command, exitErr.ExitCode()).
				WithDetail("file", file)
		}
		return errors.Wrapf(err, errors.ErrEditor, "cannot run %s", e.command)
	}
	return nil
}
